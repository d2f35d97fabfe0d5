package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/fatih/color"
)

const baseURL = "http://localhost:3000/api"

// Pretty print JSON helper
func prettyPrint(body []byte) {
	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		fmt.Println(string(body))
		return
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Println(string(body))
		return
	}
	fmt.Println(string(b))
}

// Request helper
func sendRequest(method, url string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func main() {
	color.Cyan("🚀 Starting Mood Search API Smoke Test\n")

	// 1. Health
	color.Yellow("\n1. Health Check")
	resp, body, err := sendRequest("GET", "/health", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(body)

	// 2. Mood search, French query
	color.Yellow("\n2. Mood Search: j'ai envie de rire")
	resp, body, err = sendRequest("POST", "/search/v1", map[string]interface{}{
		"query": "j'ai envie de rire",
		"limit": 5,
	})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(body)

	// 3. Mood search with platform filter
	color.Yellow("\n3. Mood Search with Platforms: quelque chose de fort sur Netflix")
	resp, body, err = sendRequest("POST", "/search/v1", map[string]interface{}{
		"query":     "quelque chose de fort",
		"limit":     5,
		"platforms": []string{"Netflix"},
	})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(body)

	// 4. GET variant with genre filter and threshold override
	color.Yellow("\n4. GET Search: /search/v1?q=un+film+triste&limit=3&genres=Drama&threshold=0.4")
	resp, body, err = sendRequest("GET", "/search/v1?q=un+film+triste&limit=3&genres=Drama&threshold=0.4", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(body)

	// 5. Suggestions
	color.Yellow("\n5. Mood Suggestions")
	resp, body, err = sendRequest("GET", "/search/v1/suggestions", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(body)

	// 6. Platforms
	color.Yellow("\n6. Available Platforms")
	resp, body, err = sendRequest("GET", "/search/v1/platforms", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(body)

	// 7. Validation error path
	color.Yellow("\n7. Invalid Query (expects 400)")
	resp, body, err = sendRequest("POST", "/search/v1", map[string]interface{}{
		"query": "   ",
	})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	if resp.StatusCode == http.StatusBadRequest {
		color.Green("Status: %s (expected)", resp.Status)
	} else {
		color.Red("Status: %s (expected 400)", resp.Status)
	}
	prettyPrint(body)

	color.Cyan("\n✨ Smoke test finished")
}
