package controller

import (
	"strconv"
	"strings"

	"github.com/Salaem66/pickme2/internal/dto"
	"github.com/Salaem66/pickme2/internal/pkg/serverutils"
	"github.com/Salaem66/pickme2/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISearchController interface {
	RegisterRoutes(r fiber.Router)
	Search(ctx *fiber.Ctx) error
	SearchGet(ctx *fiber.Ctx) error
	Suggestions(ctx *fiber.Ctx) error
	Platforms(ctx *fiber.Ctx) error
}

type searchController struct {
	searchService service.ISearchService
}

func NewSearchController(searchService service.ISearchService) ISearchController {
	return &searchController{
		searchService: searchService,
	}
}

func (c *searchController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/search/v1")
	h.Post("", c.Search)
	h.Get("", c.SearchGet)
	h.Get("suggestions", c.Suggestions)
	h.Get("platforms", c.Platforms)
}

func (c *searchController) Search(ctx *fiber.Ctx) error {
	var req dto.SearchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.searchService.Search(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success mood search", res))
}

// SearchGet serves quick queries:
// /api/search/v1?q=...&limit=...&platforms=netflix,canal+&genres=Comedy,Drama&threshold=0.4
func (c *searchController) SearchGet(ctx *fiber.Ctx) error {
	req := dto.SearchRequest{
		Query: ctx.Query("q", ""),
	}
	if limitStr := ctx.Query("limit", ""); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "limit must be an integer")
		}
		req.Limit = limit
	}
	if platforms := ctx.Query("platforms", ""); platforms != "" {
		req.Platforms = strings.Split(platforms, ",")
	}
	if genres := ctx.Query("genres", ""); genres != "" {
		req.Genres = strings.Split(genres, ",")
	}
	if thresholdStr := ctx.Query("threshold", ""); thresholdStr != "" {
		threshold, err := strconv.ParseFloat(thresholdStr, 64)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "threshold must be a number")
		}
		req.Threshold = &threshold
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.searchService.Search(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success mood search", res))
}

func (c *searchController) Suggestions(ctx *fiber.Ctx) error {
	res, err := c.searchService.Suggestions(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list mood suggestions", res))
}

func (c *searchController) Platforms(ctx *fiber.Ctx) error {
	res, err := c.searchService.Platforms(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list platforms", res))
}
