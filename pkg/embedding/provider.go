package embedding

import "context"

// Task types understood by the providers. Document and query embeddings
// are asymmetric for retrieval models.
const (
	TaskRetrievalDocument = "RETRIEVAL_DOCUMENT"
	TaskRetrievalQuery    = "RETRIEVAL_QUERY"
)

// EmbeddingProvider defines the interface for generating text embeddings
type EmbeddingProvider interface {
	Generate(ctx context.Context, text string, taskType string) (*EmbeddingResponse, error)
	// Name identifies the provider for health reporting.
	Name() string
}
