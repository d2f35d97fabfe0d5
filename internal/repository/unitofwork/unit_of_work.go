package unitofwork

import (
	"context"

	"github.com/Salaem66/pickme2/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	MovieRepository() contract.MovieRepository
	MovieEmbeddingRepository() contract.MovieEmbeddingRepository
}
