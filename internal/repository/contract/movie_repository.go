package contract

import (
	"context"

	"github.com/Salaem66/pickme2/internal/entity"
	"github.com/Salaem66/pickme2/internal/repository/specification"
)

type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) error
	CreateBulk(ctx context.Context, movies []*entity.Movie) error
	Update(ctx context.Context, movie *entity.Movie) error
	Delete(ctx context.Context, id int64) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Movie, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Movie, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// CountByGenre aggregates catalog size per genre for the stats endpoint.
	CountByGenre(ctx context.Context) (map[string]int64, error)
	// DistinctPlatforms lists every streaming platform present in the catalog.
	DistinctPlatforms(ctx context.Context) ([]string, error)
}
