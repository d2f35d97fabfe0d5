package implementation

import (
	"context"
	"errors"

	"github.com/Salaem66/pickme2/internal/entity"
	"github.com/Salaem66/pickme2/internal/mapper"
	"github.com/Salaem66/pickme2/internal/model"
	"github.com/Salaem66/pickme2/internal/repository/contract"
	"github.com/Salaem66/pickme2/internal/repository/specification"

	"gorm.io/gorm"
)

type MovieRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MovieMapper
}

func NewMovieRepository(db *gorm.DB) contract.MovieRepository {
	return &MovieRepositoryImpl{
		db:     db,
		mapper: mapper.NewMovieMapper(),
	}
}

func (r *MovieRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *MovieRepositoryImpl) Create(ctx context.Context, movie *entity.Movie) error {
	m := r.mapper.ToModel(movie)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*movie = *r.mapper.ToEntity(m)
	return nil
}

func (r *MovieRepositoryImpl) CreateBulk(ctx context.Context, movies []*entity.Movie) error {
	models := make([]*model.Movie, len(movies))
	for i, mv := range movies {
		models[i] = r.mapper.ToModel(mv)
	}

	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return err
	}

	for i, m := range models {
		*movies[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *MovieRepositoryImpl) Update(ctx context.Context, movie *entity.Movie) error {
	m := r.mapper.ToModel(movie)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*movie = *r.mapper.ToEntity(m)
	return nil
}

func (r *MovieRepositoryImpl) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Movie{}, id).Error
}

func (r *MovieRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Movie, error) {
	var m model.Movie
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *MovieRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Movie, error) {
	var models []*model.Movie
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *MovieRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.Movie{}).Count(&count).Error
	return count, err
}

// CountByGenre unpacks the jsonb genres array so each movie counts once
// per genre it carries.
func (r *MovieRepositoryImpl) CountByGenre(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Genre string
		Total int64
	}
	var rows []row

	err := r.db.WithContext(ctx).
		Table("movies").
		Select("jsonb_array_elements_text(genres) as genre, count(*) as total").
		Where("deleted_at IS NULL").
		Group("genre").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Genre] = r.Total
	}
	return counts, nil
}

func (r *MovieRepositoryImpl) DistinctPlatforms(ctx context.Context) ([]string, error) {
	var platforms []string
	err := r.db.WithContext(ctx).
		Table("movies").
		Select("DISTINCT jsonb_array_elements_text(watch_providers)").
		Where("deleted_at IS NULL").
		Order("1").
		Scan(&platforms).Error
	if err != nil {
		return nil, err
	}
	return platforms, nil
}
