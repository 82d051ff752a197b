package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/gadogest/backend/internal/domain/herd"
	"github.com/gadogest/backend/internal/domain/shared"
	"github.com/gadogest/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormAnimalRepository implements AnimalRepository using GORM
type GormAnimalRepository struct {
	db *gorm.DB
}

// NewGormAnimalRepository creates a new GormAnimalRepository
func NewGormAnimalRepository(db *gorm.DB) *GormAnimalRepository {
	return &GormAnimalRepository{db: db}
}

// FindByID finds an animal by its ID
func (r *GormAnimalRepository) FindByID(ctx context.Context, id uuid.UUID) (*herd.Animal, error) {
	var model models.AnimalModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIdentification finds an animal by its unique identification tag
func (r *GormAnimalRepository) FindByIdentification(ctx context.Context, identification string) (*herd.Animal, error) {
	var model models.AnimalModel
	if err := r.db.WithContext(ctx).
		Where("identification = ?", strings.TrimSpace(identification)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// ExistsByIdentification checks whether an animal with the given identification exists
func (r *GormAnimalRepository) ExistsByIdentification(ctx context.Context, identification string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.AnimalModel{}).
		Where("identification = ?", strings.TrimSpace(identification)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindAll finds all animals matching the filter, returning the total match count
func (r *GormAnimalRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*herd.Animal, int64, error) {
	base := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.AnimalModel{}), filter)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var animalModels []models.AnimalModel
	if err := r.applyPagination(base, filter).Find(&animalModels).Error; err != nil {
		return nil, 0, err
	}

	animals := make([]*herd.Animal, len(animalModels))
	for i := range animalModels {
		animals[i] = animalModels[i].ToDomain()
	}
	return animals, total, nil
}

// CountByStatus counts animals in a given status
func (r *GormAnimalRepository) CountByStatus(ctx context.Context, status herd.AnimalStatus) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.AnimalModel{}).
		Where("status = ?", status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountActive counts animals still in the herd
func (r *GormAnimalRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.AnimalModel{}).
		Where("active = ?", true).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Count counts all animals
func (r *GormAnimalRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.AnimalModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates an animal
func (r *GormAnimalRepository) Save(ctx context.Context, animal *herd.Animal) error {
	model := models.AnimalModelFromDomain(animal)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes an animal
func (r *GormAnimalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.AnimalModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormAnimalRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(identification) LIKE ? OR LOWER(breed) LIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "type":
			query = query.Where("type = ?", value)
		case "status":
			query = query.Where("status = ?", value)
		case "farm":
			query = query.Where("farm = ?", value)
		case "active":
			query = query.Where("active = ?", value)
		}
	}

	return query
}

// applyPagination applies ordering and pagination to the query
func (r *GormAnimalRepository) applyPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + orderDir)
	} else {
		query = query.Order("created_at DESC")
	}

	return query
}
