package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gadogest/backend/internal/domain/health"
	"github.com/gadogest/backend/internal/domain/shared"
	"github.com/gadogest/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormHealthRecordRepository implements HealthRecordRepository using GORM
type GormHealthRecordRepository struct {
	db *gorm.DB
}

// NewGormHealthRecordRepository creates a new GormHealthRecordRepository
func NewGormHealthRecordRepository(db *gorm.DB) *GormHealthRecordRepository {
	return &GormHealthRecordRepository{db: db}
}

// FindByID finds a health record by its ID
func (r *GormHealthRecordRepository) FindByID(ctx context.Context, id uuid.UUID) (*health.HealthRecord, error) {
	var model models.HealthRecordModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all health records matching the filter, returning the total match count
func (r *GormHealthRecordRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*health.HealthRecord, int64, error) {
	base := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.HealthRecordModel{}), filter)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var recordModels []models.HealthRecordModel
	if err := r.applyPagination(base, filter).Find(&recordModels).Error; err != nil {
		return nil, 0, err
	}

	records := make([]*health.HealthRecord, len(recordModels))
	for i := range recordModels {
		records[i] = recordModels[i].ToDomain()
	}
	return records, total, nil
}

// FindByAnimal finds all health records for an animal, newest first
func (r *GormHealthRecordRepository) FindByAnimal(ctx context.Context, animalID uuid.UUID) ([]*health.HealthRecord, error) {
	var recordModels []models.HealthRecordModel
	if err := r.db.WithContext(ctx).
		Where("animal_id = ?", animalID).
		Order("date DESC").
		Find(&recordModels).Error; err != nil {
		return nil, err
	}

	records := make([]*health.HealthRecord, len(recordModels))
	for i := range recordModels {
		records[i] = recordModels[i].ToDomain()
	}
	return records, nil
}

// CountScheduledAfter counts scheduled records whose next application is after the given time
func (r *GormHealthRecordRepository) CountScheduledAfter(ctx context.Context, after time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.HealthRecordModel{}).
		Where("status = ? AND next_application >= ?", health.RecordStatusScheduled, after).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a health record
func (r *GormHealthRecordRepository) Save(ctx context.Context, record *health.HealthRecord) error {
	model := models.HealthRecordModelFromDomain(record)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a health record
func (r *GormHealthRecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.HealthRecordModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormHealthRecordRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(product) LIKE ? OR LOWER(applicator) LIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "animal_id":
			query = query.Where("animal_id = ?", value)
		case "type":
			query = query.Where("type = ?", value)
		case "status":
			query = query.Where("status = ?", value)
		case "date_from":
			query = query.Where("date >= ?", value)
		case "date_to":
			query = query.Where("date <= ?", value)
		}
	}

	return query
}

// applyPagination applies ordering and pagination to the query
func (r *GormHealthRecordRepository) applyPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
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
		query = query.Order("date DESC")
	}

	return query
}
