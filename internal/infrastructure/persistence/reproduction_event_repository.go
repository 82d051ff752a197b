package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/gadogest/backend/internal/domain/breeding"
	"github.com/gadogest/backend/internal/domain/shared"
	"github.com/gadogest/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormReproductionEventRepository implements ReproductionEventRepository using GORM
type GormReproductionEventRepository struct {
	db *gorm.DB
}

// NewGormReproductionEventRepository creates a new GormReproductionEventRepository
func NewGormReproductionEventRepository(db *gorm.DB) *GormReproductionEventRepository {
	return &GormReproductionEventRepository{db: db}
}

// FindByID finds a reproduction event by its ID
func (r *GormReproductionEventRepository) FindByID(ctx context.Context, id uuid.UUID) (*breeding.ReproductionEvent, error) {
	var model models.ReproductionEventModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all reproduction events matching the filter, returning the total match count
func (r *GormReproductionEventRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*breeding.ReproductionEvent, int64, error) {
	base := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.ReproductionEventModel{}), filter)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var eventModels []models.ReproductionEventModel
	if err := r.applyPagination(base, filter).Find(&eventModels).Error; err != nil {
		return nil, 0, err
	}

	events := make([]*breeding.ReproductionEvent, len(eventModels))
	for i := range eventModels {
		events[i] = eventModels[i].ToDomain()
	}
	return events, total, nil
}

// Summarize counts events by type and calves born over every event matching
// the filter, ignoring pagination.
func (r *GormReproductionEventRepository) Summarize(ctx context.Context, filter shared.Filter) (*breeding.Summary, error) {
	base := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.ReproductionEventModel{}), filter)

	summary := &breeding.Summary{}

	counts := []struct {
		eventType breeding.EventType
		dest      *int64
	}{
		{breeding.EventTypeMating, &summary.Matings},
		{breeding.EventTypeGestation, &summary.Gestations},
		{breeding.EventTypeBirth, &summary.Births},
	}
	for _, c := range counts {
		if err := base.Session(&gorm.Session{}).
			Where("type = ?", c.eventType).
			Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	var calves *int64
	if err := base.Session(&gorm.Session{}).
		Where("type = ?", breeding.EventTypeBirth).
		Select("SUM(calf_count)").
		Scan(&calves).Error; err != nil {
		return nil, err
	}
	if calves != nil {
		summary.CalvesBorn = *calves
	}

	return summary, nil
}

// Save creates or updates a reproduction event
func (r *GormReproductionEventRepository) Save(ctx context.Context, event *breeding.ReproductionEvent) error {
	model := models.ReproductionEventModelFromDomain(event)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a reproduction event
func (r *GormReproductionEventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ReproductionEventModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormReproductionEventRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(responsible) LIKE ? OR LOWER(method) LIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "type":
			query = query.Where("type = ?", value)
		case "status":
			query = query.Where("status = ?", value)
		case "female_id":
			query = query.Where("female_id = ?", value)
		case "date_from":
			query = query.Where("event_date >= ?", value)
		case "date_to":
			query = query.Where("event_date <= ?", value)
		}
	}

	return query
}

// applyPagination applies ordering and pagination to the query
func (r *GormReproductionEventRepository) applyPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
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
		query = query.Order("event_date DESC")
	}

	return query
}
