package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gadogest/backend/internal/domain/finance"
	"github.com/gadogest/backend/internal/domain/shared"
	"github.com/gadogest/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormFinancialRecordRepository implements FinancialRecordRepository using GORM
type GormFinancialRecordRepository struct {
	db *gorm.DB
}

// NewGormFinancialRecordRepository creates a new GormFinancialRecordRepository
func NewGormFinancialRecordRepository(db *gorm.DB) *GormFinancialRecordRepository {
	return &GormFinancialRecordRepository{db: db}
}

// FindByID finds a financial record by its ID
func (r *GormFinancialRecordRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.FinancialRecord, error) {
	var model models.FinancialRecordModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all financial records matching the filter, returning the total match count
func (r *GormFinancialRecordRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*finance.FinancialRecord, int64, error) {
	base := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.FinancialRecordModel{}), filter)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var recordModels []models.FinancialRecordModel
	if err := r.applyPagination(base, filter).Find(&recordModels).Error; err != nil {
		return nil, 0, err
	}

	records := make([]*finance.FinancialRecord, len(recordModels))
	for i := range recordModels {
		records[i] = recordModels[i].ToDomain()
	}
	return records, total, nil
}

// Summarize aggregates income, expense and balance over every record matching
// the filter. Pagination is ignored so the totals always cover the whole
// filtered set, not the current page.
func (r *GormFinancialRecordRepository) Summarize(ctx context.Context, filter shared.Filter) (*finance.Summary, error) {
	base := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.FinancialRecordModel{}), filter)

	income, err := r.sumByType(base, finance.RecordTypeIncome)
	if err != nil {
		return nil, err
	}
	expense, err := r.sumByType(base, finance.RecordTypeExpense)
	if err != nil {
		return nil, err
	}

	return &finance.Summary{
		Income:  income,
		Expense: expense,
		Balance: income.Sub(expense),
	}, nil
}

// SummarizePeriod aggregates income, expense and balance between two dates
func (r *GormFinancialRecordRepository) SummarizePeriod(ctx context.Context, from, to time.Time) (*finance.Summary, error) {
	base := r.db.WithContext(ctx).
		Model(&models.FinancialRecordModel{}).
		Where("date >= ? AND date <= ?", from, to)

	income, err := r.sumByType(base, finance.RecordTypeIncome)
	if err != nil {
		return nil, err
	}
	expense, err := r.sumByType(base, finance.RecordTypeExpense)
	if err != nil {
		return nil, err
	}

	return &finance.Summary{
		Income:  income,
		Expense: expense,
		Balance: income.Sub(expense),
	}, nil
}

// Save creates or updates a financial record
func (r *GormFinancialRecordRepository) Save(ctx context.Context, record *finance.FinancialRecord) error {
	model := models.FinancialRecordModelFromDomain(record)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a financial record
func (r *GormFinancialRecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.FinancialRecordModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormFinancialRecordRepository) sumByType(base *gorm.DB, recordType finance.RecordType) (decimal.Decimal, error) {
	var raw *string
	if err := base.Session(&gorm.Session{}).
		Where("type = ?", recordType).
		Select("CAST(SUM(amount) AS TEXT)").
		Scan(&raw).Error; err != nil {
		return decimal.Zero, err
	}
	if raw == nil || *raw == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(*raw)
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormFinancialRecordRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(description) LIKE ? OR LOWER(category) LIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "farm":
			query = query.Where("farm = ?", value)
		case "type":
			query = query.Where("type = ?", value)
		case "category":
			query = query.Where("category = ?", value)
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
func (r *GormFinancialRecordRepository) applyPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
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
