package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/gadogest/backend/internal/domain/finance"
	"github.com/gadogest/backend/internal/domain/shared"
	"github.com/google/uuid"
)

type FinanceService struct {
	recordRepo finance.FinancialRecordRepository
}

func NewFinanceService(recordRepo finance.FinancialRecordRepository) *FinanceService {
	return &FinanceService{recordRepo: recordRepo}
}

func (s *FinanceService) Create(ctx context.Context, req CreateFinancialRecordRequest) (*FinancialRecordResponse, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	record, err := finance.NewFinancialRecord(
		finance.RecordType(req.Type),
		req.Category,
		req.Description,
		req.Amount,
		date,
		req.Farm,
		req.Responsible,
	)
	if err != nil {
		return nil, err
	}

	if req.PaymentMethod != "" {
		if err := record.SetPaymentMethod(finance.PaymentMethod(req.PaymentMethod)); err != nil {
			return nil, err
		}
	}
	if req.Status != "" {
		if err := record.ChangeStatus(finance.RecordStatus(req.Status)); err != nil {
			return nil, err
		}
	}
	if req.AnimalID != "" {
		animalID, err := uuid.Parse(req.AnimalID)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_ANIMAL", "Animal inválido")
		}
		record.LinkAnimal(animalID)
	}
	if req.FiscalDocument != "" {
		record.SetFiscalDocument(req.FiscalDocument)
	}
	if req.Attachment != "" {
		record.SetAttachment(req.Attachment)
	}
	if req.Notes != "" {
		if err := record.SetNotes(req.Notes); err != nil {
			return nil, err
		}
	}

	if err := s.recordRepo.Save(ctx, record); err != nil {
		return nil, err
	}

	resp := ToFinancialRecordResponse(record)
	return &resp, nil
}

func (s *FinanceService) GetByID(ctx context.Context, id uuid.UUID) (*FinancialRecordResponse, error) {
	record, err := s.recordRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToFinancialRecordResponse(record)
	return &resp, nil
}

// List returns the requested page alongside a summary computed over the whole
// filtered set, so the balance stays correct regardless of pagination.
func (s *FinanceService) List(ctx context.Context, query ListFinancialRecordsQuery) (*ListFinancialRecordsResult, error) {
	filter, err := buildFilter(query)
	if err != nil {
		return nil, err
	}

	records, total, err := s.recordRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	summary, err := s.recordRepo.Summarize(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]FinancialRecordResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, ToFinancialRecordResponse(record))
	}

	page := shared.NewPaginated(responses, total, filter.Page, filter.PageSize)
	return &ListFinancialRecordsResult{
		Records:    page.Items,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
		Summary:    ToSummaryResponse(summary),
	}, nil
}

func (s *FinanceService) Update(ctx context.Context, id uuid.UUID, req UpdateFinancialRecordRequest) (*FinancialRecordResponse, error) {
	record, err := s.recordRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		if err := finance.ValidateRecordType(finance.RecordType(*req.Type)); err != nil {
			return nil, err
		}
		record.Type = finance.RecordType(*req.Type)
		record.Touch()
	}
	if req.Category != nil {
		record.Category = *req.Category
		record.Touch()
	}
	if req.Description != nil {
		record.Description = *req.Description
		record.Touch()
	}
	if req.Amount != nil {
		if req.Amount.IsNegative() {
			return nil, shared.NewDomainError("INVALID_AMOUNT", "O valor não pode ser negativo")
		}
		record.Amount = *req.Amount
		record.Touch()
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		record.Date = date
		record.Touch()
	}
	if req.PaymentMethod != nil {
		if err := record.SetPaymentMethod(finance.PaymentMethod(*req.PaymentMethod)); err != nil {
			return nil, err
		}
	}
	if req.Status != nil {
		if err := record.ChangeStatus(finance.RecordStatus(*req.Status)); err != nil {
			return nil, err
		}
	}
	if req.FiscalDocument != nil {
		record.SetFiscalDocument(*req.FiscalDocument)
	}
	if req.Attachment != nil {
		record.SetAttachment(*req.Attachment)
	}
	if req.Farm != nil {
		record.Farm = *req.Farm
		record.Touch()
	}
	if req.Responsible != nil {
		record.Responsible = *req.Responsible
		record.Touch()
	}
	if req.Notes != nil {
		if err := record.SetNotes(*req.Notes); err != nil {
			return nil, err
		}
	}

	if err := s.recordRepo.Save(ctx, record); err != nil {
		return nil, err
	}
	resp := ToFinancialRecordResponse(record)
	return &resp, nil
}

func (s *FinanceService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.recordRepo.Delete(ctx, id)
}

// SummarizePeriod totals income and expense between two dates.
func (s *FinanceService) SummarizePeriod(ctx context.Context, from, to time.Time) (*SummaryResponse, error) {
	summary, err := s.recordRepo.SummarizePeriod(ctx, from, to)
	if err != nil {
		return nil, err
	}
	resp := ToSummaryResponse(summary)
	return &resp, nil
}

func buildFilter(query ListFinancialRecordsQuery) (shared.Filter, error) {
	filter := shared.DefaultFilter()
	if query.Page > 0 {
		filter.Page = query.Page
	}
	if query.Limit > 0 {
		filter.PageSize = query.Limit
	}
	if query.Farm != "" {
		filter.Filters["farm"] = query.Farm
	}
	if query.Type != "" {
		filter.Filters["type"] = query.Type
	}
	if query.Category != "" {
		filter.Filters["category"] = query.Category
	}
	if query.Status != "" {
		filter.Filters["status"] = query.Status
	}
	if query.DateFrom != "" {
		from, err := parseDate(query.DateFrom)
		if err != nil {
			return filter, err
		}
		filter.Filters["date_from"] = from
	}
	if query.DateTo != "" {
		to, err := parseDate(query.DateTo)
		if err != nil {
			return filter, err
		}
		filter.Filters["date_to"] = to
	}
	return filter, nil
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, shared.NewDomainError("INVALID_DATE", fmt.Sprintf("Data inválida: %s", value))
}
