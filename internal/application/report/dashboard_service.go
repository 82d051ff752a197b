package report

import (
	"context"
	"time"

	"github.com/gadogest/backend/internal/domain/breeding"
	"github.com/gadogest/backend/internal/domain/finance"
	"github.com/gadogest/backend/internal/domain/health"
	"github.com/gadogest/backend/internal/domain/herd"
	"github.com/gadogest/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// HerdSummary breaks the herd down by status.
type HerdSummary struct {
	Total       int64 `json:"total"`
	Active      int64 `json:"ativos"`
	Healthy     int64 `json:"saudaveis"`
	InTreatment int64 `json:"emTratamento"`
	Pregnant    int64 `json:"prenhes"`
	Quarantined int64 `json:"emQuarentena"`
}

type FinanceSummary struct {
	Income  decimal.Decimal `json:"receitas"`
	Expense decimal.Decimal `json:"despesas"`
	Balance decimal.Decimal `json:"saldo"`
}

type BreedingSummary struct {
	Matings    int64 `json:"coberturas"`
	Gestations int64 `json:"gestacoes"`
	Births     int64 `json:"nascimentos"`
	CalvesBorn int64 `json:"bezerrosNascidos"`
}

// DashboardSummary is the aggregate view served at /dashboard/summary.
type DashboardSummary struct {
	Herd               HerdSummary     `json:"rebanho"`
	PendingHealthTasks int64           `json:"tarefasSanitariasPendentes"`
	FinanceMonth       FinanceSummary  `json:"financeiroMes"`
	Breeding           BreedingSummary `json:"reproducao"`
	GeneratedAt        time.Time       `json:"geradoEm"`
}

// DashboardService aggregates counters from every context into one view.
type DashboardService struct {
	animalRepo herd.AnimalRepository
	healthRepo health.HealthRecordRepository
	recordRepo finance.FinancialRecordRepository
	eventRepo  breeding.ReproductionEventRepository
}

func NewDashboardService(
	animalRepo herd.AnimalRepository,
	healthRepo health.HealthRecordRepository,
	recordRepo finance.FinancialRecordRepository,
	eventRepo breeding.ReproductionEventRepository,
) *DashboardService {
	return &DashboardService{
		animalRepo: animalRepo,
		healthRepo: healthRepo,
		recordRepo: recordRepo,
		eventRepo:  eventRepo,
	}
}

// Summary collects herd counts, scheduled health work, the current month's
// financial balance and the reproduction counters.
func (s *DashboardService) Summary(ctx context.Context) (*DashboardSummary, error) {
	now := time.Now()

	herdSummary, err := s.herdSummary(ctx)
	if err != nil {
		return nil, err
	}

	pending, err := s.healthRepo.CountScheduledAfter(ctx, now)
	if err != nil {
		return nil, err
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)
	financeSummary, err := s.recordRepo.SummarizePeriod(ctx, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}

	breedingSummary, err := s.eventRepo.Summarize(ctx, shared.DefaultFilter())
	if err != nil {
		return nil, err
	}

	return &DashboardSummary{
		Herd:               *herdSummary,
		PendingHealthTasks: pending,
		FinanceMonth: FinanceSummary{
			Income:  financeSummary.Income,
			Expense: financeSummary.Expense,
			Balance: financeSummary.Balance,
		},
		Breeding: BreedingSummary{
			Matings:    breedingSummary.Matings,
			Gestations: breedingSummary.Gestations,
			Births:     breedingSummary.Births,
			CalvesBorn: breedingSummary.CalvesBorn,
		},
		GeneratedAt: now,
	}, nil
}

func (s *DashboardService) herdSummary(ctx context.Context) (*HerdSummary, error) {
	total, err := s.animalRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	active, err := s.animalRepo.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	summary := &HerdSummary{Total: total, Active: active}
	counters := []struct {
		status herd.AnimalStatus
		target *int64
	}{
		{herd.AnimalStatusHealthy, &summary.Healthy},
		{herd.AnimalStatusInTreatment, &summary.InTreatment},
		{herd.AnimalStatusPregnant, &summary.Pregnant},
		{herd.AnimalStatusQuarantined, &summary.Quarantined},
	}
	for _, c := range counters {
		count, err := s.animalRepo.CountByStatus(ctx, c.status)
		if err != nil {
			return nil, err
		}
		*c.target = count
	}
	return summary, nil
}
