package report

import (
	"context"
	"testing"
	"time"

	"github.com/gadogest/backend/internal/domain/breeding"
	"github.com/gadogest/backend/internal/domain/finance"
	"github.com/gadogest/backend/internal/domain/health"
	"github.com/gadogest/backend/internal/domain/herd"
	"github.com/gadogest/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ===== Mock Repositories =====

type MockAnimalRepository struct {
	mock.Mock
}

func (m *MockAnimalRepository) FindByID(ctx context.Context, id uuid.UUID) (*herd.Animal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*herd.Animal), args.Error(1)
}

func (m *MockAnimalRepository) FindByIdentification(ctx context.Context, identification string) (*herd.Animal, error) {
	args := m.Called(ctx, identification)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*herd.Animal), args.Error(1)
}

func (m *MockAnimalRepository) ExistsByIdentification(ctx context.Context, identification string) (bool, error) {
	args := m.Called(ctx, identification)
	return args.Bool(0), args.Error(1)
}

func (m *MockAnimalRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*herd.Animal, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*herd.Animal), args.Get(1).(int64), args.Error(2)
}

func (m *MockAnimalRepository) CountByStatus(ctx context.Context, status herd.AnimalStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAnimalRepository) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAnimalRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAnimalRepository) Save(ctx context.Context, animal *herd.Animal) error {
	args := m.Called(ctx, animal)
	return args.Error(0)
}

func (m *MockAnimalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockHealthRecordRepository struct {
	mock.Mock
}

func (m *MockHealthRecordRepository) FindByID(ctx context.Context, id uuid.UUID) (*health.HealthRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*health.HealthRecord), args.Error(1)
}

func (m *MockHealthRecordRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*health.HealthRecord, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*health.HealthRecord), args.Get(1).(int64), args.Error(2)
}

func (m *MockHealthRecordRepository) FindByAnimal(ctx context.Context, animalID uuid.UUID) ([]*health.HealthRecord, error) {
	args := m.Called(ctx, animalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*health.HealthRecord), args.Error(1)
}

func (m *MockHealthRecordRepository) CountScheduledAfter(ctx context.Context, after time.Time) (int64, error) {
	args := m.Called(ctx, after)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockHealthRecordRepository) Save(ctx context.Context, record *health.HealthRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockHealthRecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockFinancialRecordRepository struct {
	mock.Mock
}

func (m *MockFinancialRecordRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.FinancialRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.FinancialRecord), args.Error(1)
}

func (m *MockFinancialRecordRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*finance.FinancialRecord, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*finance.FinancialRecord), args.Get(1).(int64), args.Error(2)
}

func (m *MockFinancialRecordRepository) Summarize(ctx context.Context, filter shared.Filter) (*finance.Summary, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Summary), args.Error(1)
}

func (m *MockFinancialRecordRepository) SummarizePeriod(ctx context.Context, from, to time.Time) (*finance.Summary, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Summary), args.Error(1)
}

func (m *MockFinancialRecordRepository) Save(ctx context.Context, record *finance.FinancialRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockFinancialRecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockReproductionEventRepository struct {
	mock.Mock
}

func (m *MockReproductionEventRepository) FindByID(ctx context.Context, id uuid.UUID) (*breeding.ReproductionEvent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*breeding.ReproductionEvent), args.Error(1)
}

func (m *MockReproductionEventRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*breeding.ReproductionEvent, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*breeding.ReproductionEvent), args.Get(1).(int64), args.Error(2)
}

func (m *MockReproductionEventRepository) Summarize(ctx context.Context, filter shared.Filter) (*breeding.Summary, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*breeding.Summary), args.Error(1)
}

func (m *MockReproductionEventRepository) Save(ctx context.Context, event *breeding.ReproductionEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockReproductionEventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestDashboardService_Summary(t *testing.T) {
	animalRepo := new(MockAnimalRepository)
	healthRepo := new(MockHealthRecordRepository)
	recordRepo := new(MockFinancialRecordRepository)
	eventRepo := new(MockReproductionEventRepository)
	service := NewDashboardService(animalRepo, healthRepo, recordRepo, eventRepo)

	animalRepo.On("Count", mock.Anything).Return(int64(42), nil)
	animalRepo.On("CountActive", mock.Anything).Return(int64(40), nil)
	animalRepo.On("CountByStatus", mock.Anything, herd.AnimalStatusHealthy).Return(int64(35), nil)
	animalRepo.On("CountByStatus", mock.Anything, herd.AnimalStatusInTreatment).Return(int64(3), nil)
	animalRepo.On("CountByStatus", mock.Anything, herd.AnimalStatusPregnant).Return(int64(4), nil)
	animalRepo.On("CountByStatus", mock.Anything, herd.AnimalStatusQuarantined).Return(int64(0), nil)
	healthRepo.On("CountScheduledAfter", mock.Anything, mock.AnythingOfType("time.Time")).Return(int64(5), nil)
	recordRepo.On("SummarizePeriod", mock.Anything,
		mock.MatchedBy(func(from time.Time) bool { return from.Day() == 1 }),
		mock.AnythingOfType("time.Time")).Return(&finance.Summary{
		Income:  decimal.NewFromInt(10000),
		Expense: decimal.NewFromInt(4000),
		Balance: decimal.NewFromInt(6000),
	}, nil)
	eventRepo.On("Summarize", mock.Anything, mock.Anything).Return(&breeding.Summary{
		Matings:    7,
		Gestations: 4,
		Births:     2,
		CalvesBorn: 3,
	}, nil)

	summary, err := service.Summary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(42), summary.Herd.Total)
	assert.Equal(t, int64(40), summary.Herd.Active)
	assert.Equal(t, int64(35), summary.Herd.Healthy)
	assert.Equal(t, int64(5), summary.PendingHealthTasks)
	assert.True(t, summary.FinanceMonth.Balance.Equal(decimal.NewFromInt(6000)))
	assert.Equal(t, int64(3), summary.Breeding.CalvesBorn)
	assert.False(t, summary.GeneratedAt.IsZero())
}

func TestDashboardService_Summary_PropagatesErrors(t *testing.T) {
	animalRepo := new(MockAnimalRepository)
	healthRepo := new(MockHealthRecordRepository)
	recordRepo := new(MockFinancialRecordRepository)
	eventRepo := new(MockReproductionEventRepository)
	service := NewDashboardService(animalRepo, healthRepo, recordRepo, eventRepo)

	animalRepo.On("Count", mock.Anything).Return(int64(0), assert.AnError)

	_, err := service.Summary(context.Background())
	assert.Error(t, err)
}
