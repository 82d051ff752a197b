package finance

import (
	"strings"
	"testing"
	"time"

	"github.com/gadogest/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFinancialRecord(t *testing.T) {
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		recordType  RecordType
		category    string
		description string
		amount      decimal.Decimal
		date        time.Time
		farm        string
		responsible string
		wantErr     bool
		errCode     string
	}{
		{
			name:        "valid income",
			recordType:  RecordTypeIncome,
			category:    "Venda de Gado",
			description: "Venda de 10 bezerros",
			amount:      decimal.NewFromInt(25000),
			date:        date,
			farm:        "Fazenda Boa Vista",
			responsible: "Carlos",
			wantErr:     false,
		},
		{
			name:        "unknown type",
			recordType:  RecordType("Investimento"),
			category:    "Venda de Gado",
			description: "Venda",
			amount:      decimal.NewFromInt(100),
			date:        date,
			farm:        "Fazenda Boa Vista",
			responsible: "Carlos",
			wantErr:     true,
			errCode:     "INVALID_TYPE",
		},
		{
			name:        "empty category",
			recordType:  RecordTypeExpense,
			category:    " ",
			description: "Compra de ração",
			amount:      decimal.NewFromInt(100),
			date:        date,
			farm:        "Fazenda Boa Vista",
			responsible: "Carlos",
			wantErr:     true,
			errCode:     "INVALID_CATEGORY",
		},
		{
			name:        "description too long",
			recordType:  RecordTypeExpense,
			category:    "Alimentação",
			description: strings.Repeat("x", 201),
			amount:      decimal.NewFromInt(100),
			date:        date,
			farm:        "Fazenda Boa Vista",
			responsible: "Carlos",
			wantErr:     true,
			errCode:     "INVALID_DESCRIPTION",
		},
		{
			name:        "negative amount",
			recordType:  RecordTypeExpense,
			category:    "Alimentação",
			description: "Compra de ração",
			amount:      decimal.NewFromInt(-100),
			date:        date,
			farm:        "Fazenda Boa Vista",
			responsible: "Carlos",
			wantErr:     true,
			errCode:     "INVALID_AMOUNT",
		},
		{
			name:        "zero date",
			recordType:  RecordTypeExpense,
			category:    "Alimentação",
			description: "Compra de ração",
			amount:      decimal.NewFromInt(100),
			date:        time.Time{},
			farm:        "Fazenda Boa Vista",
			responsible: "Carlos",
			wantErr:     true,
			errCode:     "INVALID_DATE",
		},
		{
			name:        "empty responsible",
			recordType:  RecordTypeExpense,
			category:    "Alimentação",
			description: "Compra de ração",
			amount:      decimal.NewFromInt(100),
			date:        date,
			farm:        "Fazenda Boa Vista",
			responsible: "",
			wantErr:     true,
			errCode:     "INVALID_RESPONSIBLE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := NewFinancialRecord(tt.recordType, tt.category, tt.description, tt.amount, tt.date, tt.farm, tt.responsible)
			if tt.wantErr {
				require.Error(t, err)
				var domainErr *shared.DomainError
				require.ErrorAs(t, err, &domainErr)
				assert.Equal(t, tt.errCode, domainErr.Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, PaymentMethodCash, record.PaymentMethod)
			assert.Equal(t, RecordStatusPaid, record.Status)
		})
	}
}

func TestFinancialRecord_SetPaymentMethod(t *testing.T) {
	record := newTestRecord(t)

	require.NoError(t, record.SetPaymentMethod(PaymentMethodTransfer))
	assert.Equal(t, PaymentMethodTransfer, record.PaymentMethod)

	require.Error(t, record.SetPaymentMethod(PaymentMethod("Pix")))
	assert.Equal(t, PaymentMethodTransfer, record.PaymentMethod)
}

func TestFinancialRecord_ChangeStatus(t *testing.T) {
	record := newTestRecord(t)

	require.NoError(t, record.ChangeStatus(RecordStatusPending))
	assert.Equal(t, RecordStatusPending, record.Status)

	require.Error(t, record.ChangeStatus(RecordStatus("Atrasado")))
}

func TestFinancialRecord_LinkAnimal(t *testing.T) {
	record := newTestRecord(t)
	animalID := uuid.New()

	record.LinkAnimal(animalID)
	require.NotNil(t, record.AnimalID)
	assert.Equal(t, animalID, *record.AnimalID)
}

func newTestRecord(t *testing.T) *FinancialRecord {
	t.Helper()
	record, err := NewFinancialRecord(RecordTypeIncome, "Venda de Gado", "Venda", decimal.NewFromInt(1000), time.Now(), "Fazenda Boa Vista", "Carlos")
	require.NoError(t, err)
	return record
}
