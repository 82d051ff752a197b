package finance

import (
	"strings"
	"time"

	"github.com/gadogest/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecordType classifies a financial record as income or expense
type RecordType string

const (
	RecordTypeIncome  RecordType = "Receita"
	RecordTypeExpense RecordType = "Despesa"
)

// PaymentMethod represents how a record was paid
type PaymentMethod string

const (
	PaymentMethodCash       PaymentMethod = "Dinheiro"
	PaymentMethodCreditCard PaymentMethod = "Cartão de Crédito"
	PaymentMethodDebitCard  PaymentMethod = "Cartão de Débito"
	PaymentMethodTransfer   PaymentMethod = "Transferência"
	PaymentMethodBankSlip   PaymentMethod = "Boleto"
	PaymentMethodCheck      PaymentMethod = "Cheque"
	PaymentMethodOther      PaymentMethod = "Outro"
)

// PaymentMethods lists all valid payment methods
var PaymentMethods = []PaymentMethod{
	PaymentMethodCash,
	PaymentMethodCreditCard,
	PaymentMethodDebitCard,
	PaymentMethodTransfer,
	PaymentMethodBankSlip,
	PaymentMethodCheck,
	PaymentMethodOther,
}

// RecordStatus represents the payment status
type RecordStatus string

const (
	RecordStatusPending   RecordStatus = "Pendente"
	RecordStatusPaid      RecordStatus = "Pago"
	RecordStatusCancelled RecordStatus = "Cancelado"
)

// RecordStatuses lists all valid record statuses
var RecordStatuses = []RecordStatus{
	RecordStatusPending,
	RecordStatusPaid,
	RecordStatusCancelled,
}

const (
	maxDescriptionLength = 200
	maxNotesLength       = 1000
)

// FinancialRecord represents a single income or expense entry
type FinancialRecord struct {
	shared.BaseEntity
	Type           RecordType
	Category       string
	Description    string
	Amount         decimal.Decimal
	Date           time.Time
	PaymentMethod  PaymentMethod
	Status         RecordStatus
	AnimalID       *uuid.UUID
	FiscalDocument string
	Attachment     string
	Farm           string
	Responsible    string
	Notes          string
}

// Summary aggregates income, expense and balance over a set of records
type Summary struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

// NewFinancialRecord creates a financial record with required fields
func NewFinancialRecord(recordType RecordType, category, description string, amount decimal.Decimal, date time.Time, farm, responsible string) (*FinancialRecord, error) {
	if err := ValidateRecordType(recordType); err != nil {
		return nil, err
	}
	if strings.TrimSpace(category) == "" {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Por favor, informe a categoria")
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Por favor, informe a descrição")
	}
	if len(description) > maxDescriptionLength {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Descrição não pode ter mais de 200 caracteres")
	}
	if amount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Valor não pode ser negativo")
	}
	if date.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Por favor, informe a data")
	}
	if strings.TrimSpace(farm) == "" {
		return nil, shared.NewDomainError("INVALID_FARM", "Por favor, informe a fazenda")
	}
	if strings.TrimSpace(responsible) == "" {
		return nil, shared.NewDomainError("INVALID_RESPONSIBLE", "Por favor, informe o responsável")
	}

	return &FinancialRecord{
		BaseEntity:    shared.NewBaseEntity(),
		Type:          recordType,
		Category:      strings.TrimSpace(category),
		Description:   description,
		Amount:        amount,
		Date:          date,
		PaymentMethod: PaymentMethodCash,
		Status:        RecordStatusPaid,
		Farm:          strings.TrimSpace(farm),
		Responsible:   strings.TrimSpace(responsible),
	}, nil
}

// SetPaymentMethod sets how the record was paid
func (r *FinancialRecord) SetPaymentMethod(method PaymentMethod) error {
	if err := ValidatePaymentMethod(method); err != nil {
		return err
	}
	r.PaymentMethod = method
	r.Touch()
	return nil
}

// ChangeStatus moves the record to a new payment status
func (r *FinancialRecord) ChangeStatus(status RecordStatus) error {
	if err := ValidateRecordStatus(status); err != nil {
		return err
	}
	r.Status = status
	r.Touch()
	return nil
}

// LinkAnimal associates the record with an animal
func (r *FinancialRecord) LinkAnimal(animalID uuid.UUID) {
	r.AnimalID = &animalID
	r.Touch()
}

// SetFiscalDocument sets the fiscal document reference
func (r *FinancialRecord) SetFiscalDocument(document string) {
	r.FiscalDocument = strings.TrimSpace(document)
	r.Touch()
}

// SetAttachment sets an attachment reference
func (r *FinancialRecord) SetAttachment(attachment string) {
	r.Attachment = strings.TrimSpace(attachment)
	r.Touch()
}

// SetNotes sets free-form notes
func (r *FinancialRecord) SetNotes(notes string) error {
	if len(notes) > maxNotesLength {
		return shared.NewDomainError("INVALID_NOTES", "Observações não podem ter mais de 1000 caracteres")
	}
	r.Notes = notes
	r.Touch()
	return nil
}

// ValidateRecordType checks that the type is income or expense
func ValidateRecordType(recordType RecordType) error {
	if recordType == RecordTypeIncome || recordType == RecordTypeExpense {
		return nil
	}
	return shared.NewDomainError("INVALID_TYPE", "Tipo de registro financeiro inválido")
}

// ValidatePaymentMethod checks that the method is one of the known values
func ValidatePaymentMethod(method PaymentMethod) error {
	for _, m := range PaymentMethods {
		if m == method {
			return nil
		}
	}
	return shared.NewDomainError("INVALID_PAYMENT_METHOD", "Forma de pagamento inválida")
}

// ValidateRecordStatus checks that the status is one of the known values
func ValidateRecordStatus(status RecordStatus) error {
	for _, s := range RecordStatuses {
		if s == status {
			return nil
		}
	}
	return shared.NewDomainError("INVALID_STATUS", "Status do registro financeiro inválido")
}
