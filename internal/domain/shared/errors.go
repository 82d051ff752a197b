package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound           = NewDomainError("NOT_FOUND", "Registro não encontrado")
	ErrAlreadyExists      = NewDomainError("ALREADY_EXISTS", "Registro já existe")
	ErrInvalidInput       = NewDomainError("INVALID_INPUT", "Dados inválidos")
	ErrInvalidCredentials = NewDomainError("INVALID_CREDENTIALS", "Credenciais inválidas")
	ErrUnauthorized       = NewDomainError("UNAUTHORIZED", "Não autorizado")
	ErrForbidden          = NewDomainError("FORBIDDEN", "Acesso negado")
)
