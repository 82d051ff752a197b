package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/gadogest/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Role represents the user's role on the farm
type Role string

const (
	RoleAdministrator Role = "Administrador"
	RoleManager       Role = "Gerente"
	RoleEmployee      Role = "Funcionário"
)

// Roles lists all valid roles
var Roles = []Role{
	RoleAdministrator,
	RoleManager,
	RoleEmployee,
}

const (
	maxNameLength     = 50
	minPasswordLength = 6
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// User represents an account able to authenticate against the system
type User struct {
	shared.BaseEntity
	Name         string
	Email        string
	PasswordHash string
	Farm         string
	Role         Role
	Active       bool
	LastAccess   *time.Time
}

// NewUser creates a user with a bcrypt-hashed password
func NewUser(name, email, password, farm string) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Por favor, informe o nome")
	}
	if len(name) > maxNameLength {
		return nil, shared.NewDomainError("INVALID_NAME", "Nome não pode ter mais de 50 caracteres")
	}
	email, err := NormalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(farm) == "" {
		return nil, shared.NewDomainError("INVALID_FARM", "Por favor, informe o nome da fazenda")
	}

	user := &User{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Email:      email,
		Farm:       strings.TrimSpace(farm),
		Role:       RoleEmployee,
		Active:     true,
	}
	if err := user.SetPassword(password); err != nil {
		return nil, err
	}
	return user, nil
}

// SetPassword hashes and stores a new password
func (u *User) SetPassword(password string) error {
	if len(password) < minPasswordLength {
		return shared.NewDomainError("INVALID_PASSWORD", "A senha deve ter pelo menos 6 caracteres")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_FAILED", "Não foi possível processar a senha")
	}
	u.PasswordHash = string(hash)
	u.Touch()
	return nil
}

// VerifyPassword checks a plaintext password against the stored hash
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// ChangeEmail updates the user's email after normalization.
// Uniqueness against other users is checked by the application layer.
func (u *User) ChangeEmail(email string) error {
	normalized, err := NormalizeEmail(email)
	if err != nil {
		return err
	}
	u.Email = normalized
	u.Touch()
	return nil
}

// ChangeName updates the user's display name
func (u *User) ChangeName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Por favor, informe o nome")
	}
	if len(name) > maxNameLength {
		return shared.NewDomainError("INVALID_NAME", "Nome não pode ter mais de 50 caracteres")
	}
	u.Name = name
	u.Touch()
	return nil
}

// ChangeRole assigns a new role to the user
func (u *User) ChangeRole(role Role) error {
	if err := ValidateRole(role); err != nil {
		return err
	}
	u.Role = role
	u.Touch()
	return nil
}

// RecordAccess stamps the user's last successful login
func (u *User) RecordAccess(at time.Time) {
	u.LastAccess = &at
	u.Touch()
}

// Activate marks the user as active
func (u *User) Activate() {
	u.Active = true
	u.Touch()
}

// Deactivate marks the user as inactive, blocking future logins
func (u *User) Deactivate() {
	u.Active = false
	u.Touch()
}

// NormalizeEmail lowercases and validates an email address
func NormalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", shared.NewDomainError("INVALID_EMAIL", "Por favor, informe o email")
	}
	if !emailPattern.MatchString(email) {
		return "", shared.NewDomainError("INVALID_EMAIL", "Email inválido")
	}
	return email, nil
}

// ValidateRole checks that the role is one of the known values
func ValidateRole(role Role) error {
	for _, r := range Roles {
		if r == role {
			return nil
		}
	}
	return shared.NewDomainError("INVALID_ROLE", "Cargo inválido")
}
