package models

import (
	"time"

	"github.com/gadogest/backend/internal/domain/identity"
)

// UserModel is the persistence model for the User domain entity.
type UserModel struct {
	BaseModel
	Name         string        `gorm:"type:varchar(50);not null"`
	Email        string        `gorm:"type:varchar(200);not null;uniqueIndex"`
	PasswordHash string        `gorm:"type:varchar(100);not null"`
	Farm         string        `gorm:"type:varchar(100);not null"`
	Role         identity.Role `gorm:"type:varchar(20);not null;default:'Funcionário'"`
	Active       bool          `gorm:"not null;default:true"`
	LastAccess   *time.Time
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User entity.
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseEntity:   m.BaseModel.ToDomain(),
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Farm:         m.Farm,
		Role:         m.Role,
		Active:       m.Active,
		LastAccess:   m.LastAccess,
	}
}

// FromDomain populates the persistence model from a domain User entity.
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainBaseEntity(u.BaseEntity)
	m.Name = u.Name
	m.Email = u.Email
	m.PasswordHash = u.PasswordHash
	m.Farm = u.Farm
	m.Role = u.Role
	m.Active = u.Active
	m.LastAccess = u.LastAccess
}

// UserModelFromDomain creates a new persistence model from a domain User entity.
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{}
	m.FromDomain(u)
	return m
}
