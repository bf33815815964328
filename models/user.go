package models

import "github.com/samber/lo"

const (
	RoleUser  = "ROLE_USER"
	RoleAdmin = "ROLE_ADMIN"
)

// User represents an account able to authenticate against the API
type User struct {
	ID        uint     `json:"id" db:"id" gorm:"primaryKey"`
	Email     string   `json:"email" db:"email" gorm:"type:varchar(180);not null;uniqueIndex:uniq_identifier_email" validate:"required,email,max=180"`
	Password  string   `json:"-" db:"password" gorm:"type:varchar(255);not null" validate:"required"`
	Roles     []string `json:"roles" db:"roles" gorm:"type:text;serializer:json"`
	FirstName string   `json:"firstName" db:"first_name" gorm:"type:varchar(100);not null" validate:"required,min=2,max=100"`
	LastName  string   `json:"lastName" db:"last_name" gorm:"type:varchar(100);not null" validate:"required,min=2,max=100"`
	IsActive  bool     `json:"isActive" db:"is_active" gorm:"not null"`

	Timestamps `gorm:"embedded"`
}

// GetRoles returns the stored roles with the base role guaranteed present.
func (u *User) GetRoles() []string {
	return lo.Uniq(append(u.Roles, RoleUser))
}

// IsAdmin reports whether the account carries the admin role.
func (u *User) IsAdmin() bool {
	return lo.Contains(u.Roles, RoleAdmin)
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
