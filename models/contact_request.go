package models

// ContactRequest status values
const (
	ContactStatusNew     = "new"
	ContactStatusRead    = "read"
	ContactStatusReplied = "replied"
	ContactStatusClosed  = "closed"
)

// ContactRequest represents an admissions inquiry submitted through the
// public contact form
type ContactRequest struct {
	ID                uint   `json:"id" db:"id" gorm:"primaryKey"`
	FirstName         string `json:"firstName" db:"first_name" gorm:"type:varchar(100);not null" validate:"required,min=2,max=100"`
	LastName          string `json:"lastName" db:"last_name" gorm:"type:varchar(100);not null" validate:"required,min=2,max=100"`
	Email             string `json:"email" db:"email" gorm:"type:varchar(180);not null" validate:"required,email,max=180"`
	Phone             string `json:"phone,omitempty" db:"phone" gorm:"type:varchar(20)" validate:"omitempty,phone"`
	Message           string `json:"message" db:"message" gorm:"type:text;not null" validate:"required,min=10,max=2000"`
	InterestedProgram string `json:"interestedProgram" db:"interested_program" gorm:"type:varchar(100);not null" validate:"required,max=100"`
	GdprConsent       bool   `json:"gdprConsent" db:"gdpr_consent" gorm:"not null" validate:"eq=true"`
	Status            string `json:"status" db:"status" gorm:"type:varchar(20);not null" validate:"required,oneof=new read replied closed"`
	AdminNotes        string `json:"adminNotes,omitempty" db:"admin_notes" gorm:"type:text"`

	Timestamps `gorm:"embedded"`
}

func (c *ContactRequest) FullName() string {
	return c.FirstName + " " + c.LastName
}
