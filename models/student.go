package models

// Student represents a student who can be attached to showcased projects
type Student struct {
	ID    uint   `json:"id" db:"id" gorm:"primaryKey"`
	Name  string `json:"name" db:"name" gorm:"type:varchar(255);not null" validate:"required,min=2,max=255"`
	Email string `json:"email" db:"email" gorm:"type:varchar(180);not null;uniqueIndex:uniq_student_email" validate:"required,email,max=180"`
	Year  string `json:"year" db:"year" gorm:"type:varchar(10);not null" validate:"required,len=1,number"`
	Bio   string `json:"bio,omitempty" db:"bio" gorm:"type:text" validate:"max=1000"`

	// Inverse side; ownership of the join table is on Project.
	Projects []Project `json:"projects,omitempty" gorm:"many2many:project_students"`

	Timestamps `gorm:"embedded"`
}
