package models

// Technology represents a technology referenced by showcased projects
type Technology struct {
	ID       uint   `json:"id" db:"id" gorm:"primaryKey"`
	Name     string `json:"name" db:"name" gorm:"type:varchar(100);not null" validate:"required,max=100"`
	Category string `json:"category" db:"category" gorm:"type:varchar(50);not null" validate:"required,max=50"`
	Icon     string `json:"icon,omitempty" db:"icon" gorm:"type:varchar(255)"`

	// Inverse side; ownership of the join table is on Project.
	Projects []Project `json:"projects,omitempty" gorm:"many2many:project_technologies"`

	Timestamps `gorm:"embedded"`
}
