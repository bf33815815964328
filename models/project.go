package models

// Project status values
const (
	ProjectStatusDraft     = "draft"
	ProjectStatusPublished = "published"
	ProjectStatusHidden    = "hidden"
)

// Project represents a showcased student project with its metadata
type Project struct {
	ID               uint     `json:"id" db:"id" gorm:"primaryKey"`
	Title            string   `json:"title" db:"title" gorm:"type:varchar(255);not null" validate:"required,max=255"`
	Description      string   `json:"description,omitempty" db:"description" gorm:"type:text"`
	ShortDescription string   `json:"shortDescription,omitempty" db:"short_description" gorm:"type:varchar(500)" validate:"max=500"`
	Images           []string `json:"images,omitempty" db:"images" gorm:"type:text;serializer:json"`
	MainImage        string   `json:"mainImage,omitempty" db:"main_image" gorm:"type:varchar(255)"`
	Year             string   `json:"year" db:"year" gorm:"type:varchar(10);not null" validate:"required,len=1,number"`
	LiveURL          string   `json:"liveUrl,omitempty" db:"live_url" gorm:"type:varchar(255)" validate:"omitempty,url"`
	GithubURL        string   `json:"githubUrl,omitempty" db:"github_url" gorm:"type:varchar(255)" validate:"omitempty,url"`
	Status           string   `json:"status" db:"status" gorm:"type:varchar(20);not null" validate:"required,oneof=draft published hidden"`
	Views            uint     `json:"views" db:"views" gorm:"not null;default:0"`

	// Project owns both join tables; the inverse collections on Student and
	// Technology are kept consistent through them.
	Students     []Student    `json:"students,omitempty" gorm:"many2many:project_students;constraint:OnDelete:CASCADE"`
	Technologies []Technology `json:"technologies,omitempty" gorm:"many2many:project_technologies;constraint:OnDelete:CASCADE"`

	Timestamps `gorm:"embedded"`
}

func (p *Project) IsPublished() bool {
	return p.Status == ProjectStatusPublished
}
