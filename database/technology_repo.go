package database

import (
	"gorm.io/gorm"

	"github.com/student-showcase/portfolio-backend/models"
)

type TechnologyRepo struct {
	db *gorm.DB
}

func NewTechnologyRepo(db *gorm.DB) *TechnologyRepo {
	return &TechnologyRepo{db}
}

// FindAll returns all technologies ordered by name
func (r *TechnologyRepo) FindAll() ([]*models.Technology, error) {
	var technologies []*models.Technology
	err := r.db.Order("name ASC").Find(&technologies).Error
	return technologies, err
}

// FindPage returns one page of technologies plus the total count
func (r *TechnologyRepo) FindPage(page, perPage int) ([]*models.Technology, int64, error) {
	var total int64
	if err := r.db.Model(&models.Technology{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var technologies []*models.Technology
	err := r.db.Order("name ASC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&technologies).Error
	return technologies, total, err
}

// FindByID returns a technology by its ID
func (r *TechnologyRepo) FindByID(id uint) (*models.Technology, error) {
	var technology models.Technology
	err := r.db.First(&technology, id).Error
	if err != nil {
		return nil, err
	}
	return &technology, nil
}

// FindByCategory returns technologies in a category ordered by name
func (r *TechnologyRepo) FindByCategory(category string) ([]*models.Technology, error) {
	var technologies []*models.Technology
	err := r.db.
		Where("category = ?", category).
		Order("name ASC").
		Find(&technologies).Error
	return technologies, err
}

// SearchByName matches the term case-insensitively against the name
func (r *TechnologyRepo) SearchByName(term string) ([]*models.Technology, error) {
	var technologies []*models.Technology
	err := r.db.
		Where("LOWER(name) LIKE LOWER(?)", "%"+term+"%").
		Order("name ASC").
		Find(&technologies).Error
	return technologies, err
}

// Categories returns the distinct categories in use, sorted
func (r *TechnologyRepo) Categories() ([]string, error) {
	var categories []string
	err := r.db.Model(&models.Technology{}).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error
	return categories, err
}

// Add inserts a new technology, stamping its lifecycle timestamps
func (r *TechnologyRepo) Add(technology *models.Technology) error {
	technology.TouchOnCreate()
	return r.db.Omit("Projects").Create(technology).Error
}

// Update persists changes to an existing technology and refreshes updatedAt
func (r *TechnologyRepo) Update(technology *models.Technology) error {
	technology.TouchOnUpdate()
	return r.db.Omit("Projects").Save(technology).Error
}

// Delete removes a technology along with its join rows
func (r *TechnologyRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM project_technologies WHERE technology_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Technology{}, id).Error
	})
}
