package database

import (
	"gorm.io/gorm"

	"github.com/student-showcase/portfolio-backend/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

func (r *ProjectRepo) withRelations() *gorm.DB {
	return r.db.Preload("Students").Preload("Technologies")
}

// FindAll returns all projects with their students and technologies
func (r *ProjectRepo) FindAll() ([]*models.Project, error) {
	var projects []*models.Project
	err := r.withRelations().Order("created_at DESC").Find(&projects).Error
	return projects, err
}

// FindPage returns one page of projects plus the total count
func (r *ProjectRepo) FindPage(page, perPage int) ([]*models.Project, int64, error) {
	var total int64
	if err := r.db.Model(&models.Project{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var projects []*models.Project
	err := r.withRelations().
		Order("created_at DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&projects).Error
	return projects, total, err
}

// FindPageByStatus returns one page of projects with the given status
func (r *ProjectRepo) FindPageByStatus(status string, page, perPage int) ([]*models.Project, int64, error) {
	var total int64
	if err := r.db.Model(&models.Project{}).Where("status = ?", status).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var projects []*models.Project
	err := r.withRelations().
		Where("status = ?", status).
		Order("created_at DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&projects).Error
	return projects, total, err
}

// FindByID returns a project by its ID with relations loaded
func (r *ProjectRepo) FindByID(id uint) (*models.Project, error) {
	var project models.Project
	err := r.withRelations().First(&project, id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindByStatus returns projects with an exact status match, newest first
func (r *ProjectRepo) FindByStatus(status string) ([]*models.Project, error) {
	var projects []*models.Project
	err := r.withRelations().
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

// FindRecent returns the most recently created projects
func (r *ProjectRepo) FindRecent(limit int) ([]*models.Project, error) {
	var projects []*models.Project
	err := r.withRelations().
		Order("created_at DESC").
		Limit(limit).
		Find(&projects).Error
	return projects, err
}

// Search matches the term case-insensitively against title and descriptions
func (r *ProjectRepo) Search(term string) ([]*models.Project, error) {
	pattern := "%" + term + "%"
	var projects []*models.Project
	err := r.withRelations().
		Where("LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?) OR LOWER(short_description) LIKE LOWER(?)",
			pattern, pattern, pattern).
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

// CountByStatus maps each status present in storage to its project count
func (r *ProjectRepo) CountByStatus() (map[string]int64, error) {
	return countGroupedByStatus(r.db, &models.Project{})
}

// Add inserts a new project, stamping its lifecycle timestamps
func (r *ProjectRepo) Add(project *models.Project) error {
	project.TouchOnCreate()
	return r.db.Omit("Students", "Technologies").Create(project).Error
}

// Update persists changes to an existing project and refreshes updatedAt.
// Relationship rows are owned by the RelationshipManager, never written here.
func (r *ProjectRepo) Update(project *models.Project) error {
	project.TouchOnUpdate()
	return r.db.Omit("Students", "Technologies").Save(project).Error
}

// Delete removes a project; join rows go with it (cascade on delete)
func (r *ProjectRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM project_students WHERE project_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM project_technologies WHERE project_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, id).Error
	})
}

// IncrementViews bumps the view counter atomically. This is the only write
// path that ever changes views.
func (r *ProjectRepo) IncrementViews(id uint) error {
	result := r.db.Model(&models.Project{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
