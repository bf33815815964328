package database

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/student-showcase/portfolio-backend/errs"
	"github.com/student-showcase/portfolio-backend/models"
)

// RelationshipManager keeps the project join tables consistent. It operates on
// explicit join rows rather than on two objects holding references to each
// other, so there is a single owner for every pair.
type RelationshipManager struct {
	db *gorm.DB
}

func NewRelationshipManager(db *gorm.DB) *RelationshipManager {
	return &RelationshipManager{db}
}

// AttachStudent links a student to a project. Attaching an already-linked
// student is a no-op; the join pair's composite key absorbs the conflict, so
// a concurrent retry never produces a duplicate row.
func (m *RelationshipManager) AttachStudent(projectID, studentID uint) error {
	return m.db.Transaction(func(tx *gorm.DB) error {
		if err := m.requireExists(tx, &models.Project{}, "project", projectID); err != nil {
			return err
		}
		if err := m.requireExists(tx, &models.Student{}, "student", studentID); err != nil {
			return err
		}

		err := tx.Table("project_students").
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(map[string]any{"project_id": projectID, "student_id": studentID}).Error
		if err != nil {
			return err
		}
		return m.touchProject(tx, projectID)
	})
}

// DetachStudent unlinks a student from a project. Removing an absent relation
// is a no-op, not an error.
func (m *RelationshipManager) DetachStudent(projectID, studentID uint) error {
	return m.db.Transaction(func(tx *gorm.DB) error {
		if err := m.requireExists(tx, &models.Project{}, "project", projectID); err != nil {
			return err
		}

		result := tx.Exec("DELETE FROM project_students WHERE project_id = ? AND student_id = ?",
			projectID, studentID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		return m.touchProject(tx, projectID)
	})
}

// AttachTechnology links a technology to a project, idempotently.
func (m *RelationshipManager) AttachTechnology(projectID, technologyID uint) error {
	return m.db.Transaction(func(tx *gorm.DB) error {
		if err := m.requireExists(tx, &models.Project{}, "project", projectID); err != nil {
			return err
		}
		if err := m.requireExists(tx, &models.Technology{}, "technology", technologyID); err != nil {
			return err
		}

		err := tx.Table("project_technologies").
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(map[string]any{"project_id": projectID, "technology_id": technologyID}).Error
		if err != nil {
			return err
		}
		return m.touchProject(tx, projectID)
	})
}

// DetachTechnology unlinks a technology from a project; absent relation is a no-op.
func (m *RelationshipManager) DetachTechnology(projectID, technologyID uint) error {
	return m.db.Transaction(func(tx *gorm.DB) error {
		if err := m.requireExists(tx, &models.Project{}, "project", projectID); err != nil {
			return err
		}

		result := tx.Exec("DELETE FROM project_technologies WHERE project_id = ? AND technology_id = ?",
			projectID, technologyID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		return m.touchProject(tx, projectID)
	})
}

// requireExists fails with NotFound naming the missing id when the referenced
// record is absent; a relation can only attach existing records.
func (m *RelationshipManager) requireExists(tx *gorm.DB, model any, entity string, id uint) error {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewNotFound(fmt.Sprintf("%s %d", entity, id))
	}
	return nil
}

// touchProject refreshes the owning project's updatedAt alongside the join
// write so both land in the same transaction.
func (m *RelationshipManager) touchProject(tx *gorm.DB, projectID uint) error {
	var project models.Project
	if err := tx.First(&project, projectID).Error; err != nil {
		return err
	}
	project.TouchOnUpdate()
	return tx.Model(&models.Project{}).
		Where("id = ?", projectID).
		UpdateColumn("updated_at", project.UpdatedAt).Error
}
