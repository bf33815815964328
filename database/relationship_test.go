package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/student-showcase/portfolio-backend/errs"
	"github.com/student-showcase/portfolio-backend/models"
)

func countJoinRows(t *testing.T, db Database, table string, projectID uint) int64 {
	t.Helper()
	var count int64
	err := db.ProjectRepo().db.Table(table).Where("project_id = ?", projectID).Count(&count).Error
	require.NoError(t, err)
	return count
}

func TestAttachStudentIsIdempotent(t *testing.T) {
	db := newTestDatabase(t)
	project := mustAddProject(t, db, "Campus Marketplace", models.ProjectStatusPublished)
	student := mustAddStudent(t, db, "John Doe", "john.doe@example.edu")

	require.NoError(t, db.Relationships().AttachStudent(project.ID, student.ID))
	require.NoError(t, db.Relationships().AttachStudent(project.ID, student.ID))

	assert.EqualValues(t, 1, countJoinRows(t, db, "project_students", project.ID))

	loaded, err := db.ProjectRepo().FindByID(project.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Students, 1)
	assert.Equal(t, "John Doe", loaded.Students[0].Name)
}

func TestAttachStudentUnknownTargets(t *testing.T) {
	db := newTestDatabase(t)
	project := mustAddProject(t, db, "Campus Marketplace", models.ProjectStatusPublished)
	student := mustAddStudent(t, db, "John Doe", "john.doe@example.edu")

	err := db.Relationships().AttachStudent(9999, student.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrNotFound)
	assert.Contains(t, err.Error(), "project 9999")

	err = db.Relationships().AttachStudent(project.ID, 9999)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrNotFound)
	assert.Contains(t, err.Error(), "student 9999")

	assert.EqualValues(t, 0, countJoinRows(t, db, "project_students", project.ID))
}

func TestDetachStudentAbsentIsNoOp(t *testing.T) {
	db := newTestDatabase(t)
	project := mustAddProject(t, db, "Campus Marketplace", models.ProjectStatusPublished)
	student := mustAddStudent(t, db, "John Doe", "john.doe@example.edu")

	require.NoError(t, db.Relationships().DetachStudent(project.ID, student.ID))
	assert.ErrorIs(t, db.Relationships().DetachStudent(9999, student.ID), errs.ErrNotFound)
}

func TestDetachThenReattachStudent(t *testing.T) {
	db := newTestDatabase(t)
	project := mustAddProject(t, db, "Campus Marketplace", models.ProjectStatusPublished)
	student := mustAddStudent(t, db, "John Doe", "john.doe@example.edu")

	require.NoError(t, db.Relationships().AttachStudent(project.ID, student.ID))
	require.NoError(t, db.Relationships().DetachStudent(project.ID, student.ID))
	assert.EqualValues(t, 0, countJoinRows(t, db, "project_students", project.ID))

	require.NoError(t, db.Relationships().AttachStudent(project.ID, student.ID))
	assert.EqualValues(t, 1, countJoinRows(t, db, "project_students", project.ID))
}

func TestAttachTechnologyIsIdempotent(t *testing.T) {
	db := newTestDatabase(t)
	project := mustAddProject(t, db, "Campus Marketplace", models.ProjectStatusPublished)
	technology := mustAddTechnology(t, db, "Go", "Backend")

	require.NoError(t, db.Relationships().AttachTechnology(project.ID, technology.ID))
	require.NoError(t, db.Relationships().AttachTechnology(project.ID, technology.ID))
	assert.EqualValues(t, 1, countJoinRows(t, db, "project_technologies", project.ID))

	require.NoError(t, db.Relationships().DetachTechnology(project.ID, technology.ID))
	assert.EqualValues(t, 0, countJoinRows(t, db, "project_technologies", project.ID))
}

func TestAttachTouchesProjectUpdatedAt(t *testing.T) {
	db := newTestDatabase(t)
	project := mustAddProject(t, db, "Campus Marketplace", models.ProjectStatusPublished)
	student := mustAddStudent(t, db, "John Doe", "john.doe@example.edu")

	before := project.UpdatedAt
	time.Sleep(2 * time.Millisecond)
	require.NoError(t, db.Relationships().AttachStudent(project.ID, student.ID))

	loaded, err := db.ProjectRepo().FindByID(project.ID)
	require.NoError(t, err)
	assert.True(t, loaded.UpdatedAt.After(before))
}

func TestDeleteProjectRemovesJoinRows(t *testing.T) {
	db := newTestDatabase(t)
	project := mustAddProject(t, db, "Campus Marketplace", models.ProjectStatusPublished)
	student := mustAddStudent(t, db, "John Doe", "john.doe@example.edu")
	technology := mustAddTechnology(t, db, "Go", "Backend")

	require.NoError(t, db.Relationships().AttachStudent(project.ID, student.ID))
	require.NoError(t, db.Relationships().AttachTechnology(project.ID, technology.ID))

	require.NoError(t, db.ProjectRepo().Delete(project.ID))

	assert.EqualValues(t, 0, countJoinRows(t, db, "project_students", project.ID))
	assert.EqualValues(t, 0, countJoinRows(t, db, "project_technologies", project.ID))

	// The linked records themselves survive
	_, err := db.StudentRepo().FindByID(student.ID)
	assert.NoError(t, err)
	_, err = db.TechnologyRepo().FindByID(technology.ID)
	assert.NoError(t, err)
}
