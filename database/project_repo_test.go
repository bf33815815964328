package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/student-showcase/portfolio-backend/models"
)

func TestProjectFindPageByStatus(t *testing.T) {
	db := newTestDatabase(t)
	mustAddProject(t, db, "Campus Marketplace", models.ProjectStatusPublished)
	mustAddProject(t, db, "Exam Scheduler", models.ProjectStatusPublished)
	mustAddProject(t, db, "Lab Inventory", models.ProjectStatusDraft)
	mustAddProject(t, db, "Old Portfolio", models.ProjectStatusHidden)

	projects, total, err := db.ProjectRepo().FindPageByStatus(models.ProjectStatusPublished, 1, 30)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, projects, 2)
	for _, p := range projects {
		assert.Equal(t, models.ProjectStatusPublished, p.Status)
	}
}

func TestProjectFindPagePagination(t *testing.T) {
	db := newTestDatabase(t)
	for _, title := range []string{"One", "Two", "Three", "Four", "Five"} {
		mustAddProject(t, db, title, models.ProjectStatusPublished)
	}

	page1, total, err := db.ProjectRepo().FindPage(1, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Len(t, page1, 2)

	page3, total, err := db.ProjectRepo().FindPage(3, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Len(t, page3, 1)
}

func TestProjectSearchIsCaseInsensitive(t *testing.T) {
	db := newTestDatabase(t)
	mustAddProject(t, db, "Campus Marketplace", models.ProjectStatusPublished)
	scheduler := mustAddProject(t, db, "Exam Scheduler", models.ProjectStatusPublished)
	scheduler.Description = "Timetabling for the whole campus"
	require.NoError(t, db.ProjectRepo().Update(scheduler))

	found, err := db.ProjectRepo().Search("CAMPUS")
	require.NoError(t, err)
	assert.Len(t, found, 2)

	found, err = db.ProjectRepo().Search("marketplace")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Campus Marketplace", found[0].Title)

	found, err = db.ProjectRepo().Search("nonexistent")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestProjectCountByStatus(t *testing.T) {
	db := newTestDatabase(t)
	mustAddProject(t, db, "One", models.ProjectStatusPublished)
	mustAddProject(t, db, "Two", models.ProjectStatusPublished)
	mustAddProject(t, db, "Three", models.ProjectStatusDraft)

	counts, err := db.ProjectRepo().CountByStatus()
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{
		models.ProjectStatusPublished: 2,
		models.ProjectStatusDraft:     1,
	}, counts)
}

func TestProjectIncrementViews(t *testing.T) {
	db := newTestDatabase(t)
	project := mustAddProject(t, db, "Campus Marketplace", models.ProjectStatusPublished)

	require.NoError(t, db.ProjectRepo().IncrementViews(project.ID))
	require.NoError(t, db.ProjectRepo().IncrementViews(project.ID))

	loaded, err := db.ProjectRepo().FindByID(project.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, loaded.Views)
}

func TestProjectIncrementViewsUnknownID(t *testing.T) {
	db := newTestDatabase(t)
	err := db.ProjectRepo().IncrementViews(9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestProjectUpdateDoesNotRewriteRelations(t *testing.T) {
	db := newTestDatabase(t)
	project := mustAddProject(t, db, "Campus Marketplace", models.ProjectStatusDraft)
	student := mustAddStudent(t, db, "John Doe", "john.doe@example.edu")
	require.NoError(t, db.Relationships().AttachStudent(project.ID, student.ID))

	loaded, err := db.ProjectRepo().FindByID(project.ID)
	require.NoError(t, err)
	loaded.Status = models.ProjectStatusPublished
	require.NoError(t, db.ProjectRepo().Update(loaded))

	again, err := db.ProjectRepo().FindByID(project.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ProjectStatusPublished, again.Status)
	assert.Len(t, again.Students, 1)
}

func TestProjectFindRecent(t *testing.T) {
	db := newTestDatabase(t)
	for _, title := range []string{"One", "Two", "Three"} {
		mustAddProject(t, db, title, models.ProjectStatusPublished)
	}

	recent, err := db.ProjectRepo().FindRecent(2)
	require.NoError(t, err)
	assert.Len(t, recent, 2)
}
