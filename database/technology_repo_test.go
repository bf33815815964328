package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTechnologyFindAllOrderedByName(t *testing.T) {
	db := newTestDatabase(t)
	mustAddTechnology(t, db, "TypeScript", "Frontend")
	mustAddTechnology(t, db, "Go", "Backend")
	mustAddTechnology(t, db, "React", "Frontend")

	technologies, err := db.TechnologyRepo().FindAll()
	require.NoError(t, err)
	require.Len(t, technologies, 3)
	assert.Equal(t, "Go", technologies[0].Name)
	assert.Equal(t, "React", technologies[1].Name)
	assert.Equal(t, "TypeScript", technologies[2].Name)
}

func TestTechnologyFindByCategory(t *testing.T) {
	db := newTestDatabase(t)
	mustAddTechnology(t, db, "TypeScript", "Frontend")
	mustAddTechnology(t, db, "Go", "Backend")
	mustAddTechnology(t, db, "React", "Frontend")

	frontend, err := db.TechnologyRepo().FindByCategory("Frontend")
	require.NoError(t, err)
	assert.Len(t, frontend, 2)
}

func TestTechnologyCategories(t *testing.T) {
	db := newTestDatabase(t)
	mustAddTechnology(t, db, "TypeScript", "Frontend")
	mustAddTechnology(t, db, "Go", "Backend")
	mustAddTechnology(t, db, "React", "Frontend")

	categories, err := db.TechnologyRepo().Categories()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Frontend", "Backend"}, categories)
}

func TestTechnologySearchByName(t *testing.T) {
	db := newTestDatabase(t)
	mustAddTechnology(t, db, "TypeScript", "Frontend")
	mustAddTechnology(t, db, "JavaScript", "Frontend")
	mustAddTechnology(t, db, "Go", "Backend")

	found, err := db.TechnologyRepo().SearchByName("script")
	require.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestTechnologyDeleteCleansJoinRows(t *testing.T) {
	db := newTestDatabase(t)
	technology := mustAddTechnology(t, db, "Go", "Backend")
	project := mustAddProject(t, db, "Campus Marketplace", "published")
	require.NoError(t, db.Relationships().AttachTechnology(project.ID, technology.ID))

	require.NoError(t, db.TechnologyRepo().Delete(technology.ID))
	assert.EqualValues(t, 0, countJoinRows(t, db, "project_technologies", project.ID))
}
