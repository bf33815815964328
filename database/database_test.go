package database

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/student-showcase/portfolio-backend/models"
)

// newTestDatabase opens a fresh in-memory database with the full schema
// applied. Each test gets its own instance.
func newTestDatabase(t *testing.T) Database {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every session on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db))

	return New(db)
}

func mustAddProject(t *testing.T, db Database, title, status string) *models.Project {
	t.Helper()
	project := &models.Project{Title: title, Year: "3", Status: status}
	require.NoError(t, db.ProjectRepo().Add(project))
	return project
}

func mustAddStudent(t *testing.T, db Database, name, email string) *models.Student {
	t.Helper()
	student := &models.Student{Name: name, Email: email, Year: "3"}
	require.NoError(t, db.StudentRepo().Add(student))
	return student
}

func mustAddTechnology(t *testing.T, db Database, name, category string) *models.Technology {
	t.Helper()
	technology := &models.Technology{Name: name, Category: category}
	require.NoError(t, db.TechnologyRepo().Add(technology))
	return technology
}

func mustAddContactRequest(t *testing.T, db Database, firstName, lastName, status string) *models.ContactRequest {
	t.Helper()
	request := &models.ContactRequest{
		FirstName:         firstName,
		LastName:          lastName,
		Email:             firstName + "." + lastName + "@example.com",
		Message:           "I would like to learn more about the program.",
		InterestedProgram: "Computer Science",
		GdprConsent:       true,
		Status:            status,
	}
	require.NoError(t, db.ContactRequestRepo().Add(request))
	return request
}
