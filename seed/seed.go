// Package seed bootstraps accounts and demo content. It replaces the
// console commands the admin frontend relied on: admin creation and
// test-data seeding.
package seed

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/student-showcase/portfolio-backend/auth"
	"github.com/student-showcase/portfolio-backend/database"
	"github.com/student-showcase/portfolio-backend/models"
)

// EnsureAdmin creates the admin account if no account with the given email
// exists yet. Re-running against an existing account is a no-op.
func EnsureAdmin(db database.Database, email, password, firstName, lastName string) error {
	if email == "" || password == "" {
		return fmt.Errorf("admin email and password are required")
	}

	_, err := db.UserRepo().FindByEmail(email)
	if err == nil {
		log.Info().Str("email", email).Msg("admin account already exists, skipping")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := models.User{
		Email:     email,
		Password:  hashed,
		FirstName: firstName,
		LastName:  lastName,
		Roles:     []string{models.RoleAdmin, models.RoleUser},
		IsActive:  true,
	}

	if err := db.UserRepo().Add(&admin); err != nil {
		return fmt.Errorf("create admin account: %w", err)
	}

	log.Info().Str("email", email).Msg("admin account created")
	return nil
}

// TestData populates technologies, students and projects with demo content
// and links them through the relationship manager.
func TestData(db database.Database) error {
	technologies, err := seedTechnologies(db)
	if err != nil {
		return err
	}

	students, err := seedStudents(db)
	if err != nil {
		return err
	}

	return seedProjects(db, technologies, students)
}

func seedTechnologies(db database.Database) ([]*models.Technology, error) {
	data := []models.Technology{
		{Name: "React", Category: "Frontend", Icon: "react.svg"},
		{Name: "TypeScript", Category: "Frontend", Icon: "typescript.svg"},
		{Name: "Go", Category: "Backend", Icon: "go.svg"},
		{Name: "PostgreSQL", Category: "Database", Icon: "postgresql.svg"},
		{Name: "Docker", Category: "DevOps", Icon: "docker.svg"},
	}

	seeded := make([]*models.Technology, 0, len(data))
	for i := range data {
		technology := data[i]
		if err := db.TechnologyRepo().Add(&technology); err != nil {
			return nil, fmt.Errorf("seed technology %s: %w", technology.Name, err)
		}
		seeded = append(seeded, &technology)
		log.Info().Str("name", technology.Name).Msg("seeded technology")
	}
	return seeded, nil
}

func seedStudents(db database.Database) ([]*models.Student, error) {
	data := []models.Student{
		{Name: "John Doe", Email: "john.doe@example.edu", Year: "3", Bio: "Full-stack developer with a taste for clean APIs."},
		{Name: "Jane Roe", Email: "jane.roe@example.edu", Year: "2", Bio: "Frontend engineer and design systems enthusiast."},
		{Name: "Max Mustermann", Email: "max.mustermann@example.edu", Year: "4", Bio: "Backend and infrastructure."},
	}

	seeded := make([]*models.Student, 0, len(data))
	for i := range data {
		student := data[i]
		if err := db.StudentRepo().Add(&student); err != nil {
			return nil, fmt.Errorf("seed student %s: %w", student.Name, err)
		}
		seeded = append(seeded, &student)
		log.Info().Str("name", student.Name).Msg("seeded student")
	}
	return seeded, nil
}

func seedProjects(db database.Database, technologies []*models.Technology, students []*models.Student) error {
	data := []models.Project{
		{
			Title:            "Campus Marketplace",
			Description:      "A second-hand marketplace for students, with search and messaging.",
			ShortDescription: "Buy and sell within your campus.",
			Year:             "3",
			Status:           models.ProjectStatusPublished,
			GithubURL:        "https://github.com/example/campus-marketplace",
		},
		{
			Title:            "Exam Scheduler",
			Description:      "Timetabling tool that resolves exam conflicts across programs.",
			ShortDescription: "Conflict-free exam timetables.",
			Year:             "2",
			Status:           models.ProjectStatusPublished,
			LiveURL:          "https://exams.example.edu",
		},
		{
			Title:            "Lab Inventory",
			Description:      "Tracks lab equipment loans and returns.",
			ShortDescription: "Know where the oscilloscopes went.",
			Year:             "4",
			Status:           models.ProjectStatusDraft,
		},
	}

	for i := range data {
		project := data[i]
		if err := db.ProjectRepo().Add(&project); err != nil {
			return fmt.Errorf("seed project %s: %w", project.Title, err)
		}

		// Spread students and technologies round-robin across projects
		student := students[i%len(students)]
		if err := db.Relationships().AttachStudent(project.ID, student.ID); err != nil {
			return fmt.Errorf("attach student to %s: %w", project.Title, err)
		}
		for j := 0; j < 2; j++ {
			technology := technologies[(i+j)%len(technologies)]
			if err := db.Relationships().AttachTechnology(project.ID, technology.ID); err != nil {
				return fmt.Errorf("attach technology to %s: %w", project.Title, err)
			}
		}
		log.Info().Str("title", project.Title).Msg("seeded project")
	}
	return nil
}
