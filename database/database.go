package database

import (
	"gorm.io/gorm"
)

type Database struct {
	userRepo           *UserRepo
	projectRepo        *ProjectRepo
	studentRepo        *StudentRepo
	technologyRepo     *TechnologyRepo
	contactRequestRepo *ContactRequestRepo
	relationships      *RelationshipManager
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		userRepo:           NewUserRepo(db),
		projectRepo:        NewProjectRepo(db),
		studentRepo:        NewStudentRepo(db),
		technologyRepo:     NewTechnologyRepo(db),
		contactRequestRepo: NewContactRequestRepo(db),
		relationships:      NewRelationshipManager(db),
	}
}

// Accessor methods for each repository

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) StudentRepo() *StudentRepo {
	return d.studentRepo
}

func (d Database) TechnologyRepo() *TechnologyRepo {
	return d.technologyRepo
}

func (d Database) ContactRequestRepo() *ContactRequestRepo {
	return d.contactRequestRepo
}

func (d Database) Relationships() *RelationshipManager {
	return d.relationships
}
