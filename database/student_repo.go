package database

import (
	"gorm.io/gorm"

	"github.com/student-showcase/portfolio-backend/models"
)

type StudentRepo struct {
	db *gorm.DB
}

func NewStudentRepo(db *gorm.DB) *StudentRepo {
	return &StudentRepo{db}
}

// FindAll returns all students, newest first
func (r *StudentRepo) FindAll() ([]*models.Student, error) {
	var students []*models.Student
	err := r.db.Order("created_at DESC").Find(&students).Error
	return students, err
}

// FindPage returns one page of students plus the total count
func (r *StudentRepo) FindPage(page, perPage int) ([]*models.Student, int64, error) {
	var total int64
	if err := r.db.Model(&models.Student{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var students []*models.Student
	err := r.db.Order("created_at DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&students).Error
	return students, total, err
}

// FindByID returns a student by its ID with their projects loaded
func (r *StudentRepo) FindByID(id uint) (*models.Student, error) {
	var student models.Student
	err := r.db.Preload("Projects").First(&student, id).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// FindByEmail returns the student with the given email, or gorm.ErrRecordNotFound
func (r *StudentRepo) FindByEmail(email string) (*models.Student, error) {
	var student models.Student
	err := r.db.Where("email = ?", email).First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// Search matches the term case-insensitively against name and email
func (r *StudentRepo) Search(term string) ([]*models.Student, error) {
	pattern := "%" + term + "%"
	var students []*models.Student
	err := r.db.
		Where("LOWER(name) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?)", pattern, pattern).
		Order("created_at DESC").
		Find(&students).Error
	return students, err
}

// Add inserts a new student, stamping its lifecycle timestamps
func (r *StudentRepo) Add(student *models.Student) error {
	student.TouchOnCreate()
	return r.db.Omit("Projects").Create(student).Error
}

// Update persists changes to an existing student and refreshes updatedAt
func (r *StudentRepo) Update(student *models.Student) error {
	student.TouchOnUpdate()
	return r.db.Omit("Projects").Save(student).Error
}

// Delete removes a student along with its join rows
func (r *StudentRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM project_students WHERE student_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Student{}, id).Error
	})
}

// Count returns the number of stored students
func (r *StudentRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Student{}).Count(&count).Error
	return count, err
}
