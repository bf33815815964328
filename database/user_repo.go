package database

import (
	"gorm.io/gorm"

	"github.com/student-showcase/portfolio-backend/models"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db}
}

// FindAll returns all users from the database, newest first
func (r *UserRepo) FindAll() ([]*models.User, error) {
	var users []*models.User
	err := r.db.Order("created_at DESC").Find(&users).Error
	return users, err
}

// FindByID returns a user by its ID
func (r *UserRepo) FindByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail returns the user with the given email, or gorm.ErrRecordNotFound
func (r *UserRepo) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Add inserts a new user, stamping its lifecycle timestamps
func (r *UserRepo) Add(user *models.User) error {
	user.Roles = user.GetRoles()
	user.TouchOnCreate()
	return r.db.Create(user).Error
}

// Update persists changes to an existing user and refreshes updatedAt
func (r *UserRepo) Update(user *models.User) error {
	user.Roles = user.GetRoles()
	user.TouchOnUpdate()
	return r.db.Save(user).Error
}

// Delete removes a user from the database by id
func (r *UserRepo) Delete(id uint) error {
	return r.db.Delete(&models.User{}, id).Error
}

// Count returns the number of stored users
func (r *UserRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Count(&count).Error
	return count, err
}
