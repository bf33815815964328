package database

import (
	"time"

	"gorm.io/gorm"

	"github.com/student-showcase/portfolio-backend/models"
)

type ContactRequestRepo struct {
	db *gorm.DB
}

func NewContactRequestRepo(db *gorm.DB) *ContactRequestRepo {
	return &ContactRequestRepo{db}
}

// FindAll returns all contact requests, newest first
func (r *ContactRequestRepo) FindAll() ([]*models.ContactRequest, error) {
	var requests []*models.ContactRequest
	err := r.db.Order("created_at DESC").Find(&requests).Error
	return requests, err
}

// FindPage returns one page of contact requests plus the total count
func (r *ContactRequestRepo) FindPage(page, perPage int) ([]*models.ContactRequest, int64, error) {
	var total int64
	if err := r.db.Model(&models.ContactRequest{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var requests []*models.ContactRequest
	err := r.db.Order("created_at DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&requests).Error
	return requests, total, err
}

// FindByID returns a contact request by its ID
func (r *ContactRequestRepo) FindByID(id uint) (*models.ContactRequest, error) {
	var request models.ContactRequest
	err := r.db.First(&request, id).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// FindByStatus returns contact requests with an exact status match, newest first
func (r *ContactRequestRepo) FindByStatus(status string) ([]*models.ContactRequest, error) {
	var requests []*models.ContactRequest
	err := r.db.
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

// FindRecent returns the most recently submitted contact requests
func (r *ContactRequestRepo) FindRecent(limit int) ([]*models.ContactRequest, error) {
	var requests []*models.ContactRequest
	err := r.db.Order("created_at DESC").Limit(limit).Find(&requests).Error
	return requests, err
}

// FindUnread returns requests still in the "new" status
func (r *ContactRequestRepo) FindUnread() ([]*models.ContactRequest, error) {
	return r.FindByStatus(models.ContactStatusNew)
}

// CountUnread returns the number of requests still in the "new" status
func (r *ContactRequestRepo) CountUnread() (int64, error) {
	var count int64
	err := r.db.Model(&models.ContactRequest{}).
		Where("status = ?", models.ContactStatusNew).
		Count(&count).Error
	return count, err
}

// CountByStatus maps each status present in storage to its request count
func (r *ContactRequestRepo) CountByStatus() (map[string]int64, error) {
	return countGroupedByStatus(r.db, &models.ContactRequest{})
}

// FindFromLastDays returns requests created at or after now minus the given days
func (r *ContactRequestRepo) FindFromLastDays(days int) ([]*models.ContactRequest, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -days)

	var requests []*models.ContactRequest
	err := r.db.
		Where("created_at >= ?", cutoff).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

// Search matches the term case-insensitively against names and email
func (r *ContactRequestRepo) Search(term string) ([]*models.ContactRequest, error) {
	pattern := "%" + term + "%"
	var requests []*models.ContactRequest
	err := r.db.
		Where("LOWER(first_name) LIKE LOWER(?) OR LOWER(last_name) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?)",
			pattern, pattern, pattern).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

// Add inserts a new contact request, stamping its lifecycle timestamps
func (r *ContactRequestRepo) Add(request *models.ContactRequest) error {
	request.TouchOnCreate()
	return r.db.Create(request).Error
}

// Update persists changes to an existing request and refreshes updatedAt
func (r *ContactRequestRepo) Update(request *models.ContactRequest) error {
	request.TouchOnUpdate()
	return r.db.Save(request).Error
}

// Delete removes a contact request from the database by id
func (r *ContactRequestRepo) Delete(id uint) error {
	return r.db.Delete(&models.ContactRequest{}, id).Error
}
