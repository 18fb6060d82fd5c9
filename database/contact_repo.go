package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/danupratama/portfolio-backend/models"
)

type ContactRepo struct {
	db *gorm.DB
}

func NewContactRepo(db *gorm.DB) *ContactRepo {
	return &ContactRepo{db}
}

// FindAll returns all contact messages, newest first.
func (r *ContactRepo) FindAll() ([]*models.Contact, error) {
	var contacts []*models.Contact
	err := r.db.Order("created_at DESC").Find(&contacts).Error
	return contacts, err
}

// FindByID returns a contact message by ID, or nil if no such message exists.
func (r *ContactRepo) FindByID(id uint) (*models.Contact, error) {
	var contact models.Contact
	err := r.db.First(&contact, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// Add inserts a new contact message into the database
func (r *ContactRepo) Add(contact *models.Contact) error {
	return r.db.Create(contact).Error
}

// MarkRead marks a message as read. Marking an already-read message is a
// no-op.
func (r *ContactRepo) MarkRead(id uint) error {
	return r.db.Model(&models.Contact{}).
		Where("id = ?", id).
		UpdateColumn("read", true).Error
}

// FindRecentUnread returns the newest unread messages, capped at limit.
func (r *ContactRepo) FindRecentUnread(limit int) ([]*models.Contact, error) {
	var contacts []*models.Contact
	err := r.db.
		Where("read = ?", false).
		Order("created_at DESC").
		Limit(limit).
		Find(&contacts).Error
	return contacts, err
}
