package repositories

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/bookmart/app/models"
	"github.com/shashiranjanraj/bookmart/pkg/dberr"
	"github.com/shashiranjanraj/bookmart/pkg/validate"
)

// NotificationRepository handles database operations for Notification.
type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create persists a notification addressed to one user.
func (r *NotificationRepository) Create(n *models.Notification) error {
	if errs := validate.Struct(n); validate.HasErrors(errs) {
		return validationError(errs)
	}
	return dberr.Translate(r.db.Create(n).Error)
}

// ByUser returns a user's notifications, newest first.
func (r *NotificationRepository) ByUser(userID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.Where("user_id = ?", userID).Order("id DESC").Find(&notifications).Error
	return notifications, dberr.Translate(err)
}

// UnreadCount returns how many notifications the user has not read yet.
func (r *NotificationRepository) UnreadCount(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, dberr.Translate(err)
}

// MarkRead flags one notification as read.
func (r *NotificationRepository) MarkRead(id uint) error {
	result := r.db.Model(&models.Notification{}).Where("id = ?", id).Update("is_read", true)
	if result.Error != nil {
		return dberr.Translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// MarkAllRead flags every unread notification of the user as read.
func (r *NotificationRepository) MarkAllRead(userID uint) error {
	return dberr.Translate(
		r.db.Model(&models.Notification{}).
			Where("user_id = ? AND is_read = ?", userID, false).
			Update("is_read", true).Error)
}

// Delete removes one notification.
func (r *NotificationRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Notification{}, id)
	if result.Error != nil {
		return dberr.Translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
