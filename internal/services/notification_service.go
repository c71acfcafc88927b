package services

import (
	"database/sql"

	"github.com/google/uuid"

	"github.com/viettrungIT3/inventory-admin/internal/models"
)

// NotificationServiceProvider defines the interface for notification services.
type NotificationServiceProvider interface {
	CreateNotification(ntype, level, message string) (models.Notification, error)
	GetRecentNotifications(limit int) ([]models.Notification, error)
}

// NotificationService records and serves the dashboard's notification feed.
type NotificationService struct {
	db *sql.DB
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(db *sql.DB) *NotificationService {
	return &NotificationService{db: db}
}

// CreateNotification logs a new notification to the database.
func (s *NotificationService) CreateNotification(ntype, level, message string) (models.Notification, error) {
	notification := models.Notification{
		ID:      uuid.New().String(),
		Type:    ntype,
		Level:   level,
		Message: message,
	}

	stmt, err := s.db.Prepare("INSERT INTO notifications (id, type, level, message) VALUES (?, ?, ?, ?)")
	if err != nil {
		return models.Notification{}, err
	}
	defer stmt.Close()

	_, err = stmt.Exec(notification.ID, notification.Type, notification.Level, notification.Message)
	if err != nil {
		return models.Notification{}, err
	}
	return notification, nil
}

// GetRecentNotifications retrieves the most recent notifications from the database.
func (s *NotificationService) GetRecentNotifications(limit int) ([]models.Notification, error) {
	rows, err := s.db.Query("SELECT id, type, level, message, created_at FROM notifications ORDER BY created_at DESC, id LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []models.Notification
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.Type, &n.Level, &n.Message, &n.CreatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}
