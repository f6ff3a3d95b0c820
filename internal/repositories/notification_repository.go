package repositories

import (
	"database/sql"

	intconfig "buslink/internal/config"
	"buslink/internal/domain"
	"buslink/internal/domain/models"
)

type NotificationRepository struct {
	DB *sql.DB
}

func (r NotificationRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r NotificationRepository) Create(n models.Notification) (models.Notification, error) {
	res, err := r.db().Exec(`
		INSERT INTO notifications (recipient_type, recipient_id, title, body, is_read, created_at)
		VALUES (?, ?, ?, ?, 0, NOW())`,
		n.RecipientType, n.RecipientID, n.Title, n.Body,
	)
	if err != nil {
		return models.Notification{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Notification{}, err
	}
	return r.FindOne(id)
}

func (r NotificationRepository) FindOne(id int64) (models.Notification, error) {
	var n models.Notification
	err := r.db().QueryRow(`
		SELECT id, recipient_type, recipient_id, title, body, is_read, created_at
		FROM notifications WHERE id = ?`, id).
		Scan(&n.ID, &n.RecipientType, &n.RecipientID, &n.Title, &n.Body, &n.Read, &n.CreatedAt)
	if err == sql.ErrNoRows {
		return models.Notification{}, domain.NotFoundError{Resource: "notification"}
	}
	return n, err
}

// ListByRecipient returns a recipient's notifications, newest first.
func (r NotificationRepository) ListByRecipient(recipientType string, recipientID int64) ([]models.Notification, error) {
	rows, err := r.db().Query(`
		SELECT id, recipient_type, recipient_id, title, body, is_read, created_at
		FROM notifications
		WHERE recipient_type = ? AND recipient_id = ?
		ORDER BY id DESC`, recipientType, recipientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Notification{}
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.RecipientType, &n.RecipientID, &n.Title, &n.Body, &n.Read, &n.CreatedAt); err != nil {
			return out, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r NotificationRepository) MarkRead(id int64) error {
	res, err := r.db().Exec(`UPDATE notifications SET is_read = 1 WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NotFoundError{Resource: "notification"}
	}
	return nil
}
