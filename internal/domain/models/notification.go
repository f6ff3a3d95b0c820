package models

import "time"

const (
	RecipientAdmin  = "admin"
	RecipientVendor = "vendor"
	RecipientUser   = "user"
)

func ValidRecipientType(s string) bool {
	switch s {
	case RecipientAdmin, RecipientVendor, RecipientUser:
		return true
	}
	return false
}

type Notification struct {
	ID            int64     `json:"id"`
	RecipientType string    `json:"recipientType"`
	RecipientID   int64     `json:"recipientId"`
	Title         string    `json:"title"`
	Body          string    `json:"body"`
	Read          bool      `json:"read"`
	CreatedAt     time.Time `json:"createdAt"`
}
