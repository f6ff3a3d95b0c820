package models

import "time"

const (
	VendorStatusActive   = "active"
	VendorStatusInactive = "inactive"
	VendorStatusPending  = "pending"
)

func ValidVendorStatus(s string) bool {
	switch s {
	case VendorStatusActive, VendorStatusInactive, VendorStatusPending:
		return true
	}
	return false
}

type Vendor struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Status    string    `json:"status"`
	LogoURL   string    `json:"logoUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
