package domain

import "time"

// Admin represents an account allowed into the admin panel
type Admin struct {
	ID           int64
	Username     string
	PasswordHash string // bcrypt, наружу не отдается
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
