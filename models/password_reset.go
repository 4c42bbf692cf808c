package models

import "time"

// PasswordReset es un código temporal del flujo "olvidé mi contraseña".
// Solo se persiste el hash del código, nunca el código en texto plano.
type PasswordReset struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	UserID    int64      `gorm:"not null;index" json:"user_id"`
	TokenHash string     `gorm:"not null;index" json:"-"`
	ExpiresAt *time.Time `json:"expires_at"`
	UsedAt    *time.Time `json:"used_at"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

func (pr PasswordReset) IsUsed() bool {
	return pr.UsedAt != nil
}

func (pr PasswordReset) IsExpired(now time.Time) bool {
	if pr.ExpiresAt == nil {
		return false
	}
	return now.After(*pr.ExpiresAt)
}
