package models

import (
	"actas/tools"
	"time"
)

/************************************************
/**** MARK: USER ROLES ****/
/************************************************/
const USER_ROLE_BASIC = "basic"
const USER_ROLE_PAID = "paid"
const USER_ROLE_ADMIN = "admin"

// User representa un usuario del sistema.
type User struct {
	ID          int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Name        string     `gorm:"not null" json:"name" form:"name"`
	Email       string     `gorm:"not null;unique" json:"email" form:"email"`
	Password    string     `gorm:"not null" json:"password,omitempty" form:"password"`
	Role        string     `gorm:"not null;default:'basic'" json:"role" form:"role"`
	Verified    bool       `gorm:"not null;default:false" json:"verified"`
	Active      bool       `gorm:"not null;default:true" json:"active"`
	ConfirmCode string     `gorm:"default:''" json:"-"`
	Profile     *Profile   `gorm:"foreignkey:UserID" json:"profile,omitempty"`
	CreatedAt   *time.Time `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

// Profile guarda los datos institucionales opcionales del usuario.
type Profile struct {
	ID               int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	UserID           int64      `gorm:"not null;unique_index" json:"user_id"`
	Institution      string     `gorm:"default:''" json:"institution" form:"institution"`
	Position         string     `gorm:"default:''" json:"position" form:"position"`
	DeliveryDeadline *time.Time `json:"delivery_deadline" form:"delivery_deadline"`
}

// IsAdmin es el predicado de capacidad usado por el middleware de rutas admin.
func (u User) IsAdmin() bool {
	return u.Role == USER_ROLE_ADMIN
}

func IsValidRole(role string) bool {
	switch role {
	case USER_ROLE_BASIC, USER_ROLE_PAID, USER_ROLE_ADMIN:
		return true
	}
	return false
}

func (u User) MissingFields() string {
	if u.Name == "" {
		return "name"
	} else if u.Email == "" {
		return "email"
	} else if u.Password == "" {
		return "password"
	} else if tools.CheckPassword(u.Password) != "" {
		return tools.CheckPassword(u.Password)
	}
	return ""
}
