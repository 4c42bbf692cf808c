package controllers

import (
	"log"
	"net/http"
	"strings"
	"time"

	dbpkg "actas/db"
	"actas/models"
	"actas/tools"

	"github.com/gin-gonic/gin"
)

const passwordResetTTL = 30 * time.Minute

// ForgotPassword genera un código de recuperación y lo envía por correo.
// Siempre responde ok para no revelar si el correo existe.
func ForgotPassword(c *gin.Context) {
	var req struct {
		Email string `json:"email" form:"email"`
	}
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.Email) == "" {
		RespondError(c, "email es obligatorio", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db no configurado en el contexto", http.StatusInternalServerError)
		return
	}

	var user models.User
	if err := db.Where("email = ?", strings.TrimSpace(req.Email)).First(&user).Error; err != nil {
		RespondSuccess(c, gin.H{"status": "ok"})
		return
	}

	code := tools.RandomNumbers(6)
	exp := time.Now().Add(passwordResetTTL)
	reset := models.PasswordReset{
		UserID:    user.ID,
		TokenHash: tools.HashTokenSHA512(code),
		ExpiresAt: &exp,
	}
	if err := db.Create(&reset).Error; err != nil {
		RespondError(c, "error al generar el código", http.StatusInternalServerError)
		return
	}

	body := "<p>Su código de recuperación es: <b>" + code + "</b>. Vence en 30 minutos.</p>"
	if err := tools.SendMail(user.Email, "Recuperación de contraseña", body); err != nil {
		log.Printf("auth: correo de recuperación a %s: %v", user.Email, err)
	}

	RespondSuccess(c, gin.H{"status": "ok"})
}

// ResetPassword valida el código y establece la contraseña nueva.
func ResetPassword(c *gin.Context) {
	var req struct {
		Email       string `json:"email" form:"email"`
		Code        string `json:"code" form:"code"`
		NewPassword string `json:"new_password" form:"new_password"`
	}
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	req.Code = strings.TrimSpace(req.Code)
	if req.Email == "" || req.Code == "" || req.NewPassword == "" {
		RespondError(c, "email, code y new_password son obligatorios", http.StatusBadRequest)
		return
	}
	if tools.CheckPassword(req.NewPassword) != "" {
		RespondError(c, "contraseña demasiado corta", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db no configurado en el contexto", http.StatusInternalServerError)
		return
	}

	var user models.User
	if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		RespondError(c, "código inválido", http.StatusUnauthorized)
		return
	}

	now := time.Now()
	var reset models.PasswordReset
	if err := db.Where("user_id = ? AND token_hash = ?", user.ID, tools.HashTokenSHA512(req.Code)).
		Order("id desc").First(&reset).Error; err != nil {
		RespondError(c, "código inválido", http.StatusUnauthorized)
		return
	}
	if reset.IsUsed() || reset.IsExpired(now) {
		RespondError(c, "código expirado", http.StatusUnauthorized)
		return
	}

	hash, err := tools.HashPassword(req.NewPassword)
	if err != nil {
		RespondError(c, "error al procesar la contraseña", http.StatusInternalServerError)
		return
	}

	tx := db.Begin()
	if err := tx.Model(&user).Update("password", hash).Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if err := tx.Model(&reset).Update("used_at", &now).Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	// las sesiones abiertas dejan de poder renovarse
	_ = revokeAllUserRefreshTokens(db, user.ID, now)

	RespondSuccess(c, gin.H{"status": "password_updated"})
}
