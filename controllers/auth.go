package controllers

import (
	"log"
	"net/http"
	"time"

	dbpkg "actas/db"
	"actas/models"
	"actas/tools"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type LoginResponse struct {
	Token        string      `json:"token"`
	ExpiresAt    int64       `json:"expires_at"`
	RefreshToken string      `json:"refresh_token"`
	User         models.User `json:"user"`
}

// Register crea el usuario con rol básico, sin verificar, y envía el código
// de confirmación por correo.
func Register(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db no configurado en el contexto", http.StatusInternalServerError)
		return
	}

	var user models.User
	if err := c.Bind(&user); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	missing := user.MissingFields()
	if missing != "" {
		RespondError(c, "Falta el campo "+missing, http.StatusBadRequest)
		return
	}
	if !tools.ValidateEmail(user.Email) {
		RespondError(c, "Correo inválido", http.StatusBadRequest)
		return
	}

	var existing models.User
	if err := db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		RespondError(c, "El usuario ya existe", http.StatusBadRequest)
		return
	}

	hash, err := tools.HashPassword(user.Password)
	if err != nil {
		RespondError(c, "error al procesar la contraseña", http.StatusInternalServerError)
		return
	}
	user.Password = hash
	user.Role = models.USER_ROLE_BASIC
	user.Verified = false
	user.Active = true
	user.ConfirmCode = tools.RandomNumbers(conf.Security.ConfirmCodeLen)

	if err := db.Create(&user).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	body := "<p>Su código de confirmación es: <b>" + user.ConfirmCode + "</b></p>"
	if err := tools.SendMail(user.Email, "Confirme su cuenta", body); err != nil {
		// el usuario queda creado; puede pedir el reenvío
		log.Printf("auth: correo de confirmación a %s: %v", user.Email, err)
	}

	user.Password = ""
	user.ConfirmCode = ""
	RespondSuccess(c, gin.H{"user": user})
}

func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		RespondError(c, "email y password son obligatorios", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db no configurado en el contexto", http.StatusInternalServerError)
		return
	}

	var user models.User
	if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		RespondError(c, "usuario o contraseña inválidos", http.StatusUnauthorized)
		return
	}
	if !tools.ComparePassword(user.Password, req.Password) {
		RespondError(c, "usuario o contraseña inválidos", http.StatusUnauthorized)
		return
	}
	if !user.Verified {
		RespondError(c, "cuenta pendiente de confirmación", http.StatusForbidden)
		return
	}
	if !user.Active {
		RespondError(c, "cuenta desactivada", http.StatusForbidden)
		return
	}

	now := time.Now()
	signed, exp, err := signAccessToken(user.ID, now)
	if err != nil {
		RespondError(c, "error al firmar el token", http.StatusInternalServerError)
		return
	}

	refresh, err := issueRefreshToken(db, user.ID, now)
	if err != nil {
		RespondError(c, "error al generar el refresh token", http.StatusInternalServerError)
		return
	}

	user.Password = ""
	user.ConfirmCode = ""
	RespondSuccess(c, LoginResponse{
		Token:        signed,
		ExpiresAt:    exp.Unix(),
		RefreshToken: refresh,
		User:         user,
	})
}

// ConfirmEmail valida el código enviado al registrarse y marca la cuenta
// como verificada. Ruta: POST /api/auth/confirm/:code
func ConfirmEmail(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		RespondError(c, "code es obligatorio", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db no configurado en el contexto", http.StatusInternalServerError)
		return
	}

	var user models.User
	if err := db.Where("confirm_code = ? AND confirm_code <> ''", code).First(&user).Error; err != nil {
		RespondError(c, "código inválido", http.StatusNotFound)
		return
	}
	if user.Verified {
		RespondSuccess(c, gin.H{"status": "already_verified"})
		return
	}

	if err := db.Model(&user).Updates(map[string]any{
		"verified":     true,
		"confirm_code": "",
	}).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	user.Password = ""
	user.ConfirmCode = ""
	RespondSuccess(c, gin.H{"status": "verified", "user": user})
}

// issueRefreshToken genera un refresh token nuevo y persiste solo su hash.
func issueRefreshToken(db *gorm.DB, userID int64, now time.Time) (string, error) {
	token := tools.RandomString(conf.Security.RefreshCodeLen)
	exp := now.AddDate(0, 0, conf.Security.RefreshCodeMaxValid)

	row := models.RefreshToken{
		UserID:    userID,
		TokenHash: tools.HashTokenSHA512(token),
		ExpiresAt: &exp,
	}
	if err := db.Create(&row).Error; err != nil {
		return "", err
	}
	return token, nil
}

func revokeAllUserRefreshTokens(db *gorm.DB, userID int64, now time.Time) error {
	return db.Model(&models.RefreshToken{}).
		Where("user_id = ? AND revoked_at IS NULL", userID).
		Update("revoked_at", &now).Error
}
