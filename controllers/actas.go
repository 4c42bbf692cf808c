package controllers

import (
	"net/http"

	dbpkg "actas/db"
	"actas/models"

	"github.com/gin-gonic/gin"
)

type ActaInput struct {
	Type     string         `json:"type"`
	Status   string         `json:"status"`
	Metadata map[string]any `json:"metadata"`
}

// POST /api/actas
func CreateActa(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	var input ActaInput
	if err := c.Bind(&input); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if !models.IsValidActaType(input.Type) {
		RespondError(c, "tipo de acta inválido", http.StatusBadRequest)
		return
	}
	if input.Status == "" {
		input.Status = models.ACTA_STATUS_GUARDADA
	}
	if !models.IsValidActaStatus(input.Status) {
		RespondError(c, "status de acta inválido", http.StatusBadRequest)
		return
	}
	if input.Metadata == nil {
		input.Metadata = map[string]any{}
	}

	acta := models.Acta{
		UserID: user.ID,
		Type:   input.Type,
		Status: input.Status,
	}
	if err := acta.SetMetadata(input.Metadata); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if err := acta.SetNotifications(nil); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db no configurado en el contexto", http.StatusInternalServerError)
		return
	}
	if err := db.Create(&acta).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, gin.H{"acta": acta})
}

// GET /api/actas (admin)
func GetActas(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db no configurado en el contexto", http.StatusInternalServerError)
		return
	}
	var actas []models.Acta
	if err := db.Order("id asc").Find(&actas).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, gin.H{"actas": actas})
}

// GET /api/actas/mine
func GetMyActas(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db no configurado en el contexto", http.StatusInternalServerError)
		return
	}
	var actas []models.Acta
	if err := db.Where("user_id = ?", user.ID).Order("id asc").Find(&actas).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, gin.H{"actas": actas})
}

func findOwnedActa(c *gin.Context, id int64) (*models.Acta, bool) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return nil, false
	}
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db no configurado en el contexto", http.StatusInternalServerError)
		return nil, false
	}

	var acta models.Acta
	if err := db.First(&acta, id).Error; err != nil {
		RespondError(c, "acta no encontrada", http.StatusNotFound)
		return nil, false
	}
	if acta.UserID != user.ID && !user.IsAdmin() {
		RespondError(c, "acta no encontrada", http.StatusNotFound)
		return nil, false
	}
	return &acta, true
}

// GET /api/actas/:id
func GetActaByID(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	acta, ok := findOwnedActa(c, id)
	if !ok {
		return
	}
	RespondSuccess(c, gin.H{"acta": acta})
}

// PUT /api/actas/:id
func UpdateActa(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	acta, ok := findOwnedActa(c, id)
	if !ok {
		return
	}

	var input ActaInput
	if err := c.Bind(&input); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	if input.Type != "" {
		if !models.IsValidActaType(input.Type) {
			RespondError(c, "tipo de acta inválido", http.StatusBadRequest)
			return
		}
		acta.Type = input.Type
	}
	if input.Status != "" {
		if !models.IsValidActaStatus(input.Status) {
			RespondError(c, "status de acta inválido", http.StatusBadRequest)
			return
		}
		acta.Status = input.Status
	}
	if input.Metadata != nil {
		if err := acta.SetMetadata(input.Metadata); err != nil {
			RespondError(c, err.Error(), http.StatusBadRequest)
			return
		}
	}

	db := dbpkg.DBInstance(c)
	if err := db.Save(acta).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, gin.H{"acta": acta})
}

// DELETE /api/actas/:id (borrado físico)
func DeleteActa(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	acta, ok := findOwnedActa(c, id)
	if !ok {
		return
	}
	db := dbpkg.DBInstance(c)
	if err := db.Delete(&models.Acta{}, "id = ?", acta.ID).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, gin.H{"status": "deleted"})
}
