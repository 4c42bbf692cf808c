package controllers

import (
	"net/http"

	dbpkg "actas/db"
	"actas/models"

	"github.com/gin-gonic/gin"
)

// GET /api/users?page=&limit= (admin)
func GetUsers(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db no configurado en el contexto", http.StatusInternalServerError)
		return
	}

	page := QueryInt(c, "page", 1)
	limit := QueryInt(c, "limit", 20)
	if limit > 100 {
		limit = 100
	}

	var total int64
	if err := db.Model(&models.User{}).Count(&total).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	var users []models.User
	if err := db.Preload("Profile").
		Order("id asc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&users).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	for i := range users {
		users[i].Password = ""
		users[i].ConfirmCode = ""
	}

	RespondSuccess(c, gin.H{
		"users": users,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// PUT /api/users/:id/role (admin)
// Body: { "role": "basic" | "paid" | "admin" }
func UpdateUserRole(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Role string `json:"role" form:"role"`
	}
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if !models.IsValidRole(req.Role) {
		RespondError(c, "rol inválido", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db no configurado en el contexto", http.StatusInternalServerError)
		return
	}

	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		RespondError(c, "usuario no encontrado", http.StatusNotFound)
		return
	}
	if err := db.Model(&user).Update("role", req.Role).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	user.Password = ""
	user.ConfirmCode = ""
	RespondSuccess(c, gin.H{"user": user})
}

// POST /api/users/deactivate (admin)
// Body: { "ids": [1, 2, 3] }
func DeactivateUsers(c *gin.Context) {
	var req struct {
		IDs []int64 `json:"ids"`
	}
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if len(req.IDs) == 0 {
		RespondError(c, "ids es obligatorio", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db no configurado en el contexto", http.StatusInternalServerError)
		return
	}

	res := db.Model(&models.User{}).Where("id IN (?)", req.IDs).Update("active", false)
	if res.Error != nil {
		RespondError(c, res.Error.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, gin.H{"deactivated": res.RowsAffected})
}
