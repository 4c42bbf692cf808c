package controllers

import (
	"net/http"

	dbpkg "actas/db"
	"actas/models"
	"actas/scoring"

	"github.com/gin-gonic/gin"
)

type ComplianceRecordInput struct {
	Reviewer   string         `json:"reviewer"`
	Entity     string         `json:"entity"`
	ReviewDate string         `json:"review_date"`
	Answers    map[string]any `json:"answers"`
}

// recompute recalcula puntaje y narrativa juntos; nunca por separado.
func recompute(record *models.ComplianceRecord, answers map[string]any) error {
	if err := record.SetAnswers(answers); err != nil {
		return err
	}
	r := scoring.Evaluate(answers)
	record.Score = r.Percentage
	record.Summary = scoring.Summary(r)
	return nil
}

// POST /api/records
func CreateComplianceRecord(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	var input ComplianceRecordInput
	if err := c.Bind(&input); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if input.Answers == nil {
		input.Answers = map[string]any{}
	}

	record := models.ComplianceRecord{
		UserID:     user.ID,
		Reviewer:   input.Reviewer,
		Entity:     input.Entity,
		ReviewDate: input.ReviewDate,
	}
	if err := recompute(&record, input.Answers); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db no configurado en el contexto", http.StatusInternalServerError)
		return
	}
	if err := db.Create(&record).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, gin.H{"record": record})
}

// GET /api/records (admin)
func GetComplianceRecords(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db no configurado en el contexto", http.StatusInternalServerError)
		return
	}
	var records []models.ComplianceRecord
	if err := db.Order("id asc").Find(&records).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, gin.H{"records": records})
}

// GET /api/records/mine
func GetMyComplianceRecords(c *gin.Context) {
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
	var records []models.ComplianceRecord
	if err := db.Where("user_id = ?", user.ID).Order("id asc").Find(&records).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, gin.H{"records": records})
}

// findOwnedRecord carga el registro respetando la propiedad: un usuario común
// solo ve los suyos; el admin ve todos.
func findOwnedRecord(c *gin.Context, id int64) (*models.ComplianceRecord, bool) {
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

	var record models.ComplianceRecord
	if err := db.First(&record, id).Error; err != nil {
		RespondError(c, "registro no encontrado", http.StatusNotFound)
		return nil, false
	}
	if record.UserID != user.ID && !user.IsAdmin() {
		RespondError(c, "registro no encontrado", http.StatusNotFound)
		return nil, false
	}
	return &record, true
}

// GET /api/records/:id
func GetComplianceRecordByID(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	record, ok := findOwnedRecord(c, id)
	if !ok {
		return
	}
	RespondSuccess(c, gin.H{"record": record})
}

// PUT /api/records/:id
func UpdateComplianceRecord(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	record, ok := findOwnedRecord(c, id)
	if !ok {
		return
	}

	var input ComplianceRecordInput
	if err := c.Bind(&input); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	if input.Reviewer != "" {
		record.Reviewer = input.Reviewer
	}
	if input.Entity != "" {
		record.Entity = input.Entity
	}
	if input.ReviewDate != "" {
		record.ReviewDate = input.ReviewDate
	}

	answers := record.AnswersMap()
	if input.Answers != nil {
		answers = input.Answers
	}
	if err := recompute(record, answers); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if err := db.Save(record).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, gin.H{"record": record})
}

// DELETE /api/records/:id (borrado físico, sin versionado)
func DeleteComplianceRecord(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	record, ok := findOwnedRecord(c, id)
	if !ok {
		return
	}
	db := dbpkg.DBInstance(c)
	if err := db.Delete(&models.ComplianceRecord{}, "id = ?", record.ID).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, gin.H{"status": "deleted"})
}
