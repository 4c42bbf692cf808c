package models

import (
	"encoding/json"
	"time"

	"github.com/jinzhu/gorm/dialects/postgres"
)

// ComplianceRecord es una lista de verificación de cumplimiento sobre un acta.
// Las respuestas viven en un solo mapa JSON (clave q<N>_<slug> -> bool) en vez
// de ~98 columnas booleanas; la enumeración canónica de preguntas es la tabla
// de pesos del paquete scoring. Score y Summary se recalculan juntos en cada
// creación y actualización, nunca por separado.
type ComplianceRecord struct {
	ID         int64          `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	UserID     int64          `gorm:"not null;index" json:"user_id"`
	Reviewer   string         `gorm:"default:''" json:"reviewer" form:"reviewer"`
	Entity     string         `gorm:"default:''" json:"entity" form:"entity"`
	ReviewDate string         `gorm:"default:''" json:"review_date" form:"review_date"`
	Answers    postgres.Jsonb `gorm:"type:jsonb" json:"answers"`
	Score      int            `gorm:"default:0" json:"score"`
	Summary    string         `gorm:"type:text" json:"summary"`
	CreatedAt  *time.Time     `json:"created_at"`
	UpdatedAt  *time.Time     `json:"updated_at"`
}

func (r ComplianceRecord) AnswersMap() map[string]any {
	out := map[string]any{}
	if len(r.Answers.RawMessage) == 0 {
		return out
	}
	if err := json.Unmarshal(r.Answers.RawMessage, &out); err != nil {
		return map[string]any{}
	}
	return out
}

func (r *ComplianceRecord) SetAnswers(answers map[string]any) error {
	raw, err := json.Marshal(answers)
	if err != nil {
		return err
	}
	r.Answers = postgres.Jsonb{RawMessage: raw}
	return nil
}
