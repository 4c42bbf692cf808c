package models

import (
	"encoding/json"
	"time"

	"github.com/jinzhu/gorm/dialects/postgres"
)

/************************************************
/**** MARK: ACTA TYPES ****/
/************************************************/
const ACTA_TYPE_ENTRANTE_PAGA = "entrante-paga"
const ACTA_TYPE_ENTRANTE_GRATIS = "entrante-gratis"
const ACTA_TYPE_SALIENTE_PAGA = "saliente-paga"
const ACTA_TYPE_SALIENTE_GRATIS = "saliente-gratis"
const ACTA_TYPE_MAXIMA_AUTORIDAD = "maxima-autoridad"

/************************************************
/**** MARK: ACTA STATUS ****/
/************************************************/
const ACTA_STATUS_GUARDADA = "guardada"
const ACTA_STATUS_DESCARGADA = "descargada"
const ACTA_STATUS_ENVIADA = "enviada"
const ACTA_STATUS_ENTREGADA = "entregada"

// Acta representa un acta de entrega. Metadata es un blob JSON libre con
// todas las respuestas del formulario (incluyendo los flags dispone* de
// anexos); su forma la garantiza el servicio que la produce, no el store.
type Acta struct {
	ID            int64          `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	UserID        int64          `gorm:"not null;index" json:"user_id"`
	Type          string         `gorm:"not null" json:"type" form:"type"`
	Status        string         `gorm:"not null;default:'guardada'" json:"status" form:"status"`
	Metadata      postgres.Jsonb `gorm:"type:jsonb" json:"metadata"`
	Notifications postgres.Jsonb `gorm:"type:jsonb" json:"notifications"`
	CreatedAt     *time.Time     `json:"created_at"`
	UpdatedAt     *time.Time     `json:"updated_at"`
}

func IsValidActaType(t string) bool {
	switch t {
	case ACTA_TYPE_ENTRANTE_PAGA, ACTA_TYPE_ENTRANTE_GRATIS,
		ACTA_TYPE_SALIENTE_PAGA, ACTA_TYPE_SALIENTE_GRATIS,
		ACTA_TYPE_MAXIMA_AUTORIDAD:
		return true
	}
	return false
}

func IsValidActaStatus(s string) bool {
	switch s {
	case ACTA_STATUS_GUARDADA, ACTA_STATUS_DESCARGADA,
		ACTA_STATUS_ENVIADA, ACTA_STATUS_ENTREGADA:
		return true
	}
	return false
}

// MetadataMap decodifica el blob JSON. Un blob vacío o corrupto devuelve un
// mapa vacío: el renderizador trata toda clave ausente como placeholder vacío.
func (a Acta) MetadataMap() map[string]any {
	out := map[string]any{}
	if len(a.Metadata.RawMessage) == 0 {
		return out
	}
	if err := json.Unmarshal(a.Metadata.RawMessage, &out); err != nil {
		return map[string]any{}
	}
	return out
}

// NotificationTags devuelve los marcadores de umbral ya enviados ("30-days",
// "100-days", ...).
func (a Acta) NotificationTags() []string {
	var tags []string
	if len(a.Notifications.RawMessage) == 0 {
		return nil
	}
	if err := json.Unmarshal(a.Notifications.RawMessage, &tags); err != nil {
		return nil
	}
	return tags
}

func (a Acta) HasNotificationTag(tag string) bool {
	for _, t := range a.NotificationTags() {
		if t == tag {
			return true
		}
	}
	return false
}

// AddNotificationTag agrega un marcador al historial (idempotente).
func (a *Acta) AddNotificationTag(tag string) {
	if a.HasNotificationTag(tag) {
		return
	}
	_ = a.SetNotifications(append(a.NotificationTags(), tag))
}

// SetNotifications serializa la lista de marcadores. Con nil persiste una
// lista vacía: la columna nunca debe quedar en NULL (Jsonb no escanea NULL).
func (a *Acta) SetNotifications(tags []string) error {
	if tags == nil {
		tags = []string{}
	}
	raw, err := json.Marshal(tags)
	if err != nil {
		return err
	}
	a.Notifications = postgres.Jsonb{RawMessage: raw}
	return nil
}

// SetMetadata serializa el mapa de respuestas al blob JSON.
func (a *Acta) SetMetadata(data map[string]any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	a.Metadata = postgres.Jsonb{RawMessage: raw}
	return nil
}
