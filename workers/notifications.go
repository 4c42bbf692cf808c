package workers

import (
	"fmt"
	"log"
	"time"

	"actas/models"
	"actas/tools"

	"github.com/jinzhu/gorm"
)

// Umbrales de días hábiles tras los cuales se alerta al administrador.
// Ambos pueden dispararse en el mismo barrido si el acta ya superó los dos.
var thresholds = []struct {
	Days int
	Tag  string
}{
	{30, "30-days"},
	{100, "100-days"},
}

// sendAlert es reemplazable en tests.
var sendAlert = func(acta models.Acta, tag string, elapsed int) error {
	subject := fmt.Sprintf("Acta %d: %d días hábiles desde la entrega", acta.ID, elapsed)
	body := fmt.Sprintf(
		"<p>El acta de entrega N° %d (usuario %d) acumula %d días hábiles desde su entrega sin cierre del examen.</p>"+
			"<p>Umbral alcanzado: %s.</p>",
		acta.ID, acta.UserID, elapsed, tag)
	return tools.SendAdminAlert(subject, body)
}

// RunNotificationSweep recorre las actas entregadas y alerta sobre los
// umbrales de días hábiles alcanzados. Un fallo en un acta se registra y no
// aborta el resto del barrido.
func RunNotificationSweep(db *gorm.DB) {
	var actas []models.Acta
	if err := db.Where("status = ?", models.ACTA_STATUS_ENTREGADA).Find(&actas).Error; err != nil {
		log.Printf("notifier: query error: %v", err)
		return
	}

	for i := range actas {
		if err := notifyActa(db, &actas[i], time.Now()); err != nil {
			log.Printf("notifier: acta %d: %v", actas[i].ID, err)
		}
	}
}

func notifyActa(db *gorm.DB, acta *models.Acta, now time.Time) error {
	elapsed := BusinessDaysBetween(anchorDate(*acta), now)

	var due []string
	for _, th := range thresholds {
		if elapsed >= th.Days && !acta.HasNotificationTag(th.Tag) {
			acta.AddNotificationTag(th.Tag)
			due = append(due, th.Tag)
		}
	}
	if len(due) == 0 {
		return nil
	}

	// El marcador se persiste antes de enviar: entre duplicar una alerta y
	// perderla ante un crash, preferimos perderla.
	if err := db.Model(&models.Acta{}).
		Where("id = ?", acta.ID).
		Update("notifications", acta.Notifications).Error; err != nil {
		return fmt.Errorf("persistir marcadores: %w", err)
	}

	for _, tag := range due {
		if err := sendAlert(*acta, tag, elapsed); err != nil {
			log.Printf("notifier: acta %d: alerta %s: %v", acta.ID, tag, err)
		}
	}
	return nil
}

// anchorDate prefiere el subscriptionDate embebido en el metadata si es
// parseable; si no, la fecha de creación del acta.
func anchorDate(acta models.Acta) time.Time {
	if raw, ok := acta.MetadataMap()["subscriptionDate"].(string); ok {
		for _, layout := range []string{"2006-01-02", time.RFC3339, "02/01/2006"} {
			if t, err := time.Parse(layout, raw); err == nil {
				return t
			}
		}
	}
	if acta.CreatedAt != nil {
		return *acta.CreatedAt
	}
	return time.Now()
}
