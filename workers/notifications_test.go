package workers

import (
	"testing"
	"time"

	"actas/models"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	db.AutoMigrate(&models.Acta{})
	t.Cleanup(func() { db.Close() })
	return db
}

func TestNotifyActaBothThresholdsInOneRun(t *testing.T) {
	db := testDB(t)

	created := time.Now().AddDate(0, 0, -200)
	acta := models.Acta{
		UserID:    1,
		Type:      models.ACTA_TYPE_SALIENTE_PAGA,
		Status:    models.ACTA_STATUS_ENTREGADA,
		CreatedAt: &created,
	}
	if err := acta.SetMetadata(map[string]any{}); err != nil {
		t.Fatal(err)
	}
	if err := acta.SetNotifications(nil); err != nil {
		t.Fatal(err)
	}
	if err := db.Create(&acta).Error; err != nil {
		t.Fatal(err)
	}

	var sent []string
	prev := sendAlert
	sendAlert = func(a models.Acta, tag string, elapsed int) error {
		sent = append(sent, tag)
		return nil
	}
	defer func() { sendAlert = prev }()

	if err := notifyActa(db, &acta, time.Now()); err != nil {
		t.Fatal(err)
	}
	if len(sent) != 2 {
		t.Fatalf("esperaba alertas de ambos umbrales, obtuve %v", sent)
	}

	// el marcador quedó persistido: un segundo barrido no reenvía nada
	var reloaded models.Acta
	if err := db.First(&reloaded, acta.ID).Error; err != nil {
		t.Fatal(err)
	}
	if !reloaded.HasNotificationTag("30-days") || !reloaded.HasNotificationTag("100-days") {
		t.Fatalf("marcadores no persistidos: %v", reloaded.NotificationTags())
	}

	sent = nil
	if err := notifyActa(db, &reloaded, time.Now()); err != nil {
		t.Fatal(err)
	}
	if len(sent) != 0 {
		t.Fatalf("barrido repetido no debe reenviar, obtuve %v", sent)
	}
}

func TestNotifyActaBelowThreshold(t *testing.T) {
	db := testDB(t)

	created := time.Now().AddDate(0, 0, -3)
	acta := models.Acta{
		UserID:    1,
		Type:      models.ACTA_TYPE_ENTRANTE_PAGA,
		Status:    models.ACTA_STATUS_ENTREGADA,
		CreatedAt: &created,
	}
	if err := acta.SetMetadata(map[string]any{}); err != nil {
		t.Fatal(err)
	}
	if err := acta.SetNotifications(nil); err != nil {
		t.Fatal(err)
	}
	if err := db.Create(&acta).Error; err != nil {
		t.Fatal(err)
	}

	prev := sendAlert
	fired := false
	sendAlert = func(a models.Acta, tag string, elapsed int) error {
		fired = true
		return nil
	}
	defer func() { sendAlert = prev }()

	if err := notifyActa(db, &acta, time.Now()); err != nil {
		t.Fatal(err)
	}
	if fired {
		t.Fatal("no debía alertar por debajo del umbral")
	}
}

func TestAnchorDatePrefersSubscriptionDate(t *testing.T) {
	created := time.Now()
	acta := models.Acta{CreatedAt: &created}
	if err := acta.SetMetadata(map[string]any{"subscriptionDate": "2026-01-15"}); err != nil {
		t.Fatal(err)
	}
	got := anchorDate(acta)
	if got.Year() != 2026 || got.Month() != time.January || got.Day() != 15 {
		t.Fatalf("ancla incorrecta: %v", got)
	}

	// no parseable: cae a CreatedAt
	if err := acta.SetMetadata(map[string]any{"subscriptionDate": "pronto"}); err != nil {
		t.Fatal(err)
	}
	if !anchorDate(acta).Equal(created) {
		t.Fatal("con fecha no parseable debe usarse CreatedAt")
	}
}
