package workers

import (
	"log"
	"time"

	"actas/models"

	"github.com/jinzhu/gorm"
)

// Ventana de gracia antes de purgar registros sin verificar.
const unverifiedGraceDays = 7

// PurgeUnverified elimina en bloque las cuentas que nunca confirmaron su
// correo dentro de la ventana de gracia.
func PurgeUnverified(db *gorm.DB) {
	cutoff := time.Now().AddDate(0, 0, -unverifiedGraceDays)
	res := db.Where("verified = ? AND created_at < ?", false, cutoff).Delete(&models.User{})
	if res.Error != nil {
		log.Printf("purge: delete error: %v", res.Error)
		return
	}
	if res.RowsAffected > 0 {
		log.Printf("purge: %d cuentas sin verificar eliminadas", res.RowsAffected)
	}
}
