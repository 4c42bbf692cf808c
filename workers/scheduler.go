package workers

import (
	"log"

	"actas/config"

	"github.com/jinzhu/gorm"
	"github.com/robfig/cron/v3"
)

// Start programa los trabajos periódicos. Corren en sus propios timers,
// comparten el pool de conexiones con los requests y no se excluyen
// mutuamente con ellos.
func Start(db *gorm.DB, conf config.Configuration) *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc(conf.Scheduler.NotifySpec, func() { RunNotificationSweep(db) }); err != nil {
		log.Fatalf("scheduler: notify spec inválida %q: %v", conf.Scheduler.NotifySpec, err)
	}
	if _, err := c.AddFunc(conf.Scheduler.PurgeSpec, func() { PurgeUnverified(db) }); err != nil {
		log.Fatalf("scheduler: purge spec inválida %q: %v", conf.Scheduler.PurgeSpec, err)
	}

	c.Start()
	log.Printf("scheduler: trabajos programados (notify=%q purge=%q)",
		conf.Scheduler.NotifySpec, conf.Scheduler.PurgeSpec)
	return c
}
