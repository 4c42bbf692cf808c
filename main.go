package main

import (
	"log"
	"os"

	"actas/config"
	"actas/controllers"
	dbpkg "actas/db"
	"actas/router"
	"actas/tools"
	"actas/workers"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// =====================
// ENV esperadas
// =====================
//
// - CONFIG_PATH   (ruta del config.json; default "config.json")
// - JWT_SECRET    (sobreescribe security.jwt_secret del archivo)
// - OPENAI_API_KEY
// - SMTP_PASS
// - AUTOMIGRATE   (1 para correr el automigrate en dev)
//
// =====================

func main() {
	// .env es opcional; en producción las env vienen del entorno
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.json"
	}
	conf := config.Get(configPath)

	dbpkg.SetConfigurations(conf)
	tools.SetConfigurations(conf)
	controllers.SetConfigurations(conf)

	db, err := dbpkg.Connect()
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer db.Close()

	r := gin.New()
	r.Use(dbpkg.SetDBtoContext(db))
	router.Initialize(r, conf)

	sched := workers.Start(db, conf)
	defer sched.Stop()

	log.Printf("Actas API listening on :%s", conf.ApiPort)
	if err := r.Run(":" + conf.ApiPort); err != nil {
		log.Fatal(err)
	}
}
