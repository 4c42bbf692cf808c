package config

import (
	"encoding/json"
	"log"
	"os"
)

type Configuration struct {
	ApiPort string `json:"api_port"`
	LogPath string `json:"log_path"`

	Database string `json:"database"` // "sqlite3" o "postgres"
	DbHost   string `json:"db_host"`
	DbPort   string `json:"db_port"`
	DbUser   string `json:"db_user"`
	DbName   string `json:"db_name"`
	DbPass   string `json:"db_pass"`

	Security struct {
		JwtSecret           string `json:"jwt_secret"`
		AccessTTLMinutes    int    `json:"access_ttl_minutes"`
		ConfirmCodeLen      int    `json:"confirm_code_len"`
		RefreshCodeLen      int    `json:"refresh_code_len"`
		RefreshCodeMaxValid int    `json:"refresh_code_max_valid_days"`
	} `json:"security"`

	Mail struct {
		Host       string `json:"host"`
		Port       int    `json:"port"`
		User       string `json:"user"`
		Pass       string `json:"pass"`
		From       string `json:"from"`
		AdminEmail string `json:"admin_email"`
	} `json:"mail"`

	OpenAI struct {
		ApiKey     string `json:"api_key"`
		Model      string `json:"model"`
		ThrottleMs int    `json:"throttle_ms"` // pausa entre llamadas consecutivas al analizar hallazgos
	} `json:"openai"`

	Storage struct {
		Bucket string `json:"bucket"` // bucket / directorio raíz donde se archivan los documentos generados
	} `json:"storage"`

	Scheduler struct {
		NotifySpec string `json:"notify_spec"` // expresión cron del barrido de notificaciones
		PurgeSpec  string `json:"purge_spec"`  // expresión cron de la purga de cuentas sin verificar
	} `json:"scheduler"`
}

func Get(path string) Configuration {
	b, err := os.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}
	var c Configuration
	if err := json.Unmarshal(b, &c); err != nil {
		log.Fatal(err)
	}

	// defaults (para evitar zero values molestos)
	if c.ApiPort == "" {
		c.ApiPort = "8080"
	}
	if c.LogPath == "" {
		c.LogPath = "logs/server.log"
	}
	if c.Database == "" {
		c.Database = "sqlite3"
	}
	if c.Security.AccessTTLMinutes <= 0 {
		c.Security.AccessTTLMinutes = 24 * 60
	}
	if c.Security.ConfirmCodeLen <= 0 {
		c.Security.ConfirmCodeLen = 6
	}
	if c.Security.RefreshCodeLen <= 0 {
		c.Security.RefreshCodeLen = 32
	}
	if c.Security.RefreshCodeMaxValid <= 0 {
		c.Security.RefreshCodeMaxValid = 30
	}
	if c.Security.JwtSecret == "" {
		c.Security.JwtSecret = "CHANGE_ME"
	}
	if c.Mail.Port <= 0 {
		c.Mail.Port = 587
	}
	if c.OpenAI.Model == "" {
		c.OpenAI.Model = "gpt-4.1-mini"
	}
	if c.OpenAI.ThrottleMs <= 0 {
		c.OpenAI.ThrottleMs = 1500
	}
	if c.Storage.Bucket == "" {
		c.Storage.Bucket = "actas-documentos"
	}
	if c.Scheduler.NotifySpec == "" {
		c.Scheduler.NotifySpec = "0 8 * * *"
	}
	if c.Scheduler.PurgeSpec == "" {
		c.Scheduler.PurgeSpec = "* * * * *"
	}

	// secretos por env tienen prioridad sobre el archivo
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.Security.JwtSecret = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		c.OpenAI.ApiKey = v
	}
	if v := os.Getenv("SMTP_PASS"); v != "" {
		c.Mail.Pass = v
	}

	return c
}
