package config

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	DBDriver      string
	DBDSN         string
	ServerPort    string
	SessionSecret string
	ExportPath    string

	AdminUsername  string
	AdminPassword  string
	CollabUsername string
	CollabPassword string
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBDriver:       os.Getenv("DB_DRIVER"),
		DBDSN:          os.Getenv("DB_DSN"),
		ServerPort:     os.Getenv("SERVER_PORT"),
		SessionSecret:  os.Getenv("SESSION_SECRET"),
		ExportPath:     os.Getenv("EXPORT_PATH"),
		AdminUsername:  os.Getenv("ADMIN_USERNAME"),
		AdminPassword:  os.Getenv("ADMIN_PASSWORD"),
		CollabUsername: os.Getenv("COLLAB_USERNAME"),
		CollabPassword: os.Getenv("COLLAB_PASSWORD"),
	}

	if cfg.DBDriver == "" {
		cfg.DBDriver = "sqlite"
	}
	if cfg.DBDSN == "" {
		if cfg.DBDriver != "sqlite" {
			log.Fatal("DB_DSN is not set")
		}
		cfg.DBDSN = "shipments.db"
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET is not set")
	}
	if cfg.ExportPath == "" {
		cfg.ExportPath = "records.xlsx"
	}

	if cfg.AdminUsername == "" {
		cfg.AdminUsername = "admin"
	}
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = "admin123"
	}
	if cfg.CollabUsername == "" {
		cfg.CollabUsername = "colaborador"
	}
	if cfg.CollabPassword == "" {
		cfg.CollabPassword = "colab123"
	}

	return cfg
}
