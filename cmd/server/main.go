package main

import (
	"fmt"

	"shiptrack/internal/config"
	"shiptrack/internal/database"
	"shiptrack/internal/models"
	"shiptrack/internal/server"

	log "github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.WithError(err).Fatal("database init failed")
	}

	if err := database.SeedUser(db, cfg.AdminUsername, cfg.AdminPassword, models.RoleAdmin); err != nil {
		log.WithError(err).Fatal("seeding admin failed")
	}
	if err := database.SeedUser(db, cfg.CollabUsername, cfg.CollabPassword, models.RoleCollaborator); err != nil {
		log.WithError(err).Fatal("seeding collaborator failed")
	}

	r := server.NewRouter(cfg, db)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.WithField("addr", addr).Info("starting server")
	if err := r.Run(addr); err != nil {
		log.WithError(err).Fatal("server error")
	}
}
