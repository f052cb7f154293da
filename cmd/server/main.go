package main

import (
	"fmt"

	"taskmaster/internal/activity"
	"taskmaster/internal/config"
	"taskmaster/internal/database"
	"taskmaster/internal/handlers"
	"taskmaster/internal/notify"
	"taskmaster/internal/server"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()

	log := logrus.StandardLogger()
	log.SetLevel(cfg.LogLevel)

	database.Init(cfg.DBDSN)

	store := activity.NewStore(database.DB)
	recorder := activity.NewRecorder(store, log)
	notifications := notify.NewStore(cfg.NotifyCapacity)
	handlers.Init(store, recorder, notifications)

	r := server.NewRouter(cfg)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Infof("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
