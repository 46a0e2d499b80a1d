package main

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/supper-app/supper/config"
	"github.com/supper-app/supper/database"
	"github.com/supper-app/supper/database/dbhelper"
	"github.com/supper-app/supper/handlers"
	"github.com/supper-app/supper/server"
)

const shutdownTimeOut = 10 * time.Second

func main() {
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	cfg := config.Load()

	db, err := database.ConnectAndMigrate(cfg.Database)
	if err != nil {
		logrus.Panicf("failed to initialize database, error: %v", err)
	}
	logrus.Println("migration is successful")

	store := dbhelper.NewStore(db)
	handler := handlers.New(store, store, store, store)
	svr := server.SetupRoutes(handler, cfg.Server.StaticDir)

	go func() {
		logrus.Infof("supper backend running on :%s", cfg.Server.Port)
		if err := svr.Run(cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Panicf("failed to run server, error: %v", err)
		}
	}()

	<-done

	logrus.Info("shutting down...")
	if err := svr.Shutdown(shutdownTimeOut); err != nil {
		logrus.WithError(err).Error("failed to shut down server cleanly!")
	}
	if err := database.Shutdown(db); err != nil {
		logrus.WithError(err).Error("failed to close database connection!")
	}

	logrus.Info("system is shut ..zzz")
}
