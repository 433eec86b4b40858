package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/esek/ekorre-sub000/internal/config"
	"github.com/esek/ekorre-sub000/internal/logger"
	"github.com/esek/ekorre-sub000/internal/router"
	"github.com/esek/ekorre-sub000/internal/setup"
)

func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	deps, err := setup.SetupDependencies(cfg)
	if err != nil {
		slog.Error("failed to set up dependencies", "err", err)
		os.Exit(1)
	}
	defer deps.Storage.Cleanup()
	defer deps.RateLimiter.Stop()

	r := router.New(deps)

	port := os.Getenv("PORT")
	if port == "" {
		port = fmt.Sprint(cfg.Public.Port)
	}

	slog.Info("server started", "port", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
