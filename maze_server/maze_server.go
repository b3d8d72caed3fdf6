// This defines an HTTP server that generates mazes on request.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/gin-gonic/gin"
	"github.com/kian-mehta/ExtendedEssay/api"
	"github.com/kian-mehta/ExtendedEssay/api/i"
	mazeapi "github.com/kian-mehta/ExtendedEssay/api/mazes"
	"github.com/kian-mehta/ExtendedEssay/config"
)

var errorStyle = color.New(color.FgHiRed, color.Bold)

func run() int {
	var configFile string
	flag.StringVar(&configFile, "config", "",
		"An optional path to a YAML config file.")
	flag.Parse()
	cfg, e := config.Load(configFile)
	if e != nil {
		errorStyle.Fprintf(os.Stderr, "Failed loading config: %s\n", e)
		return 1
	}
	log, e := config.NewLogger(cfg.LogLevel)
	if e != nil {
		errorStyle.Fprintf(os.Stderr, "Failed creating logger: %s\n", e)
		return 1
	}
	gin.SetMode(cfg.Server.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt,
		syscall.SIGTERM)
	defer stop()

	router := api.NewRouter(api.Config{
		Addr:    cfg.Server.Address(),
		BaseURL: "/api",
		Controllers: []i.Controller{
			mazeapi.NewMazeServer(mazeapi.Options{
				DefaultWidth:  cfg.Width,
				DefaultHeight: cfg.Height,
				MaxDimension:  cfg.Server.MaxDimension,
				MaxTraceCells: cfg.Server.MaxTraceCells,
				MaxErode:      cfg.Server.MaxErode,
				Logger:        log,
			}),
		},
		Logger: log,
	})
	e = router.Run(ctx)
	if e != nil {
		log.WithError(e).Error("Server failed")
		return 1
	}
	log.Info("Server stopped")
	return 0
}

func main() {
	os.Exit(run())
}
