package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/jobtrends/dashboard/internal/api"
	"github.com/jobtrends/dashboard/internal/config"
	"github.com/jobtrends/dashboard/internal/dataset"
)

func main() {
	cfg, err := config.Parse()
	if err != nil {
		log.Fatalf("parse config: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.JSONSerializer = api.JSONSerializer{}
	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	// The API goes live immediately; data routes answer 503 until the
	// dataset lands.
	h := api.NewHandler(nil, cfg.ExportFilename)
	h.RegisterRoutes(e)

	go func() {
		t0 := time.Now()
		tbl, err := dataset.Load(cfg.DataFile)
		if err != nil {
			// Missing input is fatal: one message, no partial dashboard.
			log.Fatalf("load dataset %s: %v", cfg.DataFile, err)
		}
		h.SetTable(tbl)
		log.Printf("dataset ready: %d rows in %v", tbl.Len(), time.Since(t0))
	}()

	e.Logger.Fatal(e.Start(cfg.Addr))
}
