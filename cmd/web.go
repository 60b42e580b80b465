/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/flamego/csrf"
	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"
	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/techcare/dashboard/config"
	"github.com/techcare/dashboard/dashboard"
	"github.com/techcare/dashboard/metrics"
	"github.com/techcare/dashboard/routes"
	"github.com/techcare/dashboard/static"
	"github.com/techcare/dashboard/templates"
)

const shutdownTimeout = 10 * time.Second

var CmdStart = &cli.Command{
	Name:    "start",
	Aliases: []string{"run"},
	Usage:   "Start the dashboard web server",
	Flags: []cli.Flag{
		configFlag,
		logLevelFlag,
		&cli.StringFlag{
			Name:  "port",
			Value: "8080",
			Usage: "the web server port",
		},
		&cli.BoolFlag{
			Name:  "dev",
			Value: false,
			Usage: "enables development mode (for templates)",
		},
	},
	Action: start,
}

func start(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	hooks, err := dashboard.ParseHooks(cfg.ViewHooks)
	if err != nil {
		return fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
	}

	m := metrics.NewManager(metrics.WithProcessCollectors())

	client, err := newPatientClient(cfg, m)
	if err != nil {
		return err
	}

	ctl := dashboard.NewController(client, bannerTiming(cfg), m)

	f, err := newWeb(cfg, ctl, m, routes.Options{Hooks: hooks})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%s", cfg.Port),
		Handler:      f,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 2 * time.Minute,
		ErrorLog:     requestStdLogger,
	}

	errCh := make(chan error, 1)
	go func() {
		appLogger.Info("starting web server", "port", cfg.Port, "api", cfg.APIBaseURL, "dev", cfg.Dev)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return fmt.Errorf("web server failed: %w", err)
	case <-ctx.Done():
	}

	appLogger.Info("shutting down web server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

func newWeb(cfg *config.Config, ctl *dashboard.Controller, m *metrics.Manager, opts routes.Options) (*flamego.Flame, error) {
	f := flamego.New()
	f.Use(flamego.Recovery())
	f.Map(m)
	f.Use(routes.RequestLogger)

	var templateOpts template.Options
	if cfg.Dev {
		templateOpts.Directory = "templates"
	} else {
		fs, err := template.EmbedFS(templates.Templates, ".", []string{".html"})
		if err != nil {
			return nil, fmt.Errorf("failed to load templates: %w", err)
		}
		templateOpts.FileSystem = fs
	}

	secret := cfg.CSRFSecret
	if secret == "" {
		secret = uuid.NewString()
		webLogger.Warn("csrf_secret not set, using a per-process secret")
	}

	f.Use(session.Sessioner())
	f.Use(csrf.Csrfer(csrf.Options{Secret: secret}))
	f.Use(template.Templater(templateOpts))
	f.Use(flamego.Static(flamego.StaticOptions{
		FileSystem: http.FS(static.Static),
	}))
	f.Use(routes.CSRFInjector())
	f.Use(routes.NoCacheHeaders())

	f.Map(ctl)
	f.Map(opts)

	f.Get("/", routes.Dashboard)
	f.Post("/patients/select", csrf.Validate, routes.SelectPatient)
	f.Post("/labs/select", csrf.Validate, routes.SelectLabResult)
	f.Post("/labs/download", csrf.Validate, routes.DownloadLabResult)
	f.Post("/show-all", csrf.Validate, routes.ShowAll)

	f.Get("/healthz", routes.Healthz)
	f.Get("/metrics", m.Handler().ServeHTTP)

	configureEmptyNotFoundHandler(f)

	return f, nil
}

func configureEmptyNotFoundHandler(f *flamego.Flame) {
	f.NotFound(func(c flamego.Context) {
		c.ResponseWriter().WriteHeader(http.StatusNotFound)
	})
}
