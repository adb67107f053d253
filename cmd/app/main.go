package main

import (
	"context"
	"expvar"
	"html/template"
	"log"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/NikitaSawant21/Web-Asn4/internal/config"
	"github.com/NikitaSawant21/Web-Asn4/internal/data"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const version = "1.0.0"

type application struct {
	logger        *slog.Logger
	config        *config.Config
	models        data.Models
	templateCache map[string]*template.Template
}

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalln(err)
	}
	logger := setupLogger(cfg.Env)

	employeesClient, err := openClient(cfg.Employees.URI)
	if err != nil {
		logger.Error("employees store connection failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer disconnect(logger, employeesClient)

	employeesColl := employeesClient.
		Database(cfg.Employees.Database).
		Collection(cfg.Employees.Collection)
	logger.Info("employees store connected", slog.String("database", cfg.Employees.Database))

	// The movies store is optional. A configured but unreachable store is a
	// deployment mistake, so that still fails startup.
	var moviesColl *mongo.Collection
	if cfg.MoviesConfigured() {
		moviesClient, err := openClient(cfg.Movies.URI)
		if err != nil {
			logger.Error("movies store connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer disconnect(logger, moviesClient)

		moviesColl = moviesClient.
			Database(cfg.Movies.Database).
			Collection(cfg.Movies.Collection)
		logger.Info("movies store connected", slog.String("database", cfg.Movies.Database))
	} else {
		logger.Info("movies store not configured, movie routes disabled")
	}

	expvar.NewString("version").Set(version)
	expvar.Publish("goroutines", expvar.Func(func() interface{} {
		return runtime.NumGoroutine()
	}))

	var databaseStats bson.Raw
	err = employeesColl.Database().RunCommand(
		context.Background(),
		bson.D{{Key: "dbStats", Value: 1}},
	).Decode(&databaseStats)
	if err != nil {
		logger.Error("err", slog.String("db stats", err.Error()))
	} else {
		expvar.Publish("database", expvar.Func(func() interface{} {
			return databaseStats.String()
		}))
	}

	expvar.Publish("timestamp", expvar.Func(func() interface{} {
		return time.Now().Unix()
	}))

	templateCache, err := newTemplateCache()
	if err != nil {
		logger.Error("template cache failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	app := &application{
		logger:        logger,
		config:        cfg,
		models:        data.NewModels(employeesColl, moviesColl),
		templateCache: templateCache,
	}
	if err := app.serve(); err != nil {
		log.Fatalln(err)
	}
}
