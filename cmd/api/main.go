package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/tallyapp/tally/internal/activity"
	activityStore "github.com/tallyapp/tally/internal/activity/store"
	"github.com/tallyapp/tally/internal/auth"
	authStore "github.com/tallyapp/tally/internal/auth/store"
	"github.com/tallyapp/tally/internal/child"
	childStore "github.com/tallyapp/tally/internal/child/store"
	"github.com/tallyapp/tally/internal/config"
	"github.com/tallyapp/tally/internal/database"
	tallyHttp "github.com/tallyapp/tally/internal/http"
	activityHandler "github.com/tallyapp/tally/internal/http/activity"
	authHandler "github.com/tallyapp/tally/internal/http/auth"
	childHandler "github.com/tallyapp/tally/internal/http/child"
	messageHandler "github.com/tallyapp/tally/internal/http/message"
	pointsHandler "github.com/tallyapp/tally/internal/http/points"
	"github.com/tallyapp/tally/internal/ledger"
	ledgerStore "github.com/tallyapp/tally/internal/ledger/store"
	"github.com/tallyapp/tally/internal/message"
	messageStore "github.com/tallyapp/tally/internal/message/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString(), database.PoolLimits{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	tokens := auth.NewAuthenticator(cfg.Auth.Secret, cfg.Auth.TokenTTL)

	var (
		children   = childStore.New(db)
		entries    = ledgerStore.New(db)
		activities = activityStore.New(db)
		users      = authStore.New(db)
		messages   = messageStore.New(db)
	)

	var (
		authService     = auth.NewService(users, children, tokens)
		activityService = activity.NewService(activities)
		childService    = child.NewService(children, entries)
		ledgerService   = ledger.NewService(entries, activities, children)
		messageService  = message.NewService(messages)
	)

	var (
		authH     = authHandler.NewHandler(authService)
		childH    = childHandler.NewHandler(childService)
		pointsH   = pointsHandler.NewHandler(ledgerService)
		activityH = activityHandler.NewHandler(activityService)
		messageH  = messageHandler.NewHandler(messageService)
	)

	router := tallyHttp.New(tokens, cfg.CORS.AllowedOrigins, authH, childH, pointsH, activityH, messageH)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "addr", server.Addr)

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
