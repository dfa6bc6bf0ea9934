package app

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/pinmoji/internal/adapter/picture"
	"github.com/heartmarshall/pinmoji/internal/auth"
	"github.com/heartmarshall/pinmoji/internal/config"
	"github.com/heartmarshall/pinmoji/internal/mirror"
	"github.com/heartmarshall/pinmoji/internal/thumbnail"
	"github.com/heartmarshall/pinmoji/internal/transport/middleware"
	"github.com/heartmarshall/pinmoji/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, opens the
// document and blob stores, starts the sync mirror and serves the local HTTP
// surface until ctx is cancelled.
func Run(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("backend", cfg.Backend.Driver),
		slog.String("storage", cfg.Storage.Driver),
	)

	docs, err := OpenDocuments(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer docs.Close()

	blobs, err := OpenBlobs(ctx, cfg.Storage, logger)
	if err != nil {
		return err
	}
	defer blobs.Close()

	session := auth.NewSession(auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer))
	if cfg.Auth.IDToken != "" {
		user, err := session.SignIn(cfg.Auth.IDToken)
		if err != nil {
			return fmt.Errorf("startup sign-in: %w", err)
		}
		logger.Info("signed in", slog.String("user_id", user.UID))
	}

	m := mirror.New(logger, mirror.NewStore(),
		docs.store, blobs.store,
		picture.NewSource(logger), thumbnail.New(), session,
		mirror.WithThumbnailWidth(cfg.Mirror.ThumbnailWidth),
	)
	defer m.Subscribe(stateLogger(logger))()

	if err := m.Start(ctx); err != nil {
		return fmt.Errorf("start mirror: %w", err)
	}
	defer m.Stop()

	if room := cfg.Mirror.DefaultRoom; room != "" {
		if err := m.SubscribeRoom(ctx, room); err != nil {
			logger.Warn("default room not opened", slog.String("room", room), slog.String("error", err.Error()))
		}
	}

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	mirrorHandler := rest.NewMirrorHandler(m, logger)

	router := rest.NewRouter(rest.Routes{
		Health: rest.NewHealthHandler(Version, map[string]rest.Checker{
			"documents": docs.health,
			"blobs":     blobs.store,
		}),
		Mirror:        mirrorHandler,
		Session:       rest.NewSessionHandler(session, logger),
		Blobs:         blobs.handler,
		BlobPrefix:    blobs.prefix,
		ItemsLimit:    limiter.Limit("items", cfg.RateLimit.ItemsPerMinute),
		MessagesLimit: limiter.Limit("messages", cfg.RateLimit.MessagesPerMinute),
	})

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Identity(session),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)(router)

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}
	srv.RegisterOnShutdown(mirrorHandler.Close)

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// stateLogger reports mirror state changes at debug level.
func stateLogger(logger *slog.Logger) func(mirror.State) {
	log := logger.With("component", "state")
	return func(s mirror.State) {
		attrs := []any{
			slog.Int("items", len(s.Items)),
			slog.String("room", s.Room),
			slog.Int("messages", len(s.Messages)),
			slog.Bool("loading", s.Loading),
		}
		if s.Err != nil {
			attrs = append(attrs, slog.String("error", s.Err.Error()))
		}
		log.Debug("state published", attrs...)
	}
}
