package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/jrsteele09/go-sso-relay/authflow"
	"github.com/jrsteele09/go-sso-relay/internal/config"
	"github.com/jrsteele09/go-sso-relay/internal/secrets"
	"github.com/jrsteele09/go-sso-relay/provider"
	"github.com/jrsteele09/go-sso-relay/server"
	"github.com/jrsteele09/go-sso-relay/session"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("Error running server")
	}
	log.Info().Msg("Server stopped")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Bytes("stack", debug.Stack()).Msg("Recovered from panic")
			returnError = errors.New("panic recovered")
		}
	}()

	c, err := config.Load()
	if err != nil {
		return fmt.Errorf("[main run] failed to load configuration: %w", err)
	}
	setupLogging(c)
	displayAppname(c.GetAppName())

	if c.SessionSecretGenerated() {
		log.Warn().Msg("SESSION_SECRET is not set: using a random secret, sessions and login flows will not survive a restart")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	handler, cleanup, err := buildServer(ctx, c)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := &http.Server{
		Addr:              c.GetPort(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      c.GetProviderTimeout() + 30*time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- listenAndServe(srv)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}
	return shutdown(srv)
}

// buildServer wires configuration into the relay. The returned cleanup
// releases the session store and stops background janitors.
func buildServer(ctx context.Context, c config.Config) (http.Handler, func(), error) {
	master := c.GetSessionSecret()
	signingKey, err := secrets.Derive(master, secrets.PurposeStateSigning, 32)
	if err != nil {
		return nil, nil, err
	}
	sealingKey, err := secrets.Derive(master, secrets.PurposeSessionSealing, 32)
	if err != nil {
		return nil, nil, err
	}

	store, err := openSessionStore(ctx, c, sealingKey)
	if err != nil {
		return nil, nil, err
	}

	janitorCtx, stopJanitors := context.WithCancel(ctx)
	cleanup := func() {
		stopJanitors()
		if err := store.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close session store")
		}
	}

	if expirer, ok := store.(session.Expirer); ok {
		go session.RunJanitor(janitorCtx, "sessions", expirer, c.GetJanitorInterval())
	}

	flowRepo := authflow.NewInMemoryRepo(c.GetStateTTL(), time.Now)
	go session.RunJanitor(janitorCtx, "authflows", flowRepo, c.GetJanitorInterval())

	signer := authflow.NewStateSigner(signingKey, c.GetAppName(), c.GetStateTTL(), time.Now)
	flows := authflow.NewManager(signer, flowRepo, c.GetRequirePKCE())

	var opts []provider.Option
	verifier, err := provider.NewIDTokenVerifier(ctx, c)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	if verifier != nil {
		log.Info().Str("issuer", c.GetOIDCIssuer()).Str("jwks", c.GetOIDCJWKSURL()).Msg("ID token verification enabled")
		opts = append(opts, provider.WithIDTokenVerifier(verifier))
	}
	idp := provider.New(c, opts...)

	sessions := session.NewManager(store, c.GetSessionCookieName(), c.GetSessionMaxAge())
	srv, err := server.New(c, idp, sessions, flows)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return srv, cleanup, nil
}

func openSessionStore(ctx context.Context, c config.Config, sealingKey []byte) (session.Store, error) {
	sealer, err := session.NewSealer(sealingKey)
	if err != nil {
		return nil, err
	}

	switch c.GetSessionStore() {
	case config.StoreRedis:
		log.Info().Str("addr", c.GetRedisAddr()).Int("db", c.GetRedisDB()).Msg("Using redis session store")
		return session.OpenRedisStore(ctx, c.GetRedisAddr(), c.GetRedisPassword(), c.GetRedisDB(),
			session.WithSealer(sealer), session.WithKeyPrefix(c.GetRedisKeyPrefix()))
	case config.StoreSQLite:
		log.Info().Str("path", c.GetSQLitePath()).Msg("Using sqlite session store")
		return session.OpenSQLiteStore(ctx, c.GetSQLitePath(), session.WithSealer(sealer))
	default:
		log.Info().Msg("Using in-memory session store")
		return session.NewMemoryStore(), nil
	}
}

func listenAndServe(server *http.Server) error {
	log.Info().Str("addr", server.Addr).Msg("Server listening")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server.ListenAndServe %w", err)
	}
	return nil
}

func shutdown(server *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

func setupLogging(c config.Config) {
	level, err := zerolog.ParseLevel(c.GetLogLevel())
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339Nano

	if c.GetEnv() == "DEV" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
