// Package app wires the booking client together and drives it from the
// command line.
package app

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/showsphere/showsphere-cli/internal/api"
	"github.com/showsphere/showsphere-cli/internal/payment"
	"github.com/showsphere/showsphere-cli/internal/session"
	"github.com/showsphere/showsphere-cli/internal/store"
	appvalidator "github.com/showsphere/showsphere-cli/internal/validator"
	"github.com/showsphere/showsphere-cli/internal/vcs"
)

var (
	version = vcs.Version()
)

type application struct {
	config    config
	logger    *slog.Logger
	validator *validator.Validate
	store     store.Store
	client    *api.Client
	session   *session.Session
	poller    *payment.Poller
}

type config struct {
	baseURL string
	env     string

	stateFile string
	redisURL  string

	callbackAddr    string
	callbackTimeout time.Duration

	requestTimeout time.Duration
	pollInterval   time.Duration
	pollBudget     time.Duration

	book struct {
		entityType string
		vendorID   string
		venueType  string
		showID     string
		seatCount  int
		seats      string
	}

	update struct {
		name  string
		email string
		phone string
	}

	token string
}

func Run() error {
	// .env is optional; flags and real env vars win
	_ = godotenv.Load()

	var cfg config

	flag.StringVar(&cfg.baseURL, "base-url", envOr("SHOWSPHERE_BASE_URL", "http://localhost:5000"), "Booking API base URL")
	flag.StringVar(&cfg.env, "env", envOr("SHOWSPHERE_ENV", "dev"), "Environment (dev|staging|prod)")

	flag.StringVar(&cfg.stateFile, "state-file", "", "Path of the local state file (default ~/.showsphere/state.json)")
	flag.StringVar(&cfg.redisURL, "redis-url", os.Getenv("SHOWSPHERE_REDIS_URL"), "Redis URL for shared state (optional)")

	flag.StringVar(&cfg.callbackAddr, "callback-addr", "127.0.0.1:0", "Address of the local payment-return listener")
	flag.DurationVar(&cfg.callbackTimeout, "callback-timeout", 10*time.Minute, "How long to wait for the gateway to redirect back")

	flag.DurationVar(&cfg.requestTimeout, "request-timeout", 15*time.Second, "Per-request HTTP timeout")
	flag.DurationVar(&cfg.pollInterval, "poll-interval", 2*time.Second, "Initial payment-status polling interval")
	flag.DurationVar(&cfg.pollBudget, "poll-budget", 2*time.Minute, "Total payment-status polling budget")

	flag.StringVar(&cfg.book.entityType, "entity-type", "movie", "Entity kind of the show (movie|event)")
	flag.StringVar(&cfg.book.vendorID, "vendor", "", "Vendor/venue id from the show route")
	flag.StringVar(&cfg.book.venueType, "venue-type", "theater", "Venue kind of the show")
	flag.StringVar(&cfg.book.showID, "show", "", "Show id to book")
	flag.IntVar(&cfg.book.seatCount, "seat-count", 0, "Number of seats to book (1-4)")
	flag.StringVar(&cfg.book.seats, "seats", "", "Comma-separated seat labels, e.g. C5,C6")

	flag.StringVar(&cfg.update.name, "name", "", "New profile name (update command)")
	flag.StringVar(&cfg.update.email, "email", "", "New profile email (update command)")
	flag.StringVar(&cfg.update.phone, "phone", "", "New profile phone (update command)")

	flag.StringVar(&cfg.token, "token", "", "Bearer token (login command)")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	st, err := newStore(cfg)
	if err != nil {
		return err
	}

	v := appvalidator.NewValidator()
	client := api.NewClient(cfg.baseURL, logger, api.WithTimeout(cfg.requestTimeout))

	app := &application{
		config:    cfg,
		logger:    logger,
		validator: v,
		store:     st,
		client:    client,
		session:   session.New(client, st, v, logger),
		poller: payment.NewPoller(logger,
			payment.WithInitialInterval(cfg.pollInterval),
			payment.WithMaxElapsedTime(cfg.pollBudget),
		),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.run(ctx, flag.Arg(0))
}

func (app *application) run(ctx context.Context, command string) error {
	switch command {
	case "book":
		return app.book(ctx)
	case "resume":
		return app.resume(ctx)
	case "login":
		return app.login(ctx)
	case "logout":
		return app.logout(ctx)
	case "whoami":
		return app.whoami(ctx)
	case "update":
		return app.update(ctx)
	default:
		return fmt.Errorf("unknown command %q (want book|resume|login|logout|whoami|update)", command)
	}
}

func newStore(cfg config) (store.Store, error) {
	if cfg.redisURL != "" {
		client, err := newRedisClient(cfg.redisURL)
		if err != nil {
			return nil, err
		}

		return store.NewRedisStore(client, "showsphere"), nil
	}

	path := cfg.stateFile
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}

		path = filepath.Join(home, ".showsphere", "state.json")
	}

	return store.NewFileStore(path)
}

func newRedisClient(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return rdb, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
