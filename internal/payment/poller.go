// Package payment handles the return leg of the gateway round trip: waiting
// for the browser redirect back and resolving the payment link to a terminal
// outcome.
package payment

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/showsphere/showsphere-cli/internal/domain"
)

// StatusSource is the slice of the session the poller drives. Each call is a
// single status check; the poller adds bounded retries on top.
type StatusSource interface {
	LinkStatus(ctx context.Context) (*domain.PaymentResult, error)
}

var errStillPending = errors.New("payment status still pending")

type Poller struct {
	logger          *slog.Logger
	initialInterval time.Duration
	maxElapsedTime  time.Duration
}

type PollerOption func(*Poller)

func WithInitialInterval(d time.Duration) PollerOption {
	return func(p *Poller) {
		p.initialInterval = d
	}
}

func WithMaxElapsedTime(d time.Duration) PollerOption {
	return func(p *Poller) {
		p.maxElapsedTime = d
	}
}

func NewPoller(logger *slog.Logger, opts ...PollerOption) *Poller {
	p := &Poller{
		logger:          logger,
		initialInterval: 2 * time.Second,
		maxElapsedTime:  2 * time.Minute,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Wait polls the link status with exponential backoff until it reaches a
// terminal or error state, the backoff budget is spent, or ctx is canceled.
// A spent budget returns an empty pending result: the link id stays persisted
// and the user can resume manually later.
func (p *Poller) Wait(ctx context.Context, src StatusSource) (*domain.PaymentResult, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.initialInterval
	b.MaxElapsedTime = p.maxElapsedTime

	result, err := backoff.RetryWithData(func() (*domain.PaymentResult, error) {
		result, err := src.LinkStatus(ctx)
		if err != nil {
			return nil, backoff.Permanent(err)
		}

		if result.Pending() {
			p.logger.Info("payment not settled yet, retrying")
			return nil, errStillPending
		}

		return result, nil
	}, backoff.WithContext(b, ctx))

	if err != nil {
		if errors.Is(err, errStillPending) {
			p.logger.Warn("payment still pending after polling budget, leaving link id in place")
			return &domain.PaymentResult{}, nil
		}

		return nil, err
	}

	return result, nil
}
