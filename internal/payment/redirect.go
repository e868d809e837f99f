package payment

import (
	"context"
	"errors"

	"github.com/showsphere/showsphere-cli/internal/domain"
)

// Outcome is the terminal view state of the redirect handler:
// LOADING → {ERROR | PAID | FAILED | elsewhere}.
type Outcome string

const (
	OutcomeLogin   Outcome = "login"
	OutcomeHome    Outcome = "home"
	OutcomePaid    Outcome = "paid"
	OutcomeFailed  Outcome = "failed"
	OutcomeError   Outcome = "error"
	OutcomePending Outcome = "pending"
)

// ErrAuthNotResolved is returned when Resume runs before the auth bootstrap
// has finished; the caller must not race an unresolved user identity.
var ErrAuthNotResolved = errors.New("auth bootstrap has not finished")

type Resolution struct {
	Outcome Outcome
	Result  *domain.PaymentResult
}

// Resumer is the slice of the session Resume needs.
type Resumer interface {
	StatusSource
	User() *domain.User
	Loading() bool
}

// Resume drives the post-redirect flow to exactly one outcome. No user means
// the login view; no pending link means the default (home) view; otherwise
// the polled result decides.
func (p *Poller) Resume(ctx context.Context, sess Resumer) (Resolution, error) {
	if sess.Loading() {
		return Resolution{}, ErrAuthNotResolved
	}

	if sess.User() == nil {
		return Resolution{Outcome: OutcomeLogin}, nil
	}

	result, err := p.Wait(ctx, sess)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoPendingPayment):
			return Resolution{Outcome: OutcomeHome}, nil
		case errors.Is(err, domain.ErrNotAuthenticated):
			return Resolution{Outcome: OutcomeLogin}, nil
		default:
			return Resolution{}, err
		}
	}

	switch result.Status {
	case domain.PaymentStatusPaid:
		return Resolution{Outcome: OutcomePaid, Result: result}, nil
	case domain.PaymentStatusFailed:
		return Resolution{Outcome: OutcomeFailed, Result: result}, nil
	case domain.PaymentStatusError:
		return Resolution{Outcome: OutcomeError, Result: result}, nil
	default:
		return Resolution{Outcome: OutcomePending, Result: result}, nil
	}
}
