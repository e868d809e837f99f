// Package session owns the authenticated user for the lifetime of the
// process. It is the single writer for the user and the persisted token and
// link id; views read snapshots or subscribe to change notifications.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/showsphere/showsphere-cli/internal/api"
	"github.com/showsphere/showsphere-cli/internal/domain"
	"github.com/showsphere/showsphere-cli/internal/store"
)

const msgTokenExpired = "Token Expired"

// State is an immutable snapshot of the session published to subscribers.
type State struct {
	User    *domain.User
	Loading bool
	Message string
}

type Session struct {
	api       domain.BookingAPI
	store     store.Store
	validator *validator.Validate
	logger    *slog.Logger

	mu      sync.Mutex
	user    *domain.User
	loading bool
	message string
	subs    []chan State
}

// New creates a session in the loading state; Bootstrap resolves it.
func New(bookingAPI domain.BookingAPI, st store.Store, v *validator.Validate, logger *slog.Logger) *Session {
	return &Session{
		api:       bookingAPI,
		store:     st,
		validator: v,
		logger:    logger,
		loading:   true,
	}
}

// Bootstrap resolves the persisted token into a user. The loading flag clears
// exactly once on every path: no token, expired token, suspended user,
// network failure.
func (s *Session) Bootstrap(ctx context.Context) error {
	defer s.finishLoading()

	token, err := s.store.Get(store.KeyToken)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}

		return fmt.Errorf("reading stored token: %w", err)
	}

	if tokenExpired(token) {
		s.logger.Info("stored token is past its expiry, skipping verification")
		s.expireToken()
		return nil
	}

	user, err := s.api.VerifyToken(ctx, token)
	if err != nil {
		if api.IsUnauthorized(err) {
			s.expireToken()
			return nil
		}

		return fmt.Errorf("verifying token: %w", err)
	}

	if user.IsSuspended {
		s.logger.Warn("suspended account not adopted into session", "user_id", user.ID)
		return nil
	}

	s.setUser(user)

	return nil
}

// Refresh re-verifies the stored token and adopts the returned user.
func (s *Session) Refresh(ctx context.Context) error {
	token, err := s.store.Get(store.KeyToken)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.ErrNotAuthenticated
		}

		return err
	}

	user, err := s.api.VerifyToken(ctx, token)
	if err != nil {
		return err
	}

	if user.IsSuspended {
		return domain.ErrUserSuspended
	}

	s.setUser(user)

	return nil
}

// Logout clears the in-memory user and the persisted token. No network call.
func (s *Session) Logout() {
	if err := s.store.Delete(store.KeyToken); err != nil {
		s.logger.Error("failed to delete stored token", "error", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.publishLocked()
}

// SetToken persists a fresh bearer token, e.g. after an external login.
func (s *Session) SetToken(token string) error {
	return s.store.Set(store.KeyToken, token)
}

// UpdateUser sends a partial profile update and adopts the server's copy of
// the user.
func (s *Session) UpdateUser(ctx context.Context, fields domain.UserUpdate) (*domain.User, error) {
	user := s.User()
	if user == nil {
		return nil, domain.ErrNotAuthenticated
	}

	if err := s.validator.Struct(fields); err != nil {
		return nil, err
	}

	updated, err := s.api.UpdateUser(ctx, user.ID, fields)
	if err != nil {
		s.logger.Error("profile update failed", "user_id", user.ID, "error", err)
		return nil, err
	}

	s.setUser(updated)

	return updated, nil
}

// CreateLink requests a payment link for the order and persists its id so the
// flow survives the redirect to the external gateway. The caller navigates to
// the returned link URL.
func (s *Session) CreateLink(ctx context.Context, order domain.PurchaseOrder) (*domain.PaymentLink, error) {
	if err := s.validator.Struct(order); err != nil {
		return nil, err
	}

	link, err := s.api.CreatePaymentLink(ctx, order)
	if err != nil {
		return nil, err
	}

	if err := s.store.Set(store.KeyLinkID, link.LinkID); err != nil {
		return nil, fmt.Errorf("persisting link id %s: %w", link.LinkID, err)
	}

	s.logger.Info("payment link created", "link_id", link.LinkID)

	return link, nil
}

// LinkStatus resumes a payment flow after the gateway round trip. No user or
// no stored link id means there is nothing to resume, reported as
// ErrNotAuthenticated and ErrNoPendingPayment respectively; neither performs
// a network call. A PAID result triggers one best-effort invoice dispatch. A
// terminal result releases the stored link id; a non-terminal one keeps it
// and yields an empty pending result. Verification failure yields a synthetic
// ERROR result, never an error return.
func (s *Session) LinkStatus(ctx context.Context) (*domain.PaymentResult, error) {
	user := s.User()
	if user == nil {
		return nil, domain.ErrNotAuthenticated
	}

	linkID, err := s.store.Get(store.KeyLinkID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domain.ErrNoPendingPayment
		}

		return nil, fmt.Errorf("reading stored link id: %w", err)
	}

	result, err := s.api.VerifyPayment(ctx, linkID)
	if err != nil {
		s.logger.Error("payment verification failed", "link_id", linkID, "error", err)

		return &domain.PaymentResult{
			Status:  domain.PaymentStatusError,
			Message: "Failed to verify payment. Please try again.",
		}, nil
	}

	if result.Status == domain.PaymentStatusPaid {
		if err := s.api.SendInvoice(ctx, user.Email, *result); err != nil {
			// best effort: a failed invoice mail does not change the outcome
			s.logger.Error("invoice dispatch failed", "link_id", linkID, "error", err)
		}
	}

	if !result.Status.Terminal() {
		return &domain.PaymentResult{}, nil
	}

	if err := s.store.Delete(store.KeyLinkID); err != nil {
		s.logger.Error("failed to release stored link id", "link_id", linkID, "error", err)
	}

	return result, nil
}

// User returns the current user, or nil.
func (s *Session) User() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.user
}

// Loading reports whether the auth bootstrap is still in flight.
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loading
}

// Message returns the last user-facing auth message ("Token Expired").
func (s *Session) Message() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.message
}

// Subscribe returns a channel of state snapshots. Slow subscribers drop
// intermediate snapshots rather than blocking the writer.
func (s *Session) Subscribe() <-chan State {
	ch := make(chan State, 8)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.subs = append(s.subs, ch)

	return ch
}

func (s *Session) expireToken() {
	if err := s.store.Delete(store.KeyToken); err != nil {
		s.logger.Error("failed to delete stored token", "error", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.message = msgTokenExpired
	s.publishLocked()
}

func (s *Session) setUser(user *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = user
	s.publishLocked()
}

func (s *Session) finishLoading() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loading {
		return
	}

	s.loading = false
	s.publishLocked()
}

func (s *Session) publishLocked() {
	snap := State{User: s.user, Loading: s.loading, Message: s.message}

	for _, ch := range s.subs {
		select {
		case ch <- snap:
		default:
		}
	}
}
