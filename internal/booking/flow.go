// Package booking drives the seat-selection flow for a single show: load the
// record, confirm a seat count, accumulate a bounded selection, and hand off
// to payment.
package booking

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/showsphere/showsphere-cli/internal/domain"
)

// LinkCreator is the slice of the session the flow needs for the payment
// hand-off.
type LinkCreator interface {
	User() *domain.User
	CreateLink(ctx context.Context, order domain.PurchaseOrder) (*domain.PaymentLink, error)
}

type Flow struct {
	api    domain.BookingAPI
	logger *slog.Logger
	params domain.ShowParams

	mu          sync.Mutex
	show        *domain.Show
	selection   *domain.Selection
	booked      map[string]bool
	unavailable map[string]bool
	creating    bool
}

func NewFlow(bookingAPI domain.BookingAPI, params domain.ShowParams, logger *slog.Logger) *Flow {
	return &Flow{
		api:         bookingAPI,
		logger:      logger,
		params:      params,
		booked:      map[string]bool{},
		unavailable: map[string]bool{},
	}
}

// Load fetches the show record. Failure aborts the flow; the caller surfaces
// the error and navigates back. No retry.
func (f *Flow) Load(ctx context.Context) error {
	show, err := f.api.FetchShow(ctx, f.params)
	if err != nil {
		f.logger.Error("failed to load show", "show_id", f.params.ShowID, "error", err)
		return err
	}

	booked := make(map[string]bool, len(show.TicketsBooked))
	for _, label := range show.TicketsBooked {
		booked[label] = true
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.show = show
	f.booked = booked

	return nil
}

// ConfirmSeatCount fixes the selection cap for the rest of the flow. It can
// be confirmed once; the cap is immutable afterwards.
func (f *Flow) ConfirmSeatCount(count int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.selection != nil {
		return domain.ErrAlreadyConfirmed
	}

	selection, err := domain.NewSelection(count)
	if err != nil {
		return err
	}

	f.selection = selection

	return nil
}

// MaxSeatCount returns the confirmed cap, or zero before confirmation.
func (f *Flow) MaxSeatCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.selection == nil {
		return 0
	}

	return f.selection.Max()
}

// MarkUnavailable flags seats the grid should render as unavailable. They
// cannot be selected.
func (f *Flow) MarkUnavailable(labels ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, label := range labels {
		f.unavailable[label] = true
	}
}

// Select adds a seat to the selection after validating the label against the
// grid bounds and the seat's occupancy.
func (f *Flow) Select(label string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.show == nil {
		return domain.ErrShowNotFound
	}

	if f.selection == nil {
		return domain.ErrNotConfirmed
	}

	pos, err := domain.ParseSeatLabel(label)
	if err != nil {
		return err
	}

	if err := f.show.Venue.Layout.SeatsLayout.Validate(pos); err != nil {
		return err
	}

	if f.booked[label] || f.unavailable[label] {
		return fmt.Errorf("%w: %s", domain.ErrSeatUnavailable, label)
	}

	return f.selection.Add(label)
}

// Deselect removes a seat from the selection.
func (f *Flow) Deselect(label string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.selection == nil {
		return domain.ErrNotConfirmed
	}

	return f.selection.Remove(label)
}

// SelectedSeats returns the selected labels in selection order.
func (f *Flow) SelectedSeats() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.selection == nil {
		return nil
	}

	return f.selection.Seats()
}

// TotalPrice recomputes the total from the current selection and grid on
// every call: Σ basePrice × seat.value. Zero until the show is loaded.
func (f *Flow) TotalPrice() decimal.Decimal {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.show == nil || f.selection == nil {
		return decimal.Zero
	}

	basePrice := decimal.NewFromFloat(f.show.BasePrice)
	layout := f.show.Venue.Layout.SeatsLayout

	total := decimal.Zero

	for _, label := range f.selection.Seats() {
		pos, err := domain.ParseSeatLabel(label)
		if err != nil {
			continue
		}

		seat, err := layout.SeatAt(pos)
		if err != nil {
			continue
		}

		total = total.Add(basePrice.Mul(decimal.NewFromFloat(seat.Value)))
	}

	return total
}

// CanProceed reports whether the selection holds exactly the confirmed count.
func (f *Flow) CanProceed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.show != nil && f.selection != nil && f.selection.Complete()
}

// OriginPath is the logical route of this flow, preserved for the post-login
// return when an unauthenticated user tries to proceed.
func (f *Flow) OriginPath() string {
	return path.Join("/", f.params.EntityType, f.params.VendorID, f.params.VenueType, f.params.ShowID)
}

// Show returns the loaded show record, or nil.
func (f *Flow) Show() *domain.Show {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.show
}

// ProceedToPayment assembles the purchase order and delegates to the
// session's CreateLink. It refuses to run without an authenticated user,
// with an incomplete selection, or while a previous call is still in flight,
// so rapid repeated confirms cannot create duplicate links.
func (f *Flow) ProceedToPayment(ctx context.Context, creator LinkCreator) (*domain.PaymentLink, error) {
	user := creator.User()
	if user == nil {
		return nil, domain.ErrLoginRequired
	}

	f.mu.Lock()

	if f.show == nil || f.selection == nil || !f.selection.Complete() {
		f.mu.Unlock()
		return nil, domain.ErrSelectionIncomplete
	}

	if f.creating {
		f.mu.Unlock()
		return nil, domain.ErrPaymentInProgress
	}

	f.creating = true
	show := f.show
	seats := f.selection.Seats()
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.creating = false
		f.mu.Unlock()
	}()

	order := domain.PurchaseOrder{
		Purpose:  f.params.EntityType,
		UserID:   user.ID,
		VendorID: show.Entity.OrganizedBy,
		Amount:   f.TotalPrice(),
		MetaData: domain.OrderMetaData{
			ShowID:      show.ID,
			EntityKey:   f.params.EntityType,
			EntityTitle: show.Entity.Title,
			VenueKey:    f.params.VenueType,
			VenueName:   show.Venue.Name,
			Slot:        show.Slot,
			Date:        show.Date,
			SeatsBooked: seats,
		},
	}

	link, err := creator.CreateLink(ctx, order)
	if err != nil {
		f.logger.Error("payment link creation failed", "show_id", show.ID, "error", err)
		return nil, err
	}

	return link, nil
}
