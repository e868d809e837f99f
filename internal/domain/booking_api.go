package domain

import "context"

// ShowParams identifies a show the way the routing surface does: the entity
// kind ("movie", "event"), the vendor/venue id, the venue kind ("theater"),
// and the show id.
type ShowParams struct {
	EntityType string `validate:"required,alpha"`
	VendorID   string `validate:"required"`
	VenueType  string `validate:"required,alpha"`
	ShowID     string `validate:"required"`
}

// BookingAPI is the server surface the client consumes. Implementations live
// in internal/api; tests use the hand mocks in internal/mocks.
type BookingAPI interface {
	// VerifyToken exchanges a bearer token for the user it identifies.
	VerifyToken(ctx context.Context, token string) (*User, error)

	// UpdateUser sends a partial profile update and returns the server's
	// copy of the user.
	UpdateUser(ctx context.Context, userID string, fields UserUpdate) (*User, error)

	// FetchShow loads the show record addressed by params, including the
	// nested entity and venue objects.
	FetchShow(ctx context.Context, params ShowParams) (*Show, error)

	// CreatePaymentLink asks the gateway for a hosted payment page.
	CreatePaymentLink(ctx context.Context, order PurchaseOrder) (*PaymentLink, error)

	// VerifyPayment queries the current status of a payment link.
	VerifyPayment(ctx context.Context, linkID string) (*PaymentResult, error)

	// SendInvoice asks the server to mail the receipt for a paid link.
	SendInvoice(ctx context.Context, email string, result PaymentResult) error
}
