package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusFailed  PaymentStatus = "FAILED"
	PaymentStatusPending PaymentStatus = "PENDING"
	// PaymentStatusError is synthesized client-side when verification itself
	// fails; the server never returns it.
	PaymentStatusError PaymentStatus = "ERROR"
)

// Terminal reports whether the status ends the payment flow. Only a terminal
// status releases the persisted link identifier.
func (s PaymentStatus) Terminal() bool {
	return s == PaymentStatusPaid || s == PaymentStatusFailed
}

// PaymentLink is the server's answer to a create-link request. The gateway is
// reached by navigating to URL; LinkID correlates the flow across the
// round trip.
type PaymentLink struct {
	LinkID string `json:"link_id"`
	URL    string `json:"link_url"`
}

// PurchaseOrder describes the purchase a payment link is created for.
type PurchaseOrder struct {
	Purpose  string          `json:"purpose" validate:"required,alpha"`
	UserID   string          `json:"user" validate:"required"`
	VendorID string          `json:"vendor" validate:"required"`
	Amount   decimal.Decimal `json:"amount" validate:"decimal_positive"`
	MetaData OrderMetaData   `json:"metaData"`
}

// OrderMetaData is echoed back by the verification endpoint and rendered on
// the receipt. EntityKey and VenueKey name the JSON keys the entity title and
// venue name are serialized under ("movie", "theater", ...), matching how the
// server stores them.
type OrderMetaData struct {
	ShowID      string    `json:"showId" validate:"required"`
	EntityKey   string    `json:"-"`
	EntityTitle string    `json:"-"`
	VenueKey    string    `json:"-"`
	VenueName   string    `json:"-"`
	Slot        string    `json:"slot"`
	Date        time.Time `json:"date"`
	SeatsBooked []string  `json:"seatsBooked" validate:"min=1,max=4,dive,seat_label"`
}

// PaymentResult is the outcome published after a verification attempt. A zero
// Status means the link has not reached a terminal state yet.
type PaymentResult struct {
	Status    PaymentStatus   `json:"status"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"createdAt"`
	Purpose   string          `json:"purpose"`
	LinkID    string          `json:"link_id"`
	Message   string          `json:"message,omitempty"`
	MetaData  ResultMetaData  `json:"metaData"`
}

// ResultMetaData mirrors OrderMetaData on the way back. Extra holds the
// entity- and venue-keyed fields the server flattens into the object, e.g.
// {"movie": "Dune", "theater": "Galaxy Cinemas"}.
type ResultMetaData struct {
	Date        time.Time         `json:"date"`
	Slot        string            `json:"slot"`
	SeatsBooked []string          `json:"seatsBooked"`
	Extra       map[string]string `json:"-"`
}

// MarshalJSON flattens the entity title and venue name into the metadata
// object under their dynamic keys, matching the server's storage format.
func (m OrderMetaData) MarshalJSON() ([]byte, error) {
	out := map[string]any{
		"showId":      m.ShowID,
		"slot":        m.Slot,
		"date":        m.Date,
		"seatsBooked": m.SeatsBooked,
	}

	if m.EntityKey != "" {
		out[m.EntityKey] = m.EntityTitle
	}
	if m.VenueKey != "" {
		out[m.VenueKey] = m.VenueName
	}

	return json.Marshal(out)
}

// UnmarshalJSON keeps the fixed fields typed and collects every remaining
// string-valued field into Extra.
func (m *ResultMetaData) UnmarshalJSON(data []byte) error {
	type fixed struct {
		Date        time.Time `json:"date"`
		Slot        string    `json:"slot"`
		SeatsBooked []string  `json:"seatsBooked"`
	}

	var f fixed
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	extra := make(map[string]string)
	for k, v := range raw {
		switch k {
		case "date", "slot", "seatsBooked", "showId":
			continue
		}

		var s string
		if err := json.Unmarshal(v, &s); err == nil {
			extra[k] = s
		}
	}

	m.Date = f.Date
	m.Slot = f.Slot
	m.SeatsBooked = f.SeatsBooked
	m.Extra = extra

	return nil
}

// Pending reports whether the result should be treated as "still pending":
// neither terminal nor a synthetic client-side error.
func (r PaymentResult) Pending() bool {
	return !r.Status.Terminal() && r.Status != PaymentStatusError
}
