package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showsphere/showsphere-cli/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewClient(srv.URL, logger)
}

func TestVerifyToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/verify", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"_id": "u1", "email": "freddie@example.com", "isSuspended": false}]`))
	})

	user, err := client.VerifyToken(context.Background(), "tok-123")

	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "freddie@example.com", user.Email)
	assert.False(t, user.IsSuspended)
}

func TestVerifyTokenUnauthorized(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message": "jwt expired"}`))
	})

	_, err := client.VerifyToken(context.Background(), "stale")

	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "jwt expired", apiErr.Message)
}

func TestVerifyTokenEmptyResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	_, err := client.VerifyToken(context.Background(), "tok-123")

	assert.Error(t, err)
}

func TestUpdateUser(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/auth/update", r.URL.Path)
		assert.Equal(t, "u1", r.URL.Query().Get("id"))

		var body map[string]map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "New Name", body["updateFields"]["name"])

		w.Write([]byte(`{"user": {"_id": "u1", "name": "New Name"}}`))
	})

	name := "New Name"

	user, err := client.UpdateUser(context.Background(), "u1", domain.UserUpdate{Name: &name})

	require.NoError(t, err)
	assert.Equal(t, "New Name", user.Name)
}

func TestFetchShow(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movieShow/find", r.URL.Path)
		assert.Equal(t, "show-1", r.URL.Query().Get("showId"))

		w.Write([]byte(`[{
			"_id": "show-1",
			"basePrice": 150,
			"slot": "18:30",
			"date": "2026-09-12T00:00:00Z",
			"ticketsAvailable": 96,
			"ticketsBooked": ["B2"],
			"movie": {"_id": "m1", "title": "Dune", "organizedBy": "vendor-1"},
			"theater": {
				"_id": "t1",
				"name": "Galaxy Cinemas",
				"layout": {"seatsLayout": {"seats": [[{"value": 1}, {"value": 1.5}]]}}
			}
		}]`))
	})

	params := domain.ShowParams{EntityType: "movie", VendorID: "t1", VenueType: "theater", ShowID: "show-1"}

	show, err := client.FetchShow(context.Background(), params)

	require.NoError(t, err)
	assert.Equal(t, "show-1", show.ID)
	assert.Equal(t, 150.0, show.BasePrice)
	assert.Equal(t, "Dune", show.Entity.Title)
	assert.Equal(t, "vendor-1", show.Entity.OrganizedBy)
	assert.Equal(t, "Galaxy Cinemas", show.Venue.Name)
	require.Len(t, show.Venue.Layout.SeatsLayout.Seats, 1)
	assert.Equal(t, 1.5, show.Venue.Layout.SeatsLayout.Seats[0][1].Value)
}

func TestFetchShowNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	params := domain.ShowParams{EntityType: "movie", VendorID: "t1", VenueType: "theater", ShowID: "missing"}

	_, err := client.FetchShow(context.Background(), params)

	assert.ErrorIs(t, err, domain.ErrShowNotFound)
}

func TestFetchShowMissingVenueObject(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"_id": "show-1", "movie": {"title": "Dune"}}]`))
	})

	params := domain.ShowParams{EntityType: "movie", VendorID: "t1", VenueType: "theater", ShowID: "show-1"}

	_, err := client.FetchShow(context.Background(), params)

	require.Error(t, err)
	assert.Contains(t, err.Error(), `"theater"`)
}

func TestCreatePaymentLink(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/payment/create-link", r.URL.Path)
		assert.Equal(t, "450", r.URL.Query().Get("totalAmount"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "movie", body["purpose"])

		meta, ok := body["metaData"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Dune", meta["movie"])

		w.Write([]byte(`{"link_id": "link-1", "link_url": "https://gateway.example/pay/link-1"}`))
	})

	order := domain.PurchaseOrder{
		Purpose:  "movie",
		UserID:   "u1",
		VendorID: "vendor-1",
		Amount:   decimal.NewFromInt(450),
		MetaData: domain.OrderMetaData{
			ShowID:      "show-1",
			EntityKey:   "movie",
			EntityTitle: "Dune",
			SeatsBooked: []string{"C5"},
		},
	}

	link, err := client.CreatePaymentLink(context.Background(), order)

	require.NoError(t, err)
	assert.Equal(t, "link-1", link.LinkID)
	assert.Equal(t, "https://gateway.example/pay/link-1", link.URL)
}

func TestVerifyPayment(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payment/verify", r.URL.Path)
		assert.Equal(t, "link-1", r.URL.Query().Get("link_id"))

		w.Write([]byte(`{
			"status": "PAID",
			"amount": 450,
			"purpose": "movie",
			"link_id": "link-1",
			"metaData": {"slot": "18:30", "movie": "Dune", "theater": "Galaxy Cinemas"}
		}`))
	})

	result, err := client.VerifyPayment(context.Background(), "link-1")

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPaid, result.Status)
	assert.Equal(t, "Dune", result.MetaData.Extra["movie"])
	assert.Equal(t, "18:30", result.MetaData.Slot)
}

func TestSendInvoice(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/email/invoice", r.URL.Path)
		assert.Equal(t, "freddie@example.com", r.URL.Query().Get("email"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "PAID", body["status"])

		w.WriteHeader(http.StatusOK)
	})

	result := domain.PaymentResult{Status: domain.PaymentStatusPaid, LinkID: "link-1"}

	err := client.SendInvoice(context.Background(), "freddie@example.com", result)

	assert.NoError(t, err)
}
