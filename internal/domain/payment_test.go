package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentStatusTerminal(t *testing.T) {
	assert.True(t, PaymentStatusPaid.Terminal())
	assert.True(t, PaymentStatusFailed.Terminal())
	assert.False(t, PaymentStatusPending.Terminal())
	assert.False(t, PaymentStatusError.Terminal())
	assert.False(t, PaymentStatus("").Terminal())
}

func TestPaymentResultPending(t *testing.T) {
	assert.True(t, PaymentResult{}.Pending())
	assert.True(t, PaymentResult{Status: "CREATED"}.Pending())
	assert.False(t, PaymentResult{Status: PaymentStatusPaid}.Pending())
	assert.False(t, PaymentResult{Status: PaymentStatusFailed}.Pending())
	assert.False(t, PaymentResult{Status: PaymentStatusError}.Pending())
}

func TestOrderMetaDataMarshalDynamicKeys(t *testing.T) {
	date := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)

	meta := OrderMetaData{
		ShowID:      "show-1",
		EntityKey:   "movie",
		EntityTitle: "Dune",
		VenueKey:    "theater",
		VenueName:   "Galaxy Cinemas",
		Slot:        "18:30",
		Date:        date,
		SeatsBooked: []string{"C5", "C6"},
	}

	raw, err := json.Marshal(meta)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))

	assert.Equal(t, "Dune", got["movie"])
	assert.Equal(t, "Galaxy Cinemas", got["theater"])
	assert.Equal(t, "show-1", got["showId"])
	assert.Equal(t, "18:30", got["slot"])
}

func TestResultMetaDataUnmarshalExtra(t *testing.T) {
	raw := []byte(`{
		"date": "2026-09-12T00:00:00Z",
		"slot": "18:30",
		"seatsBooked": ["C5", "C6"],
		"showId": "show-1",
		"movie": "Dune",
		"theater": "Galaxy Cinemas"
	}`)

	var meta ResultMetaData
	require.NoError(t, json.Unmarshal(raw, &meta))

	want := ResultMetaData{
		Date:        time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		Slot:        "18:30",
		SeatsBooked: []string{"C5", "C6"},
		Extra:       map[string]string{"movie": "Dune", "theater": "Galaxy Cinemas"},
	}

	if diff := cmp.Diff(want, meta); diff != "" {
		t.Errorf("metadata mismatch (-want +got):\n%s", diff)
	}
}
