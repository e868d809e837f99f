package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeatLabel(t *testing.T) {
	tests := []struct {
		name    string
		label   string
		want    SeatPosition
		wantErr error
	}{
		{
			name:  "first seat",
			label: "A1",
			want:  SeatPosition{Row: 0, Col: 0},
		},
		{
			name:  "C5 decodes to row 2 column 4",
			label: "C5",
			want:  SeatPosition{Row: 2, Col: 4},
		},
		{
			name:  "double digit column",
			label: "J12",
			want:  SeatPosition{Row: 9, Col: 11},
		},
		{
			name:    "missing column",
			label:   "C",
			wantErr: ErrInvalidSeatLabel,
		},
		{
			name:    "lowercase row",
			label:   "c5",
			wantErr: ErrInvalidSeatLabel,
		},
		{
			name:    "zero column",
			label:   "C0",
			wantErr: ErrInvalidSeatLabel,
		},
		{
			name:    "non-numeric column",
			label:   "Cx",
			wantErr: ErrInvalidSeatLabel,
		},
		{
			name:    "empty",
			label:   "",
			wantErr: ErrInvalidSeatLabel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSeatLabel(tt.label)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSeatPositionLabelRoundTrip(t *testing.T) {
	for row := 0; row < 26; row++ {
		for col := 0; col < 30; col++ {
			pos := SeatPosition{Row: row, Col: col}

			got, err := ParseSeatLabel(pos.Label())

			require.NoError(t, err)
			require.Equal(t, pos, got)
		}
	}
}

func TestSeatsLayoutValidate(t *testing.T) {
	layout := SeatsLayout{
		Seats: [][]Seat{
			{{Value: 1}, {Value: 1}, {Value: 1}},
			{{Value: 1.5}},
		},
	}

	assert.NoError(t, layout.Validate(SeatPosition{Row: 0, Col: 2}))
	assert.NoError(t, layout.Validate(SeatPosition{Row: 1, Col: 0}))

	// ragged row: column bound follows the addressed row
	assert.ErrorIs(t, layout.Validate(SeatPosition{Row: 1, Col: 1}), ErrSeatOutOfBounds)
	assert.ErrorIs(t, layout.Validate(SeatPosition{Row: 2, Col: 0}), ErrSeatOutOfBounds)
	assert.ErrorIs(t, layout.Validate(SeatPosition{Row: -1, Col: 0}), ErrSeatOutOfBounds)

	seat, err := layout.SeatAt(SeatPosition{Row: 1, Col: 0})
	require.NoError(t, err)
	assert.Equal(t, 1.5, seat.Value)
}
