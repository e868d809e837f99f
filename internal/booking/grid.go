package booking

import "github.com/showsphere/showsphere-cli/internal/domain"

type SeatState string

const (
	SeatAvailable   SeatState = "available"
	SeatBooked      SeatState = "booked"
	SeatSelected    SeatState = "selected"
	SeatUnavailable SeatState = "unavailable"
)

// SeatCell is one renderable grid position.
type SeatCell struct {
	Label string
	State SeatState
	Value float64
}

// Grid snapshots the seat grid with the current selection and occupancy
// applied. Nil until the show is loaded.
func (f *Flow) Grid() [][]SeatCell {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.show == nil {
		return nil
	}

	seats := f.show.Venue.Layout.SeatsLayout.Seats
	grid := make([][]SeatCell, len(seats))

	for row, line := range seats {
		grid[row] = make([]SeatCell, len(line))

		for col, seat := range line {
			label := domain.SeatPosition{Row: row, Col: col}.Label()

			state := SeatAvailable
			switch {
			case f.selection != nil && f.selection.Contains(label):
				state = SeatSelected
			case f.booked[label]:
				state = SeatBooked
			case f.unavailable[label]:
				state = SeatUnavailable
			}

			grid[row][col] = SeatCell{Label: label, State: state, Value: seat.Value}
		}
	}

	return grid
}
