package domain

import "time"

// Show is the read-only record backing a single booking flow. The server keys
// the nested entity and venue objects by their kind ("movie", "theater", ...),
// so the API layer resolves them from the raw payload and fills Entity and
// Venue explicitly.
type Show struct {
	ID               string    `json:"_id"`
	BasePrice        float64   `json:"basePrice"`
	Date             time.Time `json:"date"`
	Slot             string    `json:"slot"`
	TicketsAvailable int       `json:"ticketsAvailable"`
	TicketsBooked    []string  `json:"ticketsBooked"`

	Entity Entity `json:"-"`
	Venue  Venue  `json:"-"`
}

// Entity is the thing being shown: a movie, an event, a play.
type Entity struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	OrganizedBy string `json:"organizedBy"`
}

// Venue is where the show takes place and owns the seat grid.
type Venue struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Layout Layout `json:"layout"`
}

type Layout struct {
	SeatsLayout SeatsLayout `json:"seatsLayout"`
}

// SeatsLayout is a 2D ordered grid of seat descriptors. Row order matches the
// seat label alphabet: seats[0] is row A, seats[1] is row B, and so on.
type SeatsLayout struct {
	Seats [][]Seat `json:"seats"`
}

// Seat describes one position in the grid. Value is a price multiplier
// applied to the show's base price.
type Seat struct {
	Name  string  `json:"name,omitempty"`
	Value float64 `json:"value"`
}

// SeatAt returns the seat descriptor at pos, validating pos against the grid
// bounds first.
func (l SeatsLayout) SeatAt(pos SeatPosition) (Seat, error) {
	if err := l.Validate(pos); err != nil {
		return Seat{}, err
	}

	return l.Seats[pos.Row][pos.Col], nil
}

// Validate reports whether pos addresses a seat inside the grid. Rows may be
// ragged, so the column bound is checked against the addressed row.
func (l SeatsLayout) Validate(pos SeatPosition) error {
	if pos.Row < 0 || pos.Row >= len(l.Seats) {
		return ErrSeatOutOfBounds
	}

	if pos.Col < 0 || pos.Col >= len(l.Seats[pos.Row]) {
		return ErrSeatOutOfBounds
	}

	return nil
}
