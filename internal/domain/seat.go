package domain

import (
	"fmt"
	"strconv"
)

// SeatPosition is a zero-based grid coordinate. Seat labels are of the form
// <RowLetter><ColumnNumber> with a 1-indexed column, so "C5" maps to row 2,
// column 4. ParseSeatLabel and Label are inverses of each other.
type SeatPosition struct {
	Row int
	Col int
}

// ParseSeatLabel decodes a seat label into its grid coordinate.
func ParseSeatLabel(label string) (SeatPosition, error) {
	if len(label) < 2 {
		return SeatPosition{}, fmt.Errorf("%w: %q", ErrInvalidSeatLabel, label)
	}

	row := label[0]
	if row < 'A' || row > 'Z' {
		return SeatPosition{}, fmt.Errorf("%w: %q must start with an uppercase row letter", ErrInvalidSeatLabel, label)
	}

	col, err := strconv.Atoi(label[1:])
	if err != nil || col < 1 {
		return SeatPosition{}, fmt.Errorf("%w: %q must end with a positive column number", ErrInvalidSeatLabel, label)
	}

	return SeatPosition{Row: int(row - 'A'), Col: col - 1}, nil
}

// Label renders the position back into its seat label.
func (p SeatPosition) Label() string {
	return fmt.Sprintf("%c%d", 'A'+rune(p.Row), p.Col+1)
}
