package domain

import (
	"fmt"
	"slices"
)

const (
	MinSeatCount = 1
	MaxSeatCount = 4
)

// Selection is an ordered set of seat labels bounded by a maximum count that
// is fixed once at the start of the flow.
type Selection struct {
	max   int
	seats []string
}

// NewSelection creates a selection capped at max seats. Max must be within
// [MinSeatCount, MaxSeatCount].
func NewSelection(max int) (*Selection, error) {
	if max < MinSeatCount || max > MaxSeatCount {
		return nil, fmt.Errorf("%w: %d is outside [%d, %d]", ErrInvalidSeatCount, max, MinSeatCount, MaxSeatCount)
	}

	return &Selection{max: max}, nil
}

func (s *Selection) Max() int {
	return s.max
}

// Seats returns the selected labels in selection order.
func (s *Selection) Seats() []string {
	return slices.Clone(s.seats)
}

func (s *Selection) Contains(label string) bool {
	return slices.Contains(s.seats, label)
}

// Complete reports whether the selection holds exactly the confirmed count.
func (s *Selection) Complete() bool {
	return len(s.seats) == s.max
}

func (s *Selection) Len() int {
	return len(s.seats)
}

// Add appends a seat label, rejecting duplicates and anything beyond the cap.
func (s *Selection) Add(label string) error {
	if s.Contains(label) {
		return ErrSeatAlreadySelected
	}

	if len(s.seats) >= s.max {
		return ErrSelectionFull
	}

	s.seats = append(s.seats, label)

	return nil
}

// Remove drops a seat label from the selection, preserving order.
func (s *Selection) Remove(label string) error {
	i := slices.Index(s.seats, label)
	if i < 0 {
		return ErrSeatNotSelected
	}

	s.seats = slices.Delete(s.seats, i, i+1)

	return nil
}
