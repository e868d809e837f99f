package app

import (
	"fmt"
	"strings"

	"github.com/showsphere/showsphere-cli/internal/booking"
	"github.com/showsphere/showsphere-cli/internal/payment"
)

func (app *application) renderSelection(flow *booking.Flow) {
	show := flow.Show()
	if show == nil {
		return
	}

	fmt.Printf("%s at %s, %s %s\n", show.Entity.Title, show.Venue.Name, show.Date.Format("Jan 2, 2006"), show.Slot)
	fmt.Printf("Seats available: %d\n\n", show.TicketsAvailable)

	for _, row := range flow.Grid() {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = fmt.Sprintf("%-4s", seatGlyph(cell))
		}

		fmt.Println(strings.Join(cells, " "))
	}

	selected := flow.SelectedSeats()
	if len(selected) == 0 {
		fmt.Println("\nSeats selected: None")
	} else {
		fmt.Printf("\nSeats selected: %s\n", strings.Join(selected, ", "))
	}

	fmt.Printf("Total price: %s\n\n", flow.TotalPrice().StringFixed(2))
}

func seatGlyph(cell booking.SeatCell) string {
	switch cell.State {
	case booking.SeatSelected:
		return "[" + cell.Label + "]"
	case booking.SeatBooked:
		return "x" + cell.Label
	case booking.SeatUnavailable:
		return "-" + cell.Label
	default:
		return cell.Label
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}

func (app *application) renderResolution(resolution payment.Resolution) {
	switch resolution.Outcome {
	case payment.OutcomeLogin:
		fmt.Println("Please log in first: showsphere login -token <token>")
	case payment.OutcomeHome:
		fmt.Println("Nothing to resume.")
	case payment.OutcomePending:
		fmt.Println("Payment is still pending. Run `showsphere resume` to check again.")
	case payment.OutcomeError:
		fmt.Printf("Error: %s\n", resolution.Result.Message)
	case payment.OutcomeFailed:
		fmt.Println("Payment Failed")
		fmt.Println("Sorry, your payment was not successful. Please try again.")
	case payment.OutcomePaid:
		result := resolution.Result

		fmt.Println("Payment Successful")
		fmt.Printf("Booked on: %s\n", result.CreatedAt.Format("Jan 2, 2006"))
		fmt.Printf("Amount paid: %s\n", result.Amount.StringFixed(2))
		fmt.Printf("Date: %s\n", result.MetaData.Date.Format("2006-01-02"))
		fmt.Printf("Slot: %s\n", result.MetaData.Slot)

		for key, value := range result.MetaData.Extra {
			fmt.Printf("%s: %s\n", titleCase(key), value)
		}

		if len(result.MetaData.SeatsBooked) > 0 {
			fmt.Printf("Seats: %s\n", strings.Join(result.MetaData.SeatsBooked, ", "))
		}

		fmt.Println("An invoice has been emailed to you.")
	}
}
