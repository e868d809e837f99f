package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/showsphere/showsphere-cli/internal/booking"
	"github.com/showsphere/showsphere-cli/internal/domain"
	"github.com/showsphere/showsphere-cli/internal/payment"
)

func (app *application) bootstrap(ctx context.Context) error {
	if err := app.session.Bootstrap(ctx); err != nil {
		return fmt.Errorf("auth bootstrap: %w", err)
	}

	if msg := app.session.Message(); msg != "" {
		fmt.Println(msg)
	}

	return nil
}

// book runs the whole seat-selection flow: load the show, confirm the seat
// count, select the requested seats, create the payment link, hand the user
// to the gateway, and resolve the outcome after the redirect back.
func (app *application) book(ctx context.Context) error {
	if err := app.bootstrap(ctx); err != nil {
		return err
	}

	params := domain.ShowParams{
		EntityType: app.config.book.entityType,
		VendorID:   app.config.book.vendorID,
		VenueType:  app.config.book.venueType,
		ShowID:     app.config.book.showID,
	}

	if err := app.validator.Struct(params); err != nil {
		return fmt.Errorf("invalid show parameters: %w", err)
	}

	flow := booking.NewFlow(app.client, params, app.logger)

	if err := flow.Load(ctx); err != nil {
		fmt.Println("Failed to load show data")
		return err
	}

	if err := flow.ConfirmSeatCount(app.config.book.seatCount); err != nil {
		return err
	}

	for _, label := range splitSeats(app.config.book.seats) {
		if err := flow.Select(label); err != nil {
			return fmt.Errorf("selecting seat %s: %w", label, err)
		}
	}

	app.renderSelection(flow)

	link, err := flow.ProceedToPayment(ctx, app.session)
	if err != nil {
		if errors.Is(err, domain.ErrLoginRequired) {
			fmt.Printf("Login required. After logging in you will return to %s\n", flow.OriginPath())
			return err
		}

		fmt.Println("Failed to create payment link. Try again.")
		return err
	}

	callback := payment.NewCallbackServer(app.logger)
	if err := callback.Start(app.config.callbackAddr); err != nil {
		return err
	}

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()

		_ = callback.Shutdown(shutdownCtx)
	}()

	fmt.Printf("Complete the payment in your browser:\n\n  %s\n\n", link.URL)
	fmt.Printf("Waiting for the gateway to redirect back to %s ...\n", callback.URL())

	waitCtx, cancel := context.WithTimeout(ctx, app.config.callbackTimeout)
	defer cancel()

	if err := callback.Wait(waitCtx); err != nil {
		fmt.Println("Gave up waiting for the payment page. Run `showsphere resume` once you are done.")
		return nil
	}

	return app.resolve(ctx)
}

// resume picks up a flow interrupted by the gateway round trip, using the
// persisted link id.
func (app *application) resume(ctx context.Context) error {
	if err := app.bootstrap(ctx); err != nil {
		return err
	}

	return app.resolve(ctx)
}

func (app *application) resolve(ctx context.Context) error {
	resolution, err := app.poller.Resume(ctx, app.session)
	if err != nil {
		return err
	}

	app.renderResolution(resolution)

	return nil
}

func (app *application) login(ctx context.Context) error {
	if app.config.token == "" {
		return fmt.Errorf("login requires -token")
	}

	if err := app.session.SetToken(app.config.token); err != nil {
		return err
	}

	if err := app.session.Refresh(ctx); err != nil {
		return err
	}

	user := app.session.User()
	if user == nil {
		if msg := app.session.Message(); msg != "" {
			return errors.New(msg)
		}

		return domain.ErrNotAuthenticated
	}

	fmt.Printf("Logged in as %s\n", user.Email)

	return nil
}

func (app *application) logout(ctx context.Context) error {
	if err := app.bootstrap(ctx); err != nil {
		return err
	}

	app.session.Logout()
	fmt.Println("Logged out")

	return nil
}

func (app *application) whoami(ctx context.Context) error {
	if err := app.bootstrap(ctx); err != nil {
		return err
	}

	user := app.session.User()
	if user == nil {
		fmt.Println("Not logged in")
		return nil
	}

	fmt.Printf("%s <%s>\n", user.Name, user.Email)

	return nil
}

func (app *application) update(ctx context.Context) error {
	if err := app.bootstrap(ctx); err != nil {
		return err
	}

	var fields domain.UserUpdate

	if app.config.update.name != "" {
		fields.Name = &app.config.update.name
	}
	if app.config.update.email != "" {
		fields.Email = &app.config.update.email
	}
	if app.config.update.phone != "" {
		fields.Phone = &app.config.update.phone
	}

	user, err := app.session.UpdateUser(ctx, fields)
	if err != nil {
		return err
	}

	fmt.Printf("Profile updated: %s <%s>\n", user.Name, user.Email)

	return nil
}

func splitSeats(seats string) []string {
	if seats == "" {
		return nil
	}

	var labels []string
	for _, label := range strings.Split(seats, ",") {
		label = strings.TrimSpace(label)
		if label != "" {
			labels = append(labels, label)
		}
	}

	return labels
}
