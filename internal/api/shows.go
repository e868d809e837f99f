package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/showsphere/showsphere-cli/internal/domain"
)

// FetchShow loads a show record. The endpoint is keyed by entity type
// ("movieShow/find", "eventShow/find") and answers with an array whose first
// element is the show. The nested entity and venue objects sit under dynamic
// JSON keys named after their kinds, so they are resolved here instead of by
// struct tags.
func (c *Client) FetchShow(ctx context.Context, params domain.ShowParams) (*domain.Show, error) {
	path := fmt.Sprintf("/%sShow/find", params.EntityType)
	query := url.Values{"showId": {params.ShowID}}

	var payloads []json.RawMessage

	err := c.do(ctx, http.MethodGet, path, query, "", nil, &payloads)
	if err != nil {
		return nil, err
	}

	if len(payloads) == 0 {
		return nil, domain.ErrShowNotFound
	}

	return decodeShow(payloads[0], params)
}

func decodeShow(raw json.RawMessage, params domain.ShowParams) (*domain.Show, error) {
	var show domain.Show
	if err := json.Unmarshal(raw, &show); err != nil {
		return nil, fmt.Errorf("decoding show: %w", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("decoding show fields: %w", err)
	}

	entityRaw, ok := fields[params.EntityType]
	if !ok {
		return nil, fmt.Errorf("show %s has no %q object", show.ID, params.EntityType)
	}

	if err := json.Unmarshal(entityRaw, &show.Entity); err != nil {
		return nil, fmt.Errorf("decoding show entity: %w", err)
	}

	venueRaw, ok := fields[params.VenueType]
	if !ok {
		return nil, fmt.Errorf("show %s has no %q object", show.ID, params.VenueType)
	}

	if err := json.Unmarshal(venueRaw, &show.Venue); err != nil {
		return nil, fmt.Errorf("decoding show venue: %w", err)
	}

	return &show, nil
}
