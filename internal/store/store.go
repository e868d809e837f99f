// Package store persists the client's two correlation keys, the bearer
// token and the pending payment link id, across process restarts and the
// external-gateway round trip. Values are plain strings; the store is the
// single source of truth for both keys.
package store

import "errors"

const (
	KeyToken  = "token"
	KeyLinkID = "link_id"
)

var ErrNotFound = errors.New("key not found")

type Store interface {
	// Get returns the value for key, or ErrNotFound.
	Get(key string) (string, error)

	// Set writes the value for key, replacing any previous value.
	Set(key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error
}
