package state

import "context"

// Repository handles manifest persistence.
type Repository interface {
	// Load retrieves the last saved manifest.
	// Returns an empty manifest and nil error if none exists.
	Load(ctx context.Context) (Manifest, error)

	// Save persists the manifest atomically.
	Save(ctx context.Context, m Manifest) error
}
