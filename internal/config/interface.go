package config

import "context"

// Loader is the interface for a format-specific walkthrough loader.
type Loader interface {
	// Load reads the walkthrough at path, translates it into the
	// format-agnostic model and validates every step.
	Load(ctx context.Context, path string) (*Model, error)
}
