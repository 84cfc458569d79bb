package ai

import "context"

// Provider is a text-generation backend. Implementations own their vendor
// client and are safe for concurrent use once constructed.
type Provider interface {
	// Name is a human-readable vendor label used in logs and errors.
	Name() string

	// Generate sends the ordered messages to the vendor and returns the raw text reply.
	// Any failure, including an empty reply or a missing credential, is a *ProviderError.
	Generate(ctx context.Context, opts GenerateOptions) (string, error)

	// IsConfigured reports whether a credential and client are available.
	// It never panics and performs no I/O.
	IsConfigured() bool
}
