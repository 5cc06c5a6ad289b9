// Package status implements the shared key-value store that records the
// latest adoption stage reached per dog. The staging worker is the only
// writer; the API server reads it to answer progress queries.
package status

import "context"

// Store is a point-lookup key-value store keyed by dog name.
//
// Get returns common.ErrorNotFound when no stage has been recorded yet,
// which callers should treat as "not scheduled or not yet fired".
type Store interface {
	Get(ctx context.Context, name string) (string, error)
	Set(ctx context.Context, name string, stage string) error
}
