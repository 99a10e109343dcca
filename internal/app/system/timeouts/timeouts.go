// Package timeouts provides centralized timeout values for handler
// operations. They bound the context of every database call made by the API
// handlers.
//
// Guidelines for choosing a timeout:
//   - Ping: health checks and connectivity verification
//   - Short: single-record reads and writes (create, toggle, delete)
//   - Medium: full-collection reads (assessment list, catalog list, stats)
//   - Batch: catalog uploads and wholesale replacement
package timeouts

import "time"

const (
	ping   = 2 * time.Second
	short  = 5 * time.Second
	medium = 10 * time.Second
	batch  = 60 * time.Second
)

// Ping returns the timeout for health checks.
func Ping() time.Duration { return ping }

// Short returns the timeout for single-record operations.
func Short() time.Duration { return short }

// Medium returns the timeout for full-collection reads.
func Medium() time.Duration { return medium }

// Batch returns the timeout for catalog replacement.
func Batch() time.Duration { return batch }
