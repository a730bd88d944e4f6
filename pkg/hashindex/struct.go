package hashindex

import (
	"sync"
)

// Index maps a content digest to the first path seen with that digest.
// Entries are append-only for the lifetime of a scan: once a digest is
// recorded, the stored path is never replaced.
type Index struct {
	entries map[string]string
	mu      sync.RWMutex
}
