// Package collision tracks time-series identifiers and detects hash
// collisions between distinct label rows.
package collision

import (
	"fmt"

	"github.com/arloliu/tsid/errs"
)

// Tracker records every TsID seen together with the canonical signature of
// the label row that produced it.
//
// Two outcomes are distinguished: the same signature appearing twice is a
// duplicate row (not a hash problem), while two different signatures mapping
// to one TsID is a genuine collision.
type Tracker struct {
	signatures   map[uint64]string
	hasCollision bool
	count        int
}

// NewTracker creates a new collision tracker.
func NewTracker() *Tracker {
	return &Tracker{
		signatures: make(map[uint64]string),
	}
}

// Track records a TsID and the row signature that produced it.
//
// Returns an error wrapping errs.ErrHashCollision when a different signature
// already claimed this TsID; the collision flag stays set afterwards.
// Re-tracking the same signature is a no-op.
func (t *Tracker) Track(tsid uint64, signature string) error {
	if existing, exists := t.signatures[tsid]; exists {
		if existing != signature {
			t.hasCollision = true
			return fmt.Errorf("%w: tsid 0x%016x claimed by %q and %q",
				errs.ErrHashCollision, tsid, existing, signature)
		}

		return nil
	}

	t.signatures[tsid] = signature
	t.count++

	return nil
}

// HasCollision returns true if any collision has been detected.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Count returns the number of distinct TsIDs tracked.
func (t *Tracker) Count() int {
	return t.count
}

// Reset clears all tracked identifiers and the collision state, keeping the
// allocated map for reuse.
func (t *Tracker) Reset() {
	clear(t.signatures)
	t.hasCollision = false
	t.count = 0
}
