package collision

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tsid/errs"
)

func TestTracker_TrackDistinct(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.Track(0x1111, "host=a"))
	require.NoError(t, tracker.Track(0x2222, "host=b"))
	require.Equal(t, 2, tracker.Count())
	require.False(t, tracker.HasCollision())
}

func TestTracker_DuplicateRowIsNotCollision(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.Track(0x1111, "host=a"))
	require.NoError(t, tracker.Track(0x1111, "host=a"))
	require.Equal(t, 1, tracker.Count())
	require.False(t, tracker.HasCollision())
}

func TestTracker_DetectsCollision(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.Track(0x1111, "host=a"))

	err := tracker.Track(0x1111, "host=b")
	require.ErrorIs(t, err, errs.ErrHashCollision)
	require.True(t, tracker.HasCollision())

	// The flag is sticky until reset.
	require.NoError(t, tracker.Track(0x3333, "host=c"))
	require.True(t, tracker.HasCollision())
}

func TestTracker_Reset(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.Track(0x1111, "host=a"))
	require.ErrorIs(t, tracker.Track(0x1111, "host=b"), errs.ErrHashCollision)

	tracker.Reset()
	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.HasCollision())

	// The previously colliding pair tracks cleanly after a reset.
	require.NoError(t, tracker.Track(0x1111, "host=b"))
	require.Equal(t, 1, tracker.Count())
}
