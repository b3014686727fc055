package wheel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func fixedRand(v int) func(int) int {
	return func(int) int { return v }
}

func TestWinningIndex(t *testing.T) {
	cases := []struct {
		rotation, want int
	}{
		{1800, 0},      // final 0 -> (360-0)/60 = 6 -> 6 mod 6
		{1800 + 10, 5}, // (350)/60 = 5.83
		{1800 + 60, 5}, // 300/60 = 5
		{1800 + 61, 4},
		{1800 + 180, 3},
		{1800 + 359, 0}, // 1/60
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, WinningIndex(tc.rotation, 6), "rotation %d", tc.rotation)
	}
}

func TestSpinLandsAfterDuration(t *testing.T) {
	w, err := New(DefaultSegments, WithRand(fixedRand(130)))
	require.NoError(t, err)

	spin, ok := w.Spin()
	require.True(t, ok)
	require.Equal(t, Spinning, w.State())
	require.Equal(t, 1930, spin.Rotation)
	// (360-130)/60 = 3.83 -> 3
	require.Equal(t, 3, spin.Index)
	require.Equal(t, "50% OFF", spin.Label)

	_, settled := w.Result()
	require.False(t, settled, "result must not be published while spinning")

	label, ok := w.Settle(spin.ID)
	require.True(t, ok)
	require.Equal(t, "50% OFF", label)
	require.Equal(t, Idle, w.State())
	got, settled := w.Result()
	require.True(t, settled)
	require.Equal(t, "50% OFF", got)
	require.Equal(t, 130.0, w.Resting())
}

func TestSpinIgnoredWhileSpinning(t *testing.T) {
	calls := 0
	w, err := New(DefaultSegments, WithRand(func(int) int {
		calls++
		return 45
	}))
	require.NoError(t, err)

	first, ok := w.Spin()
	require.True(t, ok)
	_, ok = w.Spin()
	require.False(t, ok)
	require.Equal(t, 1, calls)
	require.Equal(t, first, w.Current())

	_, ok = w.Settle(first.ID + 1)
	require.False(t, ok, "stale completion must be ignored")
	require.Equal(t, Spinning, w.State())

	_, ok = w.Settle(first.ID)
	require.True(t, ok)
	_, ok = w.Settle(first.ID)
	require.False(t, ok)

	second, ok := w.Spin()
	require.True(t, ok)
	require.Equal(t, first.ID+1, second.ID)
	require.Equal(t, 45.0, second.From)
}

func TestLayoutCounterRotatesLabels(t *testing.T) {
	w, err := New([]string{"a", "b", "c", "d"})
	require.NoError(t, err)
	layout := w.Layout()
	require.Len(t, layout, 4)
	for i, seg := range layout {
		require.Equal(t, float64(i)*90, seg.Angle)
		require.Equal(t, -float64(i)*90, seg.LabelRotation)
		require.Equal(t, i%2 == 1, seg.Alternate)
	}
}

func TestInterpolate(t *testing.T) {
	d := 3 * time.Second
	require.Equal(t, 0.0, Interpolate(0, 1800, 0, d))
	require.Equal(t, 1800.0, Interpolate(0, 1800, d, d))
	require.Equal(t, 1800.0, Interpolate(0, 1800, 5*time.Second, d))
	mid := Interpolate(0, 1800, d/2, d)
	require.Greater(t, mid, 900.0, "ease-out covers more than half the distance by half time")
	require.Less(t, mid, 1800.0)
}

func TestNewRequiresSegments(t *testing.T) {
	_, err := New(nil)
	require.ErrorIs(t, err, ErrNoSegments)
}

func TestWithDuration(t *testing.T) {
	w, err := New(DefaultSegments, WithDuration(time.Second))
	require.NoError(t, err)
	require.Equal(t, time.Second, w.Duration())

	w, err = New(DefaultSegments, WithDuration(0))
	require.NoError(t, err)
	require.Equal(t, DefaultDuration, w.Duration())
}
