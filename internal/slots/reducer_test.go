package slots

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-GroundBookingService/internal/domain"
)

func hm(h, m int) int {
	return h*60 + m
}

func window(open, close int) domain.OperatingWindow {
	return domain.OperatingWindow{OpenMinute: open, CloseMinute: close}
}

func TestReduce(t *testing.T) {
	tests := []struct {
		name     string
		window   domain.OperatingWindow
		occupied []domain.OccupiedInterval
		want     []domain.FreeSegment
	}{
		{
			name:   "no occupied intervals",
			window: window(hm(9, 0), hm(22, 0)),
			want:   []domain.FreeSegment{{Start: hm(9, 0), End: hm(22, 0)}},
		},
		{
			name:     "booking at the end of the window",
			window:   window(hm(9, 0), hm(13, 0)),
			occupied: []domain.OccupiedInterval{{Start: hm(11, 0), End: hm(13, 0)}},
			want:     []domain.FreeSegment{{Start: hm(9, 0), End: hm(11, 0)}},
		},
		{
			name:   "unsorted and overlapping intervals",
			window: window(hm(8, 0), hm(20, 0)),
			occupied: []domain.OccupiedInterval{
				{Start: hm(15, 0), End: hm(17, 0)},
				{Start: hm(10, 0), End: hm(12, 0)},
				{Start: hm(11, 0), End: hm(11, 30)},
				{Start: hm(11, 30), End: hm(13, 0)},
			},
			want: []domain.FreeSegment{
				{Start: hm(8, 0), End: hm(10, 0)},
				{Start: hm(13, 0), End: hm(15, 0)},
				{Start: hm(17, 0), End: hm(20, 0)},
			},
		},
		{
			name:   "intervals outside the window are clipped away",
			window: window(hm(9, 0), hm(12, 0)),
			occupied: []domain.OccupiedInterval{
				{Start: hm(7, 0), End: hm(9, 30)},
				{Start: hm(11, 0), End: hm(14, 0)},
				{Start: hm(15, 0), End: hm(16, 0)},
			},
			want: []domain.FreeSegment{{Start: hm(9, 30), End: hm(11, 0)}},
		},
		{
			name:     "window fully occupied",
			window:   window(hm(9, 0), hm(12, 0)),
			occupied: []domain.OccupiedInterval{{Start: hm(8, 0), End: hm(13, 0)}},
			want:     []domain.FreeSegment{},
		},
		{
			name:     "empty intervals are ignored",
			window:   window(hm(9, 0), hm(12, 0)),
			occupied: []domain.OccupiedInterval{{Start: hm(10, 0), End: hm(10, 0)}, {Start: hm(11, 0), End: hm(10, 0)}},
			want:     []domain.FreeSegment{{Start: hm(9, 0), End: hm(12, 0)}},
		},
		{
			name:     "overnight window",
			window:   window(hm(22, 0), hm(2, 0)),
			occupied: nil,
			want:     []domain.FreeSegment{{Start: hm(22, 0), End: hm(26, 0)}},
		},
		{
			name:     "equal open and close is a full day",
			window:   window(hm(6, 0), hm(6, 0)),
			occupied: nil,
			want:     []domain.FreeSegment{{Start: hm(6, 0), End: hm(30, 0)}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Reduce(tt.window, tt.occupied))
		})
	}
}

func TestBookingInterval_OvernightAnchoring(t *testing.T) {
	w := window(hm(22, 0), hm(2, 0))

	// 23:30 for two hours ends after midnight
	iv := BookingInterval(w, hm(23, 30), 120)
	assert.Equal(t, domain.OccupiedInterval{Start: hm(23, 30), End: hm(25, 30)}, iv)

	segments := Reduce(w, []domain.OccupiedInterval{iv})
	assert.Equal(t, []domain.FreeSegment{
		{Start: hm(22, 0), End: hm(23, 30)},
		{Start: hm(25, 30), End: hm(26, 0)},
	}, segments)

	// 00:30 belongs to the part of the window after midnight
	assert.Equal(t, domain.OccupiedInterval{Start: hm(24, 30), End: hm(26, 30)}, BookingInterval(w, hm(0, 30), 120))

	// 20:00 is before opening on the same day, not after closing
	assert.Equal(t, domain.OccupiedInterval{Start: hm(20, 0), End: hm(23, 0)}, BookingInterval(w, hm(20, 0), 180))

	// same-day windows never shift
	assert.Equal(t, domain.OccupiedInterval{Start: hm(0, 30), End: hm(2, 30)}, BookingInterval(window(hm(9, 0), hm(22, 0)), hm(0, 30), 120))
}

func TestBlockInterval(t *testing.T) {
	w := window(hm(18, 0), hm(3, 0))

	assert.Equal(t, domain.OccupiedInterval{Start: hm(19, 0), End: hm(20, 30)}, BlockInterval(w, hm(19, 0), hm(20, 30)))
	assert.Equal(t, domain.OccupiedInterval{Start: hm(23, 0), End: hm(25, 0)}, BlockInterval(w, hm(23, 0), hm(1, 0)))
	assert.Equal(t, domain.OccupiedInterval{Start: hm(24, 30), End: hm(25, 30)}, BlockInterval(w, hm(0, 30), hm(1, 30)))
}

// TestReduce_Partition checks that free segments and clipped occupied time
// cover every minute of the window exactly once.
func TestReduce_Partition(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for iter := 0; iter < 500; iter++ {
		open := rng.Intn(48) * 30
		close := rng.Intn(48) * 30
		w := window(open, close)
		start, end := w.Bounds()

		occupied := make([]domain.OccupiedInterval, rng.Intn(6))
		for i := range occupied {
			s := start - 120 + rng.Intn(end-start+240)
			occupied[i] = domain.OccupiedInterval{Start: s, End: s + rng.Intn(300)}
		}

		free := Reduce(w, occupied)

		length := end - start
		coverage := make([]int, length)
		busy := make([]bool, length)

		for _, iv := range occupied {
			for m := iv.Start; m < iv.End; m++ {
				if m >= start && m < end {
					busy[m-start] = true
				}
			}
		}

		prevEnd := start
		for _, seg := range free {
			assert.Greater(t, seg.End, seg.Start, "empty segment")
			assert.GreaterOrEqual(t, seg.Start, prevEnd, "segments out of order")
			prevEnd = seg.End
			for m := seg.Start; m < seg.End; m++ {
				coverage[m-start]++
			}
		}

		for i := 0; i < length; i++ {
			if busy[i] {
				assert.Equal(t, 0, coverage[i], "iter=%d minute=%d occupied but free", iter, start+i)
			} else {
				assert.Equal(t, 1, coverage[i], "iter=%d minute=%d not covered once", iter, start+i)
			}
		}
	}
}
