package entities

import (
	"fmt"
	"testing"
)

func TestBatchProgress(t *testing.T) {
	cases := []struct {
		actual, expected int
		want             int
		complete         bool
	}{
		{0, 0, 0, false},
		{0, 5, 0, false},
		{0, 1, 0, false},
		{1, 1, 100, true},
		{1, 3, 33, false},
		{2, 3, 67, false},
		{3, 3, 100, true},
		{7, 5, 100, true},
		{4, 0, 0, false},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%d of %d", tc.actual, tc.expected), func(t *testing.T) {
			b := Batch{ExpectedGarments: tc.expected}
			for i := 0; i < tc.actual; i++ {
				b.GarmentIDs = append(b.GarmentIDs, fmt.Sprintf("g%d", i))
			}

			got := b.Progress()
			if got != tc.want {
				t.Fatalf("progress: got %d, want %d", got, tc.want)
			}
			if got != BatchProgressPercent(tc.actual, tc.expected) {
				t.Fatalf("Progress and BatchProgressPercent disagree")
			}
			if got < 0 || got > 100 {
				t.Fatalf("progress %d out of range", got)
			}
			if b.IsComplete() != tc.complete {
				t.Fatalf("complete: got %v, want %v", b.IsComplete(), tc.complete)
			}
			if b.IsComplete() && got != 100 {
				t.Fatalf("complete batch reports %d%%", got)
			}
		})
	}
}
