package systems

import (
	"math"
	"testing"

	"github.com/decker502/neuralfx/pkg/components"
)

func TestDriftFrame(t *testing.T) {
	p := components.DriftParticleComponent{
		StartXPercent: 30,
		StartYPercent: 150,
		Delay:         2,
		Duration:      10,
	}
	const rise = 200.0

	tests := []struct {
		name      string
		elapsed   float64
		wantY     float64
		wantAlpha float64
	}{
		{"延迟之前", 1, 150, 0},
		{"循环起点", 2, 150, 0},
		{"淡入中", 2.5, 150 - (1-math.Cos(math.Pi*0.05))/2*rise, 0.5},
		{"循环中点", 7, 50, 1},
		{"第二次循环中点", 17, 50, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DriftFrame(p, tt.elapsed, rise)
			if got.XPercent != 30 {
				t.Errorf("XPercent = %v, want 30", got.XPercent)
			}
			if math.Abs(got.YPercent-tt.wantY) > 1e-9 {
				t.Errorf("YPercent = %v, want %v", got.YPercent, tt.wantY)
			}
			if math.Abs(got.Alpha-tt.wantAlpha) > 1e-9 {
				t.Errorf("Alpha = %v, want %v", got.Alpha, tt.wantAlpha)
			}
		})
	}
}

func TestDriftFrame_ZeroDuration(t *testing.T) {
	p := components.DriftParticleComponent{StartXPercent: 10, StartYPercent: 120}
	got := DriftFrame(p, 5, 100)
	if got.YPercent != 120 || got.Alpha != 0 {
		t.Errorf("zero duration should rest at start, got %+v", got)
	}
}
