package utils

import (
	"math"
	"testing"
)

// TestEasingEndpoints 所有缓动函数在端点处取 0 和 1
func TestEasingEndpoints(t *testing.T) {
	funcs := map[string]func(float64) float64{
		"EaseOutCubic":  EaseOutCubic,
		"EaseInCubic":   EaseInCubic,
		"EaseInOutSine": EaseInOutSine,
	}
	for name, fn := range funcs {
		t.Run(name, func(t *testing.T) {
			if got := fn(0); math.Abs(got) > 1e-9 {
				t.Errorf("%s(0): got %v, want 0", name, got)
			}
			if got := fn(1); math.Abs(got-1) > 1e-9 {
				t.Errorf("%s(1): got %v, want 1", name, got)
			}
		})
	}
}

// TestEaseOutCubic 测试三次方缓出函数
func TestEaseOutCubic(t *testing.T) {
	if got := EaseOutCubic(0.5); math.Abs(got-0.875) > 0.001 {
		t.Errorf("EaseOutCubic(0.5): got %v, want 0.875", got)
	}
}

// TestLerpAndClamp 测试插值与限幅
func TestLerpAndClamp(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"Lerp 起点", Lerp(10, 20, 0), 10},
		{"Lerp 中点", Lerp(10, 20, 0.5), 15},
		{"Lerp 终点", Lerp(10, 20, 1), 20},
		{"Clamp 下界", Clamp(-1, 0, 1), 0},
		{"Clamp 上界", Clamp(2, 0, 1), 1},
		{"Clamp 区间内", Clamp(0.3, 0, 1), 0.3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if math.Abs(tt.got-tt.want) > 1e-9 {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

// TestPulse 往复量在半周期处达到最大，整周期回到 0
func TestPulse(t *testing.T) {
	if got := Pulse(0, 2); math.Abs(got) > 1e-9 {
		t.Errorf("Pulse(0): got %v, want 0", got)
	}
	if got := Pulse(1, 2); math.Abs(got-1) > 1e-9 {
		t.Errorf("Pulse(half): got %v, want 1", got)
	}
	if got := Pulse(2, 2); math.Abs(got) > 1e-9 {
		t.Errorf("Pulse(full): got %v, want 0", got)
	}
	if got := Pulse(1, 0); got != 0 {
		t.Errorf("Pulse with zero period: got %v, want 0", got)
	}
}
