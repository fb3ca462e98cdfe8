package config

import (
	"math"
	"testing"
)

// TestCalculateDotPosition 测试导航圆点布局
func TestCalculateDotPosition(t *testing.T) {
	tests := []struct {
		name  string
		index int
		count int
		wantY float64
	}{
		{"单个圆点居中", 0, 1, float64(GameWindowHeight) / 2},
		{"第一个圆点", 0, SlideCount, float64(GameWindowHeight)/2 - 3*DotSpacing},
		{"中间圆点居中", 3, SlideCount, float64(GameWindowHeight) / 2},
		{"最后一个圆点", 6, SlideCount, float64(GameWindowHeight)/2 + 3*DotSpacing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := CalculateDotPosition(tt.index, tt.count)
			if x != DotsX {
				t.Errorf("x: got %v, want %v", x, DotsX)
			}
			if math.Abs(y-tt.wantY) > 1e-9 {
				t.Errorf("y: got %v, want %v", y, tt.wantY)
			}
		})
	}
}

// TestCalculateDotPositionEmpty 测试空列表
func TestCalculateDotPositionEmpty(t *testing.T) {
	x, y := CalculateDotPosition(0, 0)
	if x != 0 || y != 0 {
		t.Errorf("got (%v, %v), want (0, 0)", x, y)
	}
}

// TestPercentToScreen 测试小游戏百分比坐标映射
func TestPercentToScreen(t *testing.T) {
	_, _, w, h := GetGamePlayArea()

	tests := []struct {
		name         string
		px, py       float64
		wantX, wantY float64
	}{
		{"左上角", 0, 0, 0, 0},
		{"右下角", 100, 100, w, h},
		{"中心", 50, 50, w / 2, h / 2},
		{"屏幕外左侧", -10, 50, -w / 10, h / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := PercentToScreen(tt.px, tt.py)
			if math.Abs(x-tt.wantX) > 1e-9 || math.Abs(y-tt.wantY) > 1e-9 {
				t.Errorf("PercentToScreen(%v, %v): got (%v, %v), want (%v, %v)",
					tt.px, tt.py, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}
