package utils

import (
	"testing"
	"testing/quick"
)

// TestInnerBound 测试贴边界限的基准值
func TestInnerBound(t *testing.T) {
	tests := []struct {
		name      string
		dimension float64
		extent    float64
		expected  float64
	}{
		{"800宽视口-64宽战机", 800, 64, 368},
		{"600高视口-64高战机", 600, 64, 268},
		{"800宽视口-128宽敌机", 800, 128, 336},
		{"尺寸为0的点实体", 800, 0, 400},
		{"实体与视口同宽", 800, 800, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := InnerBound(tt.dimension, tt.extent)
			if result != tt.expected {
				t.Errorf("InnerBound(%v, %v) = %v, 期望 %v", tt.dimension, tt.extent, result, tt.expected)
			}
		})
	}
}

// TestOuterBound 测试出屏界限的基准值
func TestOuterBound(t *testing.T) {
	tests := []struct {
		name      string
		dimension float64
		extent    float64
		expected  float64
	}{
		{"800宽视口-128宽敌机", 800, 128, 464},
		{"600高视口-128高敌机", 600, 128, 364},
		{"600高视口-66高星星", 600, 66, 333},
		{"尺寸为0的点实体", 600, 0, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := OuterBound(tt.dimension, tt.extent)
			if result != tt.expected {
				t.Errorf("OuterBound(%v, %v) = %v, 期望 %v", tt.dimension, tt.extent, result, tt.expected)
			}
		})
	}
}

// TestBoundIdentities 属性测试：两条恒等式对任意非负整数输入严格成立
// 用整数值的 float64 保证浮点运算无舍入（整数的一半在二进制下是精确的）
func TestBoundIdentities(t *testing.T) {
	sumIsDimension := func(d, e uint16) bool {
		dimension, extent := float64(d), float64(e)
		return InnerBound(dimension, extent)+OuterBound(dimension, extent) == dimension
	}
	if err := quick.Check(sumIsDimension, nil); err != nil {
		t.Errorf("InnerBound + OuterBound != dimension: %v", err)
	}

	diffIsExtent := func(d, e uint16) bool {
		dimension, extent := float64(d), float64(e)
		return OuterBound(dimension, extent)-InnerBound(dimension, extent) == extent
	}
	if err := quick.Check(diffIsExtent, nil); err != nil {
		t.Errorf("OuterBound - InnerBound != extent: %v", err)
	}
}

// TestBoundOrdering 属性测试：实体不大于视口时 InnerBound <= OuterBound
func TestBoundOrdering(t *testing.T) {
	ordered := func(d, e uint16) bool {
		dimension := float64(d) + float64(e) // 保证 dimension >= extent
		extent := float64(e)
		return InnerBound(dimension, extent) <= OuterBound(dimension, extent)
	}
	if err := quick.Check(ordered, nil); err != nil {
		t.Errorf("InnerBound should never exceed OuterBound: %v", err)
	}
}

func BenchmarkBounds(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = InnerBound(800, 64)
		_ = OuterBound(600, 66)
	}
}
