// bounds.go 提供屏幕边界的半尺寸计算
//
// 世界坐标原点在视口中心，因此"实体贴着边/完全出边"都可以
// 用中心坐标的绝对值与两个界限值比较来表达：
//
//   - InnerBound：实体仍完整留在视口内时，中心坐标绝对值的上限
//   - OuterBound：实体完全离开视口时，中心坐标绝对值的下限
//
// 两条恒等式（限位、出屏回收、背景循环三个系统共同依赖）：
//
//	InnerBound(d, e) + OuterBound(d, e) == d
//	OuterBound(d, e) - InnerBound(d, e) == e
package utils

// InnerBound 计算实体贴边时中心坐标的最大绝对值
//
// # 参数
//
//   - dimension: 视口在该轴上的尺寸（像素）
//   - extent: 实体在该轴上的渲染尺寸（像素，已含缩放）
//
// # 返回值
//
//   - 中心坐标绝对值的上限：(dimension - extent) / 2
func InnerBound(dimension, extent float64) float64 {
	return (dimension - extent) / 2
}

// OuterBound 计算实体完全出屏时中心坐标的最小绝对值
//
// # 参数
//
//   - dimension: 视口在该轴上的尺寸（像素）
//   - extent: 实体在该轴上的渲染尺寸（像素，已含缩放）
//
// # 返回值
//
//   - 中心坐标绝对值的下限：(dimension + extent) / 2
func OuterBound(dimension, extent float64) float64 {
	return (dimension + extent) / 2
}
