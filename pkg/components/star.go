package components

// StarComponent 标记实体为背景星星
// 星星向下滚动，完全滚出底边后由 StarWrapSystem 传送回顶边循环使用
type StarComponent struct {
	// Brightness 亮度系数（0.0-1.0），渲染时调制星星颜色
	Brightness float64
}
