package components

// PlayerComponent 标识实体为玩家战机
// 整局游戏中携带本组件的实体必须恰好一个（单例约定，碰撞结算强校验）
type PlayerComponent struct{}
