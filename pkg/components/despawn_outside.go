package components

// DespawnOutsideComponent 标记实体离屏后可被回收
// 出屏回收系统只处理携带本标记的实体（子弹、敌机）；
// 玩家和背景星星不携带，离屏多远都不会被销毁
type DespawnOutsideComponent struct{}
