package systems

import (
	"testing"

	"github.com/gonewx/starstorm/pkg/components"
	"github.com/gonewx/starstorm/pkg/ecs"
)

// spawnTestStar 创建指定位置和尺寸的星星实体
func spawnTestStar(em *ecs.EntityManager, y, baseSize, scale float64) ecs.EntityID {
	entityID := em.CreateEntity()
	em.AddComponent(entityID, &components.StarComponent{Brightness: 0.8})
	em.AddComponent(entityID, &components.PositionComponent{X: 123, Y: y})
	em.AddComponent(entityID, &components.SpriteComponent{
		Width:  baseSize,
		Height: baseSize,
	})
	em.AddComponent(entityID, &components.ScaleComponent{ScaleX: scale, ScaleY: scale})
	return entityID
}

// TestStarWrapBoundary 测试星星回绕的临界值
// 600 高视口、基础 44 按 1.5 缩放（实际 66 高）：
// OuterBound(600,66)=333，严格低于 -333 才回绕到 +333
func TestStarWrapBoundary(t *testing.T) {
	tests := []struct {
		name      string
		startY    float64
		expectedY float64
	}{
		{"压线不动", -333.0, -333.0},
		{"刚越界回绕", -333.1, 333.0},
		{"深越界回绕", -500.0, 333.0},
		{"屏内不动", -100.0, -100.0},
		{"顶边上方不动", 400.0, 400.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			starID := spawnTestStar(em, tt.startY, 44, 1.5)

			system := NewStarWrapSystem(em, 600)
			system.Update(1.0 / 60)

			pos, _ := ecs.GetComponent[*components.PositionComponent](em, starID)
			if pos.Y != tt.expectedY {
				t.Errorf("y = %.1f，期望 %.1f", pos.Y, tt.expectedY)
			}
		})
	}
}

// TestStarWrapKeepsX 测试回绕只改Y坐标
// 星星沿原竖直轨迹继续下落，X 不变
func TestStarWrapKeepsX(t *testing.T) {
	em := ecs.NewEntityManager()
	starID := spawnTestStar(em, -400, 44, 1.5)

	system := NewStarWrapSystem(em, 600)
	system.Update(1.0 / 60)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, starID)
	if pos.X != 123 {
		t.Errorf("回绕修改了X坐标：%.1f", pos.X)
	}
	if pos.Y != 333 {
		t.Errorf("回绕后 y = %.1f，期望 333", pos.Y)
	}
}

// TestStarWrapNoScaleComponent 测试无缩放组件的星星按基础尺寸判定
// 44 高无缩放：OuterBound(600,44)=322
func TestStarWrapNoScaleComponent(t *testing.T) {
	em := ecs.NewEntityManager()
	starID := em.CreateEntity()
	em.AddComponent(starID, &components.StarComponent{Brightness: 1})
	em.AddComponent(starID, &components.PositionComponent{X: 0, Y: -322.5})
	em.AddComponent(starID, &components.SpriteComponent{Width: 44, Height: 44})

	system := NewStarWrapSystem(em, 600)
	system.Update(1.0 / 60)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, starID)
	if pos.Y != 322 {
		t.Errorf("y = %.1f，期望 322", pos.Y)
	}
}

// TestStarWrapIgnoresNonStars 测试非星星实体不回绕
// 出屏子弹走回收系统，不走循环
func TestStarWrapIgnoresNonStars(t *testing.T) {
	em := ecs.NewEntityManager()
	entityID := em.CreateEntity()
	em.AddComponent(entityID, &components.PositionComponent{X: 0, Y: -400})
	em.AddComponent(entityID, &components.SpriteComponent{Width: 44, Height: 44})

	system := NewStarWrapSystem(em, 600)
	system.Update(1.0 / 60)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, entityID)
	if pos.Y != -400 {
		t.Errorf("非星星实体被回绕到 y = %.1f", pos.Y)
	}
}

// TestStarWrapRepeats 测试星星可以无限循环
// 回绕后继续下落再次越界，还能再回绕
func TestStarWrapRepeats(t *testing.T) {
	em := ecs.NewEntityManager()
	starID := spawnTestStar(em, -340, 44, 1.5)

	system := NewStarWrapSystem(em, 600)

	system.Update(1.0 / 60)
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, starID)
	if pos.Y != 333 {
		t.Fatalf("第一次回绕后 y = %.1f，期望 333", pos.Y)
	}

	// 再次滚出底边
	pos.Y = -350
	system.Update(1.0 / 60)
	if pos.Y != 333 {
		t.Errorf("第二次回绕后 y = %.1f，期望 333", pos.Y)
	}
}
