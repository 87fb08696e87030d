package ecs

import (
	"reflect"
	"testing"
)

// TestGenericAPI_Correctness 验证泛型 API 与反射 API 行为一致
func TestGenericAPI_Correctness(t *testing.T) {
	em := NewEntityManager()
	entity := em.CreateEntity()

	t.Run("AddComponent", func(t *testing.T) {
		AddComponent(em, entity, &gridComp{Col: 3, Row: 7})

		if !HasComponent[*gridComp](em, entity) {
			t.Fatal("generic AddComponent should make the component visible")
		}
		// 反射 API 必须看到同一份组件
		if !em.HasComponent(entity, reflect.TypeOf(&gridComp{})) {
			t.Fatal("reflection API should see the generically added component")
		}
	})

	t.Run("GetComponent", func(t *testing.T) {
		comp, ok := GetComponent[*gridComp](em, entity)
		if !ok {
			t.Fatal("GetComponent should find the component")
		}
		if comp.Col != 3 || comp.Row != 7 {
			t.Fatalf("GetComponent returned wrong data (Col=%d, Row=%d)", comp.Col, comp.Row)
		}

		// 泛型读取返回的是同一实例,修改应当可见
		comp.Col = 99
		again, _ := GetComponent[*gridComp](em, entity)
		if again.Col != 99 {
			t.Fatal("GetComponent should return the stored instance, not a copy")
		}
	})

	t.Run("HasComponent", func(t *testing.T) {
		if !HasComponent[*gridComp](em, entity) {
			t.Fatal("HasComponent should report an existing component")
		}
		if HasComponent[*flagComp](em, entity) {
			t.Fatal("HasComponent should report a missing component as absent")
		}
	})

	t.Run("GetEntitiesWithN", func(t *testing.T) {
		AddComponent(em, entity, &motionComp{DX: 1, DY: 2})
		AddComponent(em, entity, &flagComp{On: true})

		if got := GetEntitiesWith3[*gridComp, *motionComp, *flagComp](em); len(got) != 1 || got[0] != entity {
			t.Fatalf("GetEntitiesWith3 expected [%d], got %v", entity, got)
		}
		if got := GetEntitiesWith2[*gridComp, *motionComp](em); len(got) != 1 {
			t.Fatalf("GetEntitiesWith2 expected 1 entity, got %d", len(got))
		}
		if got := GetEntitiesWith1[*gridComp](em); len(got) != 1 {
			t.Fatalf("GetEntitiesWith1 expected 1 entity, got %d", len(got))
		}
	})

	t.Run("MultipleEntities", func(t *testing.T) {
		em2 := NewEntityManager()
		for i := 0; i < 10; i++ {
			e := em2.CreateEntity()
			AddComponent(em2, e, &gridComp{Col: i})
			AddComponent(em2, e, &motionComp{DX: float64(i)})
		}

		entities := GetEntitiesWith2[*gridComp, *motionComp](em2)
		if len(entities) != 10 {
			t.Fatalf("expected 10 entities, got %d", len(entities))
		}
	})
}

// TestPerformanceComparison_Quick 小数据集上快速对比反射与泛型查询开销
// 只输出观测值,不做硬性断言(CI 机器差异太大)
func TestPerformanceComparison_Quick(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping perf comparison in short mode")
	}

	const entityCount = 100
	const iterations = 1000

	em := setupBenchmarkEntities(entityCount, 3)

	reflection := testing.Benchmark(func(b *testing.B) {
		for i := 0; i < iterations; i++ {
			_ = em.GetEntitiesWith(
				reflect.TypeOf(&gridComp{}),
				reflect.TypeOf(&motionComp{}),
				reflect.TypeOf(&flagComp{}),
			)
		}
	})

	generic := testing.Benchmark(func(b *testing.B) {
		for i := 0; i < iterations; i++ {
			_ = GetEntitiesWith3[*gridComp, *motionComp, *flagComp](em)
		}
	})

	reflectionTime := float64(reflection.NsPerOp())
	genericTime := float64(generic.NsPerOp())
	improvement := ((reflectionTime - genericTime) / reflectionTime) * 100

	t.Logf("=== GetEntitiesWith 性能对比 ===")
	t.Logf("反射版本: %d ns/op", reflection.NsPerOp())
	t.Logf("泛型版本: %d ns/op", generic.NsPerOp())
	if improvement < 0 {
		t.Logf("⚠️  泛型版本比反射版本慢 %.2f%%", -improvement)
	} else {
		t.Logf("✅ 泛型版本快 %.2f%%", improvement)
	}
}
