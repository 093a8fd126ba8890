package ecs

import "testing"

// stub components used only in tests
type testComp struct{ val int }

func (testComp) Type() ComponentType { return 1 }

type otherComp struct{}

func (otherComp) Type() ComponentType { return 2 }

type testRes struct{ name string }

func (*testRes) ResourceType() ResourceType { return 1 }

func TestCreateEntityIDsAreMonotonic(t *testing.T) {
	w := NewWorld()
	a := w.CreateEntity()
	if a == NilEntity {
		t.Fatal("expected non-nil entity ID")
	}
	w.DestroyEntity(a)
	b := w.CreateEntity()
	if b <= a {
		t.Fatalf("expected ID after %d, got %d; IDs must never be reused", a, b)
	}
}

func TestAddAndGetComponent(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Add(id, testComp{val: 42})

	c := w.Get(id, ComponentType(1))
	if c == nil {
		t.Fatal("expected component, got nil")
	}
	tc, ok := c.(testComp)
	if !ok {
		t.Fatal("wrong component type returned")
	}
	if tc.val != 42 {
		t.Fatalf("expected val=42, got %d", tc.val)
	}
}

func TestMustGetPanicsWhenAbsent(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	defer func() {
		if recover() == nil {
			t.Fatal("MustGet on an absent component must panic")
		}
	}()
	w.MustGet(id, ComponentType(1))
}

func TestDestroyEntityRemovesComponents(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Add(id, testComp{val: 7})
	w.DestroyEntity(id)

	if w.Alive(id) {
		t.Fatal("entity should not be alive after DestroyEntity")
	}
	if w.Get(id, ComponentType(1)) != nil {
		t.Fatal("component should be gone after DestroyEntity")
	}
}

func TestQueryFiltersCorrectly(t *testing.T) {
	w := NewWorld()

	// entity with both A and B
	both := w.CreateEntity()
	w.Add(both, testComp{})
	w.Add(both, otherComp{})

	// entity with only A
	onlyA := w.CreateEntity()
	w.Add(onlyA, testComp{})

	results := w.Query(ComponentType(1), ComponentType(2))
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0] != both {
		t.Fatalf("expected entity %v in results, got %v", both, results[0])
	}
}

func TestQueryNoArgsReturnsAllAlive(t *testing.T) {
	w := NewWorld()
	a := w.CreateEntity()
	b := w.CreateEntity()
	dead := w.CreateEntity()
	w.DestroyEntity(dead)

	results := w.Query()
	if len(results) != 2 {
		t.Fatalf("expected 2 alive entities, got %d", len(results))
	}
	if results[0] != a || results[1] != b {
		t.Fatalf("expected [%d %d], got %v", a, b, results)
	}
}

func TestQueryNoMatchReturnsEmpty(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Add(id, testComp{})

	if got := w.Query(ComponentType(2)); len(got) != 0 {
		t.Fatalf("expected no matches, got %v", got)
	}
	if got := w.Query(ComponentType(99)); len(got) != 0 {
		t.Fatalf("expected no matches for unknown type, got %v", got)
	}
}

func TestQueryIsRepeatable(t *testing.T) {
	w := NewWorld()
	for i := 0; i < 8; i++ {
		id := w.CreateEntity()
		w.Add(id, testComp{val: i})
	}
	first := w.Query(ComponentType(1))
	second := w.Query(ComponentType(1))
	if len(first) != len(second) {
		t.Fatalf("repeated queries differ in length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("repeated queries differ at %d: %v vs %v", i, first, second)
		}
	}
}

func TestRemoveComponent(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Add(id, testComp{val: 5})

	w.Remove(id, ComponentType(1))

	if w.Get(id, ComponentType(1)) != nil {
		t.Fatal("component should be nil after Remove")
	}
}

func TestRemoveNonexistentIsNoop(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	// Removing a component type that was never added must not panic.
	w.Remove(id, ComponentType(99))
}

func TestQueryExcludesDeadEntities(t *testing.T) {
	w := NewWorld()
	alive := w.CreateEntity()
	w.Add(alive, testComp{})

	dead := w.CreateEntity()
	w.Add(dead, testComp{})
	w.DestroyEntity(dead)

	results := w.Query(ComponentType(1))
	if len(results) != 1 || results[0] != alive {
		t.Fatalf("expected only the alive entity; got %v", results)
	}
}

func TestResources(t *testing.T) {
	w := NewWorld()
	if w.Resource(ResourceType(1)) != nil {
		t.Fatal("expected nil before AddResource")
	}
	r := &testRes{name: "first"}
	w.AddResource(r)
	if got := w.Resource(ResourceType(1)); got != Resource(r) {
		t.Fatalf("expected the registered resource back, got %v", got)
	}

	// Re-registration replaces the prior instance.
	r2 := &testRes{name: "second"}
	w.AddResource(r2)
	if got := w.MustResource(ResourceType(1)).(*testRes); got.name != "second" {
		t.Fatalf("expected replacement resource, got %q", got.name)
	}
}

func TestMustResourcePanicsWhenAbsent(t *testing.T) {
	w := NewWorld()
	defer func() {
		if recover() == nil {
			t.Fatal("MustResource on an empty slot must panic")
		}
	}()
	w.MustResource(ResourceType(9))
}
