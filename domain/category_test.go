package domain

import "testing"

func categoryFixture() *CategoryTree {
	parent := func(id int) *int { return &id }
	return NewCategoryTree([]Category{
		{CategoryID: 1, Name: "Sports"},
		{CategoryID: 2, Name: "Martial Arts", ParentID: parent(1)},
		{CategoryID: 3, Name: "Boxing", ParentID: parent(2)},
		{CategoryID: 4, Name: "Karate", ParentID: parent(2)},
		{CategoryID: 5, Name: "Arts & Crafts"},
	})
}

func TestFullPath(t *testing.T) {
	tree := categoryFixture()

	tests := []struct {
		name       string
		categoryID int
		want       string
	}{
		{name: "leaf", categoryID: 3, want: "Sports → Martial Arts → Boxing"},
		{name: "middle", categoryID: 2, want: "Sports → Martial Arts"},
		{name: "root", categoryID: 1, want: "Sports"},
		{name: "unknown id", categoryID: 99, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tree.FullPath(tt.categoryID); got != tt.want {
				t.Errorf("FullPath(%d) = %q, want %q", tt.categoryID, got, tt.want)
			}
		})
	}
}

func TestSubtree(t *testing.T) {
	tree := categoryFixture()

	got := tree.Subtree(1)
	if len(got) != 3 {
		t.Fatalf("Subtree(1) returned %d categories, want 3", len(got))
	}
	names := map[string]bool{}
	for _, c := range got {
		names[c.Name] = true
	}
	for _, want := range []string{"Martial Arts", "Boxing", "Karate"} {
		if !names[want] {
			t.Errorf("Subtree(1) missing %q", want)
		}
	}

	if leafs := tree.Subtree(3); len(leafs) != 0 {
		t.Errorf("Subtree(3) returned %d categories, want 0", len(leafs))
	}
}

func TestNested(t *testing.T) {
	tree := categoryFixture()

	nodes := tree.Nested()
	if len(nodes) != 2 {
		t.Fatalf("Nested() returned %d roots, want 2", len(nodes))
	}
	if nodes[0].Name != "Sports" || len(nodes[0].Children) != 1 {
		t.Fatalf("Sports root malformed: %+v", nodes[0])
	}
	if got := len(nodes[0].Children[0].Children); got != 2 {
		t.Errorf("Martial Arts has %d children, want 2", got)
	}
	if len(nodes[1].Children) != 0 {
		t.Errorf("Arts & Crafts should have no children")
	}
}

func TestCycleGuard(t *testing.T) {
	// Two categories pointing at each other must not hang any walk.
	a, b := 1, 2
	tree := NewCategoryTree([]Category{
		{CategoryID: 1, Name: "A", ParentID: &b},
		{CategoryID: 2, Name: "B", ParentID: &a},
	})

	if got := tree.FullPath(1); got != "B → A" {
		t.Errorf("FullPath(1) on cycle = %q, want %q", got, "B → A")
	}
	if got := tree.Subtree(1); len(got) != 1 {
		t.Errorf("Subtree(1) on cycle returned %d categories, want 1", len(got))
	}
}
