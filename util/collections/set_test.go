package collections

import (
	"reflect"
	"testing"
)

func TestSetToggle(t *testing.T) {
	set := make(Set[int])

	if !set.Toggle(3) {
		t.Fatal("toggling an absent element should add it")
	}
	if !set.Contains(3) {
		t.Fatal("3 should be in the set")
	}
	if set.Toggle(3) {
		t.Fatal("toggling a present element should remove it")
	}
	if set.Contains(3) || len(set) != 0 {
		t.Fatalf("set should be empty, got %v", set)
	}
}

func TestSorted(t *testing.T) {
	set := make(Set[string])
	for _, v := range []string{"Web", "Games", "Tools", "Games"} {
		set.Add(v)
	}
	set.Remove("Tools")
	set.Remove("missing")

	if got, want := Sorted(set), []string{"Games", "Web"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Sorted = %v, want %v", got, want)
	}
}
