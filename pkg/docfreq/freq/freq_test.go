package freq

import (
	"reflect"
	"testing"
)

func TestCount(t *testing.T) {
	counts := Count([]string{"hello", "world", "hello", "hello"})

	expected := map[string]int{"hello": 3, "world": 1}
	if !reflect.DeepEqual(counts, expected) {
		t.Errorf("Expected %v, got %v", expected, counts)
	}
}

func TestCountEmpty(t *testing.T) {
	counts := Count(nil)
	if len(counts) != 0 {
		t.Errorf("Expected empty map, got %v", counts)
	}
}

func TestRangeBoundariesInclusive(t *testing.T) {
	counts := map[string]int{
		"below": 4, "atmin": 5, "inside": 7, "atmax": 10, "above": 11,
	}

	kept := Range(5, 10).Apply(counts)

	expected := map[string]int{"atmin": 5, "inside": 7, "atmax": 10}
	if !reflect.DeepEqual(kept, expected) {
		t.Errorf("Expected %v, got %v", expected, kept)
	}
}

func TestRangeFromUnboundedAbove(t *testing.T) {
	counts := map[string]int{"a": 1, "b": 3, "c": 100}

	kept := RangeFrom(3).Apply(counts)

	expected := map[string]int{"b": 3, "c": 100}
	if !reflect.DeepEqual(kept, expected) {
		t.Errorf("Expected %v, got %v", expected, kept)
	}
}

func TestExact(t *testing.T) {
	counts := map[string]int{"a": 3, "b": 5, "c": 3}

	kept := Exact([]int{3}).Apply(counts)

	expected := map[string]int{"a": 3, "c": 3}
	if !reflect.DeepEqual(kept, expected) {
		t.Errorf("Expected %v, got %v", expected, kept)
	}
}

func TestExactDeduplicatesValues(t *testing.T) {
	counts := map[string]int{"a": 3, "b": 5}

	kept := Exact([]int{3, 3, 3}).Apply(counts)

	expected := map[string]int{"a": 3}
	if !reflect.DeepEqual(kept, expected) {
		t.Errorf("Expected %v, got %v", expected, kept)
	}
}

func TestNonePassesThrough(t *testing.T) {
	counts := map[string]int{"a": 1, "b": 2}

	kept := None().Apply(counts)

	if !reflect.DeepEqual(kept, counts) {
		t.Errorf("Expected unchanged map, got %v", kept)
	}

	if !None().IsNone() {
		t.Error("None() should report IsNone")
	}
	if Range(1, 2).IsNone() || Exact([]int{1}).IsNone() {
		t.Error("Range and Exact specs should not report IsNone")
	}
}
