package registry

import (
	"errors"
	"slices"
	"testing"
)

func TestRegisterExactlyOnce(t *testing.T) {
	r := New[int, string]()

	if err := r.Register(1, "a"); err != nil {
		t.Fatalf("first Register() error = %v", err)
	}
	if err := r.Register(1, "b"); !errors.Is(err, ErrAlreadyActive) {
		t.Errorf("second Register() = %v, expected ErrAlreadyActive", err)
	}
	if v, _ := r.Get(1); v != "a" {
		t.Errorf("duplicate Register must not overwrite, got %q", v)
	}
}

func TestRemoveAbsent(t *testing.T) {
	r := New[int, string]()

	if err := r.Remove(7); !errors.Is(err, ErrNotActive) {
		t.Errorf("Remove() of absent key = %v, expected ErrNotActive", err)
	}
	if err := r.Update(7, "x"); !errors.Is(err, ErrNotActive) {
		t.Errorf("Update() of absent key = %v, expected ErrNotActive", err)
	}

	_ = r.Register(7, "x")
	if err := r.Remove(7); err != nil {
		t.Errorf("Remove() of active key = %v", err)
	}
	if r.Has(7) {
		t.Error("key should be inactive after Remove")
	}
}

func TestKeysSortedAndClear(t *testing.T) {
	r := New[int, struct{}]()
	for _, k := range []int{3, 1, 2} {
		_ = r.Register(k, struct{}{})
	}

	if got := r.Keys(); !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("Keys() = %v, expected [1 2 3]", got)
	}
	if r.Len() != 3 {
		t.Errorf("Len() = %d, expected 3", r.Len())
	}

	r.Clear()
	if r.Len() != 0 {
		t.Errorf("Len() after Clear = %d, expected 0", r.Len())
	}
}
