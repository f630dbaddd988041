package core

import (
	"slices"
	"testing"
)

type fakeSim struct{}

func (fakeSim) Name() string { return "fake" }
func (fakeSim) Size() Size { return Size{W: 1, H: 1} }
func (fakeSim) Reset(int64) {}
func (fakeSim) Step() {}
func (fakeSim) Cells() []uint8 { return []uint8{0} }

func TestRegistry(t *testing.T) {
	Register("", func(map[string]string) Sim { return fakeSim{} })
	Register("ignored", nil)
	Register("fake-registry-test", func(map[string]string) Sim { return fakeSim{} })
	t.Cleanup(func() { delete(sims, "fake-registry-test") })

	if _, err := Lookup(""); err == nil {
		t.Fatal("empty names must not register")
	}
	if _, err := Lookup("ignored"); err == nil {
		t.Fatal("nil factories must not register")
	}
	if !slices.Contains(Names(), "fake-registry-test") {
		t.Fatalf("expected Names to list the registered sim, got %v", Names())
	}
	f, err := Lookup("fake-registry-test")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if f(nil).Name() != "fake" {
		t.Fatal("expected registered factory to build the fake sim")
	}
	if _, err := Lookup("missing"); err == nil {
		t.Fatal("expected error for unknown sim")
	}
}
