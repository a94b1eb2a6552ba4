package clipboard

import "testing"

func TestRegister(t *testing.T) {
	c := New(false)
	if _, ok := c.(*Register); !ok {
		t.Fatalf("New(false) = %T, want *Register", c)
	}
	if err := c.Write("hello"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := c.Read()
	if err != nil || got != "hello" {
		t.Errorf("Read = %q, %v", got, err)
	}
}

func TestSystemKeepsInternalCopy(t *testing.T) {
	s := &System{}
	if err := s.Write("copied"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got, _ := s.fallback.Read(); got != "copied" {
		t.Errorf("internal register = %q, want copied", got)
	}
}
