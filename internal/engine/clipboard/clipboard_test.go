package clipboard

import "testing"

func TestClipboardEmpty(t *testing.T) {
	c := New()
	if !c.IsEmpty() || c.Get() != "" || c.Len() != 0 {
		t.Errorf("new clipboard should be empty, got %q", c.Get())
	}
}

func TestClipboardSetOverwrites(t *testing.T) {
	c := New()
	c.Set("first")
	c.Set("second")
	if c.Get() != "second" {
		t.Errorf("expected %q, got %q", "second", c.Get())
	}
	if c.Len() != 6 {
		t.Errorf("expected length 6, got %d", c.Len())
	}
}

func TestClipboardGetDoesNotConsume(t *testing.T) {
	c := New()
	c.Set("keep")
	for i := 0; i < 3; i++ {
		if got := c.Get(); got != "keep" {
			t.Fatalf("read %d: expected %q, got %q", i, "keep", got)
		}
	}
}
