package cache

import "testing"

func TestGetMissing(t *testing.T) {
	c := New[string, int]()
	_, ok := c.Get("missing")
	if ok {
		t.Fatal("expected no entry")
	}
}

func TestSetOverwrites(t *testing.T) {
	c := New[string, int]()
	c.Set("a", 1)
	c.Set("a", 2)
	got, ok := c.Get("a")
	if !ok {
		t.Fatal("entry not found")
	}
	if got != 2 {
		t.Fatalf("got %d, want 2", got)
	}
	if c.Len() != 1 {
		t.Fatalf("got %d entries, want 1", c.Len())
	}
}

func TestDelete(t *testing.T) {
	c := New[string, int]()
	c.Set("a", 1)
	c.Delete("a")
	if c.Len() != 0 {
		t.Fatalf("got %d entries, want 0", c.Len())
	}
}

func TestForEach(t *testing.T) {
	c := New[string, int]()
	c.Set("a", 1)
	c.Set("b", 2)
	sum := 0
	c.ForEach(func(_ string, value int) {
		sum += value
	})
	if sum != 3 {
		t.Fatalf("got sum %d, want 3", sum)
	}
}
