package viewer

import (
	"math"
	"testing"
)

func TestPanelQuantities(t *testing.T) {
	story := burgerStory()
	p := NewPanel(&story, story.DefaultCustomizations())

	tests := []struct {
		name   string
		action func() bool
		id     string
		wantOK bool
		want   int
	}{
		{"increment patty", func() bool { return p.Increment("i1") }, "i1", true, 2},
		{"decrement patty", func() bool { return p.Decrement("i1") }, "i1", true, 1},
		{"patty floor", func() bool { return p.Decrement("i1") }, "i1", false, 1},
		{"remove patty refused", func() bool { return p.Remove("i1") }, "i1", false, 1},
		{"decrement tomato", func() bool { return p.Decrement("i4") }, "i4", true, 1},
		{"remove tomato", func() bool { return p.Remove("i4") }, "i4", true, 0},
		{"tomato zero floor", func() bool { return p.Decrement("i4") }, "i4", false, 0},
		{"unknown ingredient", func() bool { return p.Increment("nope") }, "nope", false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if ok := tt.action(); ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if got := p.Quantity(tt.id); got != tt.want {
				t.Fatalf("expected quantity %d, got %d", tt.want, got)
			}
		})
	}
}

func TestPanelDoesNotTouchCommitted(t *testing.T) {
	story := burgerStory()
	committed := story.DefaultCustomizations()
	p := NewPanel(&story, committed)

	p.Increment("i2")
	p.Increment("i2")
	if committed["i2"] != 1 {
		t.Fatalf("panel edit leaked into the committed map")
	}
	if math.Abs(p.Adjustment()-2) > 1e-9 || math.Abs(p.Price()-14.99) > 1e-9 {
		t.Fatalf("unexpected adjustment %v price %v", p.Adjustment(), p.Price())
	}

	w := p.Working()
	w["i2"] = 99
	if p.Quantity("i2") != 3 {
		t.Fatalf("Working must return a copy")
	}
}

func TestPanelReset(t *testing.T) {
	story := burgerStory()
	committed := story.DefaultCustomizations()
	committed["i2"] = 3
	p := NewPanel(&story, committed)

	p.Remove("i3")
	p.Reset()
	st := p.State()
	if st.Modifications != 0 || st.Adjustment != 0 || st.Price != story.BasePrice {
		t.Fatalf("reset must restore catalog defaults, got %+v", st)
	}
	if st.Quantities["i4"] != 2 {
		t.Fatalf("expected tomato default 2, got %d", st.Quantities["i4"])
	}
}

func TestPanelRemovalIsNotRefunded(t *testing.T) {
	story := burgerStory()
	p := NewPanel(&story, story.DefaultCustomizations())

	p.Remove("i2")
	p.Remove("i4")
	if p.Price() != story.BasePrice {
		t.Fatalf("removals must not lower the price, got %v", p.Price())
	}
	if p.Modifications() != 2 {
		t.Fatalf("expected 2 modifications, got %d", p.Modifications())
	}
}

func TestPanelSubstitute(t *testing.T) {
	story := burgerStory()
	p := NewPanel(&story, story.DefaultCustomizations())

	if !p.Substitute("i2", "Swiss") {
		t.Fatalf("expected Swiss to be accepted")
	}
	if p.Substitute("i2", "Brie") || p.Substitute("i1", "Swiss") {
		t.Fatalf("unlisted substitution accepted")
	}
	if p.Modifications() != 0 {
		t.Fatalf("substitution changed the working copy")
	}
}
