package visualize

import (
	"strings"
	"testing"

	"github.com/comalice/carousel"
)

func TestDOTRing(t *testing.T) {
	st := carousel.State{Total: 3, ActiveIndex: 1, Phase: carousel.PhaseIdle, Initialized: true}
	out := DOT("home", st, []string{"Sensor", "Gateway"})

	for _, want := range []string{
		`digraph "home" {`,
		`label="idle";`,
		`"s0" [label="01 Sensor", style="rounded"];`,
		`"s1" [label="02 Gateway", style="rounded,filled"];`,
		`"s2" [label="03", style="rounded"];`,
		`"s2" -> "s0" [label="next"];`,
		`"s0" -> "s2" [label="prev", style=dashed];`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("DOT output missing %q:\n%s", want, out)
		}
	}
}

func TestDOTTwoSlidesNoPrevEdges(t *testing.T) {
	st := carousel.State{Total: 2, Phase: carousel.PhaseTransitioning, Paused: true, Initialized: true}
	out := DOT("pair", st, nil)

	if strings.Contains(out, "prev") {
		t.Errorf("unexpected prev edges:\n%s", out)
	}
	if !strings.Contains(out, `label="transitioning (paused)";`) {
		t.Errorf("missing paused phase label:\n%s", out)
	}
}

func TestDOTInert(t *testing.T) {
	out := DOT("empty", carousel.State{Initialized: true, Phase: carousel.PhaseIdle}, nil)
	if !strings.Contains(out, `label="inert";`) {
		t.Errorf("expected inert label:\n%s", out)
	}
	if strings.Contains(out, "->") {
		t.Errorf("unexpected edges:\n%s", out)
	}
}
