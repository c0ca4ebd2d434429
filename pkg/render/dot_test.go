package render

import (
	"strings"
	"testing"

	"github.com/netlabtools/labviz/pkg/lab"
)

func TestToDOT(t *testing.T) {
	l := lab.New()
	r1 := l.EnsureNode("r1")
	r2 := l.EnsureNode("r2")
	a := l.EnsureNode("alpha")
	b := l.EnsureNode("beta")

	p2p := l.EnsureConnection("A")
	p2p.AddMember(r1, "0")
	p2p.AddMember(r2, "0")

	hub := l.EnsureConnection("LAN0")
	hub.AddMember(r1, "1")
	hub.AddMember(a, "0")
	hub.AddMember(b, "0")

	l.EnsureConnection("dangling").AddMember(a, "1")

	l.Classify()
	dot := ToDOT(l)

	if !strings.HasPrefix(dot, "graph lab {") {
		t.Errorf("not an undirected graph: %s", dot[:20])
	}
	if !strings.Contains(dot, `"r1" -- "r2" [label="A"];`) {
		t.Error("p2p edge missing")
	}
	if !strings.Contains(dot, `"hub_LAN0"`) {
		t.Error("hub vertex missing for multi-member domain")
	}
	if got := strings.Count(dot, `-- "hub_LAN0"`); got != 3 {
		t.Errorf("hub spokes = %d, want 3", got)
	}
	if strings.Contains(dot, "dangling") {
		t.Error("single-member domain should not appear")
	}
	if !strings.Contains(dot, "shape=circle") {
		t.Error("router shape missing")
	}
}

func TestToDOTDeterministic(t *testing.T) {
	build := func() *lab.Lab {
		l := lab.New()
		r1 := l.EnsureNode("r1")
		pc := l.EnsureNode("pc1")
		c := l.EnsureConnection("A")
		c.AddMember(r1, "0")
		c.AddMember(pc, "0")
		l.Classify()
		return l
	}
	if ToDOT(build()) != ToDOT(build()) {
		t.Error("identical labs produced different DOT")
	}
}
