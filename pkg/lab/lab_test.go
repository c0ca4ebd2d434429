package lab

import "testing"

func TestEnsureNode(t *testing.T) {
	l := New()
	a := l.EnsureNode("a")
	if a2 := l.EnsureNode("a"); a2 != a {
		t.Error("EnsureNode created a duplicate for an existing name")
	}
	if l.NodeCount() != 1 {
		t.Errorf("NodeCount() = %d, want 1", l.NodeCount())
	}
	if a.Type != NodeUnknown {
		t.Errorf("new node type = %s, want unknown", a.Type)
	}
}

func TestEnsureConnection(t *testing.T) {
	l := New()
	c := l.EnsureConnection("A")
	if c2 := l.EnsureConnection("A"); c2 != c {
		t.Error("EnsureConnection created a duplicate for an existing domain")
	}
	if c.Type != ConnLAN {
		t.Errorf("new connection type = %s, want lan", c.Type)
	}
}

func TestConnectionHelpers(t *testing.T) {
	l := New()
	r := l.EnsureNode("r1")
	r.Type = NodeRouter
	p := l.EnsureNode("pc1")
	p.Type = NodePC
	out := l.EnsureNode("outsider")

	c := l.EnsureConnection("A")
	c.AddMember(r, "0")
	c.AddMember(p, "1")

	if !c.Contains(r) || !c.Contains(p) {
		t.Error("Contains() missed a member")
	}
	if c.Contains(out) {
		t.Error("Contains() matched a non-member")
	}
	if c.RouterCount() != 1 {
		t.Errorf("RouterCount() = %d, want 1", c.RouterCount())
	}
	if !c.HasMemberType(NodePC) || c.HasMemberType(NodeServer) {
		t.Error("HasMemberType() wrong")
	}
}

func TestBridged(t *testing.T) {
	n := newNode("srv")
	if n.Bridged() {
		t.Error("fresh node reports bridged")
	}
	n.AddProperty("bridged", "")
	if !n.Bridged() {
		t.Error("bridged property not detected (value is irrelevant)")
	}
}

func TestNameDescriptionFallbacks(t *testing.T) {
	l := New()
	if got := l.Name("fallback"); got != "fallback" {
		t.Errorf("Name() = %q, want fallback", got)
	}
	l.Info["LAB_NAME"] = "Real"
	if got := l.Name("fallback"); got != "Real" {
		t.Errorf("Name() = %q, want Real", got)
	}
	if got := l.Description("none"); got != "none" {
		t.Errorf("Description() = %q, want none", got)
	}
}
