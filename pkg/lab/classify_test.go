package lab

import "testing"

func TestClassifyNode(t *testing.T) {
	tests := []struct {
		name  string
		image string
		want  NodeType
	}{
		// Name-based rules, in priority order.
		{"router_core", "", NodeRouter},
		{"r1", "", NodeRouter},
		{"R3", "", NodeRouter}, // case-insensitive
		{"pc1", "", NodePC},
		{"webhost", "", NodePC},
		{"client2", "", NodePC},
		{"fileserver", "", NodeServer},
		{"snmp_agent", "", NodeServer},
		// "server1" contains "r1", and router rules run first.
		{"server1", "", NodeRouter},
		{"zabbix", "", NodeServer},
		{"switch1", "", NodeSwitch},
		// Name rules win over image rules.
		{"pc9", "frr", NodePC},
		// Image-based fallback.
		{"alpha", "kathara/frr", NodeRouter},
		{"alpha", "quagga:latest", NodeRouter},
		{"alpha", "Ubuntu:22.04", NodePC},
		{"alpha", "zabbix/zabbix-appliance", NodeServer},
		// Default.
		{"alpha", "", NodePC},
		{"alpha", "mystery-image", NodePC},
	}
	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.image, func(t *testing.T) {
			if got := ClassifyNode(tt.name, tt.image); got != tt.want {
				t.Errorf("ClassifyNode(%q, %q) = %s, want %s", tt.name, tt.image, got, tt.want)
			}
		})
	}
}

func TestClassifyConnection(t *testing.T) {
	router := func(name string) *Node {
		n := newNode(name)
		n.Type = NodeRouter
		return n
	}
	pc := func(name string) *Node {
		n := newNode(name)
		n.Type = NodePC
		return n
	}

	tests := []struct {
		name    string
		members []*Node
		want    ConnType
	}{
		{"TwoMembers", []*Node{pc("a"), pc("b")}, ConnP2P},
		{"TwoRouters", []*Node{router("r1"), router("r2")}, ConnP2P},
		{"HubNoRouters", []*Node{pc("a"), pc("b"), pc("c")}, ConnLAN},
		{"HubTwoRouters", []*Node{router("r1"), router("r2"), pc("a")}, ConnRing},
		{"HubThreeRouters", []*Node{router("r1"), router("r2"), router("r3")}, ConnLAN},
		{"SingleMember", []*Node{pc("a")}, ConnLAN},
		{"Empty", nil, ConnLAN},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newConnection("X")
			for _, n := range tt.members {
				c.AddMember(n, "0")
			}
			if got := ClassifyConnection(c); got != tt.want {
				t.Errorf("ClassifyConnection() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestClassifyIdempotent(t *testing.T) {
	l := New()
	r1 := l.EnsureNode("r1")
	r2 := l.EnsureNode("r2")
	pc := l.EnsureNode("alpha")
	pc.Image = "mystery"
	c := l.EnsureConnection("A")
	c.AddMember(r1, "0")
	c.AddMember(r2, "0")
	c.AddMember(pc, "0")

	l.Classify()
	first := snapshot(l)
	l.Classify()
	second := snapshot(l)

	for name, typ := range first {
		if second[name] != typ {
			t.Errorf("%s changed type across runs: %s -> %s", name, typ, second[name])
		}
	}
	if c.Type != ConnRing {
		t.Errorf("connection type = %s, want ring", c.Type)
	}
}

func snapshot(l *Lab) map[string]NodeType {
	out := make(map[string]NodeType)
	for _, n := range l.Nodes() {
		out[n.Name] = n.Type
	}
	return out
}
