package lab

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/netlabtools/labviz/pkg/errors"
)

const sampleConf = `
LAB_NAME="Campus Lab"
LAB_DESCRIPTION="Routing exercise"
LAB_VERSION=3

# core routers
r1[image]="kathara/frr"
r1[0]="A"
r1[1]="C"
r2[image]="kathara/frr"
r2[0]="A"
r2[1]="B"

pc1[0]="B"
pc1[image]="kathara/base"

srv1[image]="zabbix/zabbix-appliance"
srv1[bridged]="true"
srv1[0]="C"

this line is not valid at all
`

func TestParse(t *testing.T) {
	l, err := Parse(strings.NewReader(sampleConf))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	t.Run("LabInfo", func(t *testing.T) {
		if got := l.Info["LAB_NAME"]; got != "Campus Lab" {
			t.Errorf("LAB_NAME = %q, want %q", got, "Campus Lab")
		}
		if got := l.Info["LAB_DESCRIPTION"]; got != "Routing exercise" {
			t.Errorf("LAB_DESCRIPTION = %q, want %q", got, "Routing exercise")
		}
		if got := l.Info["LAB_VERSION"]; got != "3" {
			t.Errorf("LAB_VERSION = %q, want %q (unquoted values pass through)", got, "3")
		}
	})

	t.Run("Nodes", func(t *testing.T) {
		if l.NodeCount() != 4 {
			t.Fatalf("NodeCount() = %d, want 4", l.NodeCount())
		}
		r1, ok := l.Node("r1")
		if !ok {
			t.Fatal("node r1 missing")
		}
		if r1.Image != "kathara/frr" {
			t.Errorf("r1 image = %q, want kathara/frr", r1.Image)
		}
		if r1.Interfaces["0"] != "A" || r1.Interfaces["1"] != "C" {
			t.Errorf("r1 interfaces = %v", r1.Interfaces)
		}
		srv, _ := l.Node("srv1")
		if srv.Properties["bridged"] != "true" {
			t.Errorf("srv1 bridged property = %q, want true", srv.Properties["bridged"])
		}
	})

	t.Run("Connections", func(t *testing.T) {
		if l.ConnectionCount() != 3 {
			t.Fatalf("ConnectionCount() = %d, want 3", l.ConnectionCount())
		}
		a, ok := l.Connection("A")
		if !ok {
			t.Fatal("connection A missing")
		}
		// Membership preserves first-seen declaration order.
		if len(a.Members) != 2 || a.Members[0].Node.Name != "r1" || a.Members[1].Node.Name != "r2" {
			t.Errorf("connection A members out of order: %v", memberNames(a))
		}
	})

	t.Run("DeclarationOrder", func(t *testing.T) {
		var names []string
		for _, n := range l.Nodes() {
			names = append(names, n.Name)
		}
		want := []string{"r1", "r2", "pc1", "srv1"}
		for i := range want {
			if names[i] != want[i] {
				t.Fatalf("Nodes() order = %v, want %v", names, want)
			}
		}
	})

	t.Run("ClassificationRan", func(t *testing.T) {
		for _, n := range l.Nodes() {
			if n.Type == NodeUnknown {
				t.Errorf("node %s left unclassified", n.Name)
			}
		}
	})
}

func TestParseLenient(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantNodes int
		wantConns int
	}{
		{"Empty", "", 0, 0},
		{"OnlyComments", "# one\n# two\n", 0, 0},
		{"Malformed", "}{:::\nnode without brackets\n", 0, 0},
		{"MissingEquals", "LAB_NAME\n", 0, 0},
		{"NodeOnly", `a[0]="X"` + "\n", 1, 1},
		{"WhitespaceAroundLines", `   b[image]="alpine"   ` + "\n", 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := Parse(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if l.NodeCount() != tt.wantNodes {
				t.Errorf("NodeCount() = %d, want %d", l.NodeCount(), tt.wantNodes)
			}
			if l.ConnectionCount() != tt.wantConns {
				t.Errorf("ConnectionCount() = %d, want %d", l.ConnectionCount(), tt.wantConns)
			}
		})
	}
}

func TestParseLastWriteWins(t *testing.T) {
	input := `a[prop]="first"` + "\n" + `a[prop]="second"` + "\n"
	l, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	n, _ := l.Node("a")
	if n.Properties["prop"] != "second" {
		t.Errorf("prop = %q, want second (last write wins)", n.Properties["prop"])
	}
}

func TestParseChainScenario(t *testing.T) {
	// Three plain nodes in a chain: two p2p domains, all default to pc.
	input := `A[0]="cdA"` + "\n" + `B[0]="cdA"` + "\n" + `B[1]="cdB"` + "\n" + `C[0]="cdB"` + "\n"
	l, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if l.NodeCount() != 3 {
		t.Fatalf("NodeCount() = %d, want 3", l.NodeCount())
	}
	for _, n := range l.Nodes() {
		if n.Type != NodePC {
			t.Errorf("node %s type = %s, want pc", n.Name, n.Type)
		}
	}
	for _, c := range l.Connections() {
		if c.Type != ConnP2P {
			t.Errorf("connection %s type = %s, want p2p", c.Domain, c.Type)
		}
		if len(c.Members) != 2 {
			t.Errorf("connection %s has %d members, want 2", c.Domain, len(c.Members))
		}
	}
}

func TestParseFileNotFound(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "missing.conf"))
	if err == nil {
		t.Fatal("ParseFile() error = nil, want FILE_NOT_FOUND")
	}
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %s, want FILE_NOT_FOUND", errors.GetCode(err))
	}
}

func memberNames(c *Connection) []string {
	var names []string
	for _, m := range c.Members {
		names = append(names, m.Node.Name)
	}
	return names
}
