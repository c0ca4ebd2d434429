// Package lab models a Kathara-style network lab as a typed graph of
// nodes and collision-domain connections.
//
// A Lab is built by the lenient line parser in this package (see Parse),
// classified once after the whole graph exists, and then handed to the
// layout and render packages. Nodes and connections are created lazily as
// identifiers are first referenced and are never removed within a run.
//
// Iteration order matters: layout must be bit-reproducible, so the Lab
// keeps nodes in declaration order and connections in first-seen order
// rather than relying on map iteration.
package lab

// NodeType is the classified role of a node.
type NodeType string

// Node types assigned by classification.
const (
	NodeRouter  NodeType = "router"
	NodePC      NodeType = "pc"
	NodeServer  NodeType = "server"
	NodeSwitch  NodeType = "switch"
	NodeUnknown NodeType = "unknown"
)

// ConnType is the classified kind of a collision domain.
type ConnType string

// Connection types assigned by classification.
const (
	ConnLAN  ConnType = "lan"
	ConnP2P  ConnType = "p2p"
	ConnRing ConnType = "ring"
)

// Node is a single lab machine (router, host, server, ...).
type Node struct {
	Name       string
	Image      string            // declared container image, may be empty
	Interfaces map[string]string // interface index -> collision domain
	Properties map[string]string // bridged, port, network, ...

	// Position set during layout.
	X, Y float64

	// Type is NodeUnknown until classification runs.
	Type NodeType
}

// newNode creates an unclassified node with empty attribute maps.
func newNode(name string) *Node {
	return &Node{
		Name:       name,
		Interfaces: make(map[string]string),
		Properties: make(map[string]string),
		Type:       NodeUnknown,
	}
}

// AddInterface records an interface attachment to a collision domain.
// A repeated interface index overwrites the previous domain.
func (n *Node) AddInterface(iface, domain string) {
	n.Interfaces[iface] = domain
}

// AddProperty stores an arbitrary node property. Last write wins.
func (n *Node) AddProperty(key, value string) {
	n.Properties[key] = value
}

// Bridged reports whether the node carries a bridged property.
func (n *Node) Bridged() bool {
	_, ok := n.Properties["bridged"]
	return ok
}

// Member is one attachment of a node interface to a connection.
type Member struct {
	Node  *Node
	Iface string
}

// Connection is a collision domain with its attached interfaces in
// declaration order.
type Connection struct {
	Domain  string
	Members []Member
	Type    ConnType
}

func newConnection(domain string) *Connection {
	return &Connection{Domain: domain, Type: ConnLAN}
}

// AddMember appends a (node, interface) attachment, preserving order.
func (c *Connection) AddMember(n *Node, iface string) {
	c.Members = append(c.Members, Member{Node: n, Iface: iface})
}

// Contains reports whether n is a member of the connection.
func (c *Connection) Contains(n *Node) bool {
	for _, m := range c.Members {
		if m.Node == n {
			return true
		}
	}
	return false
}

// RouterCount returns the number of router-typed members.
func (c *Connection) RouterCount() int {
	count := 0
	for _, m := range c.Members {
		if m.Node.Type == NodeRouter {
			count++
		}
	}
	return count
}

// HasMemberType reports whether any member has the given node type.
func (c *Connection) HasMemberType(t NodeType) bool {
	for _, m := range c.Members {
		if m.Node.Type == t {
			return true
		}
	}
	return false
}

// Lab is the parsed network scenario: descriptive metadata plus the
// node/connection graph.
type Lab struct {
	// Info holds lab-level metadata (LAB_NAME, LAB_DESCRIPTION, ...).
	Info map[string]string

	nodes     map[string]*Node
	nodeOrder []string

	conns     map[string]*Connection
	connOrder []string
}

// New returns an empty lab.
func New() *Lab {
	return &Lab{
		Info:  make(map[string]string),
		nodes: make(map[string]*Node),
		conns: make(map[string]*Connection),
	}
}

// Node returns the node with the given name, if present.
func (l *Lab) Node(name string) (*Node, bool) {
	n, ok := l.nodes[name]
	return n, ok
}

// EnsureNode returns the named node, creating it on first reference.
func (l *Lab) EnsureNode(name string) *Node {
	if n, ok := l.nodes[name]; ok {
		return n
	}
	n := newNode(name)
	l.nodes[name] = n
	l.nodeOrder = append(l.nodeOrder, name)
	return n
}

// Connection returns the connection for the given collision domain, if present.
func (l *Lab) Connection(domain string) (*Connection, bool) {
	c, ok := l.conns[domain]
	return c, ok
}

// EnsureConnection returns the connection for domain, creating it on
// first reference.
func (l *Lab) EnsureConnection(domain string) *Connection {
	if c, ok := l.conns[domain]; ok {
		return c
	}
	c := newConnection(domain)
	l.conns[domain] = c
	l.connOrder = append(l.connOrder, domain)
	return c
}

// Nodes returns all nodes in declaration order.
func (l *Lab) Nodes() []*Node {
	out := make([]*Node, 0, len(l.nodeOrder))
	for _, name := range l.nodeOrder {
		out = append(out, l.nodes[name])
	}
	return out
}

// Connections returns all connections in first-seen order.
func (l *Lab) Connections() []*Connection {
	out := make([]*Connection, 0, len(l.connOrder))
	for _, domain := range l.connOrder {
		out = append(out, l.conns[domain])
	}
	return out
}

// Routers returns the router-typed nodes in declaration order.
func (l *Lab) Routers() []*Node {
	var out []*Node
	for _, n := range l.Nodes() {
		if n.Type == NodeRouter {
			out = append(out, n)
		}
	}
	return out
}

// NodeCount returns the number of distinct nodes.
func (l *Lab) NodeCount() int { return len(l.nodes) }

// ConnectionCount returns the number of distinct collision domains.
func (l *Lab) ConnectionCount() int { return len(l.conns) }

// Name returns the lab name from metadata, or fallback if unset.
func (l *Lab) Name(fallback string) string {
	if v, ok := l.Info["LAB_NAME"]; ok && v != "" {
		return v
	}
	return fallback
}

// Description returns the lab description from metadata, or fallback if unset.
func (l *Lab) Description(fallback string) string {
	if v, ok := l.Info["LAB_DESCRIPTION"]; ok && v != "" {
		return v
	}
	return fallback
}
