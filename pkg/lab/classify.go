package lab

import "strings"

// Keyword sets for name- and image-based node classification.
// Matching is case-insensitive substring containment.
var (
	routerNameKeywords = []string{"router", "r1", "r2", "r3", "r4", "r5"}
	pcNameKeywords     = []string{"pc", "host", "client"}
	serverNameKeywords = []string{"server", "snmp", "manager", "zabbix"}
	switchNameKeywords = []string{"switch", "sw"}

	routerImageKeywords = []string{"frr", "quagga", "bird", "router"}
	pcImageKeywords     = []string{"alpine", "ubuntu", "debian"}
	serverImageKeywords = []string{"server", "zabbix"}
)

// nodeRule is one entry in the classification cascade.
type nodeRule struct {
	match func(name, image string) bool
	typ   NodeType
}

// nodeRules is the ordered classification table, evaluated top to bottom
// with first match winning. Name-based rules take priority over
// image-based inference; the final rule is a catch-all default.
var nodeRules = []nodeRule{
	{byName(routerNameKeywords), NodeRouter},
	{byName(pcNameKeywords), NodePC},
	{byName(serverNameKeywords), NodeServer},
	{byName(switchNameKeywords), NodeSwitch},
	{byImage(routerImageKeywords), NodeRouter},
	{byImage(pcImageKeywords), NodePC},
	{byImage(serverImageKeywords), NodeServer},
	{func(string, string) bool { return true }, NodePC},
}

func byName(keywords []string) func(name, image string) bool {
	return func(name, _ string) bool { return containsAny(name, keywords) }
}

func byImage(keywords []string) func(name, image string) bool {
	return func(_, image string) bool { return containsAny(image, keywords) }
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// ClassifyNode returns the node type for a name/image pair.
// Pure function: depends only on its arguments and the rule table.
func ClassifyNode(name, image string) NodeType {
	name = strings.ToLower(name)
	image = strings.ToLower(image)
	for _, rule := range nodeRules {
		if rule.match(name, image) {
			return rule.typ
		}
	}
	return NodeUnknown // unreachable: the last rule always matches
}

// ClassifyConnection returns the connection type from member count and
// member node types. Two members make a point-to-point link; larger
// domains are LAN hubs unless exactly two members are routers, which
// marks a ring segment. Domains with fewer than two members keep the
// default LAN label.
func ClassifyConnection(c *Connection) ConnType {
	switch {
	case len(c.Members) == 2:
		return ConnP2P
	case len(c.Members) > 2:
		if c.RouterCount() == 2 {
			return ConnRing
		}
		return ConnLAN
	default:
		return c.Type
	}
}

// Classify assigns types to every node and connection. Nodes are
// classified first since connection classification depends on final
// member types. Idempotent: re-running yields identical results.
func (l *Lab) Classify() {
	for _, n := range l.Nodes() {
		n.Type = ClassifyNode(n.Name, n.Image)
	}
	for _, c := range l.Connections() {
		c.Type = ClassifyConnection(c)
	}
}
