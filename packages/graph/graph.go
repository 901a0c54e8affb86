package graph

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
)

// SameNode reports whether a and b identify the same node. Element IDs are
// compared when both sides carry one; otherwise the legacy numeric IDs are
// used so that hand-built fixtures without element IDs still compare.
func SameNode(a, b *dbtype.Node) bool {
	if a == nil || b == nil {
		return false
	}
	if a.ElementId != "" && b.ElementId != "" {
		return a.ElementId == b.ElementId
	}
	return a.Id == b.Id
}

// SameRelationship reports whether a and b identify the same relationship.
func SameRelationship(a, b *dbtype.Relationship) bool {
	if a == nil || b == nil {
		return false
	}
	if a.ElementId != "" && b.ElementId != "" {
		return a.ElementId == b.ElementId
	}
	return a.Id == b.Id
}

// StartsWith reports whether rel starts at node n.
func StartsWith(rel *dbtype.Relationship, n *dbtype.Node) bool {
	if rel == nil || n == nil {
		return false
	}
	if rel.StartElementId != "" && n.ElementId != "" {
		return rel.StartElementId == n.ElementId
	}
	return rel.StartId == n.Id
}

// EndsWith reports whether rel ends at node n.
func EndsWith(rel *dbtype.Relationship, n *dbtype.Node) bool {
	if rel == nil || n == nil {
		return false
	}
	if rel.EndElementId != "" && n.ElementId != "" {
		return rel.EndElementId == n.ElementId
	}
	return rel.EndId == n.Id
}

// HasStart reports whether rel carries any start-node identity at all. A
// relationship fetched from a server always does; a zero-value fixture with
// neither an element ID nor a numeric ID does not.
func HasStart(rel *dbtype.Relationship) bool {
	return rel != nil && (rel.StartElementId != "" || rel.StartId != 0)
}

// HasEnd reports whether rel carries any end-node identity.
func HasEnd(rel *dbtype.Relationship) bool {
	return rel != nil && (rel.EndElementId != "" || rel.EndId != 0)
}

// PathStart returns the first node of the path, or nil for an empty path.
func PathStart(p *dbtype.Path) *dbtype.Node {
	if p == nil || len(p.Nodes) == 0 {
		return nil
	}
	return &p.Nodes[0]
}

// PathEnd returns the last node of the path, or nil for an empty path.
func PathEnd(p *dbtype.Path) *dbtype.Node {
	if p == nil || len(p.Nodes) == 0 {
		return nil
	}
	return &p.Nodes[len(p.Nodes)-1]
}

// PathLastRelationship returns the last relationship of the path, or nil
// when the path has none.
func PathLastRelationship(p *dbtype.Path) *dbtype.Relationship {
	if p == nil || len(p.Relationships) == 0 {
		return nil
	}
	return &p.Relationships[len(p.Relationships)-1]
}

// PathLength is the number of relationships in the path, matching Cypher's
// length() semantics. A single-node path has length zero.
func PathLength(p *dbtype.Path) int {
	if p == nil {
		return 0
	}
	return len(p.Relationships)
}

// nodeID returns the most specific identifier available for display.
func nodeID(n *dbtype.Node) string {
	if n.ElementId != "" {
		return n.ElementId
	}
	return strconv.FormatInt(n.Id, 10)
}

func relationshipID(r *dbtype.Relationship) string {
	if r.ElementId != "" {
		return r.ElementId
	}
	return strconv.FormatInt(r.Id, 10)
}

// DescribeNode renders a node for failure messages.
func DescribeNode(n *dbtype.Node) string {
	if n == nil {
		return "<nil node>"
	}
	return fmt.Sprintf("node with ID: %s and labels: [%s]", nodeID(n), strings.Join(n.Labels, ", "))
}

// DescribeRelationship renders a relationship for failure messages.
func DescribeRelationship(r *dbtype.Relationship) string {
	if r == nil {
		return "<nil relationship>"
	}
	return fmt.Sprintf("relationship with ID: %s and type: %s", relationshipID(r), r.Type)
}

// DescribePath renders a path for failure messages.
func DescribePath(p *dbtype.Path) string {
	if p == nil {
		return "<nil path>"
	}
	return fmt.Sprintf("path with length: %d", PathLength(p))
}

// DescribeEntity renders any property container the driver hands out.
func DescribeEntity(e dbtype.Entity) string {
	switch v := e.(type) {
	case dbtype.Node:
		return DescribeNode(&v)
	case *dbtype.Node:
		return DescribeNode(v)
	case dbtype.Relationship:
		return DescribeRelationship(&v)
	case *dbtype.Relationship:
		return DescribeRelationship(v)
	case nil:
		return "<nil entity>"
	default:
		return fmt.Sprintf("entity with ID: %s", e.GetElementId())
	}
}
