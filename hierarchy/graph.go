package hierarchy

import (
	"github.com/dexopt/dex"
	"github.com/dexopt/middleware/log"
	"github.com/dexopt/utils"
	"go.uber.org/zap"
)

// Graph is an in-memory subtyping index over type names. Edges run from a
// type to its direct superclass and implemented interfaces. It is safe for
// concurrent lookups while edges are still being added.
type Graph struct {
	supers *utils.ConcurrentMap[string, utils.NameSet]
}

var _ dex.Hierarchy = (*Graph)(nil)

func NewGraph() *Graph {
	return &Graph{
		supers: utils.NewConcurrentMap[string, utils.NameSet](),
	}
}

// AddEdges records the direct supertypes of name. Calling it again for the
// same name merges the edge sets.
func (g *Graph) AddEdges(name string, supers ...string) {
	if len(supers) == 0 {
		return
	}
	merged := utils.NewNameSet(supers...)
	if existing, ok := g.supers.Get(name); ok {
		merged = merged.Union(existing)
	}
	g.supers.Insert(name, merged)
}

// AddClass records cls with its superclass and interfaces.
func (g *Graph) AddClass(cls dex.Class, super dex.Type, interfaces ...dex.Type) {
	names := make([]string, 0, len(interfaces)+1)
	if super != nil {
		names = append(names, super.Name())
	}
	for _, iface := range interfaces {
		names = append(names, iface.Name())
	}
	if len(names) == 0 {
		log.Debug("class has no supertypes", zap.String("class", cls.Name()))
		return
	}
	g.AddEdges(cls.Type().Name(), names...)
}

// AssignableTo implements dex.Hierarchy. Every type is assignable to
// itself. Unknown types have no supertypes.
func (g *Graph) AssignableTo(child, parent dex.Type) bool {
	return g.reachable(child.Name(), parent.Name())
}

func (g *Graph) reachable(from, to string) bool {
	if from == to {
		return true
	}
	visited := utils.NewNameSet()
	queue := []string{from}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		supers, ok := g.supers.Get(current)
		if !ok {
			continue
		}
		for name := range supers {
			if name == to {
				return true
			}
			if !visited.Contain(name) {
				visited.Insert(name)
				queue = append(queue, name)
			}
		}
	}
	return false
}

// Len returns the number of types with at least one recorded supertype.
func (g *Graph) Len() int {
	return g.supers.Len()
}
