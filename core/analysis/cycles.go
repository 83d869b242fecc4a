package analysis

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dominikbraun/graph"

	"github.com/tristendillon/pydeps/core/models"
)

// Cycles returns the groups of files that import each other in a circle:
// strongly connected components with at least two members. Members are
// sorted, and groups are ordered by their first member.
func Cycles(m models.DependencyMap) ([][]string, error) {
	g := graph.New(graph.StringHash, graph.Directed())
	for _, node := range m.Nodes() {
		if err := g.AddVertex(node); err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
			return nil, fmt.Errorf("add vertex %s: %w", node, err)
		}
	}
	for _, file := range m.Files() {
		for _, dep := range m[file] {
			if dep == file {
				continue
			}
			if err := g.AddEdge(file, dep); err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
				return nil, fmt.Errorf("add edge %s -> %s: %w", file, dep, err)
			}
		}
	}

	components, err := graph.StronglyConnectedComponents(g)
	if err != nil {
		return nil, fmt.Errorf("strongly connected components: %w", err)
	}

	var cycles [][]string
	for _, component := range components {
		if len(component) < 2 {
			continue
		}
		members := make([]string, len(component))
		copy(members, component)
		sort.Strings(members)
		cycles = append(cycles, members)
	}

	sort.Slice(cycles, func(i, j int) bool { return cycles[i][0] < cycles[j][0] })
	return cycles, nil
}
