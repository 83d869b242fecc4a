package analysis

import (
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/dominikbraun/graph"

	"github.com/tristendillon/pydeps/core/models"
)

// Systems groups the files of m into connected components of the undirected
// closure (an import in either direction links two files). Components with
// fewer than two files are dropped. Systems are ordered by descending size,
// then by first file, and numbered from 1.
func Systems(m models.DependencyMap) ([]models.System, error) {
	g, err := undirected(m)
	if err != nil {
		return nil, err
	}

	visited := make(map[string]bool)
	var components [][]string

	for _, node := range m.Nodes() {
		if visited[node] {
			continue
		}
		var component []string
		err := graph.BFS(g, node, func(v string) bool {
			visited[v] = true
			component = append(component, v)
			return false
		})
		if err != nil {
			return nil, fmt.Errorf("component search from %s: %w", node, err)
		}
		if len(component) >= 2 {
			sort.Strings(component)
			components = append(components, component)
		}
	}

	sort.SliceStable(components, func(i, j int) bool {
		if len(components[i]) != len(components[j]) {
			return len(components[i]) > len(components[j])
		}
		return components[i][0] < components[j][0]
	})

	systems := make([]models.System, len(components))
	for i, files := range components {
		systems[i] = models.System{
			ID:        i + 1,
			Name:      SystemName(files),
			Files:     files,
			FileCount: len(files),
		}
	}
	return systems, nil
}

// SystemName names a system after the directory holding at least half its
// files, or after its first three file names.
func SystemName(files []string) string {
	dirs := make(map[string]int)
	for _, file := range files {
		if dir := path.Dir(file); dir != "." {
			dirs[dir]++
		}
	}

	bestDir, bestCount := "", 0
	for dir, count := range dirs {
		if count > bestCount || (count == bestCount && dir < bestDir) {
			bestDir, bestCount = dir, count
		}
	}
	if bestCount > 0 && 2*bestCount >= len(files) {
		return "System: " + bestDir
	}

	sorted := make([]string, len(files))
	copy(sorted, files)
	sort.Strings(sorted)

	names := make([]string, 0, 3)
	for i, file := range sorted {
		if i == 3 {
			break
		}
		names = append(names, path.Base(file))
	}
	name := "System: " + strings.Join(names, ", ")
	if len(sorted) > 3 {
		name += "..."
	}
	return name
}

func undirected(m models.DependencyMap) (graph.Graph[string, string], error) {
	g := graph.New(graph.StringHash)
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
	return g, nil
}
