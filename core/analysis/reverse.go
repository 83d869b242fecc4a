package analysis

import (
	"sort"

	"github.com/tristendillon/pydeps/core/models"
)

// ReverseMap returns, for every node of m, the sorted files that import it.
// Nodes nobody imports map to an empty list. The result is always built
// fresh from m.
func ReverseMap(m models.DependencyMap) models.DependencyMap {
	reverse := make(models.DependencyMap, len(m))
	for _, node := range m.Nodes() {
		reverse[node] = []string{}
	}

	for file, deps := range m {
		seen := make(map[string]struct{}, len(deps))
		for _, dep := range deps {
			if dep == file {
				continue
			}
			if _, dup := seen[dep]; dup {
				continue
			}
			seen[dep] = struct{}{}
			reverse[dep] = append(reverse[dep], file)
		}
	}

	for node := range reverse {
		sort.Strings(reverse[node])
	}
	return reverse
}

// Dependents returns every file that imports file directly or transitively,
// sorted. file itself is excluded even when it sits on a cycle.
func Dependents(m models.DependencyMap, file string) []string {
	return closure(ReverseMap(m), file)
}

// Reachable returns every file that file imports directly or transitively,
// sorted.
func Reachable(m models.DependencyMap, file string) []string {
	return closure(m, file)
}

func closure(adjacency models.DependencyMap, start string) []string {
	visited := map[string]bool{start: true}
	queue := []string{start}
	var out []string

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, next := range adjacency[current] {
			if visited[next] {
				continue
			}
			visited[next] = true
			out = append(out, next)
			queue = append(queue, next)
		}
	}

	sort.Strings(out)
	return out
}
