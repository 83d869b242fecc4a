package models

import "sort"

// DependencyMap maps a project-relative file path to the project-relative
// paths it imports. This is the shape persisted as dependency_map.json.
type DependencyMap map[string][]string

// Sorted returns a deep copy with every dependency list sorted and non-nil.
func (m DependencyMap) Sorted() DependencyMap {
	out := make(DependencyMap, len(m))
	for file, deps := range m {
		cp := make([]string, len(deps))
		copy(cp, deps)
		sort.Strings(cp)
		out[file] = cp
	}
	return out
}

// Files returns the sorted keys.
func (m DependencyMap) Files() []string {
	files := make([]string, 0, len(m))
	for file := range m {
		files = append(files, file)
	}
	sort.Strings(files)
	return files
}

// Nodes returns the sorted union of keys and dependency values.
func (m DependencyMap) Nodes() []string {
	seen := make(map[string]struct{}, len(m))
	for file, deps := range m {
		seen[file] = struct{}{}
		for _, dep := range deps {
			seen[dep] = struct{}{}
		}
	}
	nodes := make([]string, 0, len(seen))
	for node := range seen {
		nodes = append(nodes, node)
	}
	sort.Strings(nodes)
	return nodes
}

func (m DependencyMap) EdgeCount() int {
	total := 0
	for _, deps := range m {
		total += len(deps)
	}
	return total
}
