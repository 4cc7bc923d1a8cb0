package hier

import (
	"fmt"
	"sort"
	"strings"
)

// FromParents builds a Hierarchy from a child → parent map.  An empty
// parent marks a root, and a parent that is not itself a key becomes a
// root as well.  Nodes are added in name order so ids are stable.
func FromParents(parents map[string]string) (*Hierarchy, error) {
	names := make([]string, 0, len(parents))
	for name := range parents {
		names = append(names, name)
	}
	sort.Strings(names)

	h := New()
	const (
		unvisited = iota
		visiting
		done
	)
	state := map[string]int{}
	var path []string
	var visit func(string) error
	visit = func(name string) error {
		switch state[name] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("%w: %s -> %s", ErrCycle, strings.Join(path, " -> "), name)
		}
		state[name] = visiting
		path = append(path, name)
		parent := parents[name]
		if parent != "" {
			if _, ok := parents[parent]; ok {
				if err := visit(parent); err != nil {
					return err
				}
			} else if _, ok := h.Lookup(parent); !ok {
				if _, err := h.Add(parent, ""); err != nil {
					return err
				}
			}
		}
		path = path[:len(path)-1]
		state[name] = done
		_, err := h.Add(name, parent)
		return err
	}
	for _, name := range names {
		if err := visit(name); err != nil {
			return nil, err
		}
	}
	return h, nil
}
