package dag

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/orrery-sim/orrery/internal/ctxlog"
)

// TopoSort linearizes the graph into one fixed execution order using Kahn's
// algorithm. Ready nodes are drained in lexicographic order so the result is
// stable across runs: the same composition always yields the same order,
// which keeps year-over-year behavior deterministic and diffable.
//
// If nodes remain once the ready set empties, they form one or more cycles;
// the error names every stuck module.
func TopoSort(ctx context.Context, g *Graph) ([]string, error) {
	logger := ctxlog.FromContext(ctx)

	inDegree := make(map[string]int, len(g.nodes))
	for id, n := range g.nodes {
		inDegree[id] = len(n.deps)
	}

	var ready []string
	for id, degree := range inDegree {
		if degree == 0 {
			ready = append(ready, id)
		}
	}
	sort.Strings(ready)

	order := make([]string, 0, len(g.nodes))
	for len(ready) > 0 {
		id := ready[0]
		ready = ready[1:]
		order = append(order, id)

		var unlocked []string
		for depID := range g.nodes[id].dependents {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				unlocked = append(unlocked, depID)
			}
		}
		sort.Strings(unlocked)
		ready = mergeSorted(ready, unlocked)
	}

	if len(order) != len(g.nodes) {
		var stuck []string
		for id, degree := range inDegree {
			if degree > 0 {
				stuck = append(stuck, id)
			}
		}
		sort.Strings(stuck)
		return nil, fmt.Errorf(
			"dependency cycle among modules [%s]; break it by routing one input through a lag",
			strings.Join(stuck, ", "))
	}

	logger.Debug("Topological sort complete.", "order", order)
	return order, nil
}

// mergeSorted merges two sorted string slices into one sorted slice.
func mergeSorted(a, b []string) []string {
	if len(b) == 0 {
		return a
	}
	merged := make([]string, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i] <= b[j] {
			merged = append(merged, a[i])
			i++
		} else {
			merged = append(merged, b[j])
			j++
		}
	}
	merged = append(merged, a[i:]...)
	merged = append(merged, b[j:]...)
	return merged
}
