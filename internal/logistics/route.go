package logistics

import (
	"math"

	"poi-logistics-service/internal/domain"
)

// OptimizeRoute orders coords with a greedy nearest-neighbor heuristic.
//
// The tour always starts at index 0. Each step appends the unvisited point
// closest to the last one added, using straight-line distance. Ties go to the
// lowest index. Inputs of length 2 or less are returned in identity order.
// This is not an optimal tour; no backtracking or 2-opt pass is made.
func (e *Engine) OptimizeRoute(coords []domain.Coordinate) domain.RouteOrder {
	n := len(coords)
	order := make(domain.RouteOrder, 0, n)

	if n <= 2 {
		for i := 0; i < n; i++ {
			order = append(order, i)
		}
		return order
	}

	visited := make([]bool, n)
	current := 0
	visited[current] = true
	order = append(order, current)

	for len(order) < n {
		best := -1
		bestDist := math.Inf(1)

		// Strict comparison in ascending index order keeps the lowest index on ties.
		for i := 0; i < n; i++ {
			if visited[i] {
				continue
			}
			d := e.Between(coords[current], coords[i])
			if best == -1 || d < bestDist {
				best = i
				bestDist = d
			}
		}

		visited[best] = true
		order = append(order, best)
		current = best
	}

	return order
}

// OptimizeRoute uses the default engine.
func OptimizeRoute(coords []domain.Coordinate) domain.RouteOrder {
	return defaultEngine.OptimizeRoute(coords)
}
