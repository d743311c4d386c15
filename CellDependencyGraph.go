package main

import "sort"

// CellDependencyGraph is a reverse-edge index over committed formulas:
// for every cell it knows which cells reference it. Edges are replaced
// whenever a cell's formula is committed, so between edits the graph mirrors
// the committed store exactly.
//
// Terms: for `a1 = b1 + c1`, a1 *depends on* b1 and c1; a1 is a *dependant*
// of both.
type CellDependencyGraph struct {
	dependants map[string]map[string]bool // target -> cells referencing it
	dependsOn  map[string][]string        // cell -> targets it references
}

func NewCellDependencyGraph() *CellDependencyGraph {
	return &CellDependencyGraph{
		dependants: map[string]map[string]bool{},
		dependsOn:  map[string][]string{},
	}
}

// SetDependsOn replaces the outgoing edges of dependantCellId. An empty list
// removes the cell from the graph entirely (a removed or constant cell).
func (g *CellDependencyGraph) SetDependsOn(dependantCellId string, dependingOnCellIds []string) {
	for _, oldTarget := range g.dependsOn[dependantCellId] {
		delete(g.dependants[oldTarget], dependantCellId)
		if len(g.dependants[oldTarget]) == 0 {
			delete(g.dependants, oldTarget)
		}
	}

	if len(dependingOnCellIds) == 0 {
		delete(g.dependsOn, dependantCellId)
		return
	}

	g.dependsOn[dependantCellId] = dependingOnCellIds
	for _, target := range dependingOnCellIds {
		if g.dependants[target] == nil {
			g.dependants[target] = map[string]bool{}
		}
		g.dependants[target][dependantCellId] = true
	}
}

// DirectDependants returns the cells whose formula references cellId,
// sorted for deterministic propagation order.
func (g *CellDependencyGraph) DirectDependants(cellId string) []string {
	set := g.dependants[cellId]
	if len(set) == 0 {
		return nil
	}

	dependants := make([]string, 0, len(set))
	for dependant := range set {
		dependants = append(dependants, dependant)
	}
	sort.Strings(dependants)

	return dependants
}

// TransitiveDependants walks the reverse edges breadth-first from cellId and
// returns every cell reachable as a dependant of a dependant. The cell itself
// is not included. Each cell appears once even when reachable through
// several paths.
func (g *CellDependencyGraph) TransitiveDependants(cellId string) []string {
	visited := map[string]bool{cellId: true}
	queue := g.DirectDependants(cellId)
	dependants := make([]string, 0, len(queue))

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited[current] {
			continue
		}
		visited[current] = true
		dependants = append(dependants, current)

		queue = append(queue, g.DirectDependants(current)...)
	}

	return dependants
}

func (g *CellDependencyGraph) Clear() {
	g.dependants = map[string]map[string]bool{}
	g.dependsOn = map[string][]string{}
}
