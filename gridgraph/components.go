package gridgraph

// ConnectedComponents finds all maximal 4-connected regions of equal-valued
// cells, in row-major order of each region's first (top-left-most) cell.
// Each component is a slice of cell-indices (row-major) in BFS order.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·4).
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	return gg.components(func(int) bool { return true })
}

// ComponentsOf is ConnectedComponents restricted to cells holding value.
// Time: O(W·H·4), Memory: O(W·H).
func (gg *GridGraph) ComponentsOf(value int) [][]int {
	return gg.components(func(v int) bool { return v == value })
}

// CountComponents returns len(ComponentsOf(value)) without keeping the
// member lists.
func (gg *GridGraph) CountComponents(value int) int {
	seen := make([]bool, len(gg.Cells))
	n := 0
	for i, v := range gg.Cells {
		if v != value || seen[i] {
			continue
		}
		gg.collect(i, seen, nil)
		n++
	}
	return n
}

// ComponentAt returns the component containing (x,y), or nil when (x,y) is
// out of bounds.
// Time: O(component size·4), Memory: O(W·H).
func (gg *GridGraph) ComponentAt(x, y int) []int {
	if !gg.InBounds(x, y) {
		return nil
	}
	seen := make([]bool, len(gg.Cells))
	return gg.collect(gg.index(x, y), seen, []int{})
}

func (gg *GridGraph) components(keep func(int) bool) [][]int {
	seen := make([]bool, len(gg.Cells))
	var comps [][]int
	for i, v := range gg.Cells {
		if !keep(v) || seen[i] {
			continue
		}
		comps = append(comps, gg.collect(i, seen, []int{}))
	}
	return comps
}

// collect runs a BFS from i0 over cells equal to Cells[i0], marking seen.
// When comp is non-nil the visited indices are appended to it and returned.
func (gg *GridGraph) collect(i0 int, seen []bool, comp []int) []int {
	value := gg.Cells[i0]
	queue := []int{i0}
	seen[i0] = true

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if comp != nil {
			comp = append(comp, u)
		}
		ux, uy := gg.Coordinate(u)
		for _, d := range neighborOffsets {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.InBounds(vx, vy) {
				continue
			}
			vi := gg.index(vx, vy)
			if !seen[vi] && gg.Cells[vi] == value {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}
	return comp
}
