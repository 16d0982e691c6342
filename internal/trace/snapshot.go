package trace

import "math"

// Snapshot holds one trace per body, each ordered oldest first.
type Snapshot [][]Point

// Freeze copies the current contents of each ring into a Snapshot.
func Freeze(rings []*Ring) Snapshot {
	snap := make(Snapshot, len(rings))
	for i, r := range rings {
		snap[i] = r.Points()
	}
	return snap
}

// Points returns the total number of points across all traces.
func (s Snapshot) Points() int {
	n := 0
	for _, tr := range s {
		n += len(tr)
	}
	return n
}

// Bounds returns the bounding box of every point in s. ok is false when s
// contains no points.
func (s Snapshot) Bounds() (minX, minY, maxX, maxY float64, ok bool) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, tr := range s {
		for _, p := range tr {
			minX = math.Min(minX, p.X())
			minY = math.Min(minY, p.Y())
			maxX = math.Max(maxX, p.X())
			maxY = math.Max(maxY, p.Y())
			ok = true
		}
	}
	if !ok {
		return 0, 0, 0, 0, false
	}
	return minX, minY, maxX, maxY, true
}
