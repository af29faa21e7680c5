package quadtree

import "github.com/fieldgrid/scattergrid/pointset"

// Build bulk-loads a Tree over pts. The initial global AOI is the point
// set's bounding box, per spec §4.3; a degenerate (zero-area or
// single-point) bounding box still produces a usable single-leaf tree.
//
// Complexity: O(N log N) expected, O(N * maxDepth) worst case (pathological
// clustering bottoms out at maxDepth).
func Build(pts *pointset.Set) *Tree {
	n := pts.Len()
	indices := make([]int32, n)
	for i := range indices {
		indices[i] = int32(i)
	}

	minX, minY, maxX, maxY := pts.Bounds()
	// Guard against a zero-area bbox (all points coincident, or N<=1):
	// widen it slightly so rectangle-intersection queries are well defined.
	if maxX <= minX {
		maxX = minX + 1
	}
	if maxY <= minY {
		maxY = minY + 1
	}

	t := &Tree{pts: pts, nodes: make([]node, 0, n)}
	t.root = t.build(indices, minX, minY, maxX, maxY, 0)
	return t
}

// build recursively partitions indices (all known to lie within
// [minX,maxX]x[minY,maxY]) into an arena node, splitting into four
// quadrants once the bucket exceeds maxLeafPoints and depth allows it.
func (t *Tree) build(indices []int32, minX, minY, maxX, maxY float64, depth int) int32 {
	if len(indices) <= maxLeafPoints || depth >= maxDepth {
		idx := int32(len(t.nodes))
		t.nodes = append(t.nodes, node{
			minX: minX, minY: minY, maxX: maxX, maxY: maxY,
			indices:  indices,
			children: [4]int32{noChild, noChild, noChild, noChild},
		})
		return idx
	}

	midX := (minX + maxX) / 2
	midY := (minY + maxY) / 2

	var buckets [4][]int32
	for _, i := range indices {
		quadrant := 0
		if t.pts.X[i] >= midX {
			quadrant |= 1
		}
		if t.pts.Y[i] >= midY {
			quadrant |= 2
		}
		buckets[quadrant] = append(buckets[quadrant], i)
	}

	idx := int32(len(t.nodes))
	t.nodes = append(t.nodes, node{
		minX: minX, minY: minY, maxX: maxX, maxY: maxY,
		children: [4]int32{noChild, noChild, noChild, noChild},
	})

	quadBounds := [4]Rect{
		{minX, minY, midX, midY},
		{midX, minY, maxX, midY},
		{minX, midY, midX, maxY},
		{midX, midY, maxX, maxY},
	}
	var children [4]int32
	for q := 0; q < 4; q++ {
		if len(buckets[q]) == 0 {
			children[q] = noChild
			continue
		}
		b := quadBounds[q]
		children[q] = t.build(buckets[q], b.MinX, b.MinY, b.MaxX, b.MaxY, depth+1)
	}
	t.nodes[idx].children = children

	return idx
}
