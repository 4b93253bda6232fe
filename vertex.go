package polyclip

// ==============================================================================
// Vertex Rings and Local Minima Detection
// ==============================================================================

// vertexFlags marks the structural role of a vertex within its ring
type vertexFlags uint8

const (
	vfNone      vertexFlags = 0
	vfOpenStart vertexFlags = 1 << iota // start of an open path
	vfOpenEnd                           // end of an open path
	vfLocalMax                          // local maximum vertex
	vfLocalMin                          // local minimum vertex
)

// vertex is a point of an input path, linked into a cyclic ring.
// Vertices live in per-batch arenas owned by the engine; rings are built
// once per AddPath call and are immutable for the rest of the sweep.
type vertex struct {
	pt    Point64
	next  *vertex
	prev  *vertex
	flags vertexFlags
}

func (v *vertex) isLocalMin() bool  { return v.flags&vfLocalMin != 0 }
func (v *vertex) isLocalMax() bool  { return v.flags&vfLocalMax != 0 }
func (v *vertex) isOpenStart() bool { return v.flags&vfOpenStart != 0 }
func (v *vertex) isOpenEnd() bool   { return v.flags&vfOpenEnd != 0 }

// localMinima seeds a pair of bounds (left and right) into the AEL when the
// sweep line reaches its vertex's Y
type localMinima struct {
	vertex   *vertex
	polytype PathType
	isOpen   bool
}

// addLocMin registers vert as a local minimum, once
func (c *Clipper64) addLocMin(vert *vertex, polytype PathType, isOpen bool) {
	if vert.flags&vfLocalMin != 0 {
		return
	}
	vert.flags |= vfLocalMin
	c.minimaList = append(c.minimaList, &localMinima{vertex: vert, polytype: polytype, isOpen: isOpen})
}

// addPathsToVertexList converts paths into cyclic vertex rings, deduplicating
// adjacent identical points, and classifies local minima and maxima. Open
// paths get OpenStart/OpenEnd terminals that the sweep treats as minima or
// maxima depending on the initial direction.
func (c *Clipper64) addPathsToVertexList(paths Paths64, polytype PathType, isOpen bool) {
	totalVertCnt := 0
	for _, path := range paths {
		totalVertCnt += len(path)
	}
	if totalVertCnt == 0 {
		return
	}

	// One arena slab per batch, bump-allocated; Clear drops whole slabs
	// rather than individual nodes.
	arena := make([]vertex, totalVertCnt)
	c.vertexArenas = append(c.vertexArenas, arena)
	used := 0
	alloc := func(pt Point64) *vertex {
		v := &arena[used]
		used++
		v.pt = pt
		return v
	}

	for _, path := range paths {
		var v0, prevV, currV *vertex
		for _, pt := range path {
			if v0 == nil {
				v0 = alloc(pt)
				prevV = v0
			} else if !ptsEqual(prevV.pt, pt) { // skip adjacent duplicates
				currV = alloc(pt)
				currV.prev = prevV
				prevV.next = currV
				prevV = currV
			}
		}
		if prevV == nil || prevV.prev == nil {
			continue
		}
		if !isOpen && ptsEqual(v0.pt, prevV.pt) {
			prevV = prevV.prev
		}
		prevV.next = v0
		v0.prev = prevV
		if !isOpen && prevV.next == prevV {
			continue
		}

		var goingUp bool
		if isOpen {
			currV = v0.next
			for currV != v0 && currV.pt.Y == v0.pt.Y {
				currV = currV.next
			}
			goingUp = currV.pt.Y <= v0.pt.Y
			if goingUp {
				v0.flags = vfOpenStart
				c.addLocMin(v0, polytype, true)
			} else {
				v0.flags = vfOpenStart | vfLocalMax
			}
		} else {
			prevV = v0.prev
			for prevV != v0 && prevV.pt.Y == v0.pt.Y {
				prevV = prevV.prev
			}
			if prevV == v0 {
				continue // completely flat closed path
			}
			goingUp = prevV.pt.Y > v0.pt.Y
		}

		goingUp0 := goingUp
		prevV = v0
		currV = v0.next
		for currV != v0 {
			if currV.pt.Y > prevV.pt.Y && goingUp {
				prevV.flags |= vfLocalMax
				goingUp = false
			} else if currV.pt.Y < prevV.pt.Y && !goingUp {
				goingUp = true
				c.addLocMin(prevV, polytype, isOpen)
			}
			prevV = currV
			currV = currV.next
		}

		if isOpen {
			prevV.flags |= vfOpenEnd
			if goingUp {
				prevV.flags |= vfLocalMax
			} else {
				c.addLocMin(prevV, polytype, isOpen)
			}
		} else if goingUp != goingUp0 {
			if goingUp0 {
				c.addLocMin(prevV, polytype, false)
			} else {
				prevV.flags |= vfLocalMax
			}
		}
	}

	c.isSortedMinimaList = false
}
