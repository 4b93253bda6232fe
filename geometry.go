package polyclip

import "math"

// PolygonLocation represents the location of a point relative to a polygon
type PolygonLocation uint8

const (
	Outside    PolygonLocation = iota // point is outside the polygon
	Inside                            // point is inside the polygon
	OnBoundary                        // point is on the polygon boundary
)

// isCollinear reports whether the three points are exactly collinear
func isCollinear(p1, p2, p3 Point64) bool {
	// Equivalent to a zero cross product, but phrased so that the two
	// products can be compared without computing their difference.
	return productsAreEqual(p2.X-p1.X, p3.Y-p2.Y, p2.Y-p1.Y, p3.X-p2.X)
}

// area calculates the signed area of a path. Positive area corresponds to
// counter-clockwise winding in a Y-up frame; with screen (Y-down) coordinates
// the visual sense inverts, which the engine accounts for when orienting output.
func area(path Path64) float64 {
	if len(path) < 3 {
		return 0
	}
	return area128(path).ToFloat64() * 0.5
}

// areaD calculates the signed area of a floating-point path
func areaD(path PathD) float64 {
	a := 0.0
	if len(path) < 3 {
		return a
	}
	prev := path[len(path)-1]
	for _, pt := range path {
		a += (prev.Y + pt.Y) * (prev.X - pt.X)
		prev = pt
	}
	return a * 0.5
}

// segsIntersect reports whether segments (seg1a,seg1b) and (seg2a,seg2b)
// cross. With inclusive set, touching at an endpoint counts.
func segsIntersect(seg1a, seg1b, seg2a, seg2b Point64, inclusive bool) bool {
	if inclusive {
		res1 := crossSign128(seg1a, seg2a, seg2b)
		res2 := crossSign128(seg1b, seg2a, seg2b)
		if res1*res2 > 0 {
			return false
		}
		res3 := crossSign128(seg2a, seg1a, seg1b)
		res4 := crossSign128(seg2b, seg1a, seg1b)
		if res3*res4 > 0 {
			return false
		}
		// collinear segments never count as intersecting
		return res1 != 0 || res2 != 0 || res3 != 0 || res4 != 0
	}
	return crossSign128(seg1a, seg2a, seg2b)*crossSign128(seg1b, seg2a, seg2b) < 0 &&
		crossSign128(seg2a, seg1a, seg1b)*crossSign128(seg2b, seg1a, seg1b) < 0
}

// getSegmentIntersectPt calculates where segments (ln1a,ln1b) and (ln2a,ln2b)
// intersect. Coordinates are rounded half to even, which avoids drift when
// many intersections land on .5 boundaries. Returns false for parallel lines.
func getSegmentIntersectPt(ln1a, ln1b, ln2a, ln2b Point64) (Point64, bool) {
	dy1 := float64(ln1b.Y - ln1a.Y)
	dx1 := float64(ln1b.X - ln1a.X)
	dy2 := float64(ln2b.Y - ln2a.Y)
	dx2 := float64(ln2b.X - ln2a.X)

	det := dy1*dx2 - dy2*dx1
	if det == 0.0 {
		return Point64{}, false
	}

	t := (float64(ln1a.X-ln2a.X)*dy2 - float64(ln1a.Y-ln2a.Y)*dx2) / det
	switch {
	case t <= 0.0:
		return ln1a, true
	case t >= 1.0:
		return ln1b, true
	default:
		return Point64{
			X: ln1a.X + int64(math.RoundToEven(t*dx1)),
			Y: ln1a.Y + int64(math.RoundToEven(t*dy1)),
		}, true
	}
}

// pointInPolygon determines whether pt is inside, outside or on the boundary
// of polygon. The crossing test walks the ring once, resolving every
// borderline crossing with an exact cross product.
func pointInPolygon(pt Point64, polygon Path64) PolygonLocation {
	n := len(polygon)
	if n < 3 {
		return Outside
	}

	start := 0
	for start < n && polygon[start].Y == pt.Y {
		start++
	}
	if start == n {
		return Outside
	}

	isAbove := polygon[start].Y < pt.Y
	startingAbove := isAbove
	val := 0
	i := start + 1
	end := n

	for {
		if i == end {
			if end == 0 || start == 0 {
				break
			}
			end = start
			i = 0
		}

		if isAbove {
			for i < end && polygon[i].Y < pt.Y {
				i++
			}
		} else {
			for i < end && polygon[i].Y > pt.Y {
				i++
			}
		}
		if i == end {
			continue
		}

		curr := polygon[i]
		var prev Point64
		if i > 0 {
			prev = polygon[i-1]
		} else {
			prev = polygon[n-1]
		}

		if curr.Y == pt.Y {
			if curr.X == pt.X ||
				(curr.Y == prev.Y && (pt.X < prev.X) != (pt.X < curr.X)) {
				return OnBoundary
			}
			i++
			if i == start {
				break
			}
			continue
		}

		if pt.X < curr.X && pt.X < prev.X {
			// edge is entirely to the right of pt: not a crossing
		} else if pt.X > prev.X && pt.X > curr.X {
			val = 1 - val
		} else {
			d := crossSign128(prev, curr, pt)
			if d == 0 {
				return OnBoundary
			}
			if (d < 0) == isAbove {
				val = 1 - val
			}
		}

		isAbove = !isAbove
		i++
	}

	if isAbove != startingAbove {
		if i == n {
			i = 0
		}
		var d int
		if i == 0 {
			d = crossSign128(polygon[n-1], polygon[0], pt)
		} else {
			d = crossSign128(polygon[i-1], polygon[i], pt)
		}
		if d == 0 {
			return OnBoundary
		}
		if (d < 0) == isAbove {
			val = 1 - val
		}
	}

	if val == 0 {
		return Outside
	}
	return Inside
}

// path2ContainsPath1 reports whether path1 lies inside path2. The paths are
// assumed not to cross, so a simple vote over path1's vertices suffices;
// vertices on the boundary abstain.
func path2ContainsPath1(path1, path2 Path64) bool {
	ioCount := 0
	for _, pt := range path1 {
		switch pointInPolygon(pt, path2) {
		case Outside:
			ioCount++
		case Inside:
			ioCount--
		}
		if ioCount > 1 || ioCount < -1 {
			break
		}
	}
	return ioCount <= 0
}

// getBounds calculates the bounding rectangle of a path
func getBounds(path Path64) Rect64 {
	if len(path) == 0 {
		return Rect64{}
	}
	bounds := invalidRect64()
	for _, pt := range path {
		if pt.X < bounds.Left {
			bounds.Left = pt.X
		}
		if pt.X > bounds.Right {
			bounds.Right = pt.X
		}
		if pt.Y < bounds.Top {
			bounds.Top = pt.Y
		}
		if pt.Y > bounds.Bottom {
			bounds.Bottom = pt.Y
		}
	}
	return bounds
}

// getBoundsPaths calculates the bounding rectangle of multiple paths
func getBoundsPaths(paths Paths64) Rect64 {
	bounds := invalidRect64()
	any := false
	for _, path := range paths {
		for _, pt := range path {
			any = true
			if pt.X < bounds.Left {
				bounds.Left = pt.X
			}
			if pt.X > bounds.Right {
				bounds.Right = pt.X
			}
			if pt.Y < bounds.Top {
				bounds.Top = pt.Y
			}
			if pt.Y > bounds.Bottom {
				bounds.Bottom = pt.Y
			}
		}
	}
	if !any {
		return Rect64{}
	}
	return bounds
}

// ptsEqual ignores the Z tag when comparing points
func ptsEqual(a, b Point64) bool {
	return a.X == b.X && a.Y == b.Y
}

// Helper functions for int64 operations
func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
