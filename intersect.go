package polyclip

// Intersection processing. Between two scanlines, edges whose projected X
// order at the top of the scanbeam differs from their AEL order must cross
// somewhere inside the beam; each crossing is recorded while merge-sorting
// the SEL and then applied bottom-up.

import (
	"math"
	"sort"
)

func (c *Clipper64) doIntersections(topY int64) {
	if c.buildIntersectList(topY) {
		c.processIntersectList()
		c.intersectList = c.intersectList[:0]
	}
}

// adjustCurrXAndCopyToSEL projects every active edge to topY and mirrors the
// AEL into the SEL with single-element merge partitions
func (c *Clipper64) adjustCurrXAndCopyToSEL(topY int64) {
	ae := c.actives
	c.sel = ae
	for ae != nil {
		ae.prevInSEL = ae.prevInAEL
		ae.nextInSEL = ae.nextInAEL
		ae.jump = ae.nextInSEL
		if ae.joinWith == joinLeft {
			ae.curX = ae.prevInAEL.curX // keeps the join pair together
		} else {
			ae.curX = topX(ae, topY)
		}
		// nb: don't update ae.bot.Y yet (see addNewIntersectNode)
		ae = ae.nextInAEL
	}
}

// getClosestPtOnSegment projects offPt onto the segment (seg1, seg2)
func getClosestPtOnSegment(offPt, seg1, seg2 Point64) Point64 {
	if seg1.X == seg2.X && seg1.Y == seg2.Y {
		return seg1
	}
	dx := float64(seg2.X - seg1.X)
	dy := float64(seg2.Y - seg1.Y)
	q := (float64(offPt.X-seg1.X)*dx + float64(offPt.Y-seg1.Y)*dy) / (dx*dx + dy*dy)
	if q < 0 {
		q = 0
	} else if q > 1 {
		q = 1
	}
	return Point64{
		X: seg1.X + int64(math.RoundToEven(q*dx)),
		Y: seg1.Y + int64(math.RoundToEven(q*dy)),
	}
}

// addNewIntersectNode records the crossing of two adjacent SEL edges. The
// rounded intersection point is clamped into the current scanbeam; near-
// horizontal edges snap it back onto themselves so it cannot drift sideways.
func (c *Clipper64) addNewIntersectNode(ae1, ae2 *active, topY int64) {
	ip, ok := getSegmentIntersectPt(ae1.bot, ae1.top, ae2.bot, ae2.top)
	if !ok {
		ip = Point64{X: ae1.curX, Y: topY}
	}

	if ip.Y > c.currentBotY || ip.Y < topY {
		absDx1 := math.Abs(ae1.dx)
		absDx2 := math.Abs(ae2.dx)
		switch {
		case absDx1 > 100 && absDx2 > 100:
			if absDx1 > absDx2 {
				ip = getClosestPtOnSegment(ip, ae1.bot, ae1.top)
			} else {
				ip = getClosestPtOnSegment(ip, ae2.bot, ae2.top)
			}
		case absDx1 > 100:
			ip = getClosestPtOnSegment(ip, ae1.bot, ae1.top)
		case absDx2 > 100:
			ip = getClosestPtOnSegment(ip, ae2.bot, ae2.top)
		default:
			if ip.Y < topY {
				ip.Y = topY
			} else {
				ip.Y = c.currentBotY
			}
			if absDx1 < absDx2 {
				ip.X = topX(ae1, ip.Y)
			} else {
				ip.X = topX(ae2, ip.Y)
			}
		}
	}
	c.intersectList = append(c.intersectList, &intersectNode{pt: ip, edge1: ae1, edge2: ae2})
}

func extractFromSEL(ae *active) *active {
	res := ae.nextInSEL
	if res != nil {
		res.prevInSEL = ae.prevInSEL
	}
	ae.prevInSEL.nextInSEL = res
	return res
}

func insert1Before2InSEL(ae1, ae2 *active) {
	ae1.prevInSEL = ae2.prevInSEL
	if ae1.prevInSEL != nil {
		ae1.prevInSEL.nextInSEL = ae1
	}
	ae1.nextInSEL = ae2
	ae2.prevInSEL = ae1
}

// buildIntersectList merge-sorts the SEL by projected X at topY. Every swap
// performed by the sort is an edge crossing within the scanbeam and is
// recorded as an intersect node.
func (c *Clipper64) buildIntersectList(topY int64) bool {
	if c.actives == nil || c.actives.nextInAEL == nil {
		return false
	}

	c.adjustCurrXAndCopyToSEL(topY)

	left := c.sel
	for left.jump != nil {
		var prevBase *active
		for left != nil && left.jump != nil {
			currBase := left
			right := left.jump
			lEnd := right
			rEnd := right.jump
			left.jump = rEnd
			for left != lEnd && right != rEnd {
				if right.curX < left.curX {
					// every edge from left through the run end crosses right
					tmp := right.prevInSEL
					for {
						c.addNewIntersectNode(tmp, right, topY)
						if tmp == left {
							break
						}
						tmp = tmp.prevInSEL
					}
					tmp = right
					right = extractFromSEL(tmp)
					lEnd = right
					insert1Before2InSEL(tmp, left)
					if left == currBase {
						currBase = tmp
						currBase.jump = rEnd
						if prevBase == nil {
							c.sel = currBase
						} else {
							prevBase.jump = currBase
						}
					}
				} else {
					left = left.nextInSEL
				}
			}
			prevBase = currBase
			left = rEnd
		}
		left = c.sel
	}
	return len(c.intersectList) > 0
}

func edgesAdjacentInAEL(node *intersectNode) bool {
	return node.edge1.nextInAEL == node.edge2 || node.edge1.prevInAEL == node.edge2
}

// processIntersectList applies the recorded crossings bottom-up. Nodes whose
// edges are not yet adjacent in the AEL are deferred by swapping in the next
// applicable node.
func (c *Clipper64) processIntersectList() {
	sort.Slice(c.intersectList, func(i, j int) bool {
		a, b := c.intersectList[i], c.intersectList[j]
		if a.pt.Y == b.pt.Y {
			return a.pt.X < b.pt.X
		}
		return a.pt.Y > b.pt.Y
	})

	for i := 0; i < len(c.intersectList); i++ {
		if !edgesAdjacentInAEL(c.intersectList[i]) {
			j := i + 1
			for !edgesAdjacentInAEL(c.intersectList[j]) {
				j++
			}
			c.intersectList[i], c.intersectList[j] = c.intersectList[j], c.intersectList[i]
		}

		node := c.intersectList[i]
		c.intersectEdges(node.edge1, node.edge2, node.pt)
		c.swapPositionsInAEL(node.edge1, node.edge2)

		node.edge1.curX = node.pt.X
		node.edge2.curX = node.pt.X
		c.checkJoinLeft(node.edge2, node.pt, true)
		c.checkJoinRight(node.edge1, node.pt, true)
	}
}

// swapPositionsInAEL exchanges two edges that must be adjacent, ae1 left of ae2
func (c *Clipper64) swapPositionsInAEL(ae1, ae2 *active) {
	next := ae2.nextInAEL
	if next != nil {
		next.prevInAEL = ae1
	}
	prev := ae1.prevInAEL
	if prev != nil {
		prev.nextInAEL = ae2
	}
	ae2.prevInAEL = prev
	ae2.nextInAEL = ae1
	ae1.prevInAEL = ae2
	ae1.nextInAEL = next
	if ae2.prevInAEL == nil {
		c.actives = ae2
	}
}

// intersectEdges emits output for the crossing of ae1 and ae2 at pt,
// honoring the contribution rules of the fill rule and clip type
func (c *Clipper64) intersectEdges(ae1, ae2 *active, pt Point64) *outPt {
	var resultOp *outPt

	// open path intersections are managed separately
	if c.hasOpenPaths && (isOpen(ae1) || isOpen(ae2)) {
		if isOpen(ae1) && isOpen(ae2) {
			return nil
		}
		if isOpen(ae2) {
			ae1, ae2 = ae2, ae1 // ae1 is the open edge below
		}
		if isJoined(ae2) {
			c.split(ae2, pt)
		}

		if c.cliptype == Union {
			if !isHotEdge(ae2) {
				return nil
			}
		} else if ae2.localMin.polytype == PathTypeSubject {
			return nil
		}

		switch c.fillrule {
		case Positive:
			if ae2.windCount != 1 {
				return nil
			}
		case Negative:
			if ae2.windCount != -1 {
				return nil
			}
		default:
			if ae2.windCount != 1 && ae2.windCount != -1 {
				return nil
			}
		}

		c.setZ(ae1, ae2, &pt)

		// toggle the open path's contribution
		if isHotEdge(ae1) {
			resultOp = c.addOutPt(ae1, pt)
			if isFront(ae1) {
				ae1.outrec.frontEdge = nil
			} else {
				ae1.outrec.backEdge = nil
			}
			ae1.outrec = nil
		} else if ptsEqual(pt, ae1.localMin.vertex.pt) &&
			!isOpenEndVertex(ae1.localMin.vertex) {
			// horizontal edges can pass under open paths at a local minimum;
			// if the minimum's other bound is hot, join up with it
			ae3 := findEdgeWithMatchingLocMin(ae1)
			if ae3 != nil && isHotEdge(ae3) {
				ae1.outrec = ae3.outrec
				if ae1.windDx > 0 {
					setSides(ae3.outrec, ae1, ae3)
				} else {
					setSides(ae3.outrec, ae3, ae1)
				}
				return ae3.outrec.pts
			}
			resultOp = c.startOpenPath(ae1, pt)
		} else {
			resultOp = c.startOpenPath(ae1, pt)
		}
		return resultOp
	}

	// closed paths from here on
	if isJoined(ae1) {
		c.split(ae1, pt)
	}
	if isJoined(ae2) {
		c.split(ae2, pt)
	}

	// update winding counts (assumes ae1 is left of ae2)
	if ae1.localMin.polytype == ae2.localMin.polytype {
		if c.fillrule == EvenOdd {
			ae1.windCount, ae2.windCount = ae2.windCount, ae1.windCount
		} else {
			if ae1.windCount+ae2.windDx == 0 {
				ae1.windCount = -ae1.windCount
			} else {
				ae1.windCount += ae2.windDx
			}
			if ae2.windCount-ae1.windDx == 0 {
				ae2.windCount = -ae2.windCount
			} else {
				ae2.windCount -= ae1.windDx
			}
		}
	} else {
		if c.fillrule != EvenOdd {
			ae1.windCount2 += ae2.windDx
		} else if ae1.windCount2 == 0 {
			ae1.windCount2 = 1
		} else {
			ae1.windCount2 = 0
		}
		if c.fillrule != EvenOdd {
			ae2.windCount2 -= ae1.windDx
		} else if ae2.windCount2 == 0 {
			ae2.windCount2 = 1
		} else {
			ae2.windCount2 = 0
		}
	}

	var e1Wc, e2Wc int
	switch c.fillrule {
	case Positive:
		e1Wc = ae1.windCount
		e2Wc = ae2.windCount
	case Negative:
		e1Wc = -ae1.windCount
		e2Wc = -ae2.windCount
	default:
		e1Wc = ae1.windCount
		if e1Wc < 0 {
			e1Wc = -e1Wc
		}
		e2Wc = ae2.windCount
		if e2Wc < 0 {
			e2Wc = -e2Wc
		}
	}

	e1WindCountIs0or1 := e1Wc == 0 || e1Wc == 1
	e2WindCountIs0or1 := e2Wc == 0 || e2Wc == 1

	if (!isHotEdge(ae1) && !e1WindCountIs0or1) ||
		(!isHotEdge(ae2) && !e2WindCountIs0or1) {
		return nil
	}

	// now process the intersection

	if isHotEdge(ae1) && isHotEdge(ae2) {
		if (e1Wc != 0 && e1Wc != 1) || (e2Wc != 0 && e2Wc != 1) ||
			(ae1.localMin.polytype != ae2.localMin.polytype && c.cliptype != Xor) {
			c.setZ(ae1, ae2, &pt)
			resultOp = c.addLocalMaxPoly(ae1, ae2, pt)
		} else if isFront(ae1) || ae1.outrec == ae2.outrec {
			// polygons touching at a shared vertex are split apart here
			c.setZ(ae1, ae2, &pt)
			resultOp = c.addLocalMaxPoly(ae1, ae2, pt)
			c.addLocalMinPoly(ae1, ae2, pt, false)
		} else {
			// can't be treated as maxima & minima
			c.setZ(ae1, ae2, &pt)
			resultOp = c.addOutPt(ae1, pt)
			c.addOutPt(ae2, pt)
			swapOutrecs(ae1, ae2)
		}
	} else if isHotEdge(ae1) {
		c.setZ(ae1, ae2, &pt)
		resultOp = c.addOutPt(ae1, pt)
		swapOutrecs(ae1, ae2)
	} else if isHotEdge(ae2) {
		c.setZ(ae1, ae2, &pt)
		resultOp = c.addOutPt(ae2, pt)
		swapOutrecs(ae1, ae2)
	} else {
		// neither edge is hot
		var e1Wc2, e2Wc2 int
		switch c.fillrule {
		case Positive:
			e1Wc2 = ae1.windCount2
			e2Wc2 = ae2.windCount2
		case Negative:
			e1Wc2 = -ae1.windCount2
			e2Wc2 = -ae2.windCount2
		default:
			e1Wc2 = ae1.windCount2
			if e1Wc2 < 0 {
				e1Wc2 = -e1Wc2
			}
			e2Wc2 = ae2.windCount2
			if e2Wc2 < 0 {
				e2Wc2 = -e2Wc2
			}
		}

		if !isSamePolyType(ae1, ae2) {
			c.setZ(ae1, ae2, &pt)
			resultOp = c.addLocalMinPoly(ae1, ae2, pt, false)
		} else if e1Wc == 1 && e2Wc == 1 {
			switch c.cliptype {
			case Union:
				if e1Wc2 > 0 && e2Wc2 > 0 {
					return nil
				}
				c.setZ(ae1, ae2, &pt)
				resultOp = c.addLocalMinPoly(ae1, ae2, pt, false)
			case Difference:
				if (getPolyType(ae1) == PathTypeClip && e1Wc2 > 0 && e2Wc2 > 0) ||
					(getPolyType(ae1) == PathTypeSubject && e1Wc2 <= 0 && e2Wc2 <= 0) {
					c.setZ(ae1, ae2, &pt)
					resultOp = c.addLocalMinPoly(ae1, ae2, pt, false)
				}
			case Xor:
				c.setZ(ae1, ae2, &pt)
				resultOp = c.addLocalMinPoly(ae1, ae2, pt, false)
			default: // Intersection
				if e1Wc2 <= 0 || e2Wc2 <= 0 {
					return nil
				}
				c.setZ(ae1, ae2, &pt)
				resultOp = c.addLocalMinPoly(ae1, ae2, pt, false)
			}
		}
	}
	return resultOp
}
