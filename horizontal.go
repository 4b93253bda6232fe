package polyclip

// Horizontal edge handling. Horizontals are swept sideways at a fixed Y
// rather than taking part in the usual slope ordering, and overlapping
// horizontal output segments are stitched together afterwards.

import "sort"

// horzSegment is a horizontal run of output points that may later join with
// an opposite-heading run at the same Y
type horzSegment struct {
	leftOp      *outPt
	rightOp     *outPt
	leftToRight bool
}

// horzJoin is an accepted pairing of two horizontal runs
type horzJoin struct {
	op1 *outPt
	op2 *outPt
}

// resetHorzDirection reports whether horz heads left-to-right and yields the
// X window it sweeps. A degenerate (going-nowhere) horizontal is treated as
// left-to-right only if its maxima pair lies to the right.
func (c *Clipper64) resetHorzDirection(horz *active, vertexMax *vertex) (leftToRight bool, leftX, rightX int64) {
	if horz.bot.X == horz.top.X {
		leftX = horz.curX
		rightX = horz.curX
		ae := horz.nextInAEL
		for ae != nil && ae.vertexTop != vertexMax {
			ae = ae.nextInAEL
		}
		return ae != nil, leftX, rightX
	}
	if horz.curX < horz.top.X {
		return true, horz.curX, horz.top.X
	}
	return false, horz.top.X, horz.curX
}

// trimHorz folds consecutive horizontal vertices into horzEdge, always
// removing 180 degree spikes and, unless preserveCollinear, merging
// same-direction runs too
func (c *Clipper64) trimHorz(horzEdge *active, preserveCollinear bool) {
	wasTrimmed := false
	pt := nextVertex(horzEdge).pt
	for pt.Y == horzEdge.top.Y {
		if preserveCollinear &&
			(pt.X < horzEdge.top.X) != (horzEdge.bot.X < horzEdge.top.X) {
			break
		}
		horzEdge.vertexTop = nextVertex(horzEdge)
		horzEdge.top = pt
		wasTrimmed = true
		if isMaxima(horzEdge) {
			break
		}
		pt = nextVertex(horzEdge).pt
	}
	if wasTrimmed {
		setDx(horzEdge) // +/- infinity
	}
}

func (c *Clipper64) addToHorzSegList(op *outPt) {
	if op.outrec.isOpen {
		return
	}
	c.horzSegList = append(c.horzSegList, &horzSegment{leftOp: op})
}

func getLastOp(hotEdge *active) *outPt {
	outrec := hotEdge.outrec
	if hotEdge == outrec.frontEdge {
		return outrec.pts
	}
	return outrec.pts.next
}

// doHorizontal sweeps a horizontal edge through the AEL, intersecting every
// edge inside its X window, then advances it to the next edge of its bound.
// Consecutive horizontals of open paths are consumed in one call.
func (c *Clipper64) doHorizontal(horz *active) {
	horzIsOpen := isOpen(horz)
	y := horz.bot.Y

	var vertexMax *vertex
	if horzIsOpen {
		vertexMax = getCurrYMaximaVertexOpen(horz)
	} else {
		vertexMax = getCurrYMaximaVertex(horz)
	}

	// remove 180 degree spikes and also simplify
	// consecutive horizontals unless PreserveCollinear
	if vertexMax != nil && !horzIsOpen && vertexMax != horz.vertexTop {
		c.trimHorz(horz, c.PreserveCollinear)
	}

	isLeftToRight, leftX, rightX := c.resetHorzDirection(horz, vertexMax)

	if isHotEdge(horz) {
		op := c.addOutPt(horz, Point64{X: horz.curX, Y: y, Z: horz.bot.Z})
		c.addToHorzSegList(op)
	}

	for {
		// loop through consecutive horizontal edges
		var ae *active
		if isLeftToRight {
			ae = horz.nextInAEL
		} else {
			ae = horz.prevInAEL
		}

		for ae != nil {
			if ae.vertexTop == vertexMax {
				// do this first
				if isHotEdge(horz) && isJoined(ae) {
					c.split(ae, ae.top)
				}

				if isHotEdge(horz) {
					for horz.vertexTop != vertexMax {
						c.addOutPt(horz, horz.top)
						c.updateEdgeIntoAEL(horz)
					}
					if isLeftToRight {
						c.addLocalMaxPoly(horz, ae, horz.top)
					} else {
						c.addLocalMaxPoly(ae, horz, horz.top)
					}
				}
				c.deleteFromAEL(ae)
				c.deleteFromAEL(horz)
				return
			}

			// if horz is a maxima, keep going until reaching its maxima
			// pair, otherwise check for break conditions
			if vertexMax != horz.vertexTop || isOpenEnd(horz) {
				// otherwise stop when 'ae' is beyond the end of the horizontal line
				if (isLeftToRight && ae.curX > rightX) ||
					(!isLeftToRight && ae.curX < leftX) {
					break
				}

				if ae.curX == horz.top.X && !isHorizontal(ae) {
					pt := nextVertex(horz).pt

					// to maximize the possibility of putting open edges into
					// solutions, we'll only break if it's past horz's end
					if isOpen(ae) && !isSamePolyType(ae, horz) && !isHotEdge(ae) {
						if (isLeftToRight && topX(ae, pt.Y) > pt.X) ||
							(!isLeftToRight && topX(ae, pt.Y) < pt.X) {
							break
						}
					} else if (isLeftToRight && topX(ae, pt.Y) >= pt.X) ||
						(!isLeftToRight && topX(ae, pt.Y) <= pt.X) {
						// otherwise break only when the edge's slope falls
						// outside the horizontal's outgoing slope
						break
					}
				}
			}

			pt := Point64{X: ae.curX, Y: y}

			if isLeftToRight {
				c.intersectEdges(horz, ae, pt)
				c.swapPositionsInAEL(horz, ae)
				c.checkJoinLeft(ae, pt, false)
				horz.curX = ae.curX
				ae = horz.nextInAEL
			} else {
				c.intersectEdges(ae, horz, pt)
				c.swapPositionsInAEL(ae, horz)
				c.checkJoinRight(ae, pt, false)
				horz.curX = ae.curX
				ae = horz.prevInAEL
			}

			if isHotEdge(horz) {
				c.addToHorzSegList(getLastOp(horz))
			}
		}

		// the end of this horizontal has been reached; check whether there
		// are consecutive horizontals still to process
		if horzIsOpen && isOpenEnd(horz) { // open at top
			if isHotEdge(horz) {
				c.addOutPt(horz, horz.top)
				if isFront(horz) {
					horz.outrec.frontEdge = nil
				} else {
					horz.outrec.backEdge = nil
				}
				horz.outrec = nil
			}
			c.deleteFromAEL(horz)
			return
		}
		if nextVertex(horz).pt.Y != horz.top.Y {
			break
		}

		// still more horizontals in this bound to process
		if isHotEdge(horz) {
			c.addOutPt(horz, horz.top)
		}

		c.updateEdgeIntoAEL(horz)

		isLeftToRight, leftX, rightX = c.resetHorzDirection(horz, vertexMax)
	}

	if isHotEdge(horz) {
		op := c.addOutPt(horz, horz.top)
		c.addToHorzSegList(op)
	}

	c.updateEdgeIntoAEL(horz) // the end of an intermediate horizontal
}

// ==============================================================================
// Horizontal Segment Joining
// ==============================================================================

func setHorzSegHeadingForward(hs *horzSegment, opP, opN *outPt) bool {
	if opP.pt.X == opN.pt.X {
		return false
	}
	if opP.pt.X < opN.pt.X {
		hs.leftOp = opP
		hs.rightOp = opN
		hs.leftToRight = true
	} else {
		hs.leftOp = opN
		hs.rightOp = opP
		hs.leftToRight = false
	}
	return true
}

// updateHorzSegment extends hs to the full horizontal run around its seed
// point and normalizes it to heading order; returns false for unusable runs
func updateHorzSegment(hs *horzSegment) bool {
	op := hs.leftOp
	outrec := getRealOutRec(op.outrec)
	outrecHasEdges := outrec.frontEdge != nil
	currY := op.pt.Y
	opP, opN := op, op
	if outrecHasEdges {
		opA := outrec.pts
		opZ := opA.next
		for opP != opZ && opP.prev.pt.Y == currY {
			opP = opP.prev
		}
		for opN != opA && opN.next.pt.Y == currY {
			opN = opN.next
		}
	} else {
		for opP.prev != opN && opP.prev.pt.Y == currY {
			opP = opP.prev
		}
		for opN.next != opP && opN.next.pt.Y == currY {
			opN = opN.next
		}
	}
	result := setHorzSegHeadingForward(hs, opP, opN) && hs.leftOp.horz == nil

	if result {
		hs.leftOp.horz = hs
	} else {
		hs.rightOp = nil // (for sorting)
	}
	return result
}

// convertHorzSegsToJoins pairs overlapping opposite-heading horizontal runs
// at the same Y into pending joins
func (c *Clipper64) convertHorzSegsToJoins() {
	k := 0
	for _, hs := range c.horzSegList {
		if updateHorzSegment(hs) {
			k++
		}
	}
	if k < 2 {
		return
	}
	sort.SliceStable(c.horzSegList, func(i, j int) bool {
		hs1, hs2 := c.horzSegList[i], c.horzSegList[j]
		if hs1.rightOp == nil {
			return false
		}
		if hs2.rightOp == nil {
			return true
		}
		return hs1.leftOp.pt.X < hs2.leftOp.pt.X
	})

	for i := 0; i < k-1; i++ {
		hs1 := c.horzSegList[i]
		// for each horizontal segment, find others that overlap
		for j := i + 1; j < k; j++ {
			hs2 := c.horzSegList[j]
			if hs2.leftOp.pt.X >= hs1.rightOp.pt.X ||
				hs2.leftToRight == hs1.leftToRight ||
				hs2.rightOp.pt.X <= hs1.leftOp.pt.X {
				continue
			}
			currY := hs1.leftOp.pt.Y
			if hs1.leftToRight {
				for hs1.leftOp.next.pt.Y == currY &&
					hs1.leftOp.next.pt.X <= hs2.leftOp.pt.X {
					hs1.leftOp = hs1.leftOp.next
				}
				for hs2.leftOp.prev.pt.Y == currY &&
					hs2.leftOp.prev.pt.X <= hs1.leftOp.pt.X {
					hs2.leftOp = hs2.leftOp.prev
				}
				c.horzJoinList = append(c.horzJoinList, &horzJoin{
					op1: c.duplicateOp(hs1.leftOp, true),
					op2: c.duplicateOp(hs2.leftOp, false),
				})
			} else {
				for hs1.leftOp.prev.pt.Y == currY &&
					hs1.leftOp.prev.pt.X <= hs2.leftOp.pt.X {
					hs1.leftOp = hs1.leftOp.prev
				}
				for hs2.leftOp.next.pt.Y == currY &&
					hs2.leftOp.next.pt.X <= hs1.leftOp.pt.X {
					hs2.leftOp = hs2.leftOp.next
				}
				c.horzJoinList = append(c.horzJoinList, &horzJoin{
					op1: c.duplicateOp(hs2.leftOp, true),
					op2: c.duplicateOp(hs1.leftOp, false),
				})
			}
		}
	}
}
