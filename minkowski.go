package polyclip

// Minkowski sum and difference. A pattern is swept along a path, the
// quadrilaterals between consecutive placements are collected and the engine
// unions them into the final shape.

// minkowskiInternal generates the placement quadrilaterals.
// For a sum the pattern is added to each path point; for a difference it is
// subtracted. Quadrilaterals are normalized to positive orientation so the
// subsequent NonZero union fills them all.
func minkowskiInternal(pattern, path Path64, isSum, isClosed bool) Paths64 {
	patLen := len(pattern)
	pathLen := len(path)
	if patLen == 0 || pathLen == 0 {
		return Paths64{}
	}

	tmp := make(Paths64, pathLen)
	for i, pathPt := range path {
		placed := make(Path64, patLen)
		if isSum {
			for j, patternPt := range pattern {
				placed[j] = Point64{X: pathPt.X + patternPt.X, Y: pathPt.Y + patternPt.Y, Z: pathPt.Z}
			}
		} else {
			for j, patternPt := range pattern {
				placed[j] = Point64{X: pathPt.X - patternPt.X, Y: pathPt.Y - patternPt.Y, Z: pathPt.Z}
			}
		}
		tmp[i] = placed
	}

	start := 1
	if isClosed {
		start = 0
	}

	result := make(Paths64, 0, (pathLen-start)*patLen)
	g := pathLen - 1
	if !isClosed {
		g = 0
	}
	h := patLen - 1
	for i := start; i < pathLen; i++ {
		for j := 0; j < patLen; j++ {
			quad := Path64{tmp[g][h], tmp[i][h], tmp[i][j], tmp[g][j]}
			if !IsPositive64(quad) {
				quad = Reverse64(quad)
			}
			result = append(result, quad)
			h = j
		}
		g = i
	}
	return result
}

// MinkowskiSum64 returns the Minkowski sum of pattern and path, i.e. the
// union of the pattern placed at every point of the path.
//
// Possible errors: ErrEmptyPath
func MinkowskiSum64(pattern, path Path64, isClosed bool) (Paths64, error) {
	if len(pattern) == 0 || len(path) == 0 {
		return nil, ErrEmptyPath
	}
	quads := minkowskiInternal(pattern, path, true, isClosed)
	return Union64(quads, nil, NonZero)
}

// MinkowskiDiff64 returns the Minkowski difference of pattern and path
//
// Possible errors: ErrEmptyPath
func MinkowskiDiff64(pattern, path Path64, isClosed bool) (Paths64, error) {
	if len(pattern) == 0 || len(path) == 0 {
		return nil, ErrEmptyPath
	}
	quads := minkowskiInternal(pattern, path, false, isClosed)
	return Union64(quads, nil, NonZero)
}

// MinkowskiSumD is the floating-point variant of MinkowskiSum64
func MinkowskiSumD(pattern, path PathD, isClosed bool, precision int) (PathsD, error) {
	if err := checkPrecision(precision); err != nil {
		return nil, err
	}
	if len(pattern) == 0 || len(path) == 0 {
		return nil, ErrEmptyPath
	}
	scale := pow10(precision)
	pattern64, err := scalePathDTo64(pattern, scale)
	if err != nil {
		return nil, err
	}
	path64, err := scalePathDTo64(path, scale)
	if err != nil {
		return nil, err
	}
	result64, err := MinkowskiSum64(pattern64, path64, isClosed)
	if err != nil {
		return nil, err
	}
	return scalePaths64ToD(result64, 1/scale), nil
}

// MinkowskiDiffD is the floating-point variant of MinkowskiDiff64
func MinkowskiDiffD(pattern, path PathD, isClosed bool, precision int) (PathsD, error) {
	if err := checkPrecision(precision); err != nil {
		return nil, err
	}
	if len(pattern) == 0 || len(path) == 0 {
		return nil, ErrEmptyPath
	}
	scale := pow10(precision)
	pattern64, err := scalePathDTo64(pattern, scale)
	if err != nil {
		return nil, err
	}
	path64, err := scalePathDTo64(path, scale)
	if err != nil {
		return nil, err
	}
	result64, err := MinkowskiDiff64(pattern64, path64, isClosed)
	if err != nil {
		return nil, err
	}
	return scalePaths64ToD(result64, 1/scale), nil
}
