// Package polyclip provides boolean clipping operations (intersection,
// union, difference and xor) on arbitrarily complex 2D polygons, including
// self-intersecting, holed and open (polyline) inputs.
//
// # Overview
//
// The package implements a Vatti-style sweep-line engine over 64-bit integer
// coordinates for numerical robustness. It provides:
//   - Boolean operations: Union, Intersection, Difference, XOR
//   - Open (polyline) subjects clipped against closed clip regions
//   - Hierarchical output with PolyTree preserving hole nesting
//   - A floating-point facade with configurable decimal precision
//   - Utility functions: area, orientation, bounds, point-in-polygon,
//     Minkowski sum/difference
//
// # Engines and one-shot functions
//
// Clipper64 and ClipperD expose the add-then-execute API for repeated or
// incremental use; the package-level functions (Union64, IntersectD, ...)
// are one-shot conveniences built on top of them.
//
// # Coordinate System
//
// All internal computation uses 64-bit integers. Positive Y is typically
// down (screen coordinates); with that convention, output outer rings are
// emitted with positive signed area and holes with negative area, unless
// ReverseSolution is set.
package polyclip

// Union64 returns the union of subject and clip polygons.
//
// Possible errors: ErrInvalidFillRule, ErrCoordinateRange, ErrExecutionFailed
func Union64(subjects, clips Paths64, fillRule FillRule) (Paths64, error) {
	result, _, err := BooleanOp64(Union, fillRule, subjects, nil, clips)
	return result, err
}

// Intersect64 returns the intersection of subject and clip polygons.
//
// Possible errors: ErrInvalidFillRule, ErrCoordinateRange, ErrExecutionFailed
func Intersect64(subjects, clips Paths64, fillRule FillRule) (Paths64, error) {
	result, _, err := BooleanOp64(Intersection, fillRule, subjects, nil, clips)
	return result, err
}

// Difference64 returns the difference of subject and clip polygons (subject - clip).
//
// Possible errors: ErrInvalidFillRule, ErrCoordinateRange, ErrExecutionFailed
func Difference64(subjects, clips Paths64, fillRule FillRule) (Paths64, error) {
	result, _, err := BooleanOp64(Difference, fillRule, subjects, nil, clips)
	return result, err
}

// Xor64 returns the symmetric difference (XOR) of subject and clip polygons.
//
// Possible errors: ErrInvalidFillRule, ErrCoordinateRange, ErrExecutionFailed
func Xor64(subjects, clips Paths64, fillRule FillRule) (Paths64, error) {
	result, _, err := BooleanOp64(Xor, fillRule, subjects, nil, clips)
	return result, err
}

// BooleanOp64 performs the specified boolean operation on the input polygons.
//
// Parameters:
//   - clipType: the boolean operation (Intersection, Union, Difference, Xor)
//   - fillRule: how polygon interiors are determined
//   - subjects: closed subject paths
//   - subjectsOpen: optional open subject paths (may be nil)
//   - clips: closed clip paths
//
// Returns the closed solution, the open solution (non-empty only when
// subjectsOpen was provided), and any error.
func BooleanOp64(clipType ClipType, fillRule FillRule, subjects, subjectsOpen, clips Paths64) (solution, solutionOpen Paths64, err error) {
	if err := validateClipType(clipType); err != nil {
		return nil, nil, err
	}
	if err := validateFillRule(fillRule); err != nil {
		return nil, nil, err
	}

	c := NewClipper64()
	if err := c.AddSubject(subjects); err != nil {
		return nil, nil, err
	}
	if subjectsOpen != nil {
		if err := c.AddOpenSubject(subjectsOpen); err != nil {
			return nil, nil, err
		}
	}
	if err := c.AddClip(clips); err != nil {
		return nil, nil, err
	}
	if err := c.Execute(clipType, fillRule, &solution, &solutionOpen); err != nil {
		return nil, nil, err
	}
	return solution, solutionOpen, nil
}

// BooleanOp64Tree performs the specified boolean operation and returns the
// closed solution as a PolyTree preserving hole nesting, plus any open paths.
func BooleanOp64Tree(clipType ClipType, fillRule FillRule, subjects, subjectsOpen, clips Paths64) (*PolyTree64, Paths64, error) {
	if err := validateClipType(clipType); err != nil {
		return nil, nil, err
	}
	if err := validateFillRule(fillRule); err != nil {
		return nil, nil, err
	}

	c := NewClipper64()
	if err := c.AddSubject(subjects); err != nil {
		return nil, nil, err
	}
	if subjectsOpen != nil {
		if err := c.AddOpenSubject(subjectsOpen); err != nil {
			return nil, nil, err
		}
	}
	if err := c.AddClip(clips); err != nil {
		return nil, nil, err
	}
	tree := NewPolyTree64()
	var openPaths Paths64
	if err := c.ExecuteTree(clipType, fillRule, tree, &openPaths); err != nil {
		return nil, nil, err
	}
	return tree, openPaths, nil
}

// Union64Tree returns the union as a hierarchical PolyTree
func Union64Tree(subjects, clips Paths64, fillRule FillRule) (*PolyTree64, Paths64, error) {
	return BooleanOp64Tree(Union, fillRule, subjects, nil, clips)
}

// Intersect64Tree returns the intersection as a hierarchical PolyTree
func Intersect64Tree(subjects, clips Paths64, fillRule FillRule) (*PolyTree64, Paths64, error) {
	return BooleanOp64Tree(Intersection, fillRule, subjects, nil, clips)
}

// Difference64Tree returns the difference (subject - clip) as a PolyTree
func Difference64Tree(subjects, clips Paths64, fillRule FillRule) (*PolyTree64, Paths64, error) {
	return BooleanOp64Tree(Difference, fillRule, subjects, nil, clips)
}

// Xor64Tree returns the symmetric difference (XOR) as a PolyTree
func Xor64Tree(subjects, clips Paths64, fillRule FillRule) (*PolyTree64, Paths64, error) {
	return BooleanOp64Tree(Xor, fillRule, subjects, nil, clips)
}

// ==============================================================================
// Floating-Point API
// ==============================================================================

// BooleanOpD performs the specified boolean operation on floating-point
// polygons at the given rounding decimal precision.
func BooleanOpD(clipType ClipType, fillRule FillRule, subjects, subjectsOpen, clips PathsD, precision int) (solution, solutionOpen PathsD, err error) {
	if err := validateClipType(clipType); err != nil {
		return nil, nil, err
	}
	if err := validateFillRule(fillRule); err != nil {
		return nil, nil, err
	}

	d, err := NewClipperD(precision)
	if err != nil {
		return nil, nil, err
	}
	if err := d.AddSubject(subjects); err != nil {
		return nil, nil, err
	}
	if subjectsOpen != nil {
		if err := d.AddOpenSubject(subjectsOpen); err != nil {
			return nil, nil, err
		}
	}
	if err := d.AddClip(clips); err != nil {
		return nil, nil, err
	}
	if err := d.Execute(clipType, fillRule, &solution, &solutionOpen); err != nil {
		return nil, nil, err
	}
	return solution, solutionOpen, nil
}

// UnionD returns the union of floating-point subject and clip polygons
func UnionD(subjects, clips PathsD, fillRule FillRule, precision int) (PathsD, error) {
	result, _, err := BooleanOpD(Union, fillRule, subjects, nil, clips, precision)
	return result, err
}

// IntersectD returns the intersection of floating-point subject and clip polygons
func IntersectD(subjects, clips PathsD, fillRule FillRule, precision int) (PathsD, error) {
	result, _, err := BooleanOpD(Intersection, fillRule, subjects, nil, clips, precision)
	return result, err
}

// DifferenceD returns the difference of floating-point subject and clip polygons
func DifferenceD(subjects, clips PathsD, fillRule FillRule, precision int) (PathsD, error) {
	result, _, err := BooleanOpD(Difference, fillRule, subjects, nil, clips, precision)
	return result, err
}

// XorD returns the symmetric difference of floating-point subject and clip polygons
func XorD(subjects, clips PathsD, fillRule FillRule, precision int) (PathsD, error) {
	result, _, err := BooleanOpD(Xor, fillRule, subjects, nil, clips, precision)
	return result, err
}

// ==============================================================================
// Path Utilities
// ==============================================================================

// Area64 calculates the signed area of a path.
// Returns 0 for paths with fewer than 3 points.
func Area64(path Path64) float64 {
	return area(path)
}

// AreaPaths64 sums the signed areas of all paths; holes subtract themselves
func AreaPaths64(paths Paths64) float64 {
	result := 0.0
	for _, path := range paths {
		result += area(path)
	}
	return result
}

// AreaD calculates the signed area of a floating-point path
func AreaD(path PathD) float64 {
	return areaD(path)
}

// IsPositive64 reports whether the path has positive signed area
func IsPositive64(path Path64) bool {
	return Area64(path) > 0
}

// Reverse64 returns a copy of the path with points in reverse order
func Reverse64(path Path64) Path64 {
	result := make(Path64, len(path))
	for i, j := 0, len(path)-1; j >= 0; i, j = i+1, j-1 {
		result[i] = path[j]
	}
	return result
}

// ReversePaths64 returns a copy with every path reversed
func ReversePaths64(paths Paths64) Paths64 {
	result := make(Paths64, len(paths))
	for i, path := range paths {
		result[i] = Reverse64(path)
	}
	return result
}

// Bounds64 calculates the bounding rectangle of a path
func Bounds64(path Path64) Rect64 {
	return getBounds(path)
}

// BoundsPaths64 calculates the bounding rectangle of multiple paths
func BoundsPaths64(paths Paths64) Rect64 {
	return getBoundsPaths(paths)
}

// PointInPolygon64 determines whether a point is inside, outside or on the
// boundary of a polygon
func PointInPolygon64(pt Point64, polygon Path64) PolygonLocation {
	return pointInPolygon(pt, polygon)
}

// TranslatePath64 returns the path shifted by (dx, dy)
func TranslatePath64(path Path64, dx, dy int64) Path64 {
	result := make(Path64, len(path))
	for i, pt := range path {
		result[i] = Point64{X: pt.X + dx, Y: pt.Y + dy, Z: pt.Z}
	}
	return result
}

// TranslatePaths64 returns all paths shifted by (dx, dy)
func TranslatePaths64(paths Paths64, dx, dy int64) Paths64 {
	result := make(Paths64, len(paths))
	for i, path := range paths {
		result[i] = TranslatePath64(path, dx, dy)
	}
	return result
}
