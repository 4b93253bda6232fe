package polyclip

// The floating-point facade. ClipperD rescales PathD inputs into the integer
// engine by a decimal precision factor and scales results back, so callers
// keep float coordinates while the sweep itself stays exact.

import (
	"math"
)

// MaxSafeCoordinate bounds integer coordinates so that the products used in
// cross and area computations stay within the 128-bit helpers
const MaxSafeCoordinate = math.MaxInt64 / 4

// MaxSafeCoordinateForScale returns the largest floating-point magnitude
// that still scales into the safe integer range
func MaxSafeCoordinateForScale(scale float64) float64 {
	return float64(MaxSafeCoordinate) / scale
}

// pow10 returns the scale factor for a decimal precision
func pow10(precision int) float64 {
	return math.Pow(10, float64(precision))
}

// checkPrecision validates a rounding decimal precision
func checkPrecision(precision int) error {
	if precision < -8 || precision > 8 {
		return ErrInvalidPrecision
	}
	return nil
}

// scalePathDTo64 scales a floating path into integer space, rounding half to
// even and rejecting coordinates beyond the safe range
func scalePathDTo64(path PathD, scale float64) (Path64, error) {
	limit := MaxSafeCoordinateForScale(scale)
	result := make(Path64, len(path))
	for i, pt := range path {
		if math.Abs(pt.X) > limit || math.Abs(pt.Y) > limit {
			return nil, ErrCoordinateRange
		}
		result[i] = Point64{
			X: int64(math.RoundToEven(pt.X * scale)),
			Y: int64(math.RoundToEven(pt.Y * scale)),
			Z: pt.Z,
		}
	}
	return result, nil
}

// scalePathsDTo64 scales multiple floating paths into integer space
func scalePathsDTo64(paths PathsD, scale float64) (Paths64, error) {
	result := make(Paths64, len(paths))
	for i, path := range paths {
		scaled, err := scalePathDTo64(path, scale)
		if err != nil {
			return nil, err
		}
		result[i] = scaled
	}
	return result, nil
}

// scalePath64ToD scales an integer path back into the caller's domain
func scalePath64ToD(path Path64, invScale float64) PathD {
	result := make(PathD, len(path))
	for i, pt := range path {
		result[i] = PointD{
			X: float64(pt.X) * invScale,
			Y: float64(pt.Y) * invScale,
			Z: pt.Z,
		}
	}
	return result
}

// scalePaths64ToD scales multiple integer paths back
func scalePaths64ToD(paths Paths64, invScale float64) PathsD {
	result := make(PathsD, len(paths))
	for i, path := range paths {
		result[i] = scalePath64ToD(path, invScale)
	}
	return result
}

// ClipperD is the floating-point clipping engine. It wraps a Clipper64,
// scaling coordinates by 10^precision on the way in and back on the way out.
type ClipperD struct {
	Clipper64

	// ZCallbackD, when set, is invoked for synthesized intersection points
	// with coordinates in the caller's floating-point domain
	ZCallbackD ZCallbackD

	scale    float64
	invScale float64
}

// NewClipperD creates a floating-point engine with the given rounding
// decimal precision, which must be in [-8, 8].
func NewClipperD(roundingDecimalPrecision int) (*ClipperD, error) {
	if err := checkPrecision(roundingDecimalPrecision); err != nil {
		return nil, err
	}
	scale := math.Pow(10, float64(roundingDecimalPrecision))
	d := &ClipperD{scale: scale, invScale: 1 / scale}
	d.PreserveCollinear = true
	return d, nil
}

// AddSubject adds closed subject paths
func (d *ClipperD) AddSubject(paths PathsD) error {
	scaled, err := scalePathsDTo64(paths, d.scale)
	if err != nil {
		return err
	}
	return d.Clipper64.AddSubject(scaled)
}

// AddOpenSubject adds open subject paths (polylines)
func (d *ClipperD) AddOpenSubject(paths PathsD) error {
	scaled, err := scalePathsDTo64(paths, d.scale)
	if err != nil {
		return err
	}
	return d.Clipper64.AddOpenSubject(scaled)
}

// AddClip adds closed clip paths
func (d *ClipperD) AddClip(paths PathsD) error {
	scaled, err := scalePathsDTo64(paths, d.scale)
	if err != nil {
		return err
	}
	return d.Clipper64.AddClip(scaled)
}

// hookZCallback bridges the integer engine's callback into the caller's
// floating-point domain for the duration of an execute
func (d *ClipperD) hookZCallback() {
	if d.ZCallbackD == nil {
		d.ZCallback = nil
		return
	}
	d.ZCallback = func(bot1, top1, bot2, top2 Point64, ip *Point64) {
		ipD := PointD{X: float64(ip.X) * d.invScale, Y: float64(ip.Y) * d.invScale, Z: ip.Z}
		d.ZCallbackD(
			PointD{X: float64(bot1.X) * d.invScale, Y: float64(bot1.Y) * d.invScale, Z: bot1.Z},
			PointD{X: float64(top1.X) * d.invScale, Y: float64(top1.Y) * d.invScale, Z: top1.Z},
			PointD{X: float64(bot2.X) * d.invScale, Y: float64(bot2.Y) * d.invScale, Z: bot2.Z},
			PointD{X: float64(top2.X) * d.invScale, Y: float64(top2.Y) * d.invScale, Z: top2.Z},
			&ipD)
		ip.Z = ipD.Z
	}
}

// Execute runs the boolean operation and fills solutionClosed (and, when
// non-nil, solutionOpen) with floating-point paths
func (d *ClipperD) Execute(clipType ClipType, fillRule FillRule, solutionClosed *PathsD, solutionOpen *PathsD) error {
	d.hookZCallback()
	var closed64, open64 Paths64
	err := d.Clipper64.Execute(clipType, fillRule, &closed64, &open64)
	if err != nil {
		return err
	}
	*solutionClosed = scalePaths64ToD(closed64, d.invScale)
	if solutionOpen != nil {
		*solutionOpen = scalePaths64ToD(open64, d.invScale)
	}
	return nil
}

// ExecuteTree runs the boolean operation and fills polytree with the closed
// solution hierarchy in the caller's floating-point domain
func (d *ClipperD) ExecuteTree(clipType ClipType, fillRule FillRule, polytree *PolyTreeD, openPaths *PathsD) error {
	d.hookZCallback()
	tree64 := NewPolyTree64()
	var open64 Paths64
	err := d.Clipper64.ExecuteTree(clipType, fillRule, tree64, &open64)
	if err != nil {
		return err
	}
	polytree.Clear()
	scalePolyTree64ToD(tree64, polytree, d.invScale)
	if openPaths != nil {
		*openPaths = scalePaths64ToD(open64, d.invScale)
	}
	return nil
}
