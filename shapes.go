package polyclip

import "math"

// Ellipse64 generates a closed elliptical path (a circle when the radii are
// equal). With steps <= 2 the point count is derived from the mean radius.
func Ellipse64(center Point64, radiusX, radiusY float64, steps int) Path64 {
	if radiusX <= 0 {
		return Path64{}
	}
	if radiusY <= 0 {
		radiusY = radiusX
	}
	if steps <= 2 {
		steps = int(math.Ceil(math.Pi * math.Sqrt((radiusX+radiusY)/2)))
	}

	si := math.Sin(2 * math.Pi / float64(steps))
	co := math.Cos(2 * math.Pi / float64(steps))
	dx, dy := co, si
	result := make(Path64, 0, steps)
	result = append(result, Point64{X: center.X + int64(math.RoundToEven(radiusX)), Y: center.Y})
	for i := 1; i < steps; i++ {
		result = append(result, Point64{
			X: center.X + int64(math.RoundToEven(radiusX*dx)),
			Y: center.Y + int64(math.RoundToEven(radiusY*dy)),
		})
		dx, dy = dx*co-dy*si, dy*co+dx*si
	}
	return result
}

// StarPolygon64 generates a star-shaped polygon with alternating outer and
// inner vertices. Returns an empty path for invalid parameters.
func StarPolygon64(center Point64, outerRadius, innerRadius float64, points int) Path64 {
	if outerRadius <= 0 || innerRadius <= 0 || points < 3 {
		return Path64{}
	}
	result := make(Path64, 0, 2*points)
	for i := 0; i < 2*points; i++ {
		r := outerRadius
		if i&1 == 1 {
			r = innerRadius
		}
		angle := math.Pi * float64(i) / float64(points)
		result = append(result, Point64{
			X: center.X + int64(math.RoundToEven(r*math.Sin(angle))),
			Y: center.Y - int64(math.RoundToEven(r*math.Cos(angle))),
		})
	}
	return result
}
