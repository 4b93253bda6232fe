package polyclip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinkowskiSum64OpenSegment(t *testing.T) {
	// sweeping a 2x2 square (centered on the origin) along a horizontal
	// segment of length 10 yields a 12x2 rectangle
	pattern := MakePath64(-1, -1, 1, -1, 1, 1, -1, 1)
	path := MakePath64(0, 0, 10, 0)

	result, err := MinkowskiSum64(pattern, path, false)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.InDelta(t, 24.0, Area64(result[0]), 0.001)

	bounds := Bounds64(result[0])
	assert.Equal(t, Rect64{Left: -1, Top: -1, Right: 11, Bottom: 1}, bounds)
}

func TestMinkowskiSum64ClosedSquare(t *testing.T) {
	// sweeping a 2x2 square around a closed 10x10 outline gives a band whose
	// outer edge spans 12x12 (around an 8x8 hole)
	pattern := MakePath64(-1, -1, 1, -1, 1, 1, -1, 1)
	path := MakePath64(0, 0, 10, 0, 10, 10, 0, 10)

	result, err := MinkowskiSum64(pattern, path, true)
	require.NoError(t, err)
	require.NotEmpty(t, result)

	bounds := BoundsPaths64(result)
	assert.Equal(t, Rect64{Left: -1, Top: -1, Right: 11, Bottom: 11}, bounds)
}

func TestMinkowskiEmptyInputs(t *testing.T) {
	_, err := MinkowskiSum64(nil, MakePath64(0, 0, 1, 1), false)
	assert.ErrorIs(t, err, ErrEmptyPath)
	_, err = MinkowskiDiff64(MakePath64(0, 0, 1, 1), nil, false)
	assert.ErrorIs(t, err, ErrEmptyPath)
}

func TestMinkowskiSumD(t *testing.T) {
	pattern := MakePathD(-0.5, -0.5, 0.5, -0.5, 0.5, 0.5, -0.5, 0.5)
	path := MakePathD(0, 0, 10, 0)

	result, err := MinkowskiSumD(pattern, path, false, 2)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.InDelta(t, 11.0, AreaD(result[0]), 0.01)
}

func TestEllipse64(t *testing.T) {
	circle := Ellipse64(Point64{X: 100, Y: 100}, 50, 0, 64)
	require.Len(t, circle, 64)
	// vertices are rounded to the integer grid, so the area lands close to
	// pi*r^2 (about 7854) but may fall on either side of it (7884 here)
	a := Area64(circle)
	assert.Greater(t, a, 7700.0)
	assert.Less(t, a, 7900.0)

	assert.Empty(t, Ellipse64(Point64{}, -1, 0, 8))
}

func TestStarPolygon64(t *testing.T) {
	star := StarPolygon64(Point64{}, 100, 40, 5)
	require.Len(t, star, 10)
	assert.NotZero(t, Area64(star))
	assert.Empty(t, StarPolygon64(Point64{}, 100, 40, 2))
}
