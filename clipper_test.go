package polyclip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pathPointSet converts a path to a set of distinct X/Y pairs, ignoring
// rotation and direction
func pathPointSet(path Path64) map[Point64]bool {
	set := make(map[Point64]bool, len(path))
	for _, pt := range path {
		set[Point64{X: pt.X, Y: pt.Y}] = true
	}
	return set
}

// requireSamePoints asserts that got contains exactly the points of want,
// regardless of rotation and direction
func requireSamePoints(t *testing.T, want, got Path64) {
	t.Helper()
	require.Equal(t, pathPointSet(want), pathPointSet(got))
}

// requireValidRing asserts the closed-ring output guarantees: at least three
// distinct points and no adjacent duplicates
func requireValidRing(t *testing.T, path Path64) {
	t.Helper()
	require.GreaterOrEqual(t, len(path), 3)
	for i, pt := range path {
		prev := path[(i+len(path)-1)%len(path)]
		require.False(t, ptsEqual(prev, pt), "adjacent duplicate at %d: %v", i, pt)
	}
}

func totalAbsArea(paths Paths64) float64 {
	total := 0.0
	for _, path := range paths {
		a := Area64(path)
		if a < 0 {
			a = -a
		}
		total += a
	}
	return total
}

func TestIntersect64UnitSquares(t *testing.T) {
	subject := Paths64{MakePath64(0, 0, 10, 0, 10, 10, 0, 10)}
	clip := Paths64{MakePath64(5, 5, 15, 5, 15, 15, 5, 15)}

	result, err := Intersect64(subject, clip, NonZero)
	require.NoError(t, err)
	require.Len(t, result, 1)

	requireValidRing(t, result[0])
	requireSamePoints(t, MakePath64(5, 5, 10, 5, 10, 10, 5, 10), result[0])
	assert.InDelta(t, 25.0, Area64(result[0]), 0.001)
}

func TestUnion64TouchingSquares(t *testing.T) {
	subject := Paths64{MakePath64(0, 0, 10, 0, 10, 10, 0, 10)}
	clip := Paths64{MakePath64(10, 0, 20, 0, 20, 10, 10, 10)}

	c := NewClipper64()
	c.PreserveCollinear = false
	require.NoError(t, c.AddSubject(subject))
	require.NoError(t, c.AddClip(clip))

	var solution Paths64
	require.NoError(t, c.Execute(Union, NonZero, &solution, nil))
	require.Len(t, solution, 1)

	requireValidRing(t, solution[0])
	assert.InDelta(t, 200.0, Area64(solution[0]), 0.001)
	// the shared edge's endpoints are collinear on the merged boundary and
	// must have been removed
	requireSamePoints(t, MakePath64(0, 0, 20, 0, 20, 10, 0, 10), solution[0])
}

func TestDifference64WithHole(t *testing.T) {
	subject := Paths64{MakePath64(0, 0, 20, 0, 20, 20, 0, 20)}
	clip := Paths64{MakePath64(5, 5, 15, 5, 15, 15, 5, 15)}

	result, err := Difference64(subject, clip, EvenOdd)
	require.NoError(t, err)
	require.Len(t, result, 2)

	var outer, hole Path64
	for _, path := range result {
		requireValidRing(t, path)
		if Area64(path) > 0 {
			outer = path
		} else {
			hole = path
		}
	}
	require.NotNil(t, outer)
	require.NotNil(t, hole)
	assert.InDelta(t, 400.0, Area64(outer), 0.001)
	assert.InDelta(t, -100.0, Area64(hole), 0.001)
}

func TestXor64OverlappingSquares(t *testing.T) {
	subject := Paths64{MakePath64(0, 0, 10, 0, 10, 10, 0, 10)}
	clip := Paths64{MakePath64(5, 5, 15, 5, 15, 15, 5, 15)}

	result, err := Xor64(subject, clip, EvenOdd)
	require.NoError(t, err)
	require.Len(t, result, 2)
	for _, path := range result {
		requireValidRing(t, path)
	}
	assert.InDelta(t, 150.0, totalAbsArea(result), 0.001)
}

func TestIntersect64OpenPolyline(t *testing.T) {
	clip := Paths64{MakePath64(0, 0, 10, 0, 10, 10, 0, 10)}
	openSubject := Paths64{MakePath64(-5, 5, 15, 5)}

	solution, solutionOpen, err := BooleanOp64(Intersection, NonZero, nil, openSubject, clip)
	require.NoError(t, err)
	assert.Empty(t, solution)
	require.Len(t, solutionOpen, 1)
	require.Len(t, solutionOpen[0], 2)
	requireSamePoints(t, MakePath64(0, 5, 10, 5), solutionOpen[0])
}

func TestUnion64BowtieEvenOdd(t *testing.T) {
	bowtie := Paths64{MakePath64(0, 0, 10, 10, 10, 0, 0, 10)}

	result, err := Union64(bowtie, nil, EvenOdd)
	require.NoError(t, err)
	require.Len(t, result, 2)
	for _, path := range result {
		requireValidRing(t, path)
	}
	assert.InDelta(t, 50.0, totalAbsArea(result), 0.001)
}

func TestUnion64BowtieNonZero(t *testing.T) {
	bowtie := Paths64{MakePath64(0, 0, 10, 10, 10, 0, 0, 10)}

	// with NonZero winding the two lobes carry opposite winding signs, so
	// the result depends on the rule but must at least be geometrically valid
	result, err := Union64(bowtie, nil, NonZero)
	require.NoError(t, err)
	for _, path := range result {
		requireValidRing(t, path)
	}
}

func TestUnion64SelfUnionNormalizes(t *testing.T) {
	bowtie := Paths64{MakePath64(0, 0, 10, 10, 10, 0, 0, 10)}

	result, err := Union64(bowtie, bowtie, EvenOdd)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.InDelta(t, 50.0, totalAbsArea(result), 0.001)
}

func TestBooleanOp64EmptyClip(t *testing.T) {
	subject := Paths64{MakePath64(0, 0, 10, 0, 10, 10, 0, 10)}

	intersection, err := Intersect64(subject, nil, NonZero)
	require.NoError(t, err)
	assert.Empty(t, intersection)

	union, err := Union64(subject, nil, NonZero)
	require.NoError(t, err)
	require.Len(t, union, 1)
	assert.InDelta(t, 100.0, Area64(union[0]), 0.001)

	difference, err := Difference64(subject, nil, NonZero)
	require.NoError(t, err)
	require.Len(t, difference, 1)
	assert.InDelta(t, 100.0, Area64(difference[0]), 0.001)
}

func TestUnion64Idempotence(t *testing.T) {
	subject := Paths64{MakePath64(0, 0, 10, 0, 10, 10, 0, 10)}
	clip := Paths64{MakePath64(5, 5, 15, 5, 15, 15, 5, 15)}

	once, err := Union64(subject, clip, NonZero)
	require.NoError(t, err)

	twice, err := Union64(once, nil, NonZero)
	require.NoError(t, err)

	require.Len(t, twice, len(once))
	assert.InDelta(t, totalAbsArea(once), totalAbsArea(twice), 0.001)
}

func TestBooleanOp64DisjointPolygons(t *testing.T) {
	a := Paths64{MakePath64(0, 0, 10, 0, 10, 10, 0, 10)}
	b := Paths64{MakePath64(20, 0, 30, 0, 30, 10, 20, 10)}

	intersection, err := Intersect64(a, b, NonZero)
	require.NoError(t, err)
	assert.Empty(t, intersection)

	union, err := Union64(a, b, NonZero)
	require.NoError(t, err)
	require.Len(t, union, 2)
	assert.InDelta(t, 200.0, totalAbsArea(union), 0.001)

	xor, err := Xor64(a, b, NonZero)
	require.NoError(t, err)
	require.Len(t, xor, 2)
	assert.InDelta(t, 200.0, totalAbsArea(xor), 0.001)
}

func TestExecuteDeterminism(t *testing.T) {
	subject := Paths64{
		MakePath64(0, 0, 100, 0, 100, 100, 0, 100),
		MakePath64(20, 20, 80, 20, 80, 80, 20, 80),
	}
	clip := Paths64{MakePath64(50, -10, 110, 50, 50, 110, -10, 50)}

	first, _, err := BooleanOp64(Xor, EvenOdd, subject, nil, clip)
	require.NoError(t, err)
	second, _, err := BooleanOp64(Xor, EvenOdd, subject, nil, clip)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestExecuteOrientation(t *testing.T) {
	subject := Paths64{MakePath64(0, 0, 20, 0, 20, 20, 0, 20)}
	clip := Paths64{MakePath64(5, 5, 15, 5, 15, 15, 5, 15)}

	c := NewClipper64()
	require.NoError(t, c.AddSubject(subject))
	require.NoError(t, c.AddClip(clip))

	var solution Paths64
	require.NoError(t, c.Execute(Difference, EvenOdd, &solution, nil))
	require.Len(t, solution, 2)

	// ReverseSolution flips every ring's orientation
	c.Clear()
	require.NoError(t, c.AddSubject(subject))
	require.NoError(t, c.AddClip(clip))
	c.ReverseSolution = true

	var reversed Paths64
	require.NoError(t, c.Execute(Difference, EvenOdd, &reversed, nil))
	require.Len(t, reversed, 2)

	var outerCount, holeCount int
	for _, path := range reversed {
		if Area64(path) < 0 {
			outerCount++ // area 400 ring, now negative
		} else {
			holeCount++
		}
	}
	assert.Equal(t, 1, outerCount)
	assert.Equal(t, 1, holeCount)
}

func TestPreserveCollinearPolicy(t *testing.T) {
	// a subject with a collinear midpoint on its bottom edge
	subject := Paths64{MakePath64(0, 0, 5, 0, 10, 0, 10, 10, 0, 10)}

	c := NewClipper64()
	c.PreserveCollinear = false
	require.NoError(t, c.AddSubject(subject))

	var solution Paths64
	require.NoError(t, c.Execute(Union, NonZero, &solution, nil))
	require.Len(t, solution, 1)

	path := solution[0]
	for i := range path {
		prev := path[(i+len(path)-1)%len(path)]
		next := path[(i+1)%len(path)]
		assert.False(t, isCollinear(prev, path[i], next),
			"collinear vertex %v survived cleanup", path[i])
	}
}

func TestClipper64ReuseAfterClear(t *testing.T) {
	c := NewClipper64()
	require.NoError(t, c.AddSubject(Paths64{MakePath64(0, 0, 10, 0, 10, 10, 0, 10)}))

	var solution Paths64
	require.NoError(t, c.Execute(Union, NonZero, &solution, nil))
	require.Len(t, solution, 1)

	c.Clear()
	require.NoError(t, c.AddSubject(Paths64{MakePath64(0, 0, 4, 0, 4, 4, 0, 4)}))
	require.NoError(t, c.Execute(Union, NonZero, &solution, nil))
	require.Len(t, solution, 1)
	assert.InDelta(t, 16.0, Area64(solution[0]), 0.001)
}

func TestAddSubjectCoordinateRange(t *testing.T) {
	c := NewClipper64()
	huge := Paths64{MakePath64(0, 0, MaxSafeCoordinate+1, 0, 0, 10)}
	assert.ErrorIs(t, c.AddSubject(huge), ErrCoordinateRange)
}

func TestZCallbackOnSynthesizedIntersections(t *testing.T) {
	subject := Paths64{MakePath64(0, 0, 10, 0, 10, 10, 0, 10)}
	clip := Paths64{MakePath64(5, 5, 15, 5, 15, 15, 5, 15)}

	c := NewClipper64()
	var calls []Point64
	c.ZCallback = func(bot1, top1, bot2, top2 Point64, ip *Point64) {
		ip.Z = 42
		calls = append(calls, *ip)
	}
	require.NoError(t, c.AddSubject(subject))
	require.NoError(t, c.AddClip(clip))

	var solution Paths64
	require.NoError(t, c.Execute(Intersection, NonZero, &solution, nil))
	require.Len(t, solution, 1)

	// the two synthesized crossings are (10,5) and (5,10)
	require.Len(t, calls, 2)
	crossings := pathPointSet(Path64(calls))
	assert.True(t, crossings[Point64{X: 10, Y: 5}])
	assert.True(t, crossings[Point64{X: 5, Y: 10}])

	for _, pt := range solution[0] {
		if (pt.X == 10 && pt.Y == 5) || (pt.X == 5 && pt.Y == 10) {
			assert.EqualValues(t, 42, pt.Z)
		}
	}
}

func TestMakePath64(t *testing.T) {
	path := MakePath64(1, 2, 3, 4, 5, 6)
	require.Equal(t, Path64{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}}, path)
	assert.Len(t, MakePath64(1, 2, 3), 1) // odd trailing value ignored
}
