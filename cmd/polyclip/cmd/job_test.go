package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v2"
)

const sampleJob = `
cliptype: intersection
fillrule: nonzero
precision: 0
subjects:
  - [[0, 0], [10, 0], [10, 10], [0, 10]]
clips:
  - [[5, 5], [15, 5], [15, 15], [5, 15]]
`

func TestJobRoundTrip(t *testing.T) {
	var job Job
	require.NoError(t, yaml.Unmarshal([]byte(sampleJob), &job))

	result, err := job.Run()
	require.NoError(t, err)
	require.Len(t, result.Closed, 1)
	require.Len(t, result.Closed[0], 4)
	assert.Empty(t, result.Open)

	// result marshals back to YAML cleanly
	out, err := yaml.Marshal(result)
	require.NoError(t, err)
	var back Result
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, result.Closed, back.Closed)
}

func TestJobParseErrors(t *testing.T) {
	job := Job{ClipType: "slice", FillRule: "nonzero"}
	_, err := job.Run()
	assert.Error(t, err)

	job = Job{ClipType: "union", FillRule: "bogus"}
	_, err = job.Run()
	assert.Error(t, err)

	job = Job{
		ClipType: "union",
		FillRule: "nonzero",
		Subjects: [][][]float64{{{1, 2, 3}}},
	}
	_, err = job.Run()
	assert.Error(t, err)
}

func TestParseClipType(t *testing.T) {
	for name, want := range map[string]string{
		"union": "union", "Intersection": "intersection",
		"DIFF": "difference", "xor": "xor",
	} {
		_, err := parseClipType(name)
		assert.NoError(t, err, want)
	}
}

func TestParseFillRuleDefault(t *testing.T) {
	fr, err := parseFillRule("")
	require.NoError(t, err)
	assert.EqualValues(t, 0, fr) // EvenOdd
}
