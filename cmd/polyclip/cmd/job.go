package cmd

import (
	"fmt"
	"strings"

	"github.com/go-polyclip/polyclip"
)

// Job describes a clipping operation loaded from a YAML file. Paths are
// lists of [x, y] coordinate pairs.
type Job struct {
	ClipType          string        `yaml:"cliptype"`
	FillRule          string        `yaml:"fillrule"`
	Precision         int           `yaml:"precision"`
	PreserveCollinear *bool         `yaml:"preservecollinear,omitempty"`
	ReverseSolution   bool          `yaml:"reversesolution,omitempty"`
	Subjects          [][][]float64 `yaml:"subjects"`
	OpenSubjects      [][][]float64 `yaml:"opensubjects,omitempty"`
	Clips             [][][]float64 `yaml:"clips"`
}

// Result is the YAML-serializable outcome of a job
type Result struct {
	Closed [][][]float64 `yaml:"closed"`
	Open   [][][]float64 `yaml:"open,omitempty"`
}

func parseClipType(s string) (polyclip.ClipType, error) {
	switch strings.ToLower(s) {
	case "intersection", "intersect":
		return polyclip.Intersection, nil
	case "union":
		return polyclip.Union, nil
	case "difference", "diff":
		return polyclip.Difference, nil
	case "xor":
		return polyclip.Xor, nil
	default:
		return 0, fmt.Errorf("unknown clip type %q", s)
	}
}

func parseFillRule(s string) (polyclip.FillRule, error) {
	switch strings.ToLower(s) {
	case "evenodd", "": // evenodd is the default
		return polyclip.EvenOdd, nil
	case "nonzero":
		return polyclip.NonZero, nil
	case "positive":
		return polyclip.Positive, nil
	case "negative":
		return polyclip.Negative, nil
	default:
		return 0, fmt.Errorf("unknown fill rule %q", s)
	}
}

func toPathsD(raw [][][]float64) (polyclip.PathsD, error) {
	paths := make(polyclip.PathsD, 0, len(raw))
	for i, rawPath := range raw {
		path := make(polyclip.PathD, 0, len(rawPath))
		for j, pt := range rawPath {
			if len(pt) != 2 {
				return nil, fmt.Errorf("path %d point %d: want [x, y], got %d values", i, j, len(pt))
			}
			path = append(path, polyclip.PointD{X: pt[0], Y: pt[1]})
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func fromPathsD(paths polyclip.PathsD) [][][]float64 {
	raw := make([][][]float64, 0, len(paths))
	for _, path := range paths {
		rawPath := make([][]float64, 0, len(path))
		for _, pt := range path {
			rawPath = append(rawPath, []float64{pt.X, pt.Y})
		}
		raw = append(raw, rawPath)
	}
	return raw
}

// Run executes the job and returns its result
func (j *Job) Run() (*Result, error) {
	clipType, err := parseClipType(j.ClipType)
	if err != nil {
		return nil, err
	}
	fillRule, err := parseFillRule(j.FillRule)
	if err != nil {
		return nil, err
	}
	subjects, err := toPathsD(j.Subjects)
	if err != nil {
		return nil, err
	}
	openSubjects, err := toPathsD(j.OpenSubjects)
	if err != nil {
		return nil, err
	}
	clips, err := toPathsD(j.Clips)
	if err != nil {
		return nil, err
	}

	d, err := polyclip.NewClipperD(j.Precision)
	if err != nil {
		return nil, err
	}
	if j.PreserveCollinear != nil {
		d.PreserveCollinear = *j.PreserveCollinear
	}
	d.ReverseSolution = j.ReverseSolution

	if err := d.AddSubject(subjects); err != nil {
		return nil, err
	}
	if len(openSubjects) > 0 {
		if err := d.AddOpenSubject(openSubjects); err != nil {
			return nil, err
		}
	}
	if err := d.AddClip(clips); err != nil {
		return nil, err
	}

	var closed, open polyclip.PathsD
	if err := d.Execute(clipType, fillRule, &closed, &open); err != nil {
		return nil, err
	}
	return &Result{Closed: fromPathsD(closed), Open: fromPathsD(open)}, nil
}
