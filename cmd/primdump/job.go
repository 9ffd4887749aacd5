package main

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"honnef.co/go/prim"
)

// Job lists the instances and arcs to resolve against one technology.
type Job struct {
	Technology string        `yaml:"technology"`
	Instances  []InstanceJob `yaml:"instances"`
	Arcs       []ArcJob      `yaml:"arcs"`
}

// XY is a point written as a two-element sequence.
type XY []float64

func (xy XY) point() (prim.Point, error) {
	switch len(xy) {
	case 0:
		return prim.Point{}, nil
	case 2:
		return prim.Pt(xy[0], xy[1]), nil
	default:
		return prim.Point{}, fmt.Errorf("point %v has %d coordinates, want 2", []float64(xy), len(xy))
	}
}

type ConnectionJob struct {
	Port string `yaml:"port"`
	At   XY     `yaml:"at"`
	Arc  string `yaml:"arc"`
}

type SelectJob struct {
	Port   string `yaml:"port"`
	Target XY     `yaml:"target"`
}

type InstanceJob struct {
	Node   string  `yaml:"node"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Orient string  `yaml:"orient"`
	At     XY      `yaml:"at"`
	// Function picks the alternative of a multi-function node by name.
	Function string `yaml:"function"`
	// Angles are the start and sweep of a partial circle, in degrees.
	Angles      []float64       `yaml:"angles"`
	Outline     []XY            `yaml:"outline"`
	Text        string          `yaml:"text"`
	Color       int             `yaml:"color"`
	Pattern     []int           `yaml:"pattern"`
	Connections []ConnectionJob `yaml:"connections"`
	Select      []SelectJob     `yaml:"select"`
}

type ArcJob struct {
	Arc       string  `yaml:"arc"`
	Tail      XY      `yaml:"tail"`
	Head      XY      `yaml:"head"`
	Width     float64 `yaml:"width"`
	HeadArrow *bool   `yaml:"headArrow"`
	TailArrow bool    `yaml:"tailArrow"`
	BodyArrow bool    `yaml:"bodyArrow"`
}

func loadJob(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var job Job
	if err := yaml.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if job.Technology == "" {
		return nil, fmt.Errorf("%s: technology is required", path)
	}
	return &job, nil
}

// instance builds the instance described by ij.
func (ij InstanceJob) instance(t *prim.Technology) (prim.Instance, error) {
	np := t.Node(ij.Node)
	if np == nil {
		return prim.Instance{}, fmt.Errorf("%s has no node %q", t.Name, ij.Node)
	}
	ni := np.NewInstance()
	if ij.Width != 0 || ij.Height != 0 {
		ni = ni.WithSize(prim.Sz(ij.Width, ij.Height))
	}
	o, err := prim.ParseOrientation(ij.Orient)
	if err != nil {
		return prim.Instance{}, err
	}
	at, err := ij.At.point()
	if err != nil {
		return prim.Instance{}, err
	}
	ni = ni.WithOrient(o).WithAnchor(at)

	if ij.Function != "" {
		code, err := variantCode(np, ij.Function)
		if err != nil {
			return prim.Instance{}, err
		}
		ni = ni.WithVariant(code)
	}
	switch len(ij.Angles) {
	case 0:
	case 2:
		ni = ni.WithAngles(ij.Angles[0]*math.Pi/180, ij.Angles[1]*math.Pi/180)
	default:
		return prim.Instance{}, errors.New("angles must be start and sweep")
	}
	if len(ij.Outline) > 0 {
		pts := make([]prim.Point, len(ij.Outline))
		for i, xy := range ij.Outline {
			if len(xy) == 0 {
				pts[i] = prim.OutlineBreak
				continue
			}
			if pts[i], err = xy.point(); err != nil {
				return prim.Instance{}, err
			}
		}
		ni = ni.WithOutline(pts)
	}
	if ij.Text != "" {
		ni = ni.WithText(ij.Text)
	}
	if ij.Color != 0 || ij.Pattern != nil {
		ni = ni.WithGraphics(ij.Color, ij.Pattern)
	}
	for _, cj := range ij.Connections {
		pp := np.Port(cj.Port)
		if pp == nil {
			return prim.Instance{}, fmt.Errorf("%s has no port %q", np, cj.Port)
		}
		end, err := cj.At.point()
		if err != nil {
			return prim.Instance{}, err
		}
		ap := t.Arc(cj.Arc)
		if cj.Arc != "" {
			if ap == nil {
				return prim.Instance{}, fmt.Errorf("%s has no arc %q", t.Name, cj.Arc)
			}
			if !pp.Connects(ap) {
				return prim.Instance{}, fmt.Errorf("arc %s cannot connect to %s", ap.Name, pp)
			}
		}
		ni = ni.WithConnection(prim.Connection{Port: pp, End: end, Arc: ap})
	}
	return ni, nil
}

func variantCode(np *prim.PrimitiveNode, name string) (int, error) {
	fn, err := prim.ParseFunction(name)
	if err != nil {
		return 0, err
	}
	if np.Family == nil {
		return 0, fmt.Errorf("%s has no alternatives", np)
	}
	for _, v := range np.Family.Alternatives {
		if v.Function == fn {
			return v.Code, nil
		}
	}
	return 0, fmt.Errorf("%s has no alternative with function %s", np, fn)
}

func (aj ArcJob) arc(t *prim.Technology) (prim.ArcInst, error) {
	ap := t.Arc(aj.Arc)
	if ap == nil {
		return prim.ArcInst{}, fmt.Errorf("%s has no arc %q", t.Name, aj.Arc)
	}
	tail, err := aj.Tail.point()
	if err != nil {
		return prim.ArcInst{}, err
	}
	head, err := aj.Head.point()
	if err != nil {
		return prim.ArcInst{}, err
	}
	ai := prim.NewArcInst(ap, tail, head)
	if aj.Width != 0 {
		ai.Width = aj.Width
	}
	if aj.HeadArrow != nil {
		ai.HeadArrow = *aj.HeadArrow
	}
	ai.TailArrow = aj.TailArrow
	ai.BodyArrow = aj.BodyArrow
	return ai, nil
}
