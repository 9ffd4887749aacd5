// Command primdump resolves primitive instances and prints their polygons,
// ports and bounds.
//
// Usage:
//
//	primdump -job job.yaml
//	primdump -describe schematic > schematic.xml
//	primdump -check schematic.xml
//
// A job file names a technology and lists instances and arcs:
//
//	technology: schematic
//	instances:
//	  - node: And
//	    at: [10, 0]
//	    connections:
//	      - {port: a, at: [6, 2], arc: wire}
//	    select:
//	      - {port: a, target: [6, -2]}
//	arcs:
//	  - {arc: wire, tail: [0, 0], head: [6, 2]}
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"honnef.co/go/prim"
	"honnef.co/go/prim/techxml"
)

func main() {
	var (
		jobFile  = flag.String("job", "", "YAML job file to resolve")
		describe = flag.String("describe", "", "write the XML description of a built-in technology")
		check    = flag.String("check", "", "check an XML description against the built-in technology it names")
		verbose  = flag.Bool("v", false, "log diagnostics")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	prim.SetLogger(logger)

	reg := prim.NewBuiltinRegistry()
	var err error
	switch {
	case *describe != "":
		err = runDescribe(os.Stdout, reg, *describe)
	case *check != "":
		err = runCheck(reg, *check)
	case *jobFile != "":
		err = runJob(os.Stdout, reg, *jobFile)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		logger.Error("primdump failed", "error", err)
		os.Exit(1)
	}
}

func runDescribe(w io.Writer, reg *prim.Registry, name string) error {
	t, err := reg.Lookup(name)
	if err != nil {
		return err
	}
	return techxml.Encode(w, techxml.Describe(t))
}

func runCheck(reg *prim.Registry, path string) (err error) {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	d, err := techxml.Decode(f)
	if err != nil {
		return err
	}
	t, err := reg.Lookup(d.Name)
	if err != nil {
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			var mm *techxml.MismatchError
			if e, ok := r.(error); ok && errors.As(e, &mm) {
				err = mm
				return
			}
			panic(r)
		}
	}()
	techxml.MustMatchTechnology(t, d)
	prim.Logger().Info("description matches", "technology", t.Name, "nodes", len(d.Nodes))
	return nil
}

func runJob(w io.Writer, reg *prim.Registry, path string) error {
	job, err := loadJob(path)
	if err != nil {
		return err
	}
	t, err := reg.Lookup(job.Technology)
	if err != nil {
		return err
	}
	for i, ij := range job.Instances {
		ni, err := ij.instance(t)
		if err != nil {
			return fmt.Errorf("instance %d: %w", i, err)
		}
		if err := dumpInstance(w, &ni, ij.Select); err != nil {
			return fmt.Errorf("instance %d: %w", i, err)
		}
	}
	for i, aj := range job.Arcs {
		ai, err := aj.arc(t)
		if err != nil {
			return fmt.Errorf("arc %d: %w", i, err)
		}
		fmt.Fprintf(w, "arc %v %v -> %v angle %d bounds %v\n", ai.Proto, ai.Tail, ai.Head, ai.Angle, fmtRect(prim.ArcBounds(&ai)))
		for _, p := range prim.ArcShapeOf(&ai) {
			dumpPoly(w, p)
		}
	}
	return nil
}

func dumpInstance(w io.Writer, ni *prim.Instance, sel []SelectJob) error {
	fmt.Fprintf(w, "node %v %v %v at %v function %v bounds %v\n",
		ni.Proto, ni.Size, ni.Orient, ni.Anchor, ni.Function(), fmtRect(prim.Bounds(ni)))
	for _, p := range prim.ShapeOf(ni) {
		dumpPoly(w, p)
	}
	for _, pp := range ni.Proto.Ports {
		fmt.Fprintf(w, "  port %s %v center %v\n", pp.Name, pp.Mode, prim.PortCenter(ni, pp))
	}
	for _, s := range sel {
		pp := ni.Proto.Port(s.Port)
		if pp == nil {
			return fmt.Errorf("%v has no port %q", ni.Proto, s.Port)
		}
		target, err := s.Target.point()
		if err != nil {
			return err
		}
		p, ok := prim.SelectionPortShape(ni, pp, &target)
		fmt.Fprintf(w, "  select %s near %v: %v ok=%t\n", pp.Name, target, p.Points, ok)
	}
	return nil
}

func dumpPoly(w io.Writer, p prim.Poly) {
	layer := "-"
	if p.Layer != nil {
		layer = p.Layer.Name
	}
	fmt.Fprintf(w, "  %s %v", layer, p.Style)
	if p.Text != "" {
		fmt.Fprintf(w, " %q", p.Text)
	}
	if p.Port != nil {
		fmt.Fprintf(w, " port=%s", p.Port.Name)
	}
	fmt.Fprintf(w, " %v\n", p.Points)
}

func fmtRect(r prim.Rect) string {
	return fmt.Sprintf("(%g,%g)-(%g,%g)", r.X0, r.Y0, r.X1, r.Y1)
}
