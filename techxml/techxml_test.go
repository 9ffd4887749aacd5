package techxml

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"honnef.co/go/prim"
)

func roundTrip(t *testing.T, tech *prim.Technology) *Description {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, Describe(tech)))
	require.True(t, strings.HasPrefix(buf.String(), "<?xml"))
	d, err := Decode(&buf)
	require.NoError(t, err)
	return d
}

func TestRoundTrip(t *testing.T) {
	for _, tech := range []*prim.Technology{prim.NewSchematics(), prim.NewArtwork()} {
		d := roundTrip(t, tech)
		require.Equal(t, tech.Name, d.Name)
		require.Equal(t, Describe(tech).Layers, d.Layers)
		require.Equal(t, Describe(tech).Arcs, d.Arcs)
		require.NotPanics(t, func() { MustMatchTechnology(tech, d) })
	}
}

func TestMaintainedDescriptions(t *testing.T) {
	for _, tech := range []*prim.Technology{prim.NewSchematics(), prim.NewArtwork()} {
		t.Run(tech.Name, func(t *testing.T) {
			f, err := os.Open(filepath.Join("testdata", tech.Name+".xml"))
			require.NoError(t, err)
			defer f.Close()
			d, err := Decode(f)
			require.NoError(t, err)

			require.Equal(t, tech.Name, d.Name)
			require.Equal(t, tech.Description, d.Description)
			require.Equal(t, Describe(tech).Layers, d.Layers)
			require.Equal(t, Describe(tech).Arcs, d.Arcs)
			var n int
			for np := range tech.Nodes() {
				require.NotNil(t, d.Node(np.Name), "%s is not described", np.Name)
				n++
			}
			require.Len(t, d.Nodes, n)
			require.NotPanics(t, func() { MustMatchTechnology(tech, d) })
		})
	}
}

func TestDescribeVariants(t *testing.T) {
	np := prim.NewSchematics().Node(prim.TransistorName)
	n := DescribeNode(np)
	require.Len(t, n.Variants, len(np.Family.Alternatives))
	require.Len(t, n.Templates, len(np.Family.Merged()))
	require.Len(t, n.Base, len(np.Family.Base))
	for i, v := range n.Variants {
		require.Len(t, v.Uses, len(np.Family.Alternatives[i].Templates), "variant %d", i)
	}
	require.Equal(t, "TRANMOSD", n.Variants[prim.TransistorCode(prim.KindDepletion, true)].Function)
}

func TestMismatch(t *testing.T) {
	tech := prim.NewSchematics()

	mismatch := func(mutate func(d *Description)) *MismatchError {
		t.Helper()
		d := roundTrip(t, tech)
		mutate(d)
		var got *MismatchError
		func() {
			defer func() {
				err, ok := recover().(error)
				require.True(t, ok, "no mismatch")
				require.True(t, errors.As(err, &got))
			}()
			MustMatchTechnology(tech, d)
		}()
		return got
	}

	e := mismatch(func(d *Description) {
		d.Node(prim.ResistorName).Templates[0].Points[2].X.Offset += 0.25
	})
	require.Equal(t, prim.ResistorName, e.Node)
	require.Equal(t, "templates[0].points[2].x.offset", e.Field)
	require.Equal(t, -1.25, e.Want)
	require.Equal(t, -1.5, e.Got)

	e = mismatch(func(d *Description) {
		d.Node(prim.Transistor4Name).Variants[3].Function = "TRA4PMOS"
	})
	require.Equal(t, prim.Transistor4Name, e.Node)
	require.Equal(t, "variants[3].function", e.Field)

	e = mismatch(func(d *Description) {
		d.Node(prim.AndName).Ports[0].Mode = "default"
	})
	require.Equal(t, "ports[0].mode", e.Field)

	e = mismatch(func(d *Description) {
		d.Node(prim.MuxName).Ports[0].Nominal.Y1 = 2
	})
	require.Equal(t, prim.MuxName, e.Node)
	require.Equal(t, "ports[0].nominal", e.Field)
	require.Equal(t, Box{X0: -2, Y0: -2.5, X1: -2, Y1: 2.5}, e.Got)

	e = mismatch(func(d *Description) {
		d.Node(prim.MuxName).Ports[1].Nominal = &Box{}
	})
	require.Equal(t, "ports[1].nominal", e.Field)

	e = mismatch(func(d *Description) {
		d.Nodes = append(d.Nodes, Node{Name: "Flip-Flop"})
	})
	require.Equal(t, "presence", e.Field)
	require.Contains(t, e.Error(), "Flip-Flop")
}

func TestCompare(t *testing.T) {
	tech := prim.NewArtwork()
	np := tech.Node(prim.SplineName)
	want := DescribeNode(np)
	require.NoError(t, Compare(np, &want))

	want.Flags = nil
	err := Compare(np, &want)
	var me *MismatchError
	require.ErrorAs(t, err, &me)
	require.Equal(t, "flags", me.Field)
}

func TestDecodeError(t *testing.T) {
	_, err := Decode(strings.NewReader("<technology><nodes>"))
	require.ErrorContains(t, err, "techxml: decode")
}
