package layout

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/flowcanvas/flowcanvas/pkg/diagram"
	ferrors "github.com/flowcanvas/flowcanvas/pkg/errors"
)

// formatPlain is Graphviz's line-oriented output format: one "node" record
// per node with resolved coordinates. Easier to parse than xdot.
const formatPlain = graphviz.Format("plain")

// pointsPerInch converts plain-output coordinates (inches) to points.
const pointsPerInch = 72.0

// DefaultLabelGap is the vertical distance between a node's base position
// and its label's base position.
const DefaultLabelGap = 14.0

// GraphvizEngine derives base positions from the flow structure using
// Graphviz. It satisfies the external-layout-engine role: the editing core
// consumes its output through BaseSource and never feeds positions back.
type GraphvizEngine struct {
	// Engine is the Graphviz layout engine name ("dot", "neato", ...).
	// Empty means "dot".
	Engine string

	// LabelGap is the offset from a node to its label's base position.
	// Zero means DefaultLabelGap.
	LabelGap float64
}

// Compute lays out the nodes referenced by flows and returns a StaticSource
// holding a base position for every node and, under the label namespace, for
// every node's label.
func (e *GraphvizEngine) Compute(ctx context.Context, flows []diagram.Flow) (StaticSource, error) {
	doc := diagram.Document{Flows: flows}
	ids := doc.NodeIDs()
	if len(ids) == 0 {
		return StaticSource{}, nil
	}

	dot := flowsToDOT(ids, flows)

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, ferrors.Wrap(ferrors.ErrCodeLayoutFailed, err, "init graphviz")
	}
	defer gv.Close()

	if e.Engine != "" {
		gv.SetLayout(graphviz.Layout(e.Engine))
	}

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, ferrors.Wrap(ferrors.ErrCodeLayoutFailed, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, formatPlain, &buf); err != nil {
		return nil, ferrors.Wrap(ferrors.ErrCodeLayoutFailed, err, "layout")
	}

	src, err := parsePlain(buf.String())
	if err != nil {
		return nil, err
	}

	gap := e.LabelGap
	if gap == 0 {
		gap = DefaultLabelGap
	}
	for _, id := range ids {
		if p, ok := src[id]; ok {
			src.SetLabel(id, Point{X: p.X, Y: p.Y - gap})
		}
	}
	return src, nil
}

// flowsToDOT builds a left-to-right DOT graph from the flow collection.
// Node statements come first, in first-appearance order, so the output is
// deterministic for a given document.
func flowsToDOT(ids []string, flows []diagram.Flow) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=box];\n")
	buf.WriteString("\n")

	for _, id := range ids {
		fmt.Fprintf(&buf, "  %q;\n", id)
	}

	buf.WriteString("\n")
	for _, f := range flows {
		if f.Source == "" || f.Target == "" {
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q;\n", f.Source, f.Target)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// parsePlain extracts node coordinates from Graphviz "plain" output.
//
// The format is line-oriented:
//
//	graph <scale> <width> <height>
//	node <name> <x> <y> <width> <height> <label> ...
//	edge ...
//	stop
//
// Names containing spaces are double-quoted.
func parsePlain(out string) (StaticSource, error) {
	src := StaticSource{}
	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, "node ") {
			continue
		}
		name, rest := splitToken(strings.TrimPrefix(line, "node "))
		fields := strings.Fields(rest)
		if name == "" || len(fields) < 2 {
			return nil, ferrors.New(ferrors.ErrCodeLayoutFailed, "malformed plain output line: %q", line)
		}
		x, errX := strconv.ParseFloat(fields[0], 64)
		y, errY := strconv.ParseFloat(fields[1], 64)
		if errX != nil || errY != nil {
			return nil, ferrors.New(ferrors.ErrCodeLayoutFailed, "bad coordinates in line: %q", line)
		}
		src[name] = Point{X: x * pointsPerInch, Y: y * pointsPerInch}
	}
	return src, nil
}

// splitToken splits off the first token of s, honoring double quotes.
func splitToken(s string) (token, rest string) {
	s = strings.TrimLeft(s, " ")
	if strings.HasPrefix(s, `"`) {
		if end := strings.Index(s[1:], `"`); end >= 0 {
			return s[1 : end+1], s[end+2:]
		}
		return "", ""
	}
	if sp := strings.IndexByte(s, ' '); sp >= 0 {
		return s[:sp], s[sp+1:]
	}
	return s, ""
}
