package graphics

import (
	"fmt"
	"math"
)

// kappa is the control point distance for approximating a quarter circle
// with a single cubic bezier.
const kappa = 0.5522847498307936

// PathOp represents a path drawing operation type.
type PathOp int

const (
	PathOpMoveTo  PathOp = iota // Start new subpath at point (x, y)
	PathOpLineTo                // Draw line to point (x, y)
	PathOpQuadTo                // Draw quadratic curve to (x2, y2) via control (x1, y1)
	PathOpCubicTo               // Draw cubic curve to (x3, y3) via controls (x1, y1), (x2, y2)
	PathOpClose                 // Close subpath with line to start point
)

// String returns a human-readable representation of the path operation.
func (o PathOp) String() string {
	switch o {
	case PathOpMoveTo:
		return "move_to"
	case PathOpLineTo:
		return "line_to"
	case PathOpQuadTo:
		return "quad_to"
	case PathOpCubicTo:
		return "cubic_to"
	case PathOpClose:
		return "close"
	default:
		return fmt.Sprintf("PathOp(%d)", int(o))
	}
}

// PathCommand represents a single path operation with its coordinate arguments.
type PathCommand struct {
	Op   PathOp    // The operation type
	Args []float64 // MoveTo/LineTo=[x,y], QuadTo=[x1,y1,x2,y2], CubicTo=[x1,y1,x2,y2,x3,y3]
}

// Path represents a vector path for drawing arbitrary shapes.
//
// Paths built by [NewRRectPath] always have the same command structure, so
// two such paths can be interpolated with [LerpPath] regardless of size or
// corner radius.
type Path struct {
	Commands []PathCommand
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{}
}

// NewRRectPath returns a closed path tracing rrect clockwise.
func NewRRectPath(rrect RRect) *Path {
	p := NewPath()
	p.AddRRect(rrect)
	return p
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpMoveTo, Args: []float64{x, y}})
}

// LineTo adds a line segment from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpLineTo, Args: []float64{x, y}})
}

// QuadTo adds a quadratic bezier curve from the current point to (x2, y2)
// with control point (x1, y1).
func (p *Path) QuadTo(x1, y1, x2, y2 float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpQuadTo, Args: []float64{x1, y1, x2, y2}})
}

// CubicTo adds a cubic bezier curve from the current point to (x3, y3)
// with control points (x1, y1) and (x2, y2).
func (p *Path) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpCubicTo, Args: []float64{x1, y1, x2, y2, x3, y3}})
}

// Close closes the current subpath by drawing a line to the starting point.
func (p *Path) Close() {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpClose})
}

// AddRRect appends a closed clockwise subpath for rrect. Zero radii still
// emit the corner curves (degenerate) so the command layout is stable.
func (p *Path) AddRRect(rrect RRect) {
	r := rrect.Rect
	rx, ry := rrect.Radius.X, rrect.Radius.Y
	kx, ky := rx*kappa, ry*kappa

	p.MoveTo(r.Left+rx, r.Top)
	p.LineTo(r.Right-rx, r.Top)
	p.CubicTo(r.Right-rx+kx, r.Top, r.Right, r.Top+ry-ky, r.Right, r.Top+ry)
	p.LineTo(r.Right, r.Bottom-ry)
	p.CubicTo(r.Right, r.Bottom-ry+ky, r.Right-rx+kx, r.Bottom, r.Right-rx, r.Bottom)
	p.LineTo(r.Left+rx, r.Bottom)
	p.CubicTo(r.Left+rx-kx, r.Bottom, r.Left, r.Bottom-ry+ky, r.Left, r.Bottom-ry)
	p.LineTo(r.Left, r.Top+ry)
	p.CubicTo(r.Left, r.Top+ry-ky, r.Left+rx-kx, r.Top, r.Left+rx, r.Top)
	p.Close()
}

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool {
	return p == nil || len(p.Commands) == 0
}

// Clone returns a deep copy of the path. Cloning nil returns nil.
func (p *Path) Clone() *Path {
	if p == nil {
		return nil
	}
	out := &Path{Commands: make([]PathCommand, len(p.Commands))}
	for i, cmd := range p.Commands {
		args := make([]float64, len(cmd.Args))
		copy(args, cmd.Args)
		out.Commands[i] = PathCommand{Op: cmd.Op, Args: args}
	}
	return out
}

// Equal reports whether both paths contain the same commands. Coordinates
// are compared exactly.
func (p *Path) Equal(other *Path) bool {
	if p.IsEmpty() || other.IsEmpty() {
		return p.IsEmpty() && other.IsEmpty()
	}
	if len(p.Commands) != len(other.Commands) {
		return false
	}
	for i, cmd := range p.Commands {
		o := other.Commands[i]
		if cmd.Op != o.Op || len(cmd.Args) != len(o.Args) {
			return false
		}
		for j := range cmd.Args {
			if cmd.Args[j] != o.Args[j] {
				return false
			}
		}
	}
	return true
}

// Translate returns a copy of the path moved by (dx, dy).
func (p *Path) Translate(dx, dy float64) *Path {
	out := p.Clone()
	if out == nil {
		return nil
	}
	for _, cmd := range out.Commands {
		for j := 0; j+1 < len(cmd.Args); j += 2 {
			cmd.Args[j] += dx
			cmd.Args[j+1] += dy
		}
	}
	return out
}

// Bounds returns the bounding box of every point in the path, control
// points included.
func (p *Path) Bounds() Rect {
	if p.IsEmpty() {
		return Rect{}
	}
	b := Rect{Left: math.Inf(1), Top: math.Inf(1), Right: math.Inf(-1), Bottom: math.Inf(-1)}
	seen := false
	for _, cmd := range p.Commands {
		for j := 0; j+1 < len(cmd.Args); j += 2 {
			x, y := cmd.Args[j], cmd.Args[j+1]
			b.Left = math.Min(b.Left, x)
			b.Top = math.Min(b.Top, y)
			b.Right = math.Max(b.Right, x)
			b.Bottom = math.Max(b.Bottom, y)
			seen = true
		}
	}
	if !seen {
		return Rect{}
	}
	return b
}

// LerpPath interpolates every coordinate of two structurally identical paths.
// The endpoints reproduce a and b exactly. It reports false, and returns b,
// when the command layouts differ.
func LerpPath(a, b *Path, t float64) (*Path, bool) {
	if a.IsEmpty() || b.IsEmpty() || len(a.Commands) != len(b.Commands) {
		return b.Clone(), false
	}
	out := &Path{Commands: make([]PathCommand, len(b.Commands))}
	for i, cb := range b.Commands {
		ca := a.Commands[i]
		if ca.Op != cb.Op || len(ca.Args) != len(cb.Args) {
			return b.Clone(), false
		}
		args := make([]float64, len(cb.Args))
		for j := range args {
			switch {
			case t <= 0:
				args[j] = ca.Args[j]
			case t >= 1:
				args[j] = cb.Args[j]
			default:
				args[j] = ca.Args[j] + (cb.Args[j]-ca.Args[j])*t
			}
		}
		out.Commands[i] = PathCommand{Op: cb.Op, Args: args}
	}
	return out, true
}
