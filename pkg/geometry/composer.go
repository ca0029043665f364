package geometry

import (
	"math"

	"github.com/df07/go-optical-raytracer/pkg/core"
)

// ComposeOp selects how a child entry combines with its parent
type ComposeOp int

const (
	// OpInclude adds the child region
	OpInclude ComposeOp = iota
	// OpExclude removes the child region
	OpExclude
	// OpIntersect keeps only the overlap with the child region
	OpIntersect
)

// Composer builds an aperture from referenced shapes combined with
// include, exclude and intersect operations.
//
// A point is inside the composed shape when it is inside at least one
// top-level entry. Within an entry, children are applied in insertion order
// in the entry's own frame, so an exclude only removes area added before it.
type Composer struct {
	entries []*ComposerEntry
}

// ComposerEntry is a handle on one shape in a Composer. Its modifiers
// return the handle so calls can be chained.
type ComposerEntry struct {
	shape       Shape
	op          ComposeOp
	translation core.Vec2
	rotation    float64 // radians
	scale       core.Vec2
	children    []*ComposerEntry
}

// NewComposer creates an empty composer
func NewComposer() *Composer {
	return &Composer{}
}

// AddShape appends a top-level shape. The shape is referenced, not copied,
// so one primitive may appear several times at different offsets.
func (c *Composer) AddShape(shape Shape) *ComposerEntry {
	e := newComposerEntry(shape, OpInclude)
	c.entries = append(c.entries, e)
	return e
}

// Entries returns the top-level entries
func (c *Composer) Entries() []*ComposerEntry {
	return c.entries
}

func newComposerEntry(shape Shape, op ComposeOp) *ComposerEntry {
	return &ComposerEntry{
		shape: shape,
		op:    op,
		scale: core.NewVec2(1, 1),
	}
}

// Include appends a child region united with this entry and returns the child
func (e *ComposerEntry) Include(shape Shape) *ComposerEntry {
	return e.addChild(shape, OpInclude)
}

// Exclude appends a child region cut out of this entry and returns the child
func (e *ComposerEntry) Exclude(shape Shape) *ComposerEntry {
	return e.addChild(shape, OpExclude)
}

// Intersect appends a child region this entry is clipped to and returns the child
func (e *ComposerEntry) Intersect(shape Shape) *ComposerEntry {
	return e.addChild(shape, OpIntersect)
}

func (e *ComposerEntry) addChild(shape Shape, op ComposeOp) *ComposerEntry {
	child := newComposerEntry(shape, op)
	e.children = append(e.children, child)
	return child
}

// Translate offsets the entry in its parent's frame
func (e *ComposerEntry) Translate(offset core.Vec2) *ComposerEntry {
	e.translation = e.translation.Add(offset)
	return e
}

// Rotate turns the entry counter-clockwise by degrees about its own origin
func (e *ComposerEntry) Rotate(degrees float64) *ComposerEntry {
	e.rotation += degrees * math.Pi / 180
	return e
}

// Scale stretches the entry along x and y
func (e *ComposerEntry) Scale(factor core.Vec2) *ComposerEntry {
	e.scale = e.scale.MultiplyVec(factor)
	return e
}

// Op returns how the entry combines with its parent
func (e *ComposerEntry) Op() ComposeOp {
	return e.op
}

// Children returns the entry's child entries
func (e *ComposerEntry) Children() []*ComposerEntry {
	return e.children
}

func (e *ComposerEntry) toLocal(p core.Vec2) (core.Vec2, bool) {
	if e.scale.X == 0 || e.scale.Y == 0 {
		return core.Vec2{}, false
	}
	q := p.Subtract(e.translation).Rotate(-e.rotation)
	return core.NewVec2(q.X/e.scale.X, q.Y/e.scale.Y), true
}

func (e *ComposerEntry) toParent(p core.Vec2) core.Vec2 {
	return p.MultiplyVec(e.scale).Rotate(e.rotation).Add(e.translation)
}

func (e *ComposerEntry) inside(p core.Vec2, obstructed bool) bool {
	q, ok := e.toLocal(p)
	if !ok {
		return false
	}

	in := e.shape.Inside(q)
	for _, child := range e.children {
		switch child.op {
		case OpInclude:
			if !in {
				in = child.inside(q, obstructed)
			}
		case OpExclude:
			if in && obstructed && child.inside(q, obstructed) {
				in = false
			}
		case OpIntersect:
			if in {
				in = child.inside(q, obstructed)
			}
		}
	}
	return in
}

// boundingBox returns the entry's extent in its parent's frame. Excluded
// and intersected children never grow it.
func (e *ComposerEntry) boundingBox() core.BoundingBox2 {
	local := e.shape.BoundingBox()
	for _, child := range e.children {
		if child.op == OpInclude {
			local = local.Union(child.boundingBox())
		}
	}

	corners := local.Corners()
	var points [4]core.Vec2
	for i, c := range corners {
		points[i] = e.toParent(c)
	}
	return core.NewBoundingBox2FromPoints(points[:]...)
}

// Inside implements the Shape interface
func (c *Composer) Inside(point core.Vec2) bool {
	for _, e := range c.entries {
		if e.inside(point, true) {
			return true
		}
	}
	return false
}

// InsideUnobstructed implements Obstructable: exclude entries are ignored
func (c *Composer) InsideUnobstructed(point core.Vec2) bool {
	for _, e := range c.entries {
		if e.inside(point, false) {
			return true
		}
	}
	return false
}

// BoundingBox implements the Shape interface
func (c *Composer) BoundingBox() core.BoundingBox2 {
	if len(c.entries) == 0 {
		return core.BoundingBox2{}
	}
	box := c.entries[0].boundingBox()
	for _, e := range c.entries[1:] {
		box = box.Union(e.boundingBox())
	}
	return box
}

// MaxRadius implements the Shape interface
func (c *Composer) MaxRadius() float64 {
	r := 0.0
	for _, corner := range c.BoundingBox().Corners() {
		r = math.Max(r, corner.Length())
	}
	return r
}

// MinRadius implements the Shape interface. It is measured against the
// bounding box, so holes do not shrink it.
func (c *Composer) MinRadius() float64 {
	box := c.BoundingBox()
	r := math.Min(math.Min(-box.Min.X, box.Max.X), math.Min(-box.Min.Y, box.Max.Y))
	return math.Max(r, 0)
}
