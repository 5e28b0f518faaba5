package pptx

import "errors"

// GroupShape represents a group of shapes positioned in a shared child
// coordinate space.
type GroupShape struct {
	BaseShape
	shapes []Shape
	// Child coordinate space (grpSpPr xfrm chOff/chExt). When unset the
	// writer uses the group's own offset and extent, so children are
	// positioned in slide coordinates.
	childOffX int64
	childOffY int64
	childExtX int64
	childExtY int64
}

func (g *GroupShape) GetType() ShapeType { return ShapeTypeGroup }

// NewGroupShape creates a new group shape.
func NewGroupShape() *GroupShape {
	return &GroupShape{
		shapes: make([]Shape, 0),
	}
}

// AddShape adds a shape to the group.
func (g *GroupShape) AddShape(s Shape) *GroupShape {
	g.shapes = append(g.shapes, s)
	return g
}

// GetShapes returns all shapes in the group.
func (g *GroupShape) GetShapes() []Shape {
	return g.shapes
}

// GetShapeCount returns the number of shapes in the group.
func (g *GroupShape) GetShapeCount() int {
	return len(g.shapes)
}

// RemoveShape removes a shape by index.
func (g *GroupShape) RemoveShape(index int) error {
	if index < 0 || index >= len(g.shapes) {
		return errOutOfRange
	}
	g.shapes = append(g.shapes[:index], g.shapes[index+1:]...)
	return nil
}

// SetChildSpace sets the child coordinate space explicitly. Children
// are then positioned relative to that space and scaled into the
// group's extent.
func (g *GroupShape) SetChildSpace(offX, offY, extX, extY int64) *GroupShape {
	g.childOffX = offX
	g.childOffY = offY
	g.childExtX = extX
	g.childExtY = extY
	return g
}

// childSpace returns the effective child coordinate space.
func (g *GroupShape) childSpace() (offX, offY, extX, extY int64) {
	if g.childExtX > 0 && g.childExtY > 0 {
		return g.childOffX, g.childOffY, g.childExtX, g.childExtY
	}
	return g.offsetX, g.offsetY, g.width, g.height
}

// errors
var errOutOfRange = errors.New("index out of range")
