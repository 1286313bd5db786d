package main

import "image"

// Pt is a position in screen pixels.
type Pt struct {
	X int64
	Y int64
}

func (p Pt) Plus(other Pt) Pt {
	return Pt{p.X + other.X, p.Y + other.Y}
}

func (p Pt) Minus(other Pt) Pt {
	return Pt{p.X - other.X, p.Y - other.Y}
}

// Rectangle is an area of the screen. Min is included, Max is not.
type Rectangle struct {
	Min Pt
	Max Pt
}

// NewRectangleI makes a rectangle from its top-left corner and its size.
func NewRectangleI(x, y, width, height int64) Rectangle {
	return Rectangle{Pt{x, y}, Pt{x + width, y + height}}
}

func (r Rectangle) Width() int64 {
	return r.Max.X - r.Min.X
}

func (r Rectangle) Height() int64 {
	return r.Max.Y - r.Min.Y
}

func (r Rectangle) ContainsPt(pt Pt) bool {
	return pt.X >= r.Min.X && pt.X < r.Max.X &&
		pt.Y >= r.Min.Y && pt.Y < r.Max.Y
}

func (r Rectangle) Plus(pt Pt) Rectangle {
	return Rectangle{r.Min.Plus(pt), r.Max.Plus(pt)}
}

func (r Rectangle) ImageRect() image.Rectangle {
	return image.Rect(int(r.Min.X), int(r.Min.Y), int(r.Max.X), int(r.Max.Y))
}
