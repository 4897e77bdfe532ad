package entity

// Rect describes a window's on-screen position and size.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// IsZero reports whether the rect carries no geometry.
func (r Rect) IsZero() bool {
	return r == Rect{}
}

// Size describes a group's allocated dimensions.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}
