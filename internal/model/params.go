package model

import "fmt"

// Dimensions is the requested output size in pixels.
type Dimensions struct {
	Width  int
	Height int
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%d×%d", d.Width, d.Height)
}

// Effects are the optional image transformations Picsum applies server side.
//
// Blur and Quality are pointers so that "not requested" is distinct from any
// valid level. Use IntPtr to build literals.
type Effects struct {
	Grayscale bool
	Blur      *int
	Quality   *int
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int {
	return &v
}
