// Package gallery tracks the visible image index on a property detail
// page: a bounded cyclic counter over the image list.
package gallery

// Gallery cycles over a fixed-size image list starting at index 0.
type Gallery struct {
	index int
	size  int
}

// New returns a gallery over size images. Detail records always carry at
// least one image, so sizes below one are clamped to one.
func New(size int) *Gallery {
	if size < 1 {
		size = 1
	}
	return &Gallery{size: size}
}

// Index returns the current image index.
func (g *Gallery) Index() int {
	return g.index
}

// Size returns the number of images.
func (g *Gallery) Size() int {
	return g.size
}

// Next advances to the following image, wrapping to the first after the
// last, and returns the new index.
func (g *Gallery) Next() int {
	g.index = (g.index + 1) % g.size
	return g.index
}

// Prev retreats to the preceding image, wrapping to the last before the
// first, and returns the new index.
func (g *Gallery) Prev() int {
	g.index = (g.index - 1 + g.size) % g.size
	return g.index
}

// Jump sets the index directly. Out-of-range values are ignored and the
// current index is returned unchanged.
func (g *Gallery) Jump(i int) int {
	if i >= 0 && i < g.size {
		g.index = i
	}
	return g.index
}
