// Package orient maps Exif orientation values to the display transform they
// call for.
package orient

// Info is the transform a renderer must apply to display an image upright:
// a mirror across the vertical axis (applied first, if set), then a clockwise
// rotation.
type Info struct {
	Rotation int // clockwise degrees: 0, 90, 180 or 270
	Flipped  bool
}

// The 8 standard orientation values cover every combination of the two axes
// exactly once.
var infos = map[int]Info{
	1: {Rotation: 0, Flipped: false},
	2: {Rotation: 0, Flipped: true},
	3: {Rotation: 180, Flipped: false},
	4: {Rotation: 180, Flipped: true},
	5: {Rotation: 90, Flipped: true},
	6: {Rotation: 90, Flipped: false},
	7: {Rotation: 270, Flipped: true},
	8: {Rotation: 270, Flipped: false},
}

// Lookup returns the transform for an orientation value, or ok=false for any
// value outside 1..8, including the unknown sentinel.
func Lookup(code int) (Info, bool) {
	info, ok := infos[code]
	return info, ok
}
