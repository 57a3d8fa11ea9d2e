package handles

import (
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/gekko3d/gizmo/rt/core"
)

// DefaultDepthFailAlpha is the alpha used where a handle is hidden behind
// scene geometry.
const DefaultDepthFailAlpha = 0.3

var axisPalette = [3]color.RGBA{
	core.AxisX: colornames.Red,
	core.AxisY: colornames.Lime,
	core.AxisZ: colornames.Blue,
}

func toFloat(c color.RGBA, alpha float32) [4]float32 {
	return [4]float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, alpha}
}

func AxisColor(a core.Axis) [4]float32 {
	if !a.Valid() {
		return toFloat(colornames.White, 1)
	}
	return toFloat(axisPalette[a], 1)
}

func DepthFailColor(a core.Axis, alpha float32) [4]float32 {
	c := AxisColor(a)
	c[3] = alpha
	return c
}
