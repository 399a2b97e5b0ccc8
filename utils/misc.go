package utils

import (
	"image/color"

	"lorraxs/whiten/structs"
)

// ColorToPixel converts any color to a straight-alpha 8-bit pixel.
func ColorToPixel(c color.Color) structs.Pixel {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return structs.Pixel{R: n.R, G: n.G, B: n.B, A: n.A}
}
