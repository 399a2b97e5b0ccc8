package utils

import (
	"image"
	"image/color"
	"image/gif"

	"github.com/disintegration/imaging"
)

// ToNRGBA normalizes img to an 8-bit straight-alpha raster anchored at the
// origin. Models without alpha come out fully opaque.
func ToNRGBA(img image.Image) *image.NRGBA {
	return imaging.Clone(img)
}

// WhitenNRGBA sets every pixel of img to white in place, leaving alpha as is.
func WhitenNRGBA(img *image.NRGBA) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	for y := 0; y < height; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+width*4]
		for i := 0; i < len(row); i += 4 {
			row[i+0] = 0xff
			row[i+1] = 0xff
			row[i+2] = 0xff
		}
	}
}

func WhitenPalette(p color.Palette) color.Palette {
	if p == nil {
		return nil
	}
	out := make(color.Palette, len(p))
	for i, c := range p {
		out[i] = ColorToPixel(c).Whiten().ToNRGBA()
	}
	return out
}

// WhitenPaletted returns a copy of img sharing its indices with a whitened
// palette, so transparency tables keep their exact alpha.
func WhitenPaletted(img *image.Paletted) *image.Paletted {
	return &image.Paletted{
		Pix:     img.Pix,
		Stride:  img.Stride,
		Rect:    img.Rect,
		Palette: WhitenPalette(img.Palette),
	}
}

func WhitenAnimation(g *gif.GIF) {
	for i, frame := range g.Image {
		g.Image[i] = WhitenPaletted(frame)
	}
	if p, ok := g.Config.ColorModel.(color.Palette); ok {
		g.Config.ColorModel = WhitenPalette(p)
	}
}

// Whiten returns the whitened form of img. Paletted images stay paletted;
// everything else becomes NRGBA.
func Whiten(img image.Image) image.Image {
	if p, ok := img.(*image.Paletted); ok {
		return WhitenPaletted(p)
	}
	n := ToNRGBA(img)
	WhitenNRGBA(n)
	return n
}
