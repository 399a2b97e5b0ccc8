package structs

import (
	"image"
	"image/color"
	"image/gif"
)

type Pixel struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

func (p Pixel) ToNRGBA() color.NRGBA {
	return color.NRGBA{p.R, p.G, p.B, p.A}
}

// Whiten keeps alpha and saturates every color channel.
func (p Pixel) Whiten() Pixel {
	return Pixel{R: 0xff, G: 0xff, B: 0xff, A: p.A}
}

// Decoded is an image file as read from disk. Exactly one of Image and
// Animation is set; Animation is used for GIF so every frame survives.
type Decoded struct {
	Format    string
	Image     image.Image
	Animation *gif.GIF
}

func (d *Decoded) Bounds() image.Rectangle {
	if d.Animation != nil {
		c := d.Animation.Config
		return image.Rect(0, 0, c.Width, c.Height)
	}
	return d.Image.Bounds()
}
