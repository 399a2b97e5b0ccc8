package utils

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	xwebp "golang.org/x/image/webp"

	"lorraxs/whiten/config"
	"lorraxs/whiten/structs"
)

// DecodeImage sniffs the container format of data and decodes it. GIF files
// are decoded with all of their frames.
func DecodeImage(data []byte) (*structs.Decoded, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	switch format {
	case "gif":
		anim, err := gif.DecodeAll(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		return &structs.Decoded{Format: format, Animation: anim}, nil
	case "webp":
		// chai2010/webp registers a decoder too, but it returns straight-alpha
		// bytes in an *image.RGBA.
		img, err := xwebp.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		return &structs.Decoded{Format: format, Image: img}, nil
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return &structs.Decoded{Format: format, Image: img}, nil
}

// EncodeImage writes d to w in d.Format using the encoder settings in cfg.
func EncodeImage(w io.Writer, d *structs.Decoded, cfg *config.Config) error {
	if d.Animation != nil {
		return gif.EncodeAll(w, d.Animation)
	}

	switch d.Format {
	case "png":
		enc := png.Encoder{CompressionLevel: pngCompression(cfg.Png.Compression)}
		return enc.Encode(w, d.Image)
	case "jpeg":
		return jpeg.Encode(w, d.Image, &jpeg.Options{Quality: cfg.Jpeg.Quality})
	case "bmp":
		return bmp.Encode(w, d.Image)
	case "tiff":
		return tiff.Encode(w, d.Image, &tiff.Options{
			Compression: tiffCompression(cfg.Tiff.Compression),
			Predictor:   cfg.Tiff.Compression != "none",
		})
	case "webp":
		return webp.Encode(w, straightRGBA(d.Image), &webp.Options{
			Lossless: cfg.Webp.Lossless,
			Quality:  cfg.Webp.Quality,
		})
	}
	return fmt.Errorf("no encoder for format %q", d.Format)
}

func pngCompression(name string) png.CompressionLevel {
	switch name {
	case "none":
		return png.NoCompression
	case "speed":
		return png.BestSpeed
	case "best":
		return png.BestCompression
	}
	return png.DefaultCompression
}

func tiffCompression(name string) tiff.CompressionType {
	if name == "none" {
		return tiff.Uncompressed
	}
	return tiff.Deflate
}

// straightRGBA hands libwebp the NRGBA bytes as they are. The encoder reads
// *image.RGBA pixels verbatim and libwebp expects straight alpha.
func straightRGBA(img image.Image) image.Image {
	n, ok := img.(*image.NRGBA)
	if !ok {
		n = ToNRGBA(img)
	}
	return &image.RGBA{Pix: n.Pix, Stride: n.Stride, Rect: n.Rect}
}
