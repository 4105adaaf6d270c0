package tiles

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	background  = color.RGBA{0xf4, 0xf6, 0xf8, 0xff}
	captionBand = color.RGBA{0xff, 0xff, 0xff, 0xcc}
)

const captionHeight = 20

// Compose stitches four quadrant tiles (Quadrants order) into one
// 2*TileSize square PNG and writes caption along the bottom edge. Tiles of
// another size are scaled to TileSize.
func Compose(quads [4][]byte, caption string) ([]byte, error) {
	size := 2 * TileSize
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	for i, q := range Quadrants {
		src, _, err := image.Decode(bytes.NewReader(quads[i]))
		if err != nil {
			return nil, fmt.Errorf("decode tile %d/%d: %w", q.X, q.Y, err)
		}
		rect := image.Rect(q.X*TileSize, q.Y*TileSize, (q.X+1)*TileSize, (q.Y+1)*TileSize)
		draw.ApproxBiLinear.Scale(dst, rect, src, src.Bounds(), draw.Over, nil)
	}

	if caption != "" {
		band := image.Rect(0, size-captionHeight, size, size)
		draw.Draw(dst, band, image.NewUniform(captionBand), image.Point{}, draw.Over)
		d := &font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(color.Black),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(6, size-6),
		}
		d.DrawString(caption)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
