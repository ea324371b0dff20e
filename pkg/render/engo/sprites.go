// pkg/render/engo/sprites.go
package engo

import (
	"image"
	"image/color"

	"github.com/EngoEngine/engo/common"
)

// diskSprite builds a filled-circle drawable of the given diameter.
// Sprites are generated rather than loaded: the playback only needs a
// ball and a rim bar.
func diskSprite(diameter int, fill color.NRGBA) common.Drawable {
	img := image.NewNRGBA(image.Rect(0, 0, diameter, diameter))
	radius := float64(diameter) / 2
	for y := 0; y < diameter; y++ {
		for x := 0; x < diameter; x++ {
			dx := float64(x) + 0.5 - radius
			dy := float64(y) + 0.5 - radius
			if dx*dx+dy*dy <= radius*radius {
				img.Set(x, y, fill)
			}
		}
	}
	return common.NewTextureSingle(common.NewImageObject(img))
}

// barSprite builds a filled-rectangle drawable.
func barSprite(width, height int, fill color.NRGBA) common.Drawable {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, fill)
		}
	}
	return common.NewTextureSingle(common.NewImageObject(img))
}
