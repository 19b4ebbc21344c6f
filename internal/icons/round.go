// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package icons

import (
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// kappa places cubic Bézier control points so that four curves
// approximate a quarter of an ellipse each.
const kappa = 0.5522847498

// Mask returns a w×h mask that is opaque inside the ellipse inscribed in
// the mask rectangle and transparent outside of it.
func Mask(w, h int) *image.Alpha {
	var (
		rx = float32(w) / 2
		ry = float32(h) / 2
		kx = kappa * rx
		ky = kappa * ry
	)

	z := vector.NewRasterizer(w, h)
	z.DrawOp = draw.Src
	z.MoveTo(2*rx, ry)
	z.CubeTo(2*rx, ry+ky, rx+kx, 2*ry, rx, 2*ry)
	z.CubeTo(rx-kx, 2*ry, 0, ry+ky, 0, ry)
	z.CubeTo(0, ry-ky, rx-kx, 0, rx, 0)
	z.CubeTo(rx+kx, 0, 2*rx, ry-ky, 2*rx, ry)
	z.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// Round returns a copy of img with its alpha channel replaced by [Mask].
// Existing alpha values are discarded, not blended.
func Round(img *image.NRGBA) *image.NRGBA {
	b := img.Bounds()
	mask := Mask(b.Dx(), b.Dy())

	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.NRGBAAt(x, y)
			c.A = mask.AlphaAt(x-b.Min.X, y-b.Min.Y).A
			out.SetNRGBA(x, y, c)
		}
	}
	return out
}
