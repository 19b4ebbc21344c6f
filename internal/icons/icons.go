// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Package icons generates Android launcher icons from a single source image.

For each screen density in [Densities], [Generate] writes two files into
the "mipmap-<density>" directory under the output root:

	ic_launcher.png        The source image resized to a square.
	ic_launcher_round.png  The same image with alpha replaced by an
	                       inscribed circle.

Existing files are overwritten. PNG encoding is deterministic, so running
Generate twice on the same source produces identical files.
*/
package icons

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"

	"go.astrophena.name/appres/internal/logger"
)

// ErrDecode is returned when the source image can't be read or decoded.
var ErrDecode = errors.New("could not decode source icon")

// Names of generated files inside each density directory.
const (
	SquareName = "ic_launcher.png"
	RoundName  = "ic_launcher_round.png"
)

// Density is an Android screen density bucket and the launcher icon edge
// length, in pixels, it requires.
type Density struct {
	Name string
	Size int
}

// Dir returns the name of the resource directory for d.
func (d Density) Dir() string { return "mipmap-" + d.Name }

// Densities lists all supported densities, from the smallest to the
// largest.
var Densities = []Density{
	{Name: "mdpi", Size: 48},
	{Name: "hdpi", Size: 72},
	{Name: "xhdpi", Size: 96},
	{Name: "xxhdpi", Size: 144},
	{Name: "xxxhdpi", Size: 192},
}

// Config represents an icon generation configuration.
type Config struct {
	// Src is the path to the source icon.
	Src string
	// Dst is the Android resource directory where the mipmap directories
	// are created.
	Dst string
	// Logf is a logger to use. If nil, log.Printf is used.
	Logf logger.Logf
	// Parallel determines if densities are generated concurrently.
	Parallel bool
}

func (c *Config) setDefaults() {
	if c.Logf == nil {
		c.Logf = logger.Std()
	}
}

// Generate writes square and round launcher icons for every density in
// [Densities]. It stops at the first failed write; files written before
// the failure are left in place.
func Generate(ctx context.Context, c *Config) error {
	c.setDefaults()

	c.Logf("Loading source icon: %s", c.Src)
	src, err := Load(c.Src)
	if err != nil {
		return err
	}
	c.Logf("Source icon size: %dx%d", src.Bounds().Dx(), src.Bounds().Dy())
	c.Logf("")

	if c.Parallel {
		g, gctx := errgroup.WithContext(ctx)
		for _, d := range Densities {
			g.Go(func() error { return generateDensity(gctx, c, src, d) })
		}
		err = g.Wait()
	} else {
		for _, d := range Densities {
			if err = generateDensity(ctx, c, src, d); err != nil {
				break
			}
		}
	}
	if err != nil {
		return err
	}

	c.Logf("")
	c.Logf("SUCCESS! All Android icons generated.")
	return nil
}

func generateDensity(ctx context.Context, c *Config, src image.Image, d Density) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Join(c.Dst, d.Dir())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	square := Resize(src, d.Size)
	squarePath := filepath.Join(dir, SquareName)
	if err := writePNG(squarePath, square); err != nil {
		return err
	}
	c.Logf("✓ Created %s (%dx%d)", squarePath, d.Size, d.Size)

	roundPath := filepath.Join(dir, RoundName)
	if err := writePNG(roundPath, Round(square)); err != nil {
		return err
	}
	c.Logf("✓ Created %s (%dx%d)", roundPath, d.Size, d.Size)

	return nil
}

// Load reads and decodes the image at path and converts it to
// non-premultiplied RGBA with its origin at (0, 0).
func Load(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrDecode, path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrDecode, path, err)
	}
	return toNRGBA(img), nil
}

// withAlpha makes image/png keep the alpha channel of fully opaque images,
// so every generated icon is an RGBA PNG (color type 6).
type withAlpha struct{ *image.NRGBA }

func (withAlpha) Opaque() bool { return false }

func writePNG(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, withAlpha{img}); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}
