// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Package androidres generates Android launcher icons and resources for a
project.

# Directory Structure

Paths are resolved relative to the project root:

	assets/icon.png                The source icon. Required.
	android/app/src/main/res       The Android resource directory. It must
	                               already exist; generated files are
	                               written here.
	android-resources-manual-fix   Optional. XML resources to copy into the
	                               resource directory.

See [Run] for the steps performed.
*/
package androidres

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"go.astrophena.name/appres/internal/icons"
	"go.astrophena.name/appres/internal/logger"
	"go.astrophena.name/appres/internal/resources"
)

// Possible errors.
var (
	ErrMissingSourceIcon = errors.New("source icon not found")
	ErrMissingScaffold   = errors.New("android res directory not found")
)

// ScaffoldHint explains how to fix [ErrMissingScaffold].
const ScaffoldHint = `Please ensure you have an android/ directory in your project.
You may need to run: npx react-native init or similar`

// Config represents a generation configuration.
type Config struct {
	// Root is the project root. If empty, uses the current directory.
	Root string
	// Logf is a logger to use. If nil, log.Printf is used.
	Logf logger.Logf
	// Parallel determines if icon densities are generated concurrently.
	Parallel bool
	// Minify determines if copied XML resources are minified.
	Minify bool
}

func (c *Config) setDefaults() {
	if c.Root == "" {
		c.Root = "."
	}
	if c.Logf == nil {
		c.Logf = logger.Std()
	}
}

// Paths holds the locations used by [Run].
type Paths struct {
	SourceIcon   string // assets/icon.png
	ResDir       string // android/app/src/main/res
	ManualFixDir string // android-resources-manual-fix
}

// Paths returns the locations derived from c.Root.
func (c *Config) Paths() Paths {
	root := c.Root
	if root == "" {
		root = "."
	}
	return Paths{
		SourceIcon:   filepath.Join(root, "assets", "icon.png"),
		ResDir:       filepath.Join(root, "android", "app", "src", "main", "res"),
		ManualFixDir: filepath.Join(root, "android-resources-manual-fix"),
	}
}

var banner = strings.Repeat("=", 60)

var gradlew = func() string {
	if runtime.GOOS == "windows" {
		return `.\gradlew`
	}
	return "./gradlew"
}()

// Run validates the project layout, generates launcher icons for every
// density and copies XML resources if the manual fix directory exists.
//
// Nothing is written if the source icon or the resource directory is
// missing. Any write failure stops Run; files written up to that point are
// kept.
func Run(ctx context.Context, c *Config) error {
	c.setDefaults()
	p := c.Paths()

	c.Logf("%s", banner)
	c.Logf("  Android Icon & Resource Generator")
	c.Logf("%s", banner)
	c.Logf("")

	if !exists(p.SourceIcon) {
		return fmt.Errorf("%w at %s", ErrMissingSourceIcon, p.SourceIcon)
	}
	if !exists(p.ResDir) {
		return fmt.Errorf("%w at %s", ErrMissingScaffold, p.ResDir)
	}

	if err := icons.Generate(ctx, &icons.Config{
		Src:      p.SourceIcon,
		Dst:      p.ResDir,
		Logf:     c.Logf,
		Parallel: c.Parallel,
	}); err != nil {
		return err
	}

	if exists(p.ManualFixDir) {
		if err := resources.Copy(&resources.Config{
			Src:    p.ManualFixDir,
			Dst:    p.ResDir,
			Logf:   c.Logf,
			Minify: c.Minify,
		}); err != nil {
			return err
		}
	} else {
		c.Logf("Note: android-resources-manual-fix directory not found.")
		c.Logf("XML resources (strings.xml, styles.xml, etc.) not copied.")
	}

	c.Logf("%s", banner)
	c.Logf("  COMPLETE!")
	c.Logf("%s", banner)
	c.Logf("")
	if name, err := resources.AppName(filepath.Join(p.ResDir, "values", "strings.xml")); err == nil && name != "" {
		c.Logf("App name: %s", name)
		c.Logf("")
	}
	c.Logf("Next steps:")
	c.Logf("  1. cd android")
	c.Logf("  2. %s clean", gradlew)
	c.Logf("  3. %s assembleRelease", gradlew)
	c.Logf("")

	return nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
