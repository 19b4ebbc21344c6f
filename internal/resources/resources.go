// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package resources copies static Android XML resources into a project.
package resources

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/xml"

	"go.astrophena.name/appres/internal/logger"
)

// File is a resource file to copy.
type File struct {
	// Src is the path of the file, relative to the source directory.
	Src string
	// Subdir is the directory, relative to the destination directory, where
	// the file is placed.
	Subdir string
}

// Files lists the resource files that Copy copies, in order.
var Files = []File{
	{Src: "values/strings.xml", Subdir: "values"},
	{Src: "values/styles.xml", Subdir: "values"},
	{Src: "values/colors.xml", Subdir: "values"},
	{Src: "drawable/splashscreen.xml", Subdir: "drawable"},
}

// Config represents a copy configuration.
type Config struct {
	// Src is the directory where to read files from.
	Src string
	// Dst is the Android resource directory where to write files.
	Dst string
	// Logf is a logger to use. If nil, log.Printf is used.
	Logf logger.Logf
	// Minify determines if XML files are minified instead of copied
	// verbatim.
	Minify bool
}

func (c *Config) setDefaults() {
	if c.Logf == nil {
		c.Logf = logger.Std()
	}
}

// Copy copies every file in [Files] from c.Src into c.Dst. Missing source
// files are reported and skipped. An error is returned only when a file
// can't be written.
func Copy(c *Config) error {
	c.setDefaults()

	var m *minify.M
	if c.Minify {
		m = minify.New()
		m.AddFunc("text/xml", xml.Minify)
	}

	c.Logf("")
	c.Logf("Copying XML resources...")
	for _, f := range Files {
		src := filepath.Join(c.Src, filepath.FromSlash(f.Src))
		dir := filepath.Join(c.Dst, f.Subdir)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
		dst := filepath.Join(dir, filepath.Base(src))

		if _, err := os.Stat(src); os.IsNotExist(err) {
			c.Logf("✗ Source not found: %s", src)
			continue
		} else if err != nil {
			return err
		}

		if err := copyFile(m, src, dst); err != nil {
			return err
		}
		c.Logf("✓ Copied %s", dst)
	}
	c.Logf("")

	return nil
}

// copyFile copies src to dst, keeping the permission bits and
// modification time of src. If m is not nil, the contents are minified.
func copyFile(m *minify.M, src, dst string) error {
	fi, err := os.Stat(src)
	if err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	var r io.Reader = in
	if m != nil {
		b, err := io.ReadAll(in)
		if err != nil {
			return err
		}
		b, err = m.Bytes("text/xml", b)
		if err != nil {
			return err
		}
		r = bytes.NewReader(b)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fi.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	if err := os.Chmod(dst, fi.Mode().Perm()); err != nil {
		return err
	}
	return os.Chtimes(dst, fi.ModTime(), fi.ModTime())
}
