// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Addcopyright adds a copyright header to each Go and XML file in the
// repository.
//
// Directories ignored by the Go tool (testdata and names starting with "."
// or "_") are skipped. With -check, files are not modified and the tool
// fails if any of them lacks a header.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.astrophena.name/base/cli"
)

func main() { cli.Main(new(app)) }

type app struct {
	check bool
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.BoolVar(&a.check, "check", false, "Report files without a header instead of fixing them.")
}

func (a *app) Run(ctx context.Context) error {
	missing, err := addHeaders(".", a.check)
	if err != nil {
		return err
	}
	if a.check && len(missing) > 0 {
		return fmt.Errorf("files without copyright header:\n\t%s", strings.Join(missing, "\n\t"))
	}
	return nil
}

type header struct {
	tmpl   string // formatted with the year
	prefix string // present in files that already have a header
}

var headers = map[string]header{
	".go": {
		tmpl: `// © %d Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

`,
		prefix: "// ©",
	},
	".xml": {
		tmpl: `<!--
© %d Ilya Mateyko. All rights reserved.
Use of this source code is governed by the ISC
license that can be found in the LICENSE.md file.
-->
`,
		prefix: "<!--\n© ",
	},
}

var errNotRegular = errors.New("not a regular file")

// addHeaders walks dir and adds headers to files that lack them, using the
// modification year of each file. It returns paths of files that lacked a
// header. If check is true, files are left untouched.
func addHeaders(dir string, check bool) (missing []string, err error) {
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != dir && skipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		h, ok := headers[filepath.Ext(path)]
		if !ok {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		if !info.Mode().IsRegular() {
			return fmt.Errorf("%s: %w", path, errNotRegular)
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		// Go build constraints and XML declarations must stay on top.
		prolog, body := splitProlog(content)
		if bytes.HasPrefix(body, []byte(h.prefix)) {
			return nil
		}
		missing = append(missing, path)
		if check {
			return nil
		}

		var buf bytes.Buffer
		buf.Write(prolog)
		fmt.Fprintf(&buf, h.tmpl, info.ModTime().Year())
		buf.Write(body)
		return os.WriteFile(path, buf.Bytes(), info.Mode().Perm())
	})
	return missing, err
}

func skipDir(name string) bool {
	return name == "testdata" || strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")
}

// splitProlog splits off a leading XML declaration, including the newline
// that ends it.
func splitProlog(content []byte) (prolog, body []byte) {
	if !bytes.HasPrefix(content, []byte("<?xml")) {
		return nil, content
	}
	end := bytes.Index(content, []byte("?>"))
	if end < 0 {
		return nil, content
	}
	end += len("?>")
	if end < len(content) && content[end] == '\n' {
		end++
	}
	return content[:end], content[end:]
}
