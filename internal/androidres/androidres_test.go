// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package androidres

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"go.astrophena.name/base/testutil"

	"go.astrophena.name/appres/internal/icons"
	"go.astrophena.name/appres/internal/resources"
)

const stringsXML = `<?xml version="1.0" encoding="utf-8"?>
<resources>
    <string name="app_name">Test App</string>
</resources>
`

type project struct {
	noIcon    bool
	badIcon   bool
	noRes     bool
	noFixDir  bool
	skipFixes []string // manual fix files that are left out
}

func (p project) create(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	if !p.noIcon {
		path := filepath.Join(root, "assets", "icon.png")
		mkdir(t, filepath.Dir(path))
		if p.badIcon {
			write(t, path, "not an image")
		} else {
			img := image.NewRGBA(image.Rect(0, 0, 512, 512))
			for i := range img.Pix {
				img.Pix[i] = 0xff
			}
			f, err := os.Create(path)
			if err != nil {
				t.Fatal(err)
			}
			if err := png.Encode(f, img); err != nil {
				t.Fatal(err)
			}
			f.Close()
		}
	}

	if !p.noRes {
		mkdir(t, filepath.Join(root, "android", "app", "src", "main", "res"))
	}

	if !p.noFixDir {
		fixDir := filepath.Join(root, "android-resources-manual-fix")
		mkdir(t, fixDir)
		for _, f := range resources.Files {
			if slices.Contains(p.skipFixes, f.Src) {
				continue
			}
			path := filepath.Join(fixDir, filepath.FromSlash(f.Src))
			mkdir(t, filepath.Dir(path))
			content := "<resources/>\n"
			if f.Src == "values/strings.xml" {
				content = stringsXML
			}
			write(t, path, content)
		}
	}

	return root
}

func TestRun(t *testing.T) {
	cases := map[string]struct {
		p          project
		wantErr    error
		wantIcons  bool
		wantCopied []string
		wantLogs   []string
		wantNoLogs []string
	}{
		"complete project": {
			p:         project{},
			wantIcons: true,
			wantCopied: []string{
				"values/strings.xml",
				"values/styles.xml",
				"values/colors.xml",
				"drawable/splashscreen.xml",
			},
			wantLogs: []string{
				"SUCCESS! All Android icons generated.",
				"COMPLETE!",
				"App name: Test App",
				"assembleRelease",
			},
		},
		"missing source icon": {
			p:       project{noIcon: true},
			wantErr: ErrMissingSourceIcon,
		},
		"missing android scaffold": {
			p:       project{noRes: true},
			wantErr: ErrMissingScaffold,
		},
		"corrupt source icon": {
			p:       project{badIcon: true},
			wantErr: icons.ErrDecode,
		},
		"no manual fix directory": {
			p:         project{noFixDir: true},
			wantIcons: true,
			wantLogs: []string{
				"Note: android-resources-manual-fix directory not found.",
				"COMPLETE!",
			},
			wantNoLogs: []string{"App name:"},
		},
		"missing optional resource": {
			p:         project{skipFixes: []string{"values/colors.xml"}},
			wantIcons: true,
			wantCopied: []string{
				"values/strings.xml",
				"values/styles.xml",
				"drawable/splashscreen.xml",
			},
			wantLogs: []string{
				"✗ Source not found: ",
				"COMPLETE!",
			},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			root := tc.p.create(t)
			c := &Config{Root: root}
			var logs strings.Builder
			c.Logf = func(format string, args ...any) {
				t.Logf(format, args...)
				fmt.Fprintf(&logs, format+"\n", args...)
			}

			err := Run(context.Background(), c)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("want error %v, got %v", tc.wantErr, err)
				}
			} else if err != nil {
				t.Fatal(err)
			}

			res := c.Paths().ResDir
			for _, d := range icons.Densities {
				for _, name := range []string{icons.SquareName, icons.RoundName} {
					_, err := os.Stat(filepath.Join(res, d.Dir(), name))
					if tc.wantIcons && err != nil {
						t.Errorf("%s/%s: %v", d.Dir(), name, err)
					}
					if !tc.wantIcons && !os.IsNotExist(err) {
						t.Errorf("%s/%s: want no file, got %v", d.Dir(), name, err)
					}
				}
			}
			for _, path := range tc.wantCopied {
				if _, err := os.Stat(filepath.Join(res, filepath.FromSlash(path))); err != nil {
					t.Errorf("%s: %v", path, err)
				}
			}
			for _, want := range tc.wantLogs {
				if !strings.Contains(logs.String(), want) {
					t.Errorf("logs don't contain %q:\n%s", want, logs.String())
				}
			}
			for _, unwanted := range tc.wantNoLogs {
				if strings.Contains(logs.String(), unwanted) {
					t.Errorf("logs contain %q:\n%s", unwanted, logs.String())
				}
			}
		})
	}
}

func TestRunValidatesBeforeWriting(t *testing.T) {
	root := project{noIcon: true}.create(t)
	res := (&Config{Root: root}).Paths().ResDir

	if err := Run(context.Background(), &Config{Root: root, Logf: t.Logf}); !errors.Is(err, ErrMissingSourceIcon) {
		t.Fatalf("want %v, got %v", ErrMissingSourceIcon, err)
	}

	entries, err := os.ReadDir(res)
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, len(entries), 0)
}

func TestRunTwice(t *testing.T) {
	root := project{}.create(t)
	c := &Config{Root: root, Logf: t.Logf, Parallel: true, Minify: true}

	for i := range 2 {
		if err := Run(context.Background(), c); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
	}

	round := filepath.Join(c.Paths().ResDir, "mipmap-mdpi", icons.RoundName)
	f, err := os.Open(round)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, img.Bounds(), image.Rect(0, 0, 48, 48))
	testutil.AssertEqual(t, color.NRGBAModel.Convert(img.At(0, 0)).(color.NRGBA).A, uint8(0))
	testutil.AssertEqual(t, color.NRGBAModel.Convert(img.At(24, 24)).(color.NRGBA).A, uint8(0xff))
}

func TestPaths(t *testing.T) {
	root := filepath.Join("some", "project")
	p := (&Config{Root: root}).Paths()
	testutil.AssertEqual(t, p, Paths{
		SourceIcon:   filepath.Join(root, "assets", "icon.png"),
		ResDir:       filepath.Join(root, "android", "app", "src", "main", "res"),
		ManualFixDir: filepath.Join(root, "android-resources-manual-fix"),
	})

	testutil.AssertEqual(t, (&Config{}).Paths().SourceIcon, filepath.Join("assets", "icon.png"))
}

func mkdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
}

func write(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
