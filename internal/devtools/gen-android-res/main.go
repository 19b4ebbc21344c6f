// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"go.astrophena.name/base/cli"

	"go.astrophena.name/appres/internal/androidres"
	"go.astrophena.name/appres/internal/devtools"
)

func main() { cli.Main(new(app)) }

type app struct {
	root     string
	watch    bool
	parallel bool
	minify   bool
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.root, "root", "", "Project root `dir`. Defaults to the directory of the executable.")
	fs.BoolVar(&a.watch, "watch", false, "Regenerate when the source icon or resources change.")
	fs.BoolVar(&a.parallel, "parallel", false, "Generate icon densities concurrently.")
	fs.BoolVar(&a.minify, "minify", false, "Minify copied XML resources.")
}

func (a *app) Run(ctx context.Context) error {
	if args := cli.GetEnv(ctx).Args; len(args) != 0 {
		return fmt.Errorf("%w: unexpected arguments %q", cli.ErrInvalidArgs, args)
	}

	root := a.root
	if root == "" {
		root = devtools.ProjectRoot()
	}

	var (
		mu     sync.Mutex
		stdout = cli.GetEnv(ctx).Stdout
	)
	printf := func(format string, args ...any) {
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintf(stdout, format+"\n", args...)
	}

	c := &androidres.Config{
		Root:     root,
		Logf:     printf,
		Parallel: a.parallel,
		Minify:   a.minify,
	}
	run := androidres.Run
	if a.watch {
		run = androidres.Watch
	}

	if err := run(ctx, c); err != nil {
		printf("ERROR: %s", capitalize(err.Error()))
		if errors.Is(err, androidres.ErrMissingScaffold) {
			printf("")
			for line := range strings.Lines(androidres.ScaffoldHint) {
				printf("%s", strings.TrimSuffix(line, "\n"))
			}
		}
		return err
	}
	return nil
}

// capitalize upper-cases the first letter of an error message for display.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
