// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package devtools contains common functionality for development tools.
package devtools

import (
	"os"
	"path/filepath"

	"go.astrophena.name/base/unwrap"
)

// ProjectRoot returns the directory containing the running executable, with
// symbolic links resolved. Tools place their inputs and outputs relative to
// it, so they work the same from any working directory. It panics if the
// executable can't be located.
func ProjectRoot() string {
	exe := unwrap.Value(os.Executable())
	return filepath.Dir(unwrap.Value(filepath.EvalSymlinks(exe)))
}
