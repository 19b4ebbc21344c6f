// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package logger defines a type for writing progress lines.
package logger

import "log"

// Logf is the basic logger type: a printf-like func. Like log.Printf, the
// format need not end in a newline. Logf functions must be safe for concurrent
// use, since icon densities may be generated in parallel.
type Logf func(format string, args ...any)

// Std returns a Logf that writes to the standard logger.
func Std() Logf { return log.Printf }
