// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Package appres holds build tooling for Android app resources.

The generator lives in internal/devtools/gen-android-res and is run with:

	$ go tool gen-android-res -root path/to/project

See internal/androidres for the project layout it expects.
*/
package appres

//go:generate go tool addcopyright
