// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Gen-android-res generates Android launcher icons and copies XML resources
into an Android project.

# Usage

	$ go tool gen-android-res [flags]

The tool reads assets/icon.png and writes ic_launcher.png and
ic_launcher_round.png for the mdpi, hdpi, xhdpi, xxhdpi and xxxhdpi
densities into android/app/src/main/res/mipmap-<density>. If the
android-resources-manual-fix directory exists, its strings.xml,
styles.xml, colors.xml and splashscreen.xml files are copied into the
resource directory as well.

Paths are relative to the project root, which is the directory of the
executable unless the -root flag is set. When running through "go tool" or
"go run", the executable lives in the build cache, so pass -root:

	$ go tool gen-android-res -root .

The Android project (android/app/src/main/res) must already exist.

# Flags

	-root dir   Project root.
	-watch      Generate once, then regenerate whenever the source icon
	            or the manual fix resources change.
	-parallel   Generate densities concurrently.
	-minify     Minify copied XML resources instead of copying them verbatim.

The tool exits with a non-zero status if the source icon or the Android
resource directory is missing, or if any file can't be written.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/base/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
