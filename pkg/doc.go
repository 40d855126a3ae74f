// Package pkg provides the core libraries for sketchkit declarative diagrams.
//
// # Overview
//
// Sketchkit describes diagrams as shapes placed relative to each other and
// arrows routed between their anchor points. All geometry uses the display
// convention: +X right, +Y down, so North is -Y. The pkg directory is
// organized into three areas:
//
//  1. [core] - Geometry kernel (vectors, anchors, shapes, paths, arrows, markers)
//  2. [document] and [attr] - Attribute-keyed element store with integer handles
//  3. [scene] and [pipeline] - TOML scene description, evaluation and caching
//
// # Architecture
//
// The typical data flow:
//
//	TOML scene
//	    ↓
//	[scene] parse + validate
//	    ↓
//	[document] shapes as attribute records
//	    ↓
//	[core/shape] anchors → [core/arrow] routes → [core/path] path data
//	    ↓
//	JSON result ([io]), cached by [pipeline]
//
// # Quick Start
//
// Draw a trimmed arrow between two shapes:
//
//	import (
//	    "github.com/matzehuels/sketchkit/pkg/core/anchor"
//	    "github.com/matzehuels/sketchkit/pkg/core/arrow"
//	    "github.com/matzehuels/sketchkit/pkg/core/shape"
//	    "github.com/matzehuels/sketchkit/pkg/core/vec"
//	)
//
//	a := shape.Circle{}.WithRadius(10)
//	b := shape.Rectangle{}.At(vec.XY(60, 0)).WithSize(20, 20)
//
//	p := arrow.Straight(a.Anchor(anchor.East), b.Anchor(anchor.West), arrow.Shift)
//	fmt.Println(p) // M 10 0 H 42.5
//
// # Main Packages
//
// [core/vec] - Scalars, 2D vectors and length units (px, mm, cm, in).
//
// [core/anchor] - Named compass anchors, polar anchors and relative
// placement helpers.
//
// [core/shape] - Circles and rectangles with exact anchor resolution.
//
// [core/path] - Path segments with absolute/relative forms, cursor tracking
// and a fluent builder.
//
// [core/arrow] - Endpoint trimming and straight or elbow routes.
//
// [core/marker] - Arrowhead marker definitions and placement.
//
// [cache] - Result caching with file, Redis and null backends.
//
// [observability] - Hooks for pipeline, cache and HTTP events.
//
// # Testing
//
//	go test ./pkg/...
//
// [core]: https://pkg.go.dev/github.com/matzehuels/sketchkit/pkg/core
// [core/vec]: https://pkg.go.dev/github.com/matzehuels/sketchkit/pkg/core/vec
// [core/anchor]: https://pkg.go.dev/github.com/matzehuels/sketchkit/pkg/core/anchor
// [core/shape]: https://pkg.go.dev/github.com/matzehuels/sketchkit/pkg/core/shape
// [core/path]: https://pkg.go.dev/github.com/matzehuels/sketchkit/pkg/core/path
// [core/arrow]: https://pkg.go.dev/github.com/matzehuels/sketchkit/pkg/core/arrow
// [core/marker]: https://pkg.go.dev/github.com/matzehuels/sketchkit/pkg/core/marker
// [document]: https://pkg.go.dev/github.com/matzehuels/sketchkit/pkg/document
// [attr]: https://pkg.go.dev/github.com/matzehuels/sketchkit/pkg/attr
// [scene]: https://pkg.go.dev/github.com/matzehuels/sketchkit/pkg/scene
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/sketchkit/pkg/pipeline
// [io]: https://pkg.go.dev/github.com/matzehuels/sketchkit/pkg/io
// [cache]: https://pkg.go.dev/github.com/matzehuels/sketchkit/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/sketchkit/pkg/observability
package pkg
