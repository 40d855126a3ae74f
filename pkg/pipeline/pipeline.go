// Package pipeline runs scene evaluation for the CLI and the HTTP API.
//
// The pipeline has two stages:
//
//  1. Parse: decode and validate a TOML scene
//  2. Evaluate: build the document and resolve anchors and arrow routes
//
// Results are cached as JSON, keyed by the hash of the scene source and the
// options that affect the result, so re-running an unchanged scene skips
// both stages.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	out, err := runner.Execute(ctx, pipeline.Source{Name: "loop.toml", Data: data}, pipeline.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(out.Result.Arrows[0].Path)
package pipeline

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sketchkit/pkg/core/arrow"
	"github.com/matzehuels/sketchkit/pkg/errors"
	"github.com/matzehuels/sketchkit/pkg/scene"
)

// MaxSourceSize bounds the size of a scene source.
const MaxSourceSize = 1 << 20

// Source is a scene to evaluate.
type Source struct {
	// Name identifies the scene in logs, usually a file name.
	Name string
	Data []byte
}

// Options contains the configuration of a pipeline run.
// It supports JSON for API requests.
type Options struct {
	// Shift is the arrow trim distance in pixels. Nil means arrow.Shift.
	Shift *float64 `json:"shift,omitempty"`
	// Refresh bypasses cached results.
	Refresh bool `json:"refresh,omitempty"`

	// Logger receives progress. Not serialized.
	Logger *log.Logger `json:"-"`
}

// ValidateAndSetDefaults checks the options and fills in defaults.
// It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Shift == nil {
		shift := arrow.Shift
		o.Shift = &shift
	}
	if s := *o.Shift; s < 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		return errors.New(errors.ErrCodeInvalidInput, "shift must be a finite, non-negative number, got %v", s)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// Output is the outcome of a pipeline run.
type Output struct {
	// Result is the evaluated scene.
	Result *scene.Result
	// SceneHash is the content hash of the scene source.
	SceneHash string
	// CacheHit reports whether Result came from the cache.
	CacheHit bool
	Stats    Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ShapeCount   int
	ArrowCount   int
	ElementCount int
	ParseTime    time.Duration
	EvaluateTime time.Duration
}
