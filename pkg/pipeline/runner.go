package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sketchkit/pkg/buildinfo"
	"github.com/matzehuels/sketchkit/pkg/cache"
	"github.com/matzehuels/sketchkit/pkg/errors"
	pkgio "github.com/matzehuels/sketchkit/pkg/io"
	"github.com/matzehuels/sketchkit/pkg/observability"
	"github.com/matzehuels/sketchkit/pkg/scene"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use it so that caching behaves the same everywhere.
//
// The Runner holds no per-run state. Multiple goroutines can safely use the
// same Runner.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute parses and evaluates src, consulting the cache first.
func (r *Runner) Execute(ctx context.Context, src Source, opts Options) (*Output, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if len(src.Data) > MaxSourceSize {
		return nil, errors.New(errors.ErrCodeInvalidInput, "scene source too large (%d bytes, max %d)", len(src.Data), MaxSourceSize)
	}

	out := &Output{SceneHash: cache.Hash(src.Data)}
	key := r.Keyer.SceneKey(out.SceneHash, cache.SceneKeyOpts{
		Shift:   *opts.Shift,
		Version: buildinfo.Version,
	})

	if !opts.Refresh {
		if res, ok := r.cached(ctx, key); ok {
			out.Result = res
			out.CacheHit = true
			out.Stats.ShapeCount = len(res.Shapes)
			out.Stats.ArrowCount = len(res.Arrows)
			out.Stats.ElementCount = len(res.Elements)
			r.Logger.Debug("using cached result", "scene", src.Name, "hash", out.SceneHash[:12])
			return out, nil
		}
	}

	sc, err := r.Parse(ctx, src)
	if err != nil {
		return nil, err
	}
	out.Stats.ShapeCount = len(sc.Shapes)
	out.Stats.ArrowCount = len(sc.Arrows)

	start := time.Now()
	observability.Pipeline().OnEvaluateStart(ctx, len(sc.Shapes), len(sc.Arrows))
	res, err := scene.Evaluate(ctx, sc, scene.Options{Logger: opts.Logger, Shift: opts.Shift})
	out.Stats.EvaluateTime = time.Since(start)
	if err != nil {
		observability.Pipeline().OnEvaluateComplete(ctx, 0, out.Stats.EvaluateTime, err)
		return nil, fmt.Errorf("evaluate %s: %w", src.Name, err)
	}
	observability.Pipeline().OnEvaluateComplete(ctx, len(res.Elements), out.Stats.EvaluateTime, nil)
	out.Result = res
	out.Stats.ElementCount = len(res.Elements)

	r.Logger.Info("evaluated scene",
		"scene", src.Name,
		"shapes", out.Stats.ShapeCount,
		"arrows", out.Stats.ArrowCount,
		"duration", out.Stats.EvaluateTime)

	r.store(ctx, key, res)
	return out, nil
}

// Parse decodes and validates src.
func (r *Runner) Parse(ctx context.Context, src Source) (*scene.Scene, error) {
	start := time.Now()
	observability.Pipeline().OnParseStart(ctx, src.Name)
	sc, err := scene.Parse(src.Data)
	shapes := 0
	if sc != nil {
		shapes = len(sc.Shapes)
	}
	observability.Pipeline().OnParseComplete(ctx, src.Name, shapes, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", src.Name, err)
	}
	return sc, nil
}

func (r *Runner) cached(ctx context.Context, key string) (*scene.Result, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "err", err)
		return nil, false
	}
	if !hit {
		observability.Cache().OnCacheMiss(ctx, "scene")
		return nil, false
	}
	res, err := pkgio.ReadResult(bytes.NewReader(data))
	if err != nil {
		// Stale or corrupt entry, recompute.
		r.Logger.Debug("discarding unreadable cache entry", "err", err)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, "scene")
	return res, true
}

func (r *Runner) store(ctx context.Context, key string, res *scene.Result) {
	var buf bytes.Buffer
	if err := pkgio.WriteJSON(res, &buf); err != nil {
		r.Logger.Warn("encode result for cache", "err", err)
		return
	}
	if err := r.Cache.Set(ctx, key, buf.Bytes(), cache.DefaultTTL); err != nil {
		r.Logger.Warn("cache write failed", "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, "scene", buf.Len())
}
