package scene

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sketchkit/pkg/attr"
	"github.com/matzehuels/sketchkit/pkg/core/anchor"
	"github.com/matzehuels/sketchkit/pkg/core/arrow"
	"github.com/matzehuels/sketchkit/pkg/core/marker"
	"github.com/matzehuels/sketchkit/pkg/core/shape"
	"github.com/matzehuels/sketchkit/pkg/core/vec"
	"github.com/matzehuels/sketchkit/pkg/document"
	"github.com/matzehuels/sketchkit/pkg/errors"
)

// Options configures evaluation.
type Options struct {
	// Logger receives progress and lenient-read warnings. Nil uses
	// log.Default().
	Logger *log.Logger
	// Shift overrides the arrow trim distance in pixels. Nil uses
	// arrow.Shift.
	Shift *float64
}

// Position is a resolved point in pixels.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func position(v vec.Vector2) Position { return Position{X: v.X, Y: v.Y} }

// Vector returns p as a vector.
func (p Position) Vector() vec.Vector2 { return vec.XY(p.X, p.Y) }

// ShapeResult is the resolved geometry of one shape.
type ShapeResult struct {
	ID      string              `json:"id"`
	Kind    string              `json:"kind"`
	Handle  document.Handle     `json:"handle"`
	Anchors map[string]Position `json:"anchors"`
}

// ArrowResult is the routed geometry of one arrow.
type ArrowResult struct {
	Index  int             `json:"index"`
	Route  arrow.Route     `json:"route"`
	Handle document.Handle `json:"handle"`
	Start  Position        `json:"start"`
	// Target is the untrimmed end point; Tip is where the line stops.
	Target Position   `json:"target"`
	Tip    Position   `json:"tip"`
	Points []Position `json:"points"`
	Path   string     `json:"path"`
	Marker string     `json:"marker,omitempty"`
}

// Result is the outcome of evaluating a scene.
type Result struct {
	Unit     vec.Unit           `json:"unit"`
	Shapes   []ShapeResult      `json:"shapes"`
	Arrows   []ArrowResult      `json:"arrows"`
	Elements []document.Element `json:"elements"`
}

// Shape returns the result for the shape with the given id.
func (r *Result) Shape(id string) (ShapeResult, bool) {
	for _, s := range r.Shapes {
		if s.ID == id {
			return s, true
		}
	}
	return ShapeResult{}, false
}

type evaluator struct {
	unit    vec.Unit
	shift   vec.Scalar
	store   *document.Store
	handles map[string]document.Handle
	markers map[string]bool
	logger  *log.Logger
}

// Evaluate builds the document described by sc and resolves every anchor
// and arrow route.
func Evaluate(ctx context.Context, sc *Scene, opts Options) (*Result, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	unit, _ := vec.ParseUnit(sc.Unit)

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	ev := &evaluator{
		unit:    unit,
		shift:   arrow.Shift,
		store:   document.New(document.WithLogger(logger)),
		handles: make(map[string]document.Handle, len(sc.Shapes)),
		markers: map[string]bool{},
		logger:  logger,
	}
	if opts.Shift != nil {
		ev.shift = *opts.Shift
	}

	res := &Result{
		Unit:   unit,
		Shapes: make([]ShapeResult, 0, len(sc.Shapes)),
		Arrows: make([]ArrowResult, 0, len(sc.Arrows)),
	}

	for _, s := range sc.Shapes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		sr, err := ev.shape(s)
		if err != nil {
			return nil, err
		}
		res.Shapes = append(res.Shapes, sr)
	}

	for i, a := range sc.Arrows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ar, err := ev.arrow(i, a, sc.Marker)
		if err != nil {
			return nil, err
		}
		res.Arrows = append(res.Arrows, ar)
	}

	res.Elements = ev.store.Elements()
	logger.Debug("scene evaluated", "shapes", len(res.Shapes), "arrows", len(res.Arrows), "elements", len(res.Elements))
	return res, nil
}

func (ev *evaluator) shape(s Shape) (ShapeResult, error) {
	kind := normalizeKind(s.Kind)
	var h document.Handle

	if s.Like != "" {
		src := ev.handles[s.Like]
		srcKind, _ := ev.store.Kind(src)
		if srcKind == document.KindCircle {
			kind = KindCircle
			h = ev.store.AddCircle(shape.Circle{})
		} else {
			kind = KindRectangle
			h = ev.store.AddRectangle(shape.Rectangle{})
		}
		if err := ev.store.Like(h, src); err != nil {
			return ShapeResult{}, err
		}
		if err := ev.override(h, kind, s); err != nil {
			return ShapeResult{}, err
		}
	} else {
		switch kind {
		case KindCircle:
			h = ev.store.AddCircle(shape.Circle{}.WithRadius(ev.unit.Px(s.Radius)))
		default:
			h = ev.store.AddRectangle(shape.Rectangle{}.
				WithSize(ev.unit.Px(s.Width), ev.unit.Px(s.Height)).
				RoundedCorners(ev.unit.Px(s.CornerRadius)))
		}
	}

	if s.At != nil {
		origin, err := ev.point(*s.At)
		if err != nil {
			return ShapeResult{}, errors.Wrap(errors.GetCode(err), err, "place shape %q", s.ID)
		}
		if err := ev.store.MoveTo(h, origin); err != nil {
			return ShapeResult{}, err
		}
	}
	ev.handles[s.ID] = h

	sh, err := ev.store.Shape(h)
	if err != nil {
		return ShapeResult{}, err
	}
	anchors := make(map[string]Position, len(anchor.Compass))
	for _, a := range anchor.Compass {
		anchors[a.String()] = position(sh.Anchor(a))
	}
	ev.logger.Debug("shape placed", "id", s.ID, "kind", kind, "origin", anchors[anchor.Origin.String()])
	return ShapeResult{ID: s.ID, Kind: kind, Handle: h, Anchors: anchors}, nil
}

// override applies the dimensions set on a like-shape on top of the copy.
func (ev *evaluator) override(h document.Handle, kind string, s Shape) error {
	if kind == KindCircle {
		if s.Radius == 0 {
			return nil
		}
		return ev.store.Set(h, attr.KeyR, attr.Number(ev.unit.Px(s.Radius)))
	}

	r, err := ev.store.Rectangle(h)
	if err != nil {
		return err
	}
	if s.Width != 0 {
		r = r.WithWidth(ev.unit.Px(s.Width))
	}
	if s.Height != 0 {
		r = r.WithHeight(ev.unit.Px(s.Height))
	}
	if s.CornerRadius != 0 {
		r = r.RoundedCorners(ev.unit.Px(s.CornerRadius))
	}
	// Resizing keeps the center fixed, so the top-left corner moves.
	tl := r.TopLeft()
	for key, v := range map[string]vec.Scalar{
		attr.KeyX:      tl.X,
		attr.KeyY:      tl.Y,
		attr.KeyWidth:  r.Width,
		attr.KeyHeight: r.Height,
	} {
		if err := ev.store.Set(h, key, attr.Number(v)); err != nil {
			return err
		}
	}
	if r.CornerRadius != 0 {
		return ev.store.Set(h, attr.KeyRX, attr.Number(r.CornerRadius))
	}
	return nil
}

// point resolves p to pixels.
func (ev *evaluator) point(p Point) (vec.Vector2, error) {
	offset := vec.XY(ev.unit.Px(p.DX), ev.unit.Px(p.DY))
	if p.Ref == "" {
		return vec.XY(ev.unit.Px(p.X), ev.unit.Px(p.Y)).Plus(offset), nil
	}
	h, ok := ev.handles[p.Ref]
	if !ok {
		return vec.Zero, errors.New(errors.ErrCodeUnknownReference, "reference to undeclared shape %q", p.Ref)
	}
	a, err := p.ParseAnchor(ev.unit)
	if err != nil {
		return vec.Zero, err
	}
	at, err := ev.store.Anchor(h, a)
	if err != nil {
		return vec.Zero, err
	}
	return at.Plus(offset), nil
}

func (ev *evaluator) arrow(i int, a Arrow, sceneMarker string) (ArrowResult, error) {
	route, err := arrow.ParseRoute(a.Route)
	if err != nil {
		return ArrowResult{}, err
	}
	start, err := ev.point(a.From)
	if err != nil {
		return ArrowResult{}, errors.Wrap(errors.GetCode(err), err, "arrow %d: from", i)
	}
	end, err := ev.point(a.To)
	if err != nil {
		return ArrowResult{}, errors.Wrap(errors.GetCode(err), err, "arrow %d: to", i)
	}

	id := a.Marker
	if id == "" {
		id = sceneMarker
	}
	if id == "" {
		id = marker.ArrowID
	}
	shift := ev.shift
	if id == NoMarker {
		id, shift = "", 0
	}

	head, _ := marker.ParsePlacement(a.Head)
	p := route.BuildHead(start, end, ev.unit.Px(a.Offset), shift, head)
	h := ev.store.AddPath(p)

	if id != "" {
		m := marker.New(id, marker.ArrowGlyph())
		if !ev.markers[id] {
			ev.store.AddMarker(m)
			ev.markers[id] = true
		}
		if err := ev.store.Set(h, head.Key(), attr.Text(m.URL())); err != nil {
			return ArrowResult{}, err
		}
	}

	pts := p.Points()
	out := ArrowResult{
		Index:  i,
		Route:  route,
		Handle: h,
		Start:  position(start),
		Target: position(end),
		Tip:    position(p.End()),
		Points: make([]Position, len(pts)),
		Path:   p.String(),
		Marker: id,
	}
	for j, pt := range pts {
		out.Points[j] = position(pt)
	}
	ev.logger.Debug("arrow routed", "index", i, "route", route, "path", out.Path)
	return out, nil
}
