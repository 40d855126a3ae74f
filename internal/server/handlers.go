package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/matzehuels/sketchkit/pkg/buildinfo"
	"github.com/matzehuels/sketchkit/pkg/core/anchor"
	"github.com/matzehuels/sketchkit/pkg/core/shape"
	"github.com/matzehuels/sketchkit/pkg/core/vec"
	"github.com/matzehuels/sketchkit/pkg/errors"
	"github.com/matzehuels/sketchkit/pkg/observability"
	"github.com/matzehuels/sketchkit/pkg/pipeline"
	"github.com/matzehuels/sketchkit/pkg/scene"
)

// maxBodySize leaves room for the JSON envelope around a scene source.
const maxBodySize = pipeline.MaxSourceSize + 64<<10

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Version: buildinfo.Short()})
}

// EvaluateRequest is the body of POST /v1/evaluate.
type EvaluateRequest struct {
	// Name labels the scene in logs.
	Name string `json:"name,omitempty"`
	// Scene is the TOML scene source.
	Scene   string           `json:"scene"`
	Options pipeline.Options `json:"options"`
}

// EvaluateResponse is the body of a successful POST /v1/evaluate.
type EvaluateResponse struct {
	RequestID string        `json:"request_id"`
	SceneHash string        `json:"scene_hash"`
	CacheHit  bool          `json:"cache_hit"`
	Result    *scene.Result `json:"result"`
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req EvaluateRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Scene == "" {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "scene is required"))
		return
	}
	if req.Name == "" {
		req.Name = "request"
	}
	req.Options.Logger = nil

	out, err := s.runner.Execute(r.Context(), pipeline.Source{Name: req.Name, Data: []byte(req.Scene)}, req.Options)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, EvaluateResponse{
		RequestID: requestIDFromContext(r.Context()),
		SceneHash: out.SceneHash,
		CacheHit:  out.CacheHit,
		Result:    out.Result,
	})
}

// AnchorRequest is the body of POST /v1/anchor.
type AnchorRequest struct {
	Kind   string  `json:"kind"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Radius float64 `json:"radius,omitempty"`
	// Anchor is a compass name, or "polar" together with PolarRadius and Angle.
	Anchor      string  `json:"anchor"`
	PolarRadius float64 `json:"polar_radius,omitempty"`
	Angle       float64 `json:"angle,omitempty"`
}

func (req AnchorRequest) resolve() (vec.Vector2, error) {
	a, err := scene.Point{Anchor: req.Anchor, Radius: req.PolarRadius, Angle: req.Angle}.ParseAnchor(vec.Pixel)
	if err != nil {
		return vec.Zero, err
	}
	origin := vec.XY(req.X, req.Y)

	var sh anchor.Anchorer
	switch req.Kind {
	case scene.KindCircle:
		if req.Radius <= 0 {
			return vec.Zero, errors.New(errors.ErrCodeInvalidInput, "circle needs a positive radius")
		}
		sh = shape.Circle{}.At(origin).WithRadius(req.Radius)
	case scene.KindRectangle, "rect":
		if req.Width <= 0 || req.Height <= 0 {
			return vec.Zero, errors.New(errors.ErrCodeInvalidInput, "rectangle needs a positive width and height")
		}
		sh = shape.Rectangle{}.At(origin).WithSize(req.Width, req.Height)
	default:
		return vec.Zero, errors.New(errors.ErrCodeInvalidInput, "unknown shape kind %q (want rectangle or circle)", req.Kind)
	}
	return sh.Anchor(a), nil
}

func (s *Server) handleAnchor(w http.ResponseWriter, r *http.Request) {
	var req AnchorRequest
	if !s.decode(w, r, &req) {
		return
	}
	p, err := req.resolve()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, scene.Position{X: p.X, Y: p.Y})
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "request body too large"))
		} else {
			s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request"))
		}
		return false
	}
	return true
}

type errorResponse struct {
	RequestID string      `json:"request_id"`
	Code      errors.Code `json:"code"`
	Message   string      `json:"message"`
}

// statusFor maps an error to an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, errors.ErrCodeNotFound), errors.Is(err, errors.ErrCodeFileNotFound):
		return http.StatusNotFound
	case errors.Is(err, errors.ErrCodeUnsupported):
		return http.StatusUnprocessableEntity
	case stderrors.Is(err, context.Canceled), stderrors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	msg := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "id", requestIDFromContext(r.Context()), "err", err)
		msg = "internal error"
	}
	observability.HTTP().OnError(r.Context(), r.Method, r.URL.Path, err)
	writeJSON(w, status, errorResponse{
		RequestID: requestIDFromContext(r.Context()),
		Code:      code,
		Message:   msg,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
