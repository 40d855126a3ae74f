// Package io reads scene files and writes evaluation results as JSON.
//
// # Import
//
// Use [ImportScene] to read a TOML scene from a file path, or [ReadScene] to
// read from any io.Reader:
//
//	sc, err := io.ImportScene("loop.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Both validate the scene (see package scene). Missing files are reported
// with errors.ErrCodeFileNotFound.
//
// # Export
//
// Use [ExportJSON] to write a [scene.Result] to a file, or [WriteJSON] to
// write to any io.Writer. The output holds the resolved anchors of every
// shape, the routed arrows and the flat element attributes an external
// serializer consumes:
//
//	{
//	  "unit": "px",
//	  "shapes": [{"id": "a", "kind": "circle", "handle": 0, "anchors": {...}}],
//	  "arrows": [{"index": 0, "route": "straight", "path": "M 10 0 H 92.5", ...}],
//	  "elements": [{"handle": 0, "kind": "circle", "attributes": {"cx": 0, "cy": 0, "r": 10}}]
//	}
//
// [ReadResult] decodes the same format, so results can be cached and
// re-read without re-evaluating the scene.
package io
