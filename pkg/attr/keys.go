package attr

// Attribute names understood by the serializer.
const (
	KeyX            = "x"
	KeyY            = "y"
	KeyWidth        = "width"
	KeyHeight       = "height"
	KeyRX           = "rx"
	KeyCX           = "cx"
	KeyCY           = "cy"
	KeyR            = "r"
	KeyD            = "d"
	KeyX1           = "x1"
	KeyY1           = "y1"
	KeyX2           = "x2"
	KeyY2           = "y2"
	KeyID           = "id"
	KeyMarkerWidth  = "markerWidth"
	KeyMarkerHeight = "markerHeight"
	KeyOrient       = "orient"
	KeyMarkerStart  = "marker-start"
	KeyMarkerMid    = "marker-mid"
	KeyMarkerEnd    = "marker-end"
)
