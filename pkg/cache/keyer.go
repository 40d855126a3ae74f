package cache

// Keyer generates cache keys.
type Keyer interface {
	// SceneKey returns the key of the evaluation result of a scene.
	SceneKey(sceneHash string, opts SceneKeyOpts) string
}

// SceneKeyOpts holds the evaluation options that change a result.
type SceneKeyOpts struct {
	Shift   float64 `json:"shift"`
	Version string  `json:"version,omitempty"`
}

// DefaultKeyer generates keys of the form "scene:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// SceneKey hashes the scene hash together with the options.
func (k *DefaultKeyer) SceneKey(sceneHash string, opts SceneKeyOpts) string {
	return hashKey("scene", sceneHash, opts)
}

var _ Keyer = (*DefaultKeyer)(nil)
