package cache

// ScopedKeyer wraps a Keyer with a prefix, giving separate namespaces to
// callers that share one backend (for example several servers on one Redis).
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "staging:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// SceneKey generates a prefixed key for result caching.
func (k *ScopedKeyer) SceneKey(sceneHash string, opts SceneKeyOpts) string {
	return k.prefix + k.inner.SceneKey(sceneHash, opts)
}
