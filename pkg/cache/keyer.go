package cache

// Keyer builds cache keys for API responses.
type Keyer interface {
	// HTTPKey generates a key for a raw response under a namespace
	// such as "carquery:".
	HTTPKey(namespace, key string) string

	// QueryKey generates a key for one API command and its encoded query
	// string. Equal commands with equal queries map to the same key.
	QueryKey(command, query string) string
}

// DefaultKeyer is the standard Keyer.
type DefaultKeyer struct{}

// NewDefaultKeyer returns a DefaultKeyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// HTTPKey returns "http:<namespace>:<key>".
func (DefaultKeyer) HTTPKey(namespace, key string) string {
	return "http:" + namespace + ":" + key
}

// QueryKey returns "query:<sha256(command, query)>".
func (DefaultKeyer) QueryKey(command, query string) string {
	return hashKey("query", command, query)
}

// ScopedKeyer wraps a Keyer with a prefix for multi-tenant isolation.
// This is useful when several deployments of the facade server share one
// Redis or MongoDB backend.
//
// Example usage:
//
//	stagingKeyer := NewScopedKeyer(NewDefaultKeyer(), "staging:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to stored keys only; query keys are left alone
// because they are always passed back through HTTPKey.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// HTTPKey generates a prefixed key for HTTP response caching.
func (k *ScopedKeyer) HTTPKey(namespace, key string) string {
	return k.prefix + k.inner.HTTPKey(namespace, key)
}

// QueryKey delegates to the inner keyer unchanged.
func (k *ScopedKeyer) QueryKey(command, query string) string {
	return k.inner.QueryKey(command, query)
}
