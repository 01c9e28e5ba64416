package record

import (
	"fmt"
	"sort"
	"strings"
)

// Registry maps file suffixes to codecs.
type Registry struct {
	codecs map[string]Codec
}

// NewRegistry creates a registry holding the given codecs.
func NewRegistry(codecs ...Codec) *Registry {
	r := &Registry{codecs: make(map[string]Codec, len(codecs))}
	for _, c := range codecs {
		r.Register(c)
	}
	return r
}

// DefaultRegistry returns a registry with the CBOR and MessagePack codecs.
func DefaultRegistry() *Registry {
	c, err := NewCBOR()
	if err != nil {
		// The options are static; a failure here is a programming error.
		panic(err)
	}
	return NewRegistry(c, NewMsgPack())
}

// Register adds or replaces the codec for c.Suffix().
func (r *Registry) Register(c Codec) {
	r.codecs[strings.ToLower(c.Suffix())] = c
}

// Lookup returns the codec registered for suffix.
func (r *Registry) Lookup(suffix string) (Codec, bool) {
	c, ok := r.codecs[strings.ToLower(suffix)]
	return c, ok
}

// ForPath returns the codec whose suffix ends path, preferring the longest.
func (r *Registry) ForPath(path string) (Codec, error) {
	lower := strings.ToLower(path)
	var best Codec
	for suffix, c := range r.codecs {
		if strings.HasSuffix(lower, suffix) && (best == nil || len(suffix) > len(best.Suffix())) {
			best = c
		}
	}
	if best == nil {
		return nil, fmt.Errorf("no codec for %s", path)
	}
	return best, nil
}

// Suffixes returns the registered suffixes in sorted order.
func (r *Registry) Suffixes() []string {
	out := make([]string, 0, len(r.codecs))
	for s := range r.codecs {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
