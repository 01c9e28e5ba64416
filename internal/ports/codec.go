package ports

import "github.com/bft-labs/sigcrop/pkg/record"

// CodecResolver selects the codec for a recording file.
// *record.Registry satisfies this interface.
type CodecResolver interface {
	// ForPath returns the codec whose suffix matches path.
	ForPath(path string) (record.Codec, error)

	// Lookup returns the codec registered for suffix.
	Lookup(suffix string) (record.Codec, bool)
}
