package record

// Codec converts between file bytes and a Document.
type Codec interface {
	// Name identifies the container format (e.g., "cbor").
	Name() string

	// Suffix is the file suffix the codec handles, including the dot.
	Suffix() string

	// Decode parses file contents. Errors wrap domain.ErrDecode unless the
	// problem is the sample grid itself (domain.ErrShape).
	Decode(data []byte) (*Document, error)

	// Encode serializes the document mapping.
	Encode(doc *Document) ([]byte, error)
}
