package record

import (
	"fmt"
	"reflect"

	"github.com/fxamacker/cbor/v2"

	"github.com/bft-labs/sigcrop/internal/domain"
)

// CBOR is the codec for ".cbor" recordings.
type CBOR struct {
	dec cbor.DecMode
	enc cbor.EncMode
}

// NewCBOR creates a CBOR codec.
// Maps decode with string keys; encoding is deterministic (sorted keys,
// shortest lossless float width).
func NewCBOR() (*CBOR, error) {
	dec, err := cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		return nil, err
	}
	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return nil, err
	}
	return &CBOR{dec: dec, enc: enc}, nil
}

// Name implements Codec.
func (*CBOR) Name() string { return "cbor" }

// Suffix implements Codec.
func (*CBOR) Suffix() string { return ".cbor" }

// Decode implements Codec.
func (c *CBOR) Decode(data []byte) (*Document, error) {
	var root map[string]any
	if err := c.dec.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: cbor: %v", domain.ErrDecode, err)
	}
	return NewDocument(root)
}

// Encode implements Codec.
func (c *CBOR) Encode(doc *Document) ([]byte, error) {
	return c.enc.Marshal(doc.Root())
}
