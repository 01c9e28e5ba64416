package record

import (
	"bytes"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/bft-labs/sigcrop/internal/domain"
)

// MsgPack is the codec for ".msgpack" recordings.
type MsgPack struct{}

// NewMsgPack creates a MessagePack codec.
func NewMsgPack() *MsgPack {
	return &MsgPack{}
}

// Name implements Codec.
func (*MsgPack) Name() string { return "msgpack" }

// Suffix implements Codec.
func (*MsgPack) Suffix() string { return ".msgpack" }

// Decode implements Codec.
func (*MsgPack) Decode(data []byte) (*Document, error) {
	var root map[string]any
	if err := msgpack.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: msgpack: %v", domain.ErrDecode, err)
	}
	return NewDocument(root)
}

// Encode implements Codec. Map keys are sorted for reproducible output.
func (*MsgPack) Encode(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(doc.Root()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
