// Package record reads and writes recording files.
//
// A recording file is a binary-serialized mapping with a "payload" entry
// holding "values" (row-major numeric grid), "sensors" (channel descriptors
// with a "name") and "interval_ms". Everything else in the file (e.g.
// "protected", "signature", "payload.device_type") is carried through
// unchanged.
//
// # Codecs
//
//   - [CBOR]: the default container (".cbor")
//   - [MsgPack]: MessagePack container (".msgpack")
//
// [Registry] maps file suffixes to codecs.
//
// # Usage
//
//	codec, err := record.DefaultRegistry().ForPath(path)
//	doc, err := codec.Decode(data)
//	out := doc.WithWindow(window)
//	data, err = codec.Encode(out)
package record
