// Package api holds the wire contract of the collabhub.v1 gRPC services:
// CBOR messages, service descriptors, client stubs and the codec that
// carries them.
package api

import (
	"collab-hub/infrastructure/codec"
	"fmt"

	"google.golang.org/grpc/encoding"
)

const CodecName = "cbor"

// Codec encodes gRPC messages as CBOR with the same settings as the store.
type Codec struct{}

func (Codec) Marshal(v any) ([]byte, error) {
	data, err := codec.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("cbor marshal %T: %w", v, err)
	}
	return data, nil
}

func (Codec) Unmarshal(data []byte, v any) error {
	if err := codec.Unmarshal(data, v); err != nil {
		return fmt.Errorf("cbor unmarshal %T: %w", v, err)
	}
	return nil
}

func (Codec) Name() string { return CodecName }

func init() {
	encoding.RegisterCodec(Codec{})
}
