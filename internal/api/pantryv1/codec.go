package pantryv1

import (
	jsoniter "github.com/json-iterator/go"
	"google.golang.org/grpc/encoding"
)

const CodecName = "json"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Codec marshals messages as JSON.
type Codec struct{}

func (Codec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (Codec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (Codec) Name() string {
	return CodecName
}

func init() {
	encoding.RegisterCodec(Codec{})
}
