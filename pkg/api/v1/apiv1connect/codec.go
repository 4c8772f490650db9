package apiv1connect

import (
	"encoding/json"
)

const codecNameJSON = "json"

// JSONCodec marshals plain Go structs. It replaces connect's built-in JSON
// codec, which only accepts protobuf messages.
type JSONCodec struct{}

func (JSONCodec) Name() string {
	return codecNameJSON
}

func (JSONCodec) Marshal(message any) ([]byte, error) {
	return json.Marshal(message)
}

func (JSONCodec) Unmarshal(data []byte, message any) error {
	if len(data) == 0 {
		return nil
	}

	return json.Unmarshal(data, message)
}
