package persist

import "encoding/json"

// Codec converts a value to and from its stored representation.
type Codec[T any] interface {
	Encode(v T) ([]byte, error)
	Decode(data []byte) (T, error)
}

// JSONCodec stores values as plain JSON.
type JSONCodec[T any] struct{}

// Encode marshals v to JSON
func (JSONCodec[T]) Encode(v T) ([]byte, error) {
	return json.Marshal(v)
}

// Decode unmarshals JSON data into a fresh T
func (JSONCodec[T]) Decode(data []byte) (T, error) {
	var v T
	err := json.Unmarshal(data, &v)
	return v, err
}
