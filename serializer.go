package hashgrid

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
)

// Serializer converts stored values to and from the byte form that gets
// encrypted. Implementations trade off interoperability, size, and type
// fidelity; the same serializer must be used to store and retrieve a value.
type Serializer interface {
	Serialize(v any) ([]byte, error)
	Deserialize(data []byte, v any) error
}

// JSONSerializer implements Serializer using encoding/json. It handles
// arbitrary JSON-representable values and is the default. Note the usual
// JSON caveat: numeric values retrieved into an untyped destination come
// back as float64.
type JSONSerializer struct{}

func (JSONSerializer) Serialize(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (JSONSerializer) Deserialize(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// GOBSerializer implements Serializer using encoding/gob. It preserves Go
// types better than JSON but requires concrete value types to be registered
// with gob when retrieved through an interface, and its output is not
// readable outside Go.
type GOBSerializer struct{}

func (GOBSerializer) Serialize(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(&v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (GOBSerializer) Deserialize(data []byte, v any) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}
