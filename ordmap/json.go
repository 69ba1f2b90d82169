package ordmap

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalJSON encodes a string-keyed ordered map as a JSON object whose
// member order is the map's insertion order.
func MarshalJSON[V any](m OrdMap[string, V]) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	var err error
	m.Each(func(k string, v V) bool {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		var kb, vb []byte
		if kb, err = json.Marshal(k); err != nil {
			return false
		}
		buf.Write(kb)
		buf.WriteByte(':')
		if vb, err = json.Marshal(v); err != nil {
			return false
		}
		buf.Write(vb)
		return true
	})
	if err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into a string-keyed ordered map,
// preserving the member order of the document. Duplicate members resolve
// like From: first position, last value.
//
// Input that is not a JSON object fails with ErrInvalidArgument.
func UnmarshalJSON[V any](data []byte) (OrdMap[string, V], error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return OrdMap[string, V]{}, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return OrdMap[string, V]{}, fmt.Errorf("%w: expected JSON object, got %v", ErrInvalidArgument, tok)
	}
	var pairs []Pair[string, V]
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return OrdMap[string, V]{}, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return OrdMap[string, V]{}, fmt.Errorf("%w: non-string object key %v", ErrInvalidArgument, keyTok)
		}
		var val V
		if err := dec.Decode(&val); err != nil {
			return OrdMap[string, V]{}, fmt.Errorf("%w: member %q: %v", ErrInvalidArgument, key, err)
		}
		pairs = append(pairs, Pair[string, V]{Key: key, Value: val})
	}
	if _, err := dec.Token(); err != nil {
		return OrdMap[string, V]{}, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	return From(pairs), nil
}
