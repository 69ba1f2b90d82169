package ordmap

import (
	"errors"
	"fmt"
)

var (
	// ErrKeyNotFound signals a required-key operation on an absent key.
	ErrKeyNotFound = errors.New("ordmap: key not found")
	// ErrInvalidArgument signals input that is not a well-formed map encoding.
	ErrInvalidArgument = errors.New("ordmap: invalid argument")
)

// KeyError reports an absent key. It carries the key and the map the lookup
// ran against, for diagnostics, and matches ErrKeyNotFound under errors.Is.
type KeyError[K comparable, V any] struct {
	Key K
	Map OrdMap[K, V]
}

func (e *KeyError[K, V]) Error() string {
	return fmt.Sprintf("ordmap: key not found: %v", e.Key)
}

func (e *KeyError[K, V]) Unwrap() error {
	return ErrKeyNotFound
}

func keyError[K comparable, V any](m OrdMap[K, V], key K) error {
	return &KeyError[K, V]{Key: key, Map: m}
}
