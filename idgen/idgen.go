// Package idgen hands out record identifiers that are not already in use.
package idgen

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const maxAttempts = 8

var ErrExhausted = errors.New("idgen: no free identifier")

// Taken reports whether id is already used by the target collection.
type Taken func(id string) (bool, error)

// Next returns a fresh uuid that taken does not report as used.
func Next(taken Taken) (string, error) {
	return NextWith(uuid.NewString, taken)
}

// NextWith is Next with a custom candidate source.
func NextWith(candidate func() string, taken Taken) (string, error) {
	for i := 0; i < maxAttempts; i++ {
		id := candidate()
		used, err := taken(id)
		if err != nil {
			return "", fmt.Errorf("check id %s: %w", id, err)
		}
		if !used {
			return id, nil
		}
	}
	return "", ErrExhausted
}
