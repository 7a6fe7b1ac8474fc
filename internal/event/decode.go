package event

import (
	"encoding/json"
	"fmt"
)

// DecodePayload returns an event payload as T. Payloads published on the
// MemoryBus arrive as T or *T; anything else (maps from a JSON source) is
// converted by a JSON round trip.
func DecodePayload[T any](input any) (T, error) {
	var zero T
	switch v := input.(type) {
	case T:
		return v, nil
	case *T:
		if v == nil {
			return zero, fmt.Errorf("%w: nil %T", ErrBadPayload, input)
		}
		return *v, nil
	case nil:
		return zero, fmt.Errorf("%w: empty payload", ErrBadPayload)
	}

	data, err := json.Marshal(input)
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrBadPayload, err)
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return zero, fmt.Errorf("%w: %w", ErrBadPayload, err)
	}
	return out, nil
}
