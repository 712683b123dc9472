package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

var ErrUnsupportedDetail = errors.New("unsupported detail value type")

// NormalizeDetails converts a record's free-form detail payload into a
// JSON-safe form. Arbitrary-precision numeric values become their canonical
// string representation so that persistence round-trips without losing
// precision; everything already JSON-representable passes through unchanged.
func NormalizeDetails(details map[string]any) (map[string]any, error) {
	if details == nil {
		return nil, nil
	}

	normalized, err := normalizeMap(details)
	if err != nil {
		return nil, fmt.Errorf("normalize details: %w", err)
	}
	return normalized, nil
}

// normalizeValue is a closed union over the value kinds the tracker accepts.
// This is the only place domain numeric types are known; downstream code
// treats details as opaque JSON.
func normalizeValue(value any) (any, error) {
	switch val := value.(type) {
	case nil, bool, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return val, nil
	case json.Number:
		// decoders running with UseNumber hand numerics over verbatim
		return val.String(), nil
	case *big.Int:
		return val.String(), nil
	case *big.Rat:
		// RatString round-trips through big.Rat.SetString exactly
		return val.RatString(), nil
	case *uint256.Int:
		return val.Dec(), nil
	case []any:
		return normalizeSlice(val)
	case map[string]any:
		return normalizeMap(val)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedDetail, value)
	}
}

func normalizeSlice(values []any) ([]any, error) {
	normalized := make([]any, len(values))
	for i, v := range values {
		nv, err := normalizeValue(v)
		if err != nil {
			return nil, err
		}
		normalized[i] = nv
	}
	return normalized, nil
}

func normalizeMap(values map[string]any) (map[string]any, error) {
	normalized := make(map[string]any, len(values))
	for key, v := range values {
		nv, err := normalizeValue(v)
		if err != nil {
			return nil, err
		}
		normalized[key] = nv
	}
	return normalized, nil
}
