package core

import (
	"fmt"

	"github.com/tsawler/circlepoints/internal/filters"
)

// NewStream creates an uncompressed stream with the given dictionary entries.
// A nil dict is allowed.
func NewStream(dict Dict, data []byte) *Stream {
	if dict == nil {
		dict = Dict{}
	}
	return &Stream{Dict: dict, Data: data}
}

// NewFlateStream compresses data with FlateDecode and records the filter and
// decode parameters in the stream dictionary. params may be nil.
func NewFlateStream(dict Dict, data []byte, params Dict) (*Stream, error) {
	encoded, err := filters.FlateEncode(data, dictToParams(params))
	if err != nil {
		return nil, fmt.Errorf("flate encode: %w", err)
	}

	s := NewStream(dict, encoded)
	s.Dict.Set("Filter", Name("FlateDecode"))
	if len(params) > 0 {
		s.Dict.Set("DecodeParms", params)
	}
	return s, nil
}

// dictToParams converts a Dict to filters.Params, translating PDF object
// types to Go primitive types (Int->int, Real->float64, Bool->bool, etc.).
func dictToParams(dict Dict) filters.Params {
	if dict == nil {
		return nil
	}

	params := make(filters.Params)
	for k, v := range dict {
		switch obj := v.(type) {
		case Int:
			params[k] = int(obj)
		case Real:
			params[k] = float64(obj)
		case Bool:
			params[k] = bool(obj)
		case String:
			params[k] = string(obj)
		case Name:
			params[k] = string(obj)
		default:
			params[k] = v
		}
	}
	return params
}
