package loadable

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// UnmarshalFunc decodes data into the value pointed to by out. json.Unmarshal
// and yaml.Unmarshal both satisfy it.
type UnmarshalFunc func(data []byte, out any) error

// Decode runs unmarshal over data and folds the outcome into the state: a
// successful decode yields a ready state with the decoded content, a decode
// fault is translated through mapFault and yields a failed state that keeps
// the content the state held before the call. The fault never propagates.
func Decode[C, E any](s State[C, E], data []byte, unmarshal UnmarshalFunc, mapFault func(error) E) State[C, E] {
	var content C
	if err := unmarshal(data, &content); err != nil {
		return s.WithError(mapFault(err))
	}
	return s.WithContent(content)
}

// DecodeJSONAs decodes data as JSON, translating a decode fault into E via
// mapFault.
func DecodeJSONAs[C, E any](s State[C, E], data []byte, mapFault func(error) E) State[C, E] {
	return Decode(s, data, json.Unmarshal, mapFault)
}

// DecodeJSON decodes data as JSON for states whose error type is the native
// error, keeping the decode fault as-is.
func DecodeJSON[C any](s State[C, error], data []byte) State[C, error] {
	return DecodeJSONAs(s, data, func(err error) error { return err })
}

// DecodeYAMLAs decodes data as YAML, translating a decode fault into E via
// mapFault.
func DecodeYAMLAs[C, E any](s State[C, E], data []byte, mapFault func(error) E) State[C, E] {
	return Decode(s, data, yaml.Unmarshal, mapFault)
}

// DecodeYAML decodes data as YAML for states whose error type is the native
// error, keeping the decode fault as-is.
func DecodeYAML[C any](s State[C, error], data []byte) State[C, error] {
	return DecodeYAMLAs(s, data, func(err error) error { return err })
}
