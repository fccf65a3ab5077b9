package govisit

import (
	"bytes"
	"io"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// JSONBytes decodes JSON input into a traversable value. Numbers decode as
// json.Number so the builtin adapters can restore their numeric kind.
func JSONBytes(b []byte) (any, error) {
	return JSONReader(bytes.NewReader(b))
}

// JSONReader is the io.Reader form of JSONBytes.
func JSONReader(r io.Reader) (any, error) {
	dec := gojson.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// YAMLBytes decodes YAML input into a traversable value.
func YAMLBytes(b []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// YAMLReader is the io.Reader form of YAMLBytes.
func YAMLReader(r io.Reader) (any, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return YAMLBytes(b)
}
