// Package codec loads and saves values as results. Decoding and I/O faults
// are captured through the try package and come back as failed results
// wrapping a results.ExceptionError; nothing is returned as a bare error.
package codec

import (
	"bytes"
	"io"
	"os"

	"github.com/ib-77/results/pkg/results"
	"github.com/ib-77/results/pkg/results/try"
	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

// Codec converts values to and from one text format.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	NewDecoder(r io.Reader) Decoder
}

type Decoder interface {
	Decode(v any) error
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type jsonCodec struct {
	indent string
}

func (c jsonCodec) Marshal(v any) ([]byte, error) {
	if c.indent == "" {
		return json.Marshal(v)
	}
	return json.MarshalIndent(v, "", c.indent)
}

func (jsonCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
func (jsonCodec) NewDecoder(r io.Reader) Decoder     { return json.NewDecoder(r) }

type yamlCodec struct{}

func (yamlCodec) Marshal(v any) ([]byte, error)      { return yaml.Marshal(v) }
func (yamlCodec) Unmarshal(data []byte, v any) error { return yaml.Unmarshal(data, v) }
func (yamlCodec) NewDecoder(r io.Reader) Decoder     { return yaml.NewDecoder(r) }

var (
	// JSON writes indented output compatible with encoding/json.
	JSON Codec = jsonCodec{indent: "  "}
	// CompactJSON writes JSON without indentation.
	CompactJSON Codec = jsonCodec{}
	YAML        Codec = yamlCodec{}
)

// Decode reads a T from data.
func Decode[T any](c Codec, data []byte) results.Of[T] {
	return try.TryValue(func() (T, error) {
		var v T
		err := c.Unmarshal(data, &v)
		return v, err
	})
}

// DecodeReader reads a single T from r.
func DecodeReader[T any](c Codec, r io.Reader) results.Of[T] {
	return try.TryValue(func() (T, error) {
		var v T
		err := c.NewDecoder(r).Decode(&v)
		return v, err
	})
}

// Load reads a T from the file at path.
func Load[T any](c Codec, path string) results.Of[T] {
	data := try.TryValue(func() ([]byte, error) {
		return os.ReadFile(path)
	})

	return results.Then(data, func(b []byte) results.Of[T] {
		return Decode[T](c, b)
	})
}

// Save writes v to the file at path, replacing its content.
func Save[T any](c Codec, path string, v T) results.Result {
	return try.TryErr(func() error {
		data, err := c.Marshal(v)
		if err != nil {
			return err
		}
		return os.WriteFile(path, data, 0o644)
	})
}

// Encode marshals v.
func Encode[T any](c Codec, v T) results.Of[[]byte] {
	return try.TryValue(func() ([]byte, error) {
		return c.Marshal(v)
	})
}

func FromJSON[T any](s string) results.Of[T] {
	return Decode[T](JSON, []byte(s))
}

func FromJSONBytes[T any](b []byte) results.Of[T] {
	return Decode[T](JSON, b)
}

func FromJSONReader[T any](r io.Reader) results.Of[T] {
	return DecodeReader[T](JSON, r)
}

func LoadJSON[T any](path string) results.Of[T] {
	return Load[T](JSON, path)
}

func SaveJSON[T any](path string, v T) results.Result {
	return Save(JSON, path, v)
}

func FromYAML[T any](s string) results.Of[T] {
	return Decode[T](YAML, []byte(s))
}

func FromYAMLReader[T any](r io.Reader) results.Of[T] {
	return DecodeReader[T](YAML, r)
}

func LoadYAML[T any](path string) results.Of[T] {
	return Load[T](YAML, path)
}

func SaveYAML[T any](path string, v T) results.Result {
	return Save(YAML, path, v)
}

// Roundtrip encodes v and decodes it back into a fresh T.
func Roundtrip[T any](c Codec, v T) results.Of[T] {
	return results.Then(Encode(c, v), func(b []byte) results.Of[T] {
		return DecodeReader[T](c, bytes.NewReader(b))
	})
}
