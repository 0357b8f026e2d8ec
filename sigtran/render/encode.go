package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// Format identifies an output format.
type Format string

// Formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCBOR Format = "cbor"
)

// Formats returns all supported formats.
func Formats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatCBOR}
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q", s)
}

var cborEncMode cbor.EncMode

func init() {
	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
	}
	var e error
	if cborEncMode, e = encOpts.EncMode(); e != nil {
		panic(fmt.Errorf("cbor.EncOptions.EncMode: %w", e))
	}
}

// Encoder writes a stream of documents.
type Encoder interface {
	Encode(v any) error

	// Close flushes buffered output. It does not close the underlying writer.
	Close() error
}

type encoder struct {
	encode func(v any) error
	close  func() error
}

func (enc encoder) Encode(v any) error {
	return enc.encode(v)
}

func (enc encoder) Close() error {
	if enc.close == nil {
		return nil
	}
	return enc.close()
}

// NewEncoder creates an Encoder of the given format.
// JSON output is one indented document per value; YAML output separates documents with "---";
// CBOR output is a sequence of data items.
func NewEncoder(w io.Writer, format Format) (Encoder, error) {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return encoder{encode: enc.Encode}, nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		return encoder{encode: enc.Encode, close: enc.Close}, nil
	case FormatCBOR:
		enc := cborEncMode.NewEncoder(w)
		return encoder{encode: enc.Encode}, nil
	}
	return nil, fmt.Errorf("unknown format %q", format)
}
