package tlv

import (
	"errors"
	"fmt"
)

// Error conditions.
var (
	ErrTruncated          = errors.New("truncated input")
	ErrTruncatedParameter = errors.New("parameter exceeds buffer")
	ErrLength             = errors.New("parameter length shorter than header")
	ErrUnsupportedVersion = errors.New("unsupported version")
	ErrUnsupportedVariant = errors.New("unsupported variant")
	ErrDepth              = errors.New("nesting depth exceeded")
)

// TruncatedError indicates a read past the end of a bounded cursor.
type TruncatedError struct {
	// Offset is the absolute offset where the read started.
	Offset int
	// Need is the number of octets requested.
	Need int
	// Available is the number of octets remaining.
	Available int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("truncated input at offset %d: need %d, have %d", e.Offset, e.Need, e.Available)
}

// Unwrap returns ErrTruncated.
func (e *TruncatedError) Unwrap() error {
	return ErrTruncated
}

// ParameterError indicates a failure while decoding one parameter.
type ParameterError struct {
	// Tag is the parameter tag, if the header was read.
	Tag uint32
	// Name is the display name of the tag.
	Name string
	// Offset is the absolute offset of the parameter header.
	Offset int
	// Length is the declared value length.
	Length int
	// Available is the number of octets that were available for the value.
	Available int
	// Err is the underlying error.
	Err error
}

func (e *ParameterError) Error() string {
	if errors.Is(e.Err, ErrTruncatedParameter) {
		return fmt.Sprintf("parameter %s (tag=0x%04X) at offset %d: length %d exceeds available %d",
			e.Name, e.Tag, e.Offset, e.Length, e.Available)
	}
	return fmt.Sprintf("parameter %s (tag=0x%04X) at offset %d: %v", e.Name, e.Tag, e.Offset, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParameterError) Unwrap() error {
	return e.Err
}

// VersionError indicates a message header carries a version the selected variant does not cover.
// The caller may retry with a different variant.
type VersionError struct {
	Protocol  string
	Variant   string
	Version   uint
	Supported []uint
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("%s %s: unsupported version %d (supported %v)", e.Protocol, e.Variant, e.Version, e.Supported)
}

// Unwrap returns ErrUnsupportedVersion.
func (e *VersionError) Unwrap() error {
	return ErrUnsupportedVersion
}
