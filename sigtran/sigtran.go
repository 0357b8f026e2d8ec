// Package sigtran decodes SIGTRAN adaptation layer messages and iSNS PDUs.
package sigtran

import (
	"fmt"
	"strings"

	"github.com/usnistgov/sigtran-tlv/sigtran/isns"
	"github.com/usnistgov/sigtran-tlv/sigtran/m3ua"
	"github.com/usnistgov/sigtran-tlv/sigtran/sua"
	"github.com/usnistgov/sigtran-tlv/sigtran/tlv"
)

// Variant selects a protocol and its tag numbering.
type Variant int

// Variants.
const (
	M3UAv10 Variant = iota
	M3UAv6
	SUAIetf08
	SUALight
	ISNS
)

var variantNames = map[Variant]string{
	M3UAv10:   "m3ua-v10",
	M3UAv6:    "m3ua-v6",
	SUAIetf08: "sua-ietf08",
	SUALight:  "sua-light",
	ISNS:      "isns",
}

// Variants returns all valid variants.
func Variants() []Variant {
	return []Variant{M3UAv10, M3UAv6, SUAIetf08, SUALight, ISNS}
}

func (v Variant) String() string {
	if s, ok := variantNames[v]; ok {
		return s
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// Protocol returns the protocol name: "m3ua", "sua", or "isns".
func (v Variant) Protocol() string {
	s, _, _ := strings.Cut(v.String(), "-")
	return s
}

// MarshalText implements encoding.TextMarshaler interface.
func (v Variant) MarshalText() ([]byte, error) {
	if _, ok := variantNames[v]; !ok {
		return nil, fmt.Errorf("%w: %d", tlv.ErrUnsupportedVariant, int(v))
	}
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler interface.
func (v *Variant) UnmarshalText(text []byte) (e error) {
	*v, e = ParseVariant(string(text))
	return e
}

// ParseVariant parses a variant name such as "m3ua-v6" or "sua-light".
func ParseVariant(s string) (Variant, error) {
	s = strings.ToLower(s)
	for v, name := range variantNames {
		if name == s {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", tlv.ErrUnsupportedVariant, s)
}

// Select returns the variant of a protocol, given the preferred M3UA and SUA numberings.
func Select(protocol string, m3uaVariant m3ua.Variant, suaVariant sua.Variant) (Variant, error) {
	switch strings.ToLower(protocol) {
	case "m3ua":
		switch m3uaVariant {
		case m3ua.V10:
			return M3UAv10, nil
		case m3ua.V6:
			return M3UAv6, nil
		}
	case "sua":
		switch suaVariant {
		case sua.Ietf08:
			return SUAIetf08, nil
		case sua.Light:
			return SUALight, nil
		}
	case "isns":
		return ISNS, nil
	}
	return 0, fmt.Errorf("%w: %s %s %s", tlv.ErrUnsupportedVariant, protocol, m3uaVariant, suaVariant)
}

// PDU is a decoded message, either *tlv.Message or *isns.PDU.
type PDU interface {
	fmt.Stringer

	// Params returns top-level parameters.
	Params() []tlv.Parameter
}

var (
	_ PDU = (*tlv.Message)(nil)
	_ PDU = (*isns.PDU)(nil)
)

// Decode decodes a message of the selected variant.
// On error, a partially decoded PDU may be returned alongside the error.
func Decode(wire []byte, variant Variant, opts tlv.Options) (PDU, error) {
	var m *tlv.Message
	var e error
	switch variant {
	case M3UAv10:
		m, e = m3ua.Decode(wire, m3ua.V10, opts)
	case M3UAv6:
		m, e = m3ua.Decode(wire, m3ua.V6, opts)
	case SUAIetf08:
		m, e = sua.Decode(wire, sua.Ietf08, opts)
	case SUALight:
		m, e = sua.Decode(wire, sua.Light, opts)
	case ISNS:
		pdu, e := isns.Decode(wire, opts)
		if pdu == nil {
			return nil, e
		}
		return pdu, e
	default:
		return nil, fmt.Errorf("%w: %s", tlv.ErrUnsupportedVariant, variant)
	}
	if m == nil {
		return nil, e
	}
	return m, e
}
