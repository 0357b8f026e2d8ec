// Package sua decodes SCCP-User Adaptation Layer messages.
package sua

import (
	"fmt"
	"strings"

	"github.com/usnistgov/sigtran-tlv/sigtran/an"
	"github.com/usnistgov/sigtran-tlv/sigtran/tlv"
)

// Variant selects an SUA tag numbering.
type Variant int

// Variants.
const (
	// Ietf08 is the numbering of draft-ietf-sigtran-sua-08 and later, including RFC 3868.
	Ietf08 Variant = iota
	// Light is the vendor "SUA light" numbering, with compact address parameter tags.
	Light
)

var variantTables = map[Variant]*tlv.Table{
	Ietf08: TableIetf08,
	Light:  TableLight,
}

// Table returns the tag table of this variant, or nil if the variant is invalid.
func (v Variant) Table() *tlv.Table {
	return variantTables[v]
}

func (v Variant) String() string {
	if t := v.Table(); t != nil {
		return t.Name()
	}
	return fmt.Sprintf("sua-%d", int(v))
}

// ParseVariant parses a variant name such as "ietf08" or "sua-light".
func ParseVariant(s string) (Variant, error) {
	name := strings.TrimPrefix(strings.ToLower(s), "sua-")
	for v, t := range variantTables {
		if strings.TrimPrefix(t.Name(), "sua-") == name {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: sua %q", tlv.ErrUnsupportedVariant, s)
}

// Profile returns the message profile of a variant.
func (v Variant) Profile() (p tlv.Profile, ok bool) {
	t := v.Table()
	if t == nil {
		return p, false
	}
	return tlv.Profile{
		Protocol:    "SUA",
		Versions:    []uint8{1},
		Table:       t,
		MessageName: an.SUAMessageString,
	}, true
}

// Decode decodes an SUA message.
// On error, a partially decoded message may be returned alongside the error.
func Decode(wire []byte, variant Variant, opts tlv.Options) (*tlv.Message, error) {
	profile, ok := variant.Profile()
	if !ok {
		return nil, fmt.Errorf("%w: sua %d", tlv.ErrUnsupportedVariant, int(variant))
	}
	return tlv.DecodeMessage(wire, profile, opts)
}
