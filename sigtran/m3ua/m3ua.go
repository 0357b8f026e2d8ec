// Package m3ua decodes MTP3-User Adaptation Layer messages.
package m3ua

import (
	"fmt"
	"strings"

	"github.com/usnistgov/sigtran-tlv/sigtran/an"
	"github.com/usnistgov/sigtran-tlv/sigtran/tlv"
)

// Variant selects an M3UA tag numbering.
type Variant int

// Variants.
const (
	// V10 is the numbering of draft-ietf-sigtran-m3ua-10 and later, including RFC 4666.
	V10 Variant = iota
	// V6 is the flat numbering of draft-ietf-sigtran-m3ua-06 and earlier.
	V6
)

var variantTables = map[Variant]*tlv.Table{
	V10: TableV10,
	V6:  TableV6,
}

// Table returns the tag table of this variant, or nil if the variant is invalid.
func (v Variant) Table() *tlv.Table {
	return variantTables[v]
}

func (v Variant) String() string {
	if t := v.Table(); t != nil {
		return t.Name()
	}
	return fmt.Sprintf("m3ua-%d", int(v))
}

// ParseVariant parses a variant name such as "v10" or "m3ua-v6".
func ParseVariant(s string) (Variant, error) {
	name := strings.TrimPrefix(strings.ToLower(s), "m3ua-")
	for v, t := range variantTables {
		if strings.TrimPrefix(t.Name(), "m3ua-") == name {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: m3ua %q", tlv.ErrUnsupportedVariant, s)
}

// Profile returns the message profile of a variant.
func (v Variant) Profile() (p tlv.Profile, ok bool) {
	t := v.Table()
	if t == nil {
		return p, false
	}
	return tlv.Profile{
		Protocol:    "M3UA",
		Versions:    []uint8{1},
		Table:       t,
		MessageName: an.M3UAMessageString,
	}, true
}

// Decode decodes an M3UA message.
// On error, a partially decoded message may be returned alongside the error.
func Decode(wire []byte, variant Variant, opts tlv.Options) (*tlv.Message, error) {
	profile, ok := variant.Profile()
	if !ok {
		return nil, fmt.Errorf("%w: m3ua %d", tlv.ErrUnsupportedVariant, int(variant))
	}
	return tlv.DecodeMessage(wire, profile, opts)
}
