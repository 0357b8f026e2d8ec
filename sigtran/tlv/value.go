package tlv

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"inet.af/netaddr"
)

// Kind identifies the variant of a Value.
type Kind uint8

// Value kinds.
const (
	KindScalar Kind = iota + 1
	KindBitmask
	KindText
	KindAddress
	KindOpaque
	KindList
	KindEmbedded
	KindScalarList
	KindStruct
	KindRecords
)

var kindNames = map[Kind]string{
	KindScalar:     "scalar",
	KindBitmask:    "bitmask",
	KindText:       "text",
	KindAddress:    "address",
	KindOpaque:     "opaque",
	KindList:       "list",
	KindEmbedded:   "embedded",
	KindScalarList: "scalar-list",
	KindStruct:     "struct",
	KindRecords:    "records",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return strconv.Itoa(int(k))
}

// Value is the decoded value of a parameter.
// Concrete types are Scalar, Bitmask, Text, Address, Opaque, List, Embedded, ScalarList, Struct, Records.
type Value interface {
	Kind() Kind
}

// Scalar is a fixed-width unsigned integer.
type Scalar struct {
	Width int
	Uint  uint64
	// Name is the assigned-number name of Uint, empty if unassigned or not an enumeration.
	Name string
}

// Kind returns KindScalar.
func (Scalar) Kind() Kind {
	return KindScalar
}

func (v Scalar) String() string {
	if v.Name != "" {
		return fmt.Sprintf("%s (%d)", v.Name, v.Uint)
	}
	return strconv.FormatUint(v.Uint, 10)
}

// Bit names one bit (or a group of bits) of a Bitmask.
type Bit struct {
	Mask uint64
	Name string
}

// Bitmask is a fixed-width integer with named bits.
// Unknown and reserved bits are preserved in Raw.
type Bitmask struct {
	Width int
	Raw   uint64
	Bits  []Bit
}

// Kind returns KindBitmask.
func (Bitmask) Kind() Kind {
	return KindBitmask
}

// IsSet determines whether all bits in mask are set.
func (v Bitmask) IsSet(mask uint64) bool {
	return mask != 0 && v.Raw&mask == mask
}

// Has determines whether the named bit is set.
func (v Bitmask) Has(name string) bool {
	for _, bit := range v.Bits {
		if bit.Name == name {
			return v.IsSet(bit.Mask)
		}
	}
	return false
}

// Names returns names of set bits.
func (v Bitmask) Names() (names []string) {
	for _, bit := range v.Bits {
		if v.IsSet(bit.Mask) {
			names = append(names, bit.Name)
		}
	}
	return names
}

// Unknown returns set bits that have no name.
func (v Bitmask) Unknown() uint64 {
	known := uint64(0)
	for _, bit := range v.Bits {
		known |= bit.Mask
	}
	return v.Raw &^ known
}

func (v Bitmask) String() string {
	return fmt.Sprintf("0x%0*X [%s]", v.Width*2, v.Raw, strings.Join(v.Names(), ","))
}

// Text is a character string.
// Raw is preserved byte-for-byte; Lossy is set if Raw is not valid UTF-8.
type Text struct {
	Raw   []byte
	Lossy bool
}

// Kind returns KindText.
func (Text) Kind() Kind {
	return KindText
}

// String returns the text.
// If the text is lossy, invalid octets are written as \xNN escapes.
func (v Text) String() string {
	if !v.Lossy {
		return string(v.Raw)
	}
	var b strings.Builder
	for s := v.Raw; len(s) > 0; {
		r, size := utf8.DecodeRune(s)
		if r == utf8.RuneError && size <= 1 {
			fmt.Fprintf(&b, "\\x%02X", s[0])
			s = s[1:]
			continue
		}
		b.Write(s[:size])
		s = s[size:]
	}
	return b.String()
}

// AddressFamily identifies the variant of an Address.
type AddressFamily uint8

// Address families.
const (
	AddressIPv4 AddressFamily = iota + 1
	AddressIPv6
	AddressPointCode
	AddressGlobalTitle
)

func (af AddressFamily) String() string {
	switch af {
	case AddressIPv4:
		return "ipv4"
	case AddressIPv6:
		return "ipv6"
	case AddressPointCode:
		return "point-code"
	case AddressGlobalTitle:
		return "global-title"
	}
	return strconv.Itoa(int(af))
}

// PointCode is an SS7 signalling point code with its mask or reserved octet.
type PointCode struct {
	Mask uint8
	Code uint32
}

func (pc PointCode) String() string {
	if pc.Mask == 0 {
		return strconv.FormatUint(uint64(pc.Code), 10)
	}
	return fmt.Sprintf("%d/mask=%d", pc.Code, pc.Mask)
}

// ITU returns the point code in ITU 3-8-3 notation.
func (pc PointCode) ITU() string {
	return fmt.Sprintf("%d-%d-%d", (pc.Code>>11)&0x07, (pc.Code>>3)&0xFF, pc.Code&0x07)
}

// GlobalTitle is an SCCP global title.
type GlobalTitle struct {
	Indicator       uint8
	TranslationType uint8
	NumberingPlan   uint8
	NatureOfAddress uint8
	Digits          string
}

func (gt GlobalTitle) String() string {
	return fmt.Sprintf("gti=%d tt=%d np=%d nai=%d digits=%s",
		gt.Indicator, gt.TranslationType, gt.NumberingPlan, gt.NatureOfAddress, gt.Digits)
}

// Address is a network or signalling address.
// Only the field selected by Family is meaningful.
type Address struct {
	Family      AddressFamily
	IP          netaddr.IP
	PointCode   PointCode
	GlobalTitle GlobalTitle
}

// Kind returns KindAddress.
func (Address) Kind() Kind {
	return KindAddress
}

func (v Address) String() string {
	switch v.Family {
	case AddressIPv4, AddressIPv6:
		return v.IP.String()
	case AddressPointCode:
		return v.PointCode.String()
	case AddressGlobalTitle:
		return v.GlobalTitle.String()
	}
	return "invalid address"
}

// Opaque is a value that is not decoded further.
type Opaque []byte

// Kind returns KindOpaque.
func (Opaque) Kind() Kind {
	return KindOpaque
}

// List is a nested parameter list.
type List []Parameter

// Kind returns KindList.
func (List) Kind() Kind {
	return KindList
}

// Find returns the first parameter with the given tag.
func (v List) Find(tag uint32) (p Parameter, ok bool) {
	for _, param := range v {
		if param.Tag == tag {
			return param, true
		}
	}
	return Parameter{}, false
}

// Embedded is a payload of another protocol, handed to an external decoder.
type Embedded struct {
	// Offset is the absolute offset of the payload in the message buffer.
	Offset int
	// Length is the payload length.
	Length int
	// Hint names the protocol of the payload.
	Hint string
	// Payload is the payload octets.
	Payload []byte
}

// Kind returns KindEmbedded.
func (Embedded) Kind() Kind {
	return KindEmbedded
}

// ScalarList is a sequence of same-width integers.
type ScalarList struct {
	Width  int
	Values []uint64
}

// Kind returns KindScalarList.
func (ScalarList) Kind() Kind {
	return KindScalarList
}

// Field is a named member of a Struct.
type Field struct {
	Name  string
	Value Value
}

// Struct is a parameter value with named fields in wire order.
type Struct []Field

// Kind returns KindStruct.
func (Struct) Kind() Kind {
	return KindStruct
}

// Get returns the value of a named field.
func (v Struct) Get(name string) (value Value, ok bool) {
	for _, f := range v {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Uint returns the integer of a named Scalar or Bitmask field.
func (v Struct) Uint(name string) (n uint64, ok bool) {
	switch value, _ := v.Get(name); value := value.(type) {
	case Scalar:
		return value.Uint, true
	case Bitmask:
		return value.Raw, true
	}
	return 0, false
}

// Records is a sequence of fixed-size records.
type Records []Value

// Kind returns KindRecords.
func (Records) Kind() Kind {
	return KindRecords
}
