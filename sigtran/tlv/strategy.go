package tlv

import (
	"bytes"
	"unicode/utf8"

	"github.com/usnistgov/sigtran-tlv/sigtran/an"
	"inet.af/netaddr"
)

// Strategy decodes a parameter value.
// c is bounded to the value; octets left unread are reported in Parameter.Extra.
type Strategy interface {
	Decode(d *Decoder, c *Cursor) (Value, error)
}

// StrategyFunc is a function that implements Strategy.
type StrategyFunc func(d *Decoder, c *Cursor) (Value, error)

// Decode implements Strategy interface.
func (f StrategyFunc) Decode(d *Decoder, c *Cursor) (Value, error) {
	return f(d, c)
}

// AsOpaque captures the value verbatim.
var AsOpaque Strategy = StrategyFunc(func(d *Decoder, c *Cursor) (Value, error) {
	return Opaque(c.Rest()), nil
})

// AsText decodes the value as a character string.
var AsText Strategy = StrategyFunc(func(d *Decoder, c *Cursor) (Value, error) {
	return makeText(c.Rest()), nil
})

// AsCString decodes the value as a NUL-terminated, NUL-padded character string.
var AsCString Strategy = StrategyFunc(func(d *Decoder, c *Cursor) (Value, error) {
	raw := c.Rest()
	if i := bytes.IndexByte(raw, 0); i >= 0 {
		raw = raw[:i]
	}
	return makeText(raw), nil
})

func makeText(raw []byte) Text {
	return Text{Raw: raw, Lossy: !utf8.Valid(raw)}
}

type uintStrategy struct {
	width int
	names an.Names
}

func (s uintStrategy) Decode(d *Decoder, c *Cursor) (Value, error) {
	n, e := c.ReadUint(s.width)
	if e != nil {
		return nil, e
	}
	v := Scalar{Width: s.width, Uint: n}
	v.Name, _ = s.names.Lookup(n)
	return v, nil
}

// AsUint decodes the value as a fixed-width unsigned integer.
func AsUint(width int) Strategy {
	return uintStrategy{width: width}
}

// AsEnum decodes the value as a fixed-width unsigned integer with assigned names.
func AsEnum(width int, names an.Names) Strategy {
	return uintStrategy{width: width, names: names}
}

type flagsStrategy struct {
	width int
	bits  []Bit
}

func (s flagsStrategy) Decode(d *Decoder, c *Cursor) (Value, error) {
	n, e := c.ReadUint(s.width)
	if e != nil {
		return nil, e
	}
	return Bitmask{Width: s.width, Raw: n, Bits: s.bits}, nil
}

// AsFlags decodes the value as a fixed-width bitmask.
func AsFlags(width int, bits ...Bit) Strategy {
	return flagsStrategy{width: width, bits: bits}
}

// AsIPv4 decodes the value as an IPv4 address.
var AsIPv4 Strategy = StrategyFunc(func(d *Decoder, c *Cursor) (Value, error) {
	b, e := c.ReadBytes(4)
	if e != nil {
		return nil, e
	}
	return Address{Family: AddressIPv4, IP: netaddr.IPFrom4([4]byte(b))}, nil
})

// AsIPv6 decodes the value as an IPv6 address.
var AsIPv6 Strategy = StrategyFunc(func(d *Decoder, c *Cursor) (Value, error) {
	b, e := c.ReadBytes(16)
	if e != nil {
		return nil, e
	}
	return Address{Family: AddressIPv6, IP: netaddr.IPFrom16([16]byte(b))}, nil
})

// AsIP16 decodes a 16-octet field holding an IPv6 address or an IPv4-mapped IPv4 address.
var AsIP16 Strategy = StrategyFunc(func(d *Decoder, c *Cursor) (Value, error) {
	b, e := c.ReadBytes(16)
	if e != nil {
		return nil, e
	}
	ip := netaddr.IPFrom16([16]byte(b))
	if ip.Is4in6() {
		return Address{Family: AddressIPv4, IP: ip.Unmap()}, nil
	}
	return Address{Family: AddressIPv6, IP: ip}, nil
})

// AsPointCode decodes a 1-octet mask followed by a 3-octet point code.
var AsPointCode Strategy = StrategyFunc(func(d *Decoder, c *Cursor) (Value, error) {
	return readPointCode(c)
})

func readPointCode(c *Cursor) (Value, error) {
	mask, e := c.ReadU8()
	if e != nil {
		return nil, e
	}
	code, e := c.ReadU24()
	if e != nil {
		return nil, e
	}
	return Address{Family: AddressPointCode, PointCode: PointCode{Mask: mask, Code: code}}, nil
}

const bcdDigits = "0123456789ABCDEF"

// AsGlobalTitle decodes an SUA Global Title: 3 reserved octets, GTI, number of digits,
// translation type, numbering plan, nature of address, then BCD digits with low nibble first.
var AsGlobalTitle Strategy = StrategyFunc(func(d *Decoder, c *Cursor) (Value, error) {
	if e := c.Skip(3); e != nil {
		return nil, e
	}
	var hdr [5]uint8
	for i := range hdr {
		b, e := c.ReadU8()
		if e != nil {
			return nil, e
		}
		hdr[i] = b
	}
	nDigits := int(hdr[1])
	if limit := 2 * c.Remaining(); nDigits > limit {
		nDigits = limit
	}
	digits := make([]byte, 0, nDigits)
	for _, b := range c.Rest() {
		if len(digits) < nDigits {
			digits = append(digits, bcdDigits[b&0x0F])
		}
		if len(digits) < nDigits {
			digits = append(digits, bcdDigits[b>>4])
		}
	}
	return Address{
		Family: AddressGlobalTitle,
		GlobalTitle: GlobalTitle{
			Indicator:       hdr[0],
			TranslationType: hdr[2],
			NumberingPlan:   hdr[3],
			NatureOfAddress: hdr[4],
			Digits:          string(digits),
		},
	}, nil
})

type nestedStrategy struct {
	table *Table
}

func (s nestedStrategy) Decode(d *Decoder, c *Cursor) (Value, error) {
	list, e := d.DecodeNested(c, s.table)
	return List(list), e
}

// AsNested decodes the value as a nested parameter list.
// If table is nil, the enclosing table is used.
func AsNested(table *Table) Strategy {
	return nestedStrategy{table: table}
}

type embeddedStrategy struct {
	hint string
}

func (s embeddedStrategy) Decode(d *Decoder, c *Cursor) (Value, error) {
	return d.Embed(c, s.hint), nil
}

// AsEmbedded records the value as a payload of another protocol.
func AsEmbedded(hint string) Strategy {
	return embeddedStrategy{hint: hint}
}

type uintListStrategy struct {
	width int
}

func (s uintListStrategy) Decode(d *Decoder, c *Cursor) (Value, error) {
	v := ScalarList{Width: s.width, Values: make([]uint64, 0, c.Remaining()/s.width)}
	for c.Remaining() >= s.width {
		n, e := c.ReadUint(s.width)
		if e != nil {
			return nil, e
		}
		v.Values = append(v.Values, n)
	}
	return v, nil
}

// AsUintList decodes the value as a sequence of fixed-width integers.
// A partial trailing integer is left unread.
func AsUintList(width int) Strategy {
	return uintListStrategy{width: width}
}

type recordsStrategy struct {
	size int
	elem Strategy
}

func (s recordsStrategy) Decode(d *Decoder, c *Cursor) (Value, error) {
	v := make(Records, 0, c.Remaining()/s.size)
	for c.Remaining() >= s.size {
		sub, _ := c.Sub(s.size)
		elem, e := s.elem.Decode(d, &sub)
		if e != nil {
			return v, e
		}
		v = append(v, elem)
	}
	return v, nil
}

// AsRecords decodes the value as a sequence of fixed-size records.
// A partial trailing record is left unread.
func AsRecords(size int, elem Strategy) Strategy {
	return recordsStrategy{size: size, elem: elem}
}

// FieldSpec describes one member of a Struct.
type FieldSpec struct {
	// Name is the field name; an empty name marks a reserved field that is skipped.
	Name string
	// Size is the field size in octets; zero means the remainder of the value.
	Size int
	// Strategy decodes the field.
	Strategy Strategy
}

// F constructs a FieldSpec.
func F(name string, size int, s Strategy) FieldSpec {
	return FieldSpec{Name: name, Size: size, Strategy: s}
}

// Reserved constructs a FieldSpec for reserved octets.
func Reserved(size int) FieldSpec {
	return FieldSpec{Size: size}
}

type structStrategy []FieldSpec

func (s structStrategy) Decode(d *Decoder, c *Cursor) (Value, error) {
	v := make(Struct, 0, len(s))
	for _, spec := range s {
		size := spec.Size
		if size == 0 {
			size = c.Remaining()
		}
		sub, e := c.Sub(size)
		if e != nil {
			return v, e
		}
		if spec.Name == "" {
			continue
		}
		value, e := spec.Strategy.Decode(d, &sub)
		if value != nil {
			v = append(v, Field{Name: spec.Name, Value: value})
		}
		if e != nil {
			return v, e
		}
	}
	return v, nil
}

// AsStruct decodes the value as a sequence of named fields.
func AsStruct(fields ...FieldSpec) Strategy {
	return structStrategy(fields)
}

type qualifiedEnumStrategy struct {
	first, second           string
	firstWidth, secondWidth int
	firstNames              an.Names
	qualifiedNames          an.Names
}

func (s qualifiedEnumStrategy) Decode(d *Decoder, c *Cursor) (Value, error) {
	a, e := c.ReadUint(s.firstWidth)
	if e != nil {
		return nil, e
	}
	v := Struct{{Name: s.first, Value: Scalar{Width: s.firstWidth, Uint: a, Name: s.firstNames[a]}}}
	b, e := c.ReadUint(s.secondWidth)
	if e != nil {
		return v, e
	}
	return append(v, Field{Name: s.second, Value: Scalar{
		Width: s.secondWidth,
		Uint:  b,
		Name:  s.qualifiedNames[a<<(8*s.secondWidth)|b],
	}}), nil
}

// AsQualifiedEnum decodes two adjacent enumerations, where the meaning of the second depends on the first.
// qualifiedNames is keyed by the first value shifted left by the width of the second, OR'ed with the second value.
func AsQualifiedEnum(first string, firstWidth int, firstNames an.Names, second string, secondWidth int, qualifiedNames an.Names) Strategy {
	return qualifiedEnumStrategy{
		first:          first,
		second:         second,
		firstWidth:     firstWidth,
		secondWidth:    secondWidth,
		firstNames:     firstNames,
		qualifiedNames: qualifiedNames,
	}
}
