package tlv

// Framing describes the parameter header layout of a protocol family.
type Framing struct {
	// TagWidth is the size of the tag field in octets.
	TagWidth int
	// LengthWidth is the size of the length field in octets.
	LengthWidth int
	// LengthIncludesHeader indicates the wire length counts the header as well as the value.
	LengthIncludesHeader bool
}

// Parameter framings.
var (
	// FramingSigtran is used by M3UA and SUA: 16-bit tag, 16-bit length covering header and value.
	FramingSigtran = Framing{TagWidth: 2, LengthWidth: 2, LengthIncludesHeader: true}

	// FramingISNS is used by iSNS: 32-bit tag, 32-bit length covering value only.
	FramingISNS = Framing{TagWidth: 4, LengthWidth: 4, LengthIncludesHeader: false}
)

// HeaderLen returns the size of a parameter header.
func (f Framing) HeaderLen() int {
	return f.TagWidth + f.LengthWidth
}

// Padding returns the number of octets that align a TLV of given header and value length to 4 octets.
func Padding(headerLen, valueLen int) int {
	return (4 - (headerLen+valueLen)%4) % 4
}
