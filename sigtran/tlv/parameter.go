package tlv

// Parameter is a decoded TLV parameter.
type Parameter struct {
	Tag  uint32
	Name string
	// Offset is the absolute offset of the parameter header in the message buffer.
	Offset int
	// Length is the value length, excluding header and padding.
	Length int
	// Padding is the number of padding octets that follow the value, 0 to 3.
	Padding int
	Value   Value
	// Extra contains value octets that the decode strategy did not consume.
	Extra []byte
	// Malformed, if not nil, is a *ParameterError describing why the value could not be fully decoded.
	Malformed error
}

// Size returns header, value and padding length under the given framing.
func (p Parameter) Size(framing Framing) int {
	return framing.HeaderLen() + p.Length + p.Padding
}
