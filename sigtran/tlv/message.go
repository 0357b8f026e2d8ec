package tlv

import (
	"golang.org/x/exp/slices"
)

// CommonHeaderLen is the size of the M3UA/SUA common message header.
const CommonHeaderLen = 8

// Profile describes a message format built on the common header.
type Profile struct {
	// Protocol is the protocol name, such as "M3UA".
	Protocol string
	// Versions lists accepted header versions.
	Versions []uint8
	// Table is the parameter tag table.
	Table *Table
	// MessageName returns the name of a message class and type.
	MessageName func(class, typ uint8) string
}

// Message is a message with the common header: version, reserved, class, type, 32-bit length.
type Message struct {
	Protocol string
	Variant  string
	Name     string

	Version  uint8
	Reserved uint8
	Class    uint8
	Type     uint8
	// Length is the declared message length, including the header.
	Length uint32

	Parameters []Parameter

	wireLen int
}

// LengthMismatch determines whether the declared length differs from the buffer length.
func (m Message) LengthMismatch() bool {
	return int64(m.Length) != int64(m.wireLen)
}

// Params returns the top-level parameters.
func (m Message) Params() []Parameter {
	return m.Parameters
}

func (m Message) String() string {
	return m.Protocol + " " + m.Name
}

// Find returns the first top-level parameter with the given tag.
func (m Message) Find(tag uint32) (p Parameter, ok bool) {
	return List(m.Parameters).Find(tag)
}

// DecodeMessage decodes a message with the common header.
//
// If the header cannot be read, it returns a nil Message and an error wrapping ErrTruncated.
// If the version is not accepted, it returns the header with no parameters and a *VersionError.
// If a parameter fails to decode, it returns the parameters decoded so far and a *ParameterError.
func DecodeMessage(wire []byte, profile Profile, opts Options) (m *Message, e error) {
	c := NewCursor(wire)
	hdr, e := c.Sub(CommonHeaderLen)
	if e != nil {
		return nil, e
	}

	m = &Message{
		Protocol: profile.Protocol,
		Variant:  profile.Table.Name(),
		wireLen:  len(wire),
	}
	m.Version, _ = hdr.ReadU8()
	m.Reserved, _ = hdr.ReadU8()
	m.Class, _ = hdr.ReadU8()
	m.Type, _ = hdr.ReadU8()
	m.Length, _ = hdr.ReadU32()
	if profile.MessageName != nil {
		m.Name = profile.MessageName(m.Class, m.Type)
	}

	if !slices.Contains(profile.Versions, m.Version) {
		ve := &VersionError{Protocol: profile.Protocol, Variant: m.Variant, Version: uint(m.Version)}
		for _, v := range profile.Versions {
			ve.Supported = append(ve.Supported, uint(v))
		}
		return m, ve
	}

	body := c
	if m.Length >= CommonHeaderLen && int64(m.Length) < int64(len(wire)) {
		body, _ = c.Sub(int(m.Length) - CommonHeaderLen)
	}

	d := NewDecoder(profile.Table, opts)
	m.Parameters, e = d.DecodeList(&body)
	return m, e
}
