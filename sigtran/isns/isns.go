// Package isns decodes Internet Storage Name Service PDUs.
package isns

import (
	"fmt"

	"github.com/usnistgov/sigtran-tlv/sigtran/an"
	"github.com/usnistgov/sigtran-tlv/sigtran/tlv"
)

// HeaderLen is the size of the iSNSP header.
const HeaderLen = 12

var flagBits = []tlv.Bit{
	{Mask: an.IsnsFlagClient, Name: "Client"},
	{Mask: an.IsnsFlagServer, Name: "Server"},
	{Mask: an.IsnsFlagAuth, Name: "Auth"},
	{Mask: an.IsnsFlagReplace, Name: "Replace"},
	{Mask: an.IsnsFlagLastPDU, Name: "Last PDU"},
	{Mask: an.IsnsFlagFirstPDU, Name: "First PDU"},
}

// PDU is a decoded iSNSP PDU.
type PDU struct {
	Version    uint16
	FunctionID uint16
	Name       string
	// Length is the declared payload length, excluding the header.
	Length        uint16
	Flags         tlv.Bitmask
	TransactionID uint16
	SequenceID    uint16

	// Status is the error status of a response, nil in a request.
	Status *tlv.Scalar
	// Heartbeat is the fixed payload of a Heartbeat message.
	Heartbeat tlv.Struct
	// Attributes are the attributes in wire order.
	Attributes []tlv.Parameter

	wireLen int
}

// IsResponse determines whether the function ID indicates a response.
func (pdu PDU) IsResponse() bool {
	return pdu.FunctionID&an.IsnsResponse != 0
}

// LengthMismatch determines whether the declared payload length differs from the buffer length.
func (pdu PDU) LengthMismatch() bool {
	return int(pdu.Length)+HeaderLen != pdu.wireLen
}

// Find returns the first attribute with the given tag.
func (pdu PDU) Find(tag uint32) (p tlv.Parameter, ok bool) {
	return tlv.List(pdu.Attributes).Find(tag)
}

// Params returns the attributes.
func (pdu PDU) Params() []tlv.Parameter {
	return pdu.Attributes
}

func (pdu PDU) String() string {
	return "iSNS " + pdu.Name
}

// Decode decodes an iSNSP PDU.
//
// If the header cannot be read, it returns a nil PDU and an error wrapping tlv.ErrTruncated.
// If the version is not 1, it returns the header and a *tlv.VersionError.
// Otherwise, it returns the attributes decoded so far alongside any error.
func Decode(wire []byte, opts tlv.Options) (pdu *PDU, e error) {
	c := tlv.NewCursor(wire)
	hdr, e := c.Sub(HeaderLen)
	if e != nil {
		return nil, e
	}

	pdu = &PDU{wireLen: len(wire)}
	pdu.Version, _ = hdr.ReadU16()
	pdu.FunctionID, _ = hdr.ReadU16()
	pdu.Length, _ = hdr.ReadU16()
	flags, _ := hdr.ReadU16()
	pdu.Flags = tlv.Bitmask{Width: 2, Raw: uint64(flags), Bits: flagBits}
	pdu.TransactionID, _ = hdr.ReadU16()
	pdu.SequenceID, _ = hdr.ReadU16()
	pdu.Name = an.ISNSFunctionString(pdu.FunctionID)

	if pdu.Version != an.ISNSVersion {
		return pdu, &tlv.VersionError{
			Protocol:  "iSNS",
			Variant:   Table.Name(),
			Version:   uint(pdu.Version),
			Supported: []uint{an.ISNSVersion},
		}
	}

	body := c
	if int(pdu.Length) < c.Remaining() {
		body, _ = c.Sub(int(pdu.Length))
	}

	if pdu.IsResponse() {
		status, e := body.ReadU32()
		if e != nil {
			return pdu, fmt.Errorf("status: %w", e)
		}
		pdu.Status = &tlv.Scalar{Width: 4, Uint: uint64(status), Name: an.ISNSStatusNames[uint64(status)]}
	}

	d := tlv.NewDecoder(Table, opts)
	if pdu.FunctionID == an.IsnsHeartbeat {
		v, e := asHeartbeat.Decode(d, &body)
		pdu.Heartbeat = v.(tlv.Struct)
		if e != nil {
			return pdu, fmt.Errorf("heartbeat: %w", e)
		}
	}

	pdu.Attributes, e = d.DecodeList(&body)
	return pdu, e
}
