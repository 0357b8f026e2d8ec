package tlv_test

import (
	"encoding/binary"

	"github.com/usnistgov/sigtran-tlv/core/testenv"
	"github.com/usnistgov/sigtran-tlv/sigtran/an"
	"github.com/usnistgov/sigtran-tlv/sigtran/tlv"
)

var (
	makeAR       = testenv.MakeAR
	bytesFromHex = testenv.BytesFromHex
	bytesEqual   = testenv.BytesEqual
)

const (
	tagInfo        = 0x0004
	tagRC          = 0x0006
	tagTrafficMode = 0x000B
	tagBroken      = 0x0099
	tagRoutingKey  = 0x0207
	tagDPC         = 0x020B
	tagData        = 0x0210
	tagGT          = 0x8001
	tagIPv4        = 0x8004
	tagUnknown     = 0x7777
)

var testTable = tlv.NewTable("test", tlv.FramingSigtran,
	tlv.Entry{Tag: tagInfo, Name: "Info String", Strategy: tlv.AsText},
	tlv.Entry{Tag: tagRC, Name: "Routing Context", Strategy: tlv.AsUintList(4)},
	tlv.Entry{Tag: tagTrafficMode, Name: "Traffic Mode Type", Strategy: tlv.AsEnum(4, an.TrafficModeNames)},
	tlv.Entry{Tag: tagBroken, Name: "Broken"},
	tlv.Entry{Tag: tagRoutingKey, Name: "Routing Key", Strategy: tlv.AsNested(nil)},
	tlv.Entry{Tag: tagDPC, Name: "Destination Point Code", Strategy: tlv.AsPointCode},
	tlv.Entry{Tag: tagData, Name: "Protocol Data", Strategy: tlv.AsEmbedded(an.HintMTP3)},
	tlv.Entry{Tag: tagGT, Name: "Global Title", Strategy: tlv.AsGlobalTitle},
	tlv.Entry{Tag: tagIPv4, Name: "IPv4 Address", Strategy: tlv.AsIPv4},
	tlv.Entry{Tag: 0x0050, Name: "Flags", Strategy: tlv.AsFlags(4, tlv.Bit{Mask: 0x01, Name: "first"}, tlv.Bit{Mask: 0x04, Name: "third"})},
	tlv.Entry{Tag: 0x0060, Name: "IP16", Strategy: tlv.AsIP16},
	tlv.Entry{Tag: 0x0061, Name: "User Cause", Strategy: tlv.AsStruct(
		tlv.F("Cause", 2, tlv.AsEnum(2, an.UserCauseNames)),
		tlv.F("User", 2, tlv.AsEnum(2, an.SiNames)),
	)},
	tlv.Entry{Tag: 0x0062, Name: "Affected Point Code", Strategy: tlv.AsRecords(4, tlv.AsPointCode)},
	tlv.Entry{Tag: 0x0063, Name: "Name", Strategy: tlv.AsCString},
	tlv.Entry{Tag: 0x0064, Name: "SSN", Strategy: tlv.AsStruct(tlv.Reserved(3), tlv.F("SSN", 1, tlv.AsUint(1)))},
)

// encodeParam encodes an M3UA/SUA style parameter with zero padding.
func encodeParam(tag uint16, value []byte) (wire []byte) {
	wire = binary.BigEndian.AppendUint16(nil, tag)
	wire = binary.BigEndian.AppendUint16(wire, uint16(4+len(value)))
	wire = append(wire, value...)
	for len(wire)%4 != 0 {
		wire = append(wire, 0)
	}
	return wire
}

func concat(parts ...[]byte) (wire []byte) {
	for _, part := range parts {
		wire = append(wire, part...)
	}
	return wire
}

func decodeList(wire []byte, opts tlv.Options) ([]tlv.Parameter, error) {
	c := tlv.NewCursor(wire)
	return tlv.NewDecoder(testTable, opts).DecodeList(&c)
}
