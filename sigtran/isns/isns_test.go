package isns_test

import (
	"testing"

	"github.com/usnistgov/sigtran-tlv/core/testenv"
	"github.com/usnistgov/sigtran-tlv/sigtran/an"
	"github.com/usnistgov/sigtran-tlv/sigtran/isns"
	"github.com/usnistgov/sigtran-tlv/sigtran/tlv"
)

var (
	makeAR       = testenv.MakeAR
	bytesFromHex = testenv.BytesFromHex
)

const devAttrReg = `
0001 0001 0048 8C00 0007 0000
00000020 00000008 69716E2E78000000
00000002 00000004 00000002
00000010 00000010 00000000 00000000 0000FFFF C0000201
00000011 00000004 0000 0CBC
00000000 00000000
`

func TestRequest(t *testing.T) {
	assert, require := makeAR(t)

	pdu, e := isns.Decode(bytesFromHex(devAttrReg), tlv.Options{})
	require.NoError(e)
	assert.EqualValues(1, pdu.Version)
	assert.EqualValues(an.IsnsDevAttrReg, pdu.FunctionID)
	assert.Equal("DevAttrReg", pdu.Name)
	assert.Equal("iSNS DevAttrReg", pdu.String())
	assert.False(pdu.IsResponse())
	assert.Nil(pdu.Status)
	assert.EqualValues(7, pdu.TransactionID)
	assert.Equal([]string{"Client", "Last PDU", "First PDU"}, pdu.Flags.Names())
	assert.False(pdu.LengthMismatch())
	require.Len(pdu.Attributes, 5)

	name := pdu.Attributes[0]
	assert.Equal("iSCSI Name", name.Name)
	assert.Equal(12, name.Offset)
	assert.Equal(8, name.Length)
	assert.Equal(0, name.Padding)
	assert.Equal("iqn.x", name.Value.(tlv.Text).String())

	proto, ok := pdu.Find(isns.TagEntityProtocol)
	require.True(ok)
	assert.Equal(tlv.Scalar{Width: 4, Uint: 2, Name: "iSCSI"}, proto.Value)

	ip := pdu.Attributes[2].Value.(tlv.Address)
	assert.Equal(tlv.AddressIPv4, ip.Family)
	assert.Equal("192.0.2.1", ip.String())

	port := pdu.Attributes[3].Value.(tlv.Struct)
	transport, _ := port.Get("Transport")
	assert.False(transport.(tlv.Bitmask).Has("UDP"))
	number, _ := port.Uint("Port")
	assert.EqualValues(3260, number)

	delim := pdu.Attributes[4]
	assert.Equal("Delimiter", delim.Name)
	assert.Equal(0, delim.Length)
	assert.Len(delim.Value.(tlv.Opaque), 0)
}

func TestQueryOperatingAttributes(t *testing.T) {
	assert, require := makeAR(t)

	pdu, e := isns.Decode(bytesFromHex(`
		0001 0002 0038 8C00 0008 0000
		00000020 00000008 69716E2E78000000
		00000000 00000000
		00000021 00000000
		00000020 00000000
		00000022 00000000
		00000024 00000000
	`), tlv.Options{})
	require.NoError(e)
	assert.Equal("DevAttrQry", pdu.Name)
	require.Len(pdu.Attributes, 6)

	tags := []uint32{isns.TagISCSINodeType, isns.TagISCSIName, isns.TagISCSIAlias, isns.TagISCSINodeIndex}
	for i, tag := range tags {
		attr := pdu.Attributes[2+i]
		assert.EqualValues(tag, attr.Tag, i)
		assert.Equal(0, attr.Length, i)
		assert.NoError(attr.Malformed, i)
	}
	assert.Equal("iSCSI Node Type", pdu.Attributes[2].Name)
	assert.Equal(44, pdu.Attributes[3].Offset)
}

func TestResponse(t *testing.T) {
	assert, require := makeAR(t)

	pdu, e := isns.Decode(bytesFromHex("0001 8001 0010 4C00 0007 0000 00000009 00000002 00000004 00000003"), tlv.Options{})
	require.NoError(e)
	assert.True(pdu.IsResponse())
	assert.Equal("DevAttrRegRsp", pdu.Name)
	require.NotNil(pdu.Status)
	assert.Equal(tlv.Scalar{Width: 4, Uint: 9, Name: "No Such Entry"}, *pdu.Status)
	require.Len(pdu.Attributes, 1)
	assert.Equal("iFCP", pdu.Attributes[0].Value.(tlv.Scalar).Name)

	_, e = isns.Decode(bytesFromHex("0001 8001 0002 4C00 0007 0000 0000"), tlv.Options{})
	assert.ErrorIs(e, tlv.ErrTruncated)
}

func TestHeartbeat(t *testing.T) {
	assert, require := makeAR(t)

	pdu, e := isns.Decode(bytesFromHex(`
		0001 000E 001C 4C00 0000 0000
		00000000 00000000 0000FFFF C0000201 0CDD 0CDE 0000000A 00000001
	`), tlv.Options{})
	require.NoError(e)
	assert.Equal("Heartbeat", pdu.Name)
	assert.Len(pdu.Attributes, 0)
	require.Len(pdu.Heartbeat, 5)
	udp, _ := pdu.Heartbeat.Uint("Heartbeat UDP Port")
	tcp, _ := pdu.Heartbeat.Uint("Heartbeat TCP Port")
	interval, _ := pdu.Heartbeat.Uint("Heartbeat Interval")
	assert.EqualValues(3293, udp)
	assert.EqualValues(3294, tcp)
	assert.EqualValues(10, interval)
}

func TestErrors(t *testing.T) {
	assert, require := makeAR(t)

	pdu, e := isns.Decode(bytesFromHex("0001 0001 00"), tlv.Options{})
	assert.Nil(pdu)
	assert.ErrorIs(e, tlv.ErrTruncated)

	pdu, e = isns.Decode(bytesFromHex("0002 0001 0000 8C00 0007 0000"), tlv.Options{})
	assert.ErrorIs(e, tlv.ErrUnsupportedVersion)
	require.NotNil(pdu)
	assert.Equal("DevAttrReg", pdu.Name)

	// second attribute declares more octets than present
	pdu, e = isns.Decode(bytesFromHex("0001 0001 0018 8C00 0007 0000 00000002 00000004 00000002 00000020 00000040 6971"), tlv.Options{})
	assert.ErrorIs(e, tlv.ErrTruncatedParameter)
	require.NotNil(pdu)
	require.Len(pdu.Attributes, 2)
	assert.Equal("iSCSI Name", pdu.Attributes[1].Name)
	assert.Equal(tlv.Opaque(bytesFromHex("6971")), pdu.Attributes[1].Value)
	assert.True(pdu.LengthMismatch())

	// unknown attribute
	pdu, e = isns.Decode(bytesFromHex("0001 0001 000C 8C00 0007 0000 00001234 00000004 DEADBEEF"), tlv.Options{})
	require.NoError(e)
	require.Len(pdu.Attributes, 1)
	assert.Equal(tlv.UnknownName, pdu.Attributes[0].Name)
	assert.Equal(tlv.Opaque(bytesFromHex("DEADBEEF")), pdu.Attributes[0].Value)
}

func TestTable(t *testing.T) {
	assert, _ := makeAR(t)

	assert.Equal(tlv.FramingISNS, isns.Table.Framing())
	for _, entry := range isns.Table.Entries() {
		assert.NotEmpty(entry.Name, entry.Tag)
		assert.NotNil(entry.Strategy, entry.Tag)
	}
}
