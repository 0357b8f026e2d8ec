package sua_test

import (
	"testing"

	"github.com/usnistgov/sigtran-tlv/core/testenv"
	"github.com/usnistgov/sigtran-tlv/sigtran/an"
	"github.com/usnistgov/sigtran-tlv/sigtran/sua"
	"github.com/usnistgov/sigtran-tlv/sigtran/tlv"
)

var (
	makeAR       = testenv.MakeAR
	bytesFromHex = testenv.BytesFromHex
)

const cldt = `
01 00 07 01 00000058
0006 0008 00000001
0115 0008 000000 81
0102 0018 0002 0003 8002 0008 00 000102 8003 0008 000000 08
0103 0018 0001 0004 8001 000F 000000 04 05 00 01 04 214305 00
0116 0008 00000000
010B 0007 AABBCC 00
`

func TestCLDT(t *testing.T) {
	assert, require := makeAR(t)

	var payloads []tlv.Embedded
	opts := tlv.Options{OnPayload: func(em tlv.Embedded) { payloads = append(payloads, em) }}
	m, e := sua.Decode(bytesFromHex(cldt), sua.Ietf08, opts)
	require.NoError(e)
	assert.Equal("SUA", m.Protocol)
	assert.Equal("sua-ietf08", m.Variant)
	assert.Equal("CLDT", m.Name)
	assert.False(m.LengthMismatch())
	require.Len(m.Parameters, 6)

	pc := m.Parameters[1].Value.(tlv.Struct)
	class, _ := pc.Uint(sua.FieldProtocolClass)
	assert.EqualValues(1, class)
	ret, _ := pc.Get(sua.FieldReturnOption)
	assert.True(ret.(tlv.Bitmask).Has("Return message on error"))

	src := m.Parameters[2]
	assert.Equal("Source Address", src.Name)
	st := src.Value.(tlv.Struct)
	ri, _ := st.Get(sua.FieldRoutingIndicator)
	assert.Equal("Route on SSN + PC", ri.(tlv.Scalar).Name)
	ai, _ := st.Get(sua.FieldAddressIndicator)
	assert.Equal([]string{"PC", "SSN"}, ai.(tlv.Bitmask).Names())
	params, _ := st.Get(sua.FieldAddressParameters)
	list := params.(tlv.List)
	require.Len(list, 2)
	assert.Equal("Point Code", list[0].Name)
	assert.Equal(tlv.PointCode{Code: 0x0102}, list[0].Value.(tlv.Address).PointCode)
	assert.Equal(32, list[0].Offset)
	ssn, _ := list[1].Value.(tlv.Struct).Get(sua.FieldSSN)
	assert.Equal(tlv.Scalar{Width: 1, Uint: 8, Name: "MSC"}, ssn)

	dst := m.Parameters[3].Value.(tlv.Struct)
	params, _ = dst.Get(sua.FieldAddressParameters)
	gt, ok := params.(tlv.List).Find(sua.TagGlobalTitle)
	require.True(ok)
	assert.Equal("12345", gt.Value.(tlv.Address).GlobalTitle.Digits)

	require.Len(payloads, 1)
	assert.Equal(84, payloads[0].Offset)
	assert.Equal(an.HintSCCPUser, payloads[0].Hint)
	data, ok := m.Find(sua.TagData)
	require.True(ok)
	assert.Equal(payloads[0], data.Value)
}

func TestLight(t *testing.T) {
	assert, require := makeAR(t)

	wire := bytesFromHex(`
		01 00 07 01 00000030
		0102 0018 0002 0003 0002 0008 00 000102 0003 0008 000000 08
		0003 0007 AABBCC 00
		000F 0008 00000002
	`)

	m, e := sua.Decode(wire, sua.Light, tlv.Options{})
	require.NoError(e)
	assert.Equal("sua-light", m.Variant)
	require.Len(m.Parameters, 3)
	params, _ := m.Parameters[0].Value.(tlv.Struct).Get(sua.FieldAddressParameters)
	list := params.(tlv.List)
	require.Len(list, 2)
	assert.Equal("Point Code", list[0].Name)
	assert.Equal("Subsystem Number", list[1].Name)
	assert.Equal("Data", m.Parameters[1].Name)
	assert.IsType(tlv.Embedded{}, m.Parameters[1].Value)
	assert.Equal(tlv.Scalar{Width: 4, Uint: 2, Name: "Congestion level 2"}, m.Parameters[2].Value)

	m, e = sua.Decode(wire, sua.Ietf08, tlv.Options{})
	require.NoError(e)
	params, _ = m.Parameters[0].Value.(tlv.Struct).Get(sua.FieldAddressParameters)
	list = params.(tlv.List)
	require.Len(list, 2)
	assert.Equal(tlv.UnknownName, list[0].Name)
	assert.Equal(tlv.UnknownName, m.Parameters[1].Name)
}

func TestConnectionOriented(t *testing.T) {
	assert, require := makeAR(t)

	wire := bytesFromHex(`
		01 00 08 05 00000030
		0104 0008 00000011
		0105 0008 00000022
		0106 0008 0000 03 05
		0107 0008 0000 04 03
		0117 0008 83 000ABC
	`)
	m, e := sua.Decode(wire, sua.Ietf08, tlv.Options{})
	require.NoError(e)
	assert.Equal("RELCO", m.Name)
	require.Len(m.Parameters, 5)

	assert.Equal(tlv.Scalar{Width: 4, Uint: 0x11}, m.Parameters[0].Value)

	cause := m.Parameters[2].Value.(tlv.Struct)
	ct, _ := cause.Get(sua.FieldCauseType)
	assert.Equal("Release Cause", ct.(tlv.Scalar).Name)
	cv, _ := cause.Uint(sua.FieldCauseValue)
	assert.EqualValues(5, cv)

	seq := m.Parameters[3].Value.(tlv.Struct)
	send, _ := seq.Get("Send Sequence Number")
	assert.True(send.(tlv.Bitmask).Has("More Data"))

	seg := m.Parameters[4].Value.(tlv.Struct)
	ind, _ := seg.Get(sua.FieldSegmentationInd)
	assert.True(ind.(tlv.Bitmask).Has("First"))
	assert.EqualValues(0x03, ind.(tlv.Bitmask).Unknown())
	ref, _ := seg.Uint(sua.FieldSegmentationRef)
	assert.EqualValues(0x000ABC, ref)
}

func TestVariant(t *testing.T) {
	assert, _ := makeAR(t)

	v, e := sua.ParseVariant("light")
	assert.NoError(e)
	assert.Equal(sua.Light, v)
	v, e = sua.ParseVariant("SUA-IETF08")
	assert.NoError(e)
	assert.Equal(sua.Ietf08, v)
	_, e = sua.ParseVariant("ietf07")
	assert.ErrorIs(e, tlv.ErrUnsupportedVariant)

	_, e = sua.Decode(bytesFromHex("01 00 03 03 00000008"), sua.Variant(-1), tlv.Options{})
	assert.ErrorIs(e, tlv.ErrUnsupportedVariant)
}

func TestAddressDepth(t *testing.T) {
	assert, _ := makeAR(t)

	// address parameters are one level deeper than the address itself
	wire := bytesFromHex("01 00 07 01 00000018 0102 0010 0002 0001 8002 0008 00 000102")
	_, e := sua.Decode(wire, sua.Ietf08, tlv.Options{MaxDepth: 1})
	assert.NoError(e)

	wire = bytesFromHex("01 00 07 01 0000001C 0111 0014 0102 0010 0002 0001 8002 0008 00 000102")
	_, e = sua.Decode(wire, sua.Ietf08, tlv.Options{MaxDepth: 1})
	assert.ErrorIs(e, tlv.ErrDepth)
	_, e = sua.Decode(wire, sua.Ietf08, tlv.Options{MaxDepth: 2})
	assert.NoError(e)
}
