package tlv_test

import (
	"testing"

	"github.com/usnistgov/sigtran-tlv/sigtran/an"
	"github.com/usnistgov/sigtran-tlv/sigtran/tlv"
)

var testProfile = tlv.Profile{
	Protocol:    "TEST",
	Versions:    []uint8{1},
	Table:       testTable,
	MessageName: an.M3UAMessageString,
}

func TestMessageHeader(t *testing.T) {
	assert, require := makeAR(t)

	m, e := tlv.DecodeMessage(bytesFromHex("01 00 03 03 00000008"), testProfile, tlv.Options{})
	require.NoError(e)
	assert.Equal("TEST", m.Protocol)
	assert.Equal("test", m.Variant)
	assert.EqualValues(1, m.Version)
	assert.EqualValues(an.ClassASPSM, m.Class)
	assert.EqualValues(an.TypeBEAT, m.Type)
	assert.EqualValues(8, m.Length)
	assert.Equal("BEAT", m.Name)
	assert.Len(m.Parameters, 0)
	assert.False(m.LengthMismatch())
}

func TestMessageErrors(t *testing.T) {
	assert, require := makeAR(t)

	m, e := tlv.DecodeMessage(bytesFromHex("01 00 03"), testProfile, tlv.Options{})
	assert.Nil(m)
	assert.ErrorIs(e, tlv.ErrTruncated)

	m, e = tlv.DecodeMessage(bytesFromHex("02 00 03 03 00000010 0006 0008 00000001"), testProfile, tlv.Options{})
	assert.ErrorIs(e, tlv.ErrUnsupportedVersion)
	var ve *tlv.VersionError
	require.ErrorAs(e, &ve)
	assert.EqualValues(2, ve.Version)
	assert.Equal([]uint{1}, ve.Supported)
	require.NotNil(m)
	assert.Equal("BEAT", m.Name)
	assert.Len(m.Parameters, 0)

	m, e = tlv.DecodeMessage(bytesFromHex("01 00 01 01 00000018 0006 0008 00000001 020B 0008 0000"), testProfile, tlv.Options{})
	assert.ErrorIs(e, tlv.ErrTruncatedParameter)
	require.NotNil(m)
	require.Len(m.Parameters, 2)
	assert.EqualValues(tagRC, m.Parameters[0].Tag)
	assert.Equal(8, m.Parameters[0].Offset)
	assert.EqualValues(tagDPC, m.Parameters[1].Tag)
	assert.Equal(16, m.Parameters[1].Offset)
	assert.True(m.LengthMismatch())
}

func TestMessageLengthMismatch(t *testing.T) {
	assert, require := makeAR(t)

	// declared length is shorter than buffer: trailing octets are ignored
	m, e := tlv.DecodeMessage(bytesFromHex("01 00 03 03 00000010 0006 0008 00000001 DEADBEEF"), testProfile, tlv.Options{})
	require.NoError(e)
	assert.True(m.LengthMismatch())
	require.Len(m.Parameters, 1)
	p, ok := m.Find(tagRC)
	assert.True(ok)
	assert.Equal(tlv.ScalarList{Width: 4, Values: []uint64{1}}, p.Value)
	_, ok = m.Find(tagDPC)
	assert.False(ok)

	// declared length exceeds buffer: the whole buffer is decoded
	m, e = tlv.DecodeMessage(bytesFromHex("01 00 03 03 00000040 0006 0008 00000001"), testProfile, tlv.Options{})
	require.NoError(e)
	assert.True(m.LengthMismatch())
	assert.Len(m.Parameters, 1)
}
