package sigtran_test

import (
	"encoding/json"
	"testing"

	"github.com/usnistgov/sigtran-tlv/core/testenv"
	"github.com/usnistgov/sigtran-tlv/sigtran"
	"github.com/usnistgov/sigtran-tlv/sigtran/isns"
	"github.com/usnistgov/sigtran-tlv/sigtran/m3ua"
	"github.com/usnistgov/sigtran-tlv/sigtran/sua"
	"github.com/usnistgov/sigtran-tlv/sigtran/tlv"
)

var (
	makeAR       = testenv.MakeAR
	bytesFromHex = testenv.BytesFromHex
)

func TestVariant(t *testing.T) {
	assert, require := makeAR(t)

	for _, v := range sigtran.Variants() {
		parsed, e := sigtran.ParseVariant(v.String())
		require.NoError(e, v)
		assert.Equal(v, parsed)
	}
	assert.Equal("m3ua", sigtran.M3UAv6.Protocol())
	assert.Equal("sua", sigtran.SUALight.Protocol())
	assert.Equal("isns", sigtran.ISNS.Protocol())

	_, e := sigtran.ParseVariant("m2pa")
	assert.ErrorIs(e, tlv.ErrUnsupportedVariant)

	var cfg struct {
		Variant sigtran.Variant `json:"variant"`
	}
	require.NoError(json.Unmarshal([]byte(`{"variant":"SUA-LIGHT"}`), &cfg))
	assert.Equal(sigtran.SUALight, cfg.Variant)
	j, e := json.Marshal(cfg)
	require.NoError(e)
	assert.Equal(`{"variant":"sua-light"}`, string(j))
	assert.Error(json.Unmarshal([]byte(`{"variant":"x"}`), &cfg))
	_, e = json.Marshal(struct{ V sigtran.Variant }{sigtran.Variant(99)})
	assert.Error(e)
}

func TestSelect(t *testing.T) {
	assert, _ := makeAR(t)

	v, e := sigtran.Select("M3UA", m3ua.V6, sua.Light)
	assert.NoError(e)
	assert.Equal(sigtran.M3UAv6, v)
	v, e = sigtran.Select("sua", m3ua.V6, sua.Light)
	assert.NoError(e)
	assert.Equal(sigtran.SUALight, v)
	v, e = sigtran.Select("isns", m3ua.V10, sua.Ietf08)
	assert.NoError(e)
	assert.Equal(sigtran.ISNS, v)
	_, e = sigtran.Select("m2pa", m3ua.V10, sua.Ietf08)
	assert.ErrorIs(e, tlv.ErrUnsupportedVariant)
}

func TestDecode(t *testing.T) {
	assert, require := makeAR(t)

	beat := bytesFromHex("01 00 03 03 00000008")
	for _, v := range []sigtran.Variant{sigtran.M3UAv10, sigtran.M3UAv6} {
		pdu, e := sigtran.Decode(beat, v, tlv.Options{})
		require.NoError(e, v)
		assert.Equal("M3UA BEAT", pdu.String())
		assert.Len(pdu.Params(), 0)
	}

	pdu, e := sigtran.Decode(bytesFromHex("01 00 07 01 00000010 0006 0008 00000001"), sigtran.SUALight, tlv.Options{})
	require.NoError(e)
	assert.Equal("SUA CLDT", pdu.String())
	assert.Len(pdu.Params(), 1)
	assert.Equal("sua-light", pdu.(*tlv.Message).Variant)

	pdu, e = sigtran.Decode(bytesFromHex("0001 000E 0000 4C00 0000 0000"), sigtran.ISNS, tlv.Options{})
	assert.ErrorIs(e, tlv.ErrTruncated)
	require.NotNil(pdu)
	assert.IsType(&isns.PDU{}, pdu)

	pdu, e = sigtran.Decode(bytesFromHex("01 00"), sigtran.SUAIetf08, tlv.Options{})
	assert.Nil(pdu)
	assert.ErrorIs(e, tlv.ErrTruncated)

	pdu, e = sigtran.Decode(bytesFromHex("00"), sigtran.ISNS, tlv.Options{})
	assert.Nil(pdu)
	assert.ErrorIs(e, tlv.ErrTruncated)

	_, e = sigtran.Decode(beat, sigtran.Variant(-1), tlv.Options{})
	assert.ErrorIs(e, tlv.ErrUnsupportedVariant)
}
