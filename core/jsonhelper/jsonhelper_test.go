package jsonhelper_test

import (
	"testing"

	"github.com/usnistgov/sigtran-tlv/core/jsonhelper"
	"github.com/usnistgov/sigtran-tlv/core/testenv"
)

func TestRoundtrip(t *testing.T) {
	assert, require := testenv.MakeAR(t)

	type target struct {
		A int    `json:"a"`
		B string `json:"b"`
	}

	var out target
	require.NoError(jsonhelper.Roundtrip(map[string]any{"a": 1, "b": "x"}, &out))
	assert.Equal(target{A: 1, B: "x"}, out)

	e := jsonhelper.Roundtrip(map[string]any{"a": 1, "c": true}, &out, jsonhelper.DisallowUnknownFields)
	assert.Error(e)
}

func TestKey(t *testing.T) {
	assert, _ := testenv.MakeAR(t)
	assert.Equal("routingContext", jsonhelper.Key("Routing Context"))
	assert.Equal("infoString", jsonhelper.Key("Info String"))
}

func TestNormalizeKeys(t *testing.T) {
	assert, _ := testenv.MakeAR(t)

	input := map[any]any{
		"outer": []any{map[any]any{"inner": 1, 2: "dropped"}},
	}
	assert.Equal(map[string]any{
		"outer": []any{map[string]any{"inner": 1}},
	}, jsonhelper.NormalizeKeys(input))
}
