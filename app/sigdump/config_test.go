package sigdump_test

import (
	"errors"
	"os"
	"runtime"
	"testing"

	"github.com/usnistgov/sigtran-tlv/app/sigdump"
	"github.com/usnistgov/sigtran-tlv/core/testenv"
	"github.com/usnistgov/sigtran-tlv/sigtran/m3ua"
	"github.com/usnistgov/sigtran-tlv/sigtran/render"
	"github.com/usnistgov/sigtran-tlv/sigtran/sua"
	"github.com/usnistgov/sigtran-tlv/sigtran/tlv"
	"go.uber.org/multierr"
)

var makeAR = testenv.MakeAR

func writeConfig(t testing.TB, name, content string) string {
	filename := testenv.TempName(t, name)
	if e := os.WriteFile(filename, []byte(content), 0o644); e != nil {
		t.Fatal(e)
	}
	return filename
}

func TestLoadConfig(t *testing.T) {
	assert, require := makeAR(t)

	cfg, e := sigdump.LoadConfig(writeConfig(t, "a.json", `{
		"m3uaVariant": "v6",
		"suaVariant": "light",
		"maxDepth": 8,
		"format": "yaml",
		"workers": 2
	}`))
	require.NoError(e)
	s, e := cfg.Settings()
	require.NoError(e)
	assert.Equal(m3ua.V6, s.Dissector.M3UA)
	assert.Equal(sua.Light, s.Dissector.SUA)
	assert.Equal(8, s.Dissector.Options.MaxDepth)
	assert.Equal(render.FormatYAML, s.Format)
	assert.Equal(2, s.Workers)
	assert.Equal(sigdump.DefaultQueueCapacity, s.QueueCapacity)

	cfg, e = sigdump.LoadConfig(writeConfig(t, "b.yaml", "m3uaVariant: m3ua-v10\nqueueCapacity: 100\n"))
	require.NoError(e)
	assert.Equal(sigdump.Config{M3UAVariant: "m3ua-v10", QueueCapacity: 100}, cfg)
	s, e = cfg.Settings()
	require.NoError(e)
	assert.Equal(m3ua.V10, s.Dissector.M3UA)
	assert.Equal(128, s.QueueCapacity)

	cfg, e = sigdump.LoadConfig(writeConfig(t, "c.toml", "format = \"cbor\"\nworkers = 3\n"))
	require.NoError(e)
	assert.Equal(sigdump.Config{Format: "cbor", Workers: 3}, cfg)
}

func TestLoadConfigErrors(t *testing.T) {
	assert, _ := makeAR(t)

	_, e := sigdump.LoadConfig(writeConfig(t, "negative.json", `{"workers": -1}`))
	assert.ErrorContains(e, "failed schema validation")

	_, e = sigdump.LoadConfig(writeConfig(t, "unknown.yaml", "bogus: 1\n"))
	assert.ErrorContains(e, "failed schema validation")

	_, e = sigdump.LoadConfig(writeConfig(t, "variant.toml", "suaVariant = \"ietf07\"\n"))
	assert.ErrorContains(e, "failed schema validation")

	_, e = sigdump.LoadConfig(writeConfig(t, "syntax.json", `{"workers": `))
	assert.Error(e)

	_, e = sigdump.LoadConfig(writeConfig(t, "config.ini", "workers=1\n"))
	assert.ErrorIs(e, sigdump.ErrConfigFormat)

	_, e = sigdump.LoadConfig(testenv.TempName(t, "missing.json"))
	assert.ErrorIs(e, os.ErrNotExist)
}

func TestSettings(t *testing.T) {
	assert, require := makeAR(t)

	s, e := sigdump.Config{}.Settings()
	require.NoError(e)
	assert.Equal(m3ua.V10, s.Dissector.M3UA)
	assert.Equal(sua.Ietf08, s.Dissector.SUA)
	assert.Equal(render.FormatJSON, s.Format)
	assert.Equal(min(runtime.NumCPU(), sigdump.MaxWorkers), s.Workers)

	s, e = sigdump.Config{QueueCapacity: 1}.Settings()
	require.NoError(e)
	assert.Equal(sigdump.MinQueueCapacity, s.QueueCapacity)

	s, e = sigdump.Config{QueueCapacity: 1 << 20}.Settings()
	require.NoError(e)
	assert.Equal(sigdump.MaxQueueCapacity, s.QueueCapacity)

	_, e = sigdump.Config{
		M3UAVariant: "v7",
		MaxDepth:    100,
		Format:      "xml",
		Workers:     1000,
	}.Settings()
	assert.Len(multierr.Errors(e), 4)
	assert.True(errors.Is(e, tlv.ErrUnsupportedVariant))
}

func TestMerge(t *testing.T) {
	assert, _ := makeAR(t)

	cfg := sigdump.Config{M3UAVariant: "v6", Format: "yaml", Workers: 4}
	cfg.Merge(sigdump.Config{Format: "cbor", MaxDepth: 3})
	assert.Equal(sigdump.Config{M3UAVariant: "v6", Format: "cbor", MaxDepth: 3, Workers: 4}, cfg)
}

func TestParseHex(t *testing.T) {
	assert, require := makeAR(t)

	wire, e := sigdump.ParseHex(" 0x01000303:00000008 ")
	require.NoError(e)
	assert.Equal([]byte{0x01, 0x00, 0x03, 0x03, 0x00, 0x00, 0x00, 0x08}, wire)

	wire, e = sigdump.ParseHex("01 00 03 03\n00 00 00 08")
	require.NoError(e)
	assert.Len(wire, 8)

	_, e = sigdump.ParseHex("010")
	assert.Error(e)
	_, e = sigdump.ParseHex("zz")
	assert.Error(e)
}
