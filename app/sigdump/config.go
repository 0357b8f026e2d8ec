// Package sigdump dissects SIGTRAN messages in packet captures.
package sigdump

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	binutils "github.com/jfoster/binary-utilities"
	"github.com/pkg/math"
	"github.com/usnistgov/sigtran-tlv/core/jsonhelper"
	"github.com/usnistgov/sigtran-tlv/core/logging"
	"github.com/usnistgov/sigtran-tlv/sigtran/m3ua"
	"github.com/usnistgov/sigtran-tlv/sigtran/render"
	"github.com/usnistgov/sigtran-tlv/sigtran/sigtranlayer"
	"github.com/usnistgov/sigtran-tlv/sigtran/sua"
	"github.com/usnistgov/sigtran-tlv/sigtran/tlv"
	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

var logger = logging.New("sigdump")

// Limits and defaults.
const (
	MaxWorkers = 256

	MinQueueCapacity     = 16
	DefaultQueueCapacity = 256
	MaxQueueCapacity     = 65536
)

//go:embed config.schema.json
var configSchema []byte

var configSchemaLoader = gojsonschema.NewBytesLoader(configSchema)

// Config contains dissector configuration.
// The zero value decodes M3UA V10 and SUA Ietf08 into JSON with one worker per CPU.
type Config struct {
	// M3UAVariant is the M3UA tag numbering, "v10" or "v6".
	M3UAVariant string `json:"m3uaVariant,omitempty"`
	// SUAVariant is the SUA tag numbering, "ietf08" or "light".
	SUAVariant string `json:"suaVariant,omitempty"`

	// MaxDepth limits nesting of parameter lists.
	// Zero means tlv.DefaultMaxDepth.
	MaxDepth int `json:"maxDepth,omitempty"`

	// Format is the output format.
	Format string `json:"format,omitempty"`

	// Workers is the number of dissector goroutines.
	// Zero means runtime.NumCPU().
	Workers int `json:"workers,omitempty"`

	// QueueCapacity is the number of packets buffered between reader and workers.
	// It is adjusted to a power of two.
	QueueCapacity int `json:"queueCapacity,omitempty"`
}

// Settings is a validated Config.
type Settings struct {
	Dissector     sigtranlayer.Dissector
	Format        render.Format
	Workers       int
	QueueCapacity int
}

func alignCapacity(capacity int) int {
	if capacity <= 0 {
		return DefaultQueueCapacity
	}
	capacity = int(binutils.NextPowerOfTwo(int64(capacity)))
	return math.MinInt(math.MaxInt(MinQueueCapacity, capacity), MaxQueueCapacity)
}

// Merge overwrites fields with non-zero fields of another Config.
func (cfg *Config) Merge(other Config) {
	if other.M3UAVariant != "" {
		cfg.M3UAVariant = other.M3UAVariant
	}
	if other.SUAVariant != "" {
		cfg.SUAVariant = other.SUAVariant
	}
	if other.MaxDepth != 0 {
		cfg.MaxDepth = other.MaxDepth
	}
	if other.Format != "" {
		cfg.Format = other.Format
	}
	if other.Workers != 0 {
		cfg.Workers = other.Workers
	}
	if other.QueueCapacity != 0 {
		cfg.QueueCapacity = other.QueueCapacity
	}
}

// Settings validates the configuration and applies defaults.
// All problems are reported together.
func (cfg Config) Settings() (s Settings, e error) {
	errs := []error{}
	if cfg.M3UAVariant != "" {
		v, e := m3ua.ParseVariant(cfg.M3UAVariant)
		errs = append(errs, e)
		s.Dissector.M3UA = v
	}
	if cfg.SUAVariant != "" {
		v, e := sua.ParseVariant(cfg.SUAVariant)
		errs = append(errs, e)
		s.Dissector.SUA = v
	}

	if cfg.MaxDepth < 0 || cfg.MaxDepth > tlv.MaxMaxDepth {
		errs = append(errs, fmt.Errorf("maxDepth out of range [0:%d]", tlv.MaxMaxDepth))
	}
	s.Dissector.Options.MaxDepth = cfg.MaxDepth

	s.Format = render.FormatJSON
	if cfg.Format != "" {
		f, e := render.ParseFormat(cfg.Format)
		errs = append(errs, e)
		s.Format = f
	}

	switch {
	case cfg.Workers < 0 || cfg.Workers > MaxWorkers:
		errs = append(errs, fmt.Errorf("workers out of range [0:%d]", MaxWorkers))
	case cfg.Workers == 0:
		s.Workers = math.MinInt(runtime.NumCPU(), MaxWorkers)
	default:
		s.Workers = cfg.Workers
	}
	s.QueueCapacity = alignCapacity(cfg.QueueCapacity)

	return s, multierr.Combine(errs...)
}

type schemaError struct {
	*gojsonschema.Result
	Filename string
}

func (e schemaError) Error() string {
	var b strings.Builder
	fmt.Fprintln(&b, e.Filename, "failed schema validation:")
	for _, desc := range e.Result.Errors() {
		fmt.Fprintln(&b, "-", desc)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// ErrConfigFormat indicates the configuration file extension is not recognized.
var ErrConfigFormat = errors.New("config file must be .json, .yaml, .yml, or .toml")

// LoadConfig reads a configuration file in JSON, YAML, or TOML.
// The document is checked against the configuration schema before conversion.
func LoadConfig(filename string) (cfg Config, e error) {
	body, e := os.ReadFile(filename)
	if e != nil {
		return cfg, e
	}

	var doc any
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		e = json.Unmarshal(body, &doc)
	case ".yaml", ".yml":
		e = yaml.Unmarshal(body, &doc)
	case ".toml":
		var m map[string]any
		e = toml.Unmarshal(body, &m)
		doc = m
	default:
		return cfg, ErrConfigFormat
	}
	if e != nil {
		return cfg, fmt.Errorf("%s: %w", filename, e)
	}
	doc = jsonhelper.NormalizeKeys(doc)

	result, e := gojsonschema.Validate(configSchemaLoader, gojsonschema.NewGoLoader(doc))
	if e != nil {
		return cfg, fmt.Errorf("%s: %w", filename, e)
	}
	if !result.Valid() {
		return cfg, schemaError{Result: result, Filename: filename}
	}

	e = jsonhelper.Roundtrip(doc, &cfg, jsonhelper.DisallowUnknownFields)
	return cfg, e
}
