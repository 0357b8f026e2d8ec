// Command sigtrandump decodes M3UA, SUA, and iSNS messages.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/urfave/cli/v2"
	"github.com/usnistgov/sigtran-tlv/app/sigdump"
	"github.com/usnistgov/sigtran-tlv/core/logging"
	"github.com/usnistgov/sigtran-tlv/mk/version"
)

var logger = logging.New("sigtrandump")

var (
	configFile string
	flagConfig sigdump.Config
)

// loadSettings combines the configuration file with command line flags.
// Flags take precedence over the file.
func loadSettings() (s sigdump.Settings, e error) {
	var cfg sigdump.Config
	if configFile != "" {
		if cfg, e = sigdump.LoadConfig(configFile); e != nil {
			return s, e
		}
	}
	cfg.Merge(flagConfig)
	return cfg.Settings()
}

var app = &cli.App{
	Version: version.Get().String(),
	Usage:   "Decode SIGTRAN adaptation layer messages and iSNS PDUs.",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Configuration `file` in JSON, YAML, or TOML.",
			EnvVars:     []string{"SIGTRAN_CONFIG"},
			Destination: &configFile,
		},
		&cli.StringFlag{
			Name:        "m3ua-variant",
			Usage:       "M3UA tag numbering `variant`: v10 or v6.",
			EnvVars:     []string{"SIGTRAN_M3UA_VARIANT"},
			Destination: &flagConfig.M3UAVariant,
		},
		&cli.StringFlag{
			Name:        "sua-variant",
			Usage:       "SUA tag numbering `variant`: ietf08 or light.",
			EnvVars:     []string{"SIGTRAN_SUA_VARIANT"},
			Destination: &flagConfig.SUAVariant,
		},
		&cli.IntFlag{
			Name:        "max-depth",
			Usage:       "Maximum nesting `depth` of parameter lists (default 16).",
			EnvVars:     []string{"SIGTRAN_MAX_DEPTH"},
			Destination: &flagConfig.MaxDepth,
		},
		&cli.StringFlag{
			Name:        "format",
			Usage:       "Output `format`: json, yaml, or cbor.",
			EnvVars:     []string{"SIGTRAN_FORMAT"},
			Destination: &flagConfig.Format,
		},
	},
}

func defineCommand(command *cli.Command) {
	app.Commands = append(app.Commands, command)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sort.Sort(cli.CommandsByName(app.Commands))
	e := app.RunContext(ctx, os.Args)
	if e != nil {
		log.Fatal(e)
	}
}
