package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"github.com/usnistgov/sigtran-tlv/app/sigdump"
	"github.com/usnistgov/sigtran-tlv/sigtran"
	"github.com/usnistgov/sigtran-tlv/sigtran/render"
	"github.com/usnistgov/sigtran-tlv/sigtran/tlv"
	"go.uber.org/zap"
)

// decodeHex decodes one hexadecimal message into a document.
func decodeHex(input string, variant sigtran.Variant, opts tlv.Options) (doc render.Document, e error) {
	wire, e := sigdump.ParseHex(input)
	if e != nil {
		return doc, e
	}
	pdu, decodeErr := sigtran.Decode(wire, variant, opts)
	if decodeErr != nil {
		logger.Warn("decode error", zap.Stringer("variant", variant), zap.Error(decodeErr))
	}
	return render.Render(variant, pdu, decodeErr), nil
}

func init() {
	var protocol string
	defineCommand(&cli.Command{
		Name:      "decode",
		Usage:     "Decode hexadecimal messages, one per argument.",
		ArgsUsage: "HEX...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "protocol",
				Aliases:     []string{"p"},
				Usage:       "Message `protocol`: m3ua, sua, or isns.",
				Value:       "m3ua",
				Destination: &protocol,
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return errors.New("no message given")
			}
			s, e := loadSettings()
			if e != nil {
				return e
			}
			variant, e := sigtran.Select(protocol, s.Dissector.M3UA, s.Dissector.SUA)
			if e != nil {
				return e
			}

			enc, e := render.NewEncoder(os.Stdout, s.Format)
			if e != nil {
				return e
			}
			defer enc.Close()

			for i, arg := range c.Args().Slice() {
				doc, e := decodeHex(arg, variant, s.Dissector.Options)
				if e != nil {
					return fmt.Errorf("argument %d: %w", i+1, e)
				}
				doc.Index = i + 1
				if e := enc.Encode(doc); e != nil {
					return e
				}
			}
			return nil
		},
	})
}
