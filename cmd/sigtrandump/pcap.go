package main

import (
	"os"

	"github.com/urfave/cli/v2"
	"github.com/usnistgov/sigtran-tlv/app/sigdump"
	"github.com/usnistgov/sigtran-tlv/sigtran/render"
	"go.uber.org/zap"
)

func init() {
	var input string
	var workers, queueCapacity int
	defineCommand(&cli.Command{
		Name:  "pcap",
		Usage: "Dissect messages in a pcap or pcapng file.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "input",
				Aliases:     []string{"i"},
				Usage:       "Capture `file`.",
				Destination: &input,
				Required:    true,
			},
			&cli.IntFlag{
				Name:        "workers",
				Usage:       "Number of dissector goroutines (default: number of CPUs).",
				Destination: &workers,
			},
			&cli.IntFlag{
				Name:        "queue-capacity",
				Usage:       "Number of packets buffered between reader and dissectors.",
				Destination: &queueCapacity,
			},
		},
		Action: func(c *cli.Context) error {
			flagConfig.Workers, flagConfig.QueueCapacity = workers, queueCapacity
			s, e := loadSettings()
			if e != nil {
				return e
			}

			capture, e := sigdump.OpenCapture(input)
			if e != nil {
				return e
			}
			defer capture.Close()

			enc, e := render.NewEncoder(os.Stdout, s.Format)
			if e != nil {
				return e
			}
			defer enc.Close()

			sum, e := sigdump.Dissect(c.Context, capture, capture.LinkType, s, func(res sigdump.Result) error {
				for _, doc := range res.Documents() {
					if e := enc.Encode(doc); e != nil {
						return e
					}
				}
				return nil
			})
			logger.Info("pcap summary",
				zap.String("input", input),
				zap.Int("workers", s.Workers),
				zap.Int("packets", sum.Packets),
				zap.Int("messages", sum.Messages),
				zap.Int("errors", sum.Errors),
				zap.Error(sum.Err),
			)
			return e
		},
	})
}
