package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/urfave/cli/v2"
	"github.com/usnistgov/sigtran-tlv/app/sigdump"
	"github.com/usnistgov/sigtran-tlv/sigtran"
	"github.com/usnistgov/sigtran-tlv/sigtran/render"
)

const shellHelp = `Enter a hexadecimal message to decode it.
Commands:
  protocol m3ua|sua|isns   select message protocol
  help                     show this help
  exit                     leave the shell`

type shell struct {
	rl       *readline.Instance
	settings sigdump.Settings
	variant  sigtran.Variant
	enc      render.Encoder
	index    int
}

func (sh *shell) prompt() {
	sh.rl.SetPrompt(sh.variant.String() + "> ")
}

func (sh *shell) setProtocol(protocol string) error {
	variant, e := sigtran.Select(protocol, sh.settings.Dissector.M3UA, sh.settings.Dissector.SUA)
	if e != nil {
		return e
	}
	sh.variant = variant
	sh.prompt()
	return nil
}

// execute runs one input line; it returns io.EOF to leave the shell.
func (sh *shell) execute(line string) error {
	fields := strings.Fields(line)
	switch {
	case len(fields) == 0:
		return nil
	case fields[0] == "exit" || fields[0] == "quit":
		return io.EOF
	case fields[0] == "help":
		fmt.Fprintln(sh.rl.Stdout(), shellHelp)
		return nil
	case fields[0] == "protocol":
		if len(fields) != 2 {
			return errors.New("usage: protocol m3ua|sua|isns")
		}
		return sh.setProtocol(fields[1])
	}

	doc, e := decodeHex(line, sh.variant, sh.settings.Dissector.Options)
	if e != nil {
		return e
	}
	sh.index++
	doc.Index = sh.index
	return sh.enc.Encode(doc)
}

func (sh *shell) run() error {
	for {
		line, e := sh.rl.Readline()
		switch {
		case errors.Is(e, readline.ErrInterrupt):
			continue
		case e != nil:
			return nil
		}

		switch e := sh.execute(line); {
		case errors.Is(e, io.EOF):
			return nil
		case e != nil:
			fmt.Fprintln(sh.rl.Stderr(), "error:", e)
		}
	}
}

func init() {
	var protocol string
	defineCommand(&cli.Command{
		Name:  "shell",
		Usage: "Decode hexadecimal messages interactively.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "protocol",
				Aliases:     []string{"p"},
				Usage:       "Initial message `protocol`: m3ua, sua, or isns.",
				Value:       "m3ua",
				Destination: &protocol,
			},
		},
		Action: func(c *cli.Context) (e error) {
			sh := &shell{}
			if sh.settings, e = loadSettings(); e != nil {
				return e
			}

			if sh.rl, e = readline.NewEx(&readline.Config{
				InterruptPrompt: "^C",
				EOFPrompt:       "exit",
			}); e != nil {
				return e
			}
			defer sh.rl.Close()

			if e = sh.setProtocol(protocol); e != nil {
				return e
			}
			if sh.enc, e = render.NewEncoder(sh.rl.Stdout(), sh.settings.Format); e != nil {
				return e
			}
			defer sh.enc.Close()

			fmt.Fprintln(sh.rl.Stdout(), shellHelp)
			return sh.run()
		},
	})
}
