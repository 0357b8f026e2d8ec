package sigdump

import (
	"bufio"
	"bytes"
	"os"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
	"go.uber.org/zap"
)

// pcapng Section Header Block type, identical in either byte order.
var pcapngMagic = []byte{0x0A, 0x0D, 0x0D, 0x0A}

// Capture is an opened capture file.
type Capture struct {
	gopacket.PacketDataSource
	LinkType layers.LinkType
	file     *os.File
}

// Close closes the file.
func (c *Capture) Close() error {
	return c.file.Close()
}

// OpenCapture opens a pcap or pcapng file.
func OpenCapture(filename string) (c *Capture, e error) {
	c = &Capture{}
	if c.file, e = os.Open(filename); e != nil {
		return nil, e
	}

	r := bufio.NewReader(c.file)
	magic, _ := r.Peek(len(pcapngMagic))
	if bytes.Equal(magic, pcapngMagic) {
		ng, e := pcapgo.NewNgReader(r, pcapgo.DefaultNgReaderOptions)
		if e != nil {
			c.file.Close()
			return nil, e
		}
		c.PacketDataSource, c.LinkType = ng, ng.LinkType()
	} else {
		pr, e := pcapgo.NewReader(r)
		if e != nil {
			c.file.Close()
			return nil, e
		}
		c.PacketDataSource, c.LinkType = pr, pr.LinkType()
	}

	logger.Debug("capture opened",
		zap.String("filename", filename),
		zap.Stringer("link-type", c.LinkType),
	)
	return c, nil
}
