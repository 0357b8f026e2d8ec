package sigdump_test

import (
	"context"
	"errors"
	"net"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
	"github.com/usnistgov/sigtran-tlv/app/sigdump"
	"github.com/usnistgov/sigtran-tlv/core/testenv"
	"github.com/usnistgov/sigtran-tlv/sigtran"
	_ "github.com/usnistgov/sigtran-tlv/sigtran/sigtranlayer"
	"go.uber.org/multierr"
	"go4.org/must"
)

var isnsReg = testenv.BytesFromHex(`
	0001 0001 0048 8C00 0007 0000
	00000020 00000008 69716E2E78000000
	00000002 00000004 00000002
	00000010 00000010 00000000 00000000 0000FFFF C0000201
	00000011 00000004 0000 0CBC
	00000000 00000000
`)

func makeUDP(dstPort layers.UDPPort, payload []byte) []byte {
	eth := &layers.Ethernet{
		SrcMAC:       net.HardwareAddr{0x02, 0, 0, 0, 0, 0x01},
		DstMAC:       net.HardwareAddr{0x02, 0, 0, 0, 0, 0x02},
		EthernetType: layers.EthernetTypeIPv4,
	}
	ip := &layers.IPv4{
		Version:  4,
		IHL:      5,
		TTL:      64,
		Protocol: layers.IPProtocolUDP,
		SrcIP:    net.IPv4(192, 0, 2, 1),
		DstIP:    net.IPv4(192, 0, 2, 2),
	}
	udp := &layers.UDP{SrcPort: 40000, DstPort: dstPort}
	buf := gopacket.NewSerializeBuffer()
	if e := gopacket.SerializeLayers(buf, gopacket.SerializeOptions{FixLengths: true}, eth, ip, udp, gopacket.Payload(payload)); e != nil {
		panic(e)
	}
	return buf.Bytes()
}

// makeFrames returns n frames: every third frame is unrelated traffic, every fifth frame is truncated iSNS.
func makeFrames(n int) (frames [][]byte, nMessages, nErrors int) {
	for i := 0; i < n; i++ {
		switch {
		case i%3 == 2:
			frames = append(frames, makeUDP(40001, isnsReg))
		case i%5 == 4:
			frames = append(frames, makeUDP(3205, isnsReg[:20]))
			nMessages++
			nErrors++
		default:
			frames = append(frames, makeUDP(3205, isnsReg))
			nMessages++
		}
	}
	return
}

func writePcap(t testing.TB, frames [][]byte, ng bool) string {
	_, require := makeAR(t)
	filename := testenv.TempName(t, "input.pcap")
	f, e := os.Create(filename)
	require.NoError(e)
	defer must.Close(f)

	var writePacket func(ci gopacket.CaptureInfo, data []byte) error
	if ng {
		w, e := pcapgo.NewNgWriter(f, layers.LinkTypeEthernet)
		require.NoError(e)
		defer func() { require.NoError(w.Flush()) }()
		writePacket = w.WritePacket
	} else {
		w := pcapgo.NewWriter(f)
		require.NoError(w.WriteFileHeader(65536, layers.LinkTypeEthernet))
		writePacket = w.WritePacket
	}

	for i, frame := range frames {
		ci := gopacket.CaptureInfo{
			Timestamp:     time.Unix(1700000000, int64(i)*1000),
			CaptureLength: len(frame),
			Length:        len(frame),
		}
		require.NoError(writePacket(ci, frame))
	}
	return filename
}

func TestDissect(t *testing.T) {
	for _, ng := range []bool{false, true} {
		name := "pcap"
		if ng {
			name = "pcapng"
		}
		t.Run(name, func(t *testing.T) {
			assert, require := makeAR(t)

			frames, nMessages, nErrors := makeFrames(100)
			c, e := sigdump.OpenCapture(writePcap(t, frames, ng))
			require.NoError(e)
			defer must.Close(c)
			assert.Equal(layers.LinkTypeEthernet, c.LinkType)

			s, e := sigdump.Config{Workers: 4, QueueCapacity: 8}.Settings()
			require.NoError(e)

			var indices []int
			nDocs := 0
			sum, e := sigdump.Dissect(context.Background(), c, c.LinkType, s, func(res sigdump.Result) error {
				indices = append(indices, res.Index)
				for _, rec := range res.Records {
					assert.Equal(sigtran.ISNS, rec.Variant)
				}
				for _, doc := range res.Documents() {
					assert.Equal(res.Index+1, doc.Index)
					assert.Equal("iSNS", doc.Protocol)
					nDocs++
				}
				return nil
			})
			require.NoError(e)

			require.Len(indices, len(frames))
			for i, index := range indices {
				assert.Equal(i, index)
			}
			assert.Equal(len(frames), sum.Packets)
			assert.Equal(nMessages, sum.Messages)
			assert.Equal(nMessages, nDocs)
			assert.Equal(nErrors, sum.Errors)
			assert.Len(multierr.Errors(sum.Err), nErrors)
		})
	}
}

func TestDissectEmitError(t *testing.T) {
	assert, require := makeAR(t)

	frames, _, _ := makeFrames(200)
	c, e := sigdump.OpenCapture(writePcap(t, frames, false))
	require.NoError(e)
	defer must.Close(c)

	s, e := sigdump.Config{Workers: 3, QueueCapacity: 16}.Settings()
	require.NoError(e)

	errStop := errors.New("stop")
	nEmits := 0
	_, e = sigdump.Dissect(context.Background(), c, c.LinkType, s, func(res sigdump.Result) error {
		nEmits++
		if res.Index == 10 {
			return errStop
		}
		return nil
	})
	assert.ErrorIs(e, errStop)
	assert.Equal(11, nEmits)
}

type countingSource struct {
	gopacket.PacketDataSource
	reads atomic.Int64
}

func (src *countingSource) ReadPacketData() (data []byte, ci gopacket.CaptureInfo, e error) {
	if data, ci, e = src.PacketDataSource.ReadPacketData(); e == nil {
		src.reads.Add(1)
	}
	return
}

func TestDissectInflight(t *testing.T) {
	assert, require := makeAR(t)

	frames, _, _ := makeFrames(200)
	frames[0] = makeUDP(40001, make([]byte, 7))
	slowLen := len(frames[0])

	c, e := sigdump.OpenCapture(writePcap(t, frames, false))
	require.NoError(e)
	defer must.Close(c)
	src := &countingSource{PacketDataSource: c}

	decoder := gopacket.DecodeFunc(func(data []byte, pb gopacket.PacketBuilder) error {
		if len(data) == slowLen {
			time.Sleep(100 * time.Millisecond)
		}
		return c.LinkType.Decode(data, pb)
	})

	s, e := sigdump.Config{Workers: 4, QueueCapacity: 16}.Settings()
	require.NoError(e)
	require.Equal(16, s.QueueCapacity)

	nEmits := 0
	sum, e := sigdump.Dissect(context.Background(), src, decoder, s, func(res sigdump.Result) error {
		if res.Index == 0 {
			// packets after the slow one stop being read once the queue is full
			assert.LessOrEqual(src.reads.Load(), int64(s.QueueCapacity+2))
		}
		nEmits++
		return nil
	})
	require.NoError(e)
	assert.Equal(len(frames), nEmits)
	assert.Equal(len(frames), sum.Packets)
}

func TestOpenCaptureErrors(t *testing.T) {
	assert, _ := makeAR(t)

	_, e := sigdump.OpenCapture(testenv.TempName(t, "missing.pcap"))
	assert.ErrorIs(e, os.ErrNotExist)

	filename := testenv.TempName(t, "garbage.pcap")
	assert.NoError(os.WriteFile(filename, []byte("not a capture file"), 0o644))
	_, e = sigdump.OpenCapture(filename)
	assert.Error(e)
}
