package sigtranlayer

import (
	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/usnistgov/sigtran-tlv/sigtran"
	"github.com/usnistgov/sigtran-tlv/sigtran/an"
	"github.com/usnistgov/sigtran-tlv/sigtran/m3ua"
	"github.com/usnistgov/sigtran-tlv/sigtran/sua"
	"github.com/usnistgov/sigtran-tlv/sigtran/tlv"
	"go.uber.org/zap"
)

const sctpDataHeaderLen = 16

// Record is one message found in a packet.
type Record struct {
	Variant sigtran.Variant
	// PDU is the decoded message; it may be nil or partial if Err is set.
	PDU sigtran.PDU
	Err error
	// Chunk is the index of the SCTP DATA chunk within the packet, or -1 for TCP and UDP.
	Chunk int
}

// Dissector finds and decodes messages in captured packets.
// The zero value decodes M3UA V10 and SUA Ietf08.
type Dissector struct {
	M3UA    m3ua.Variant
	SUA     sua.Variant
	Options tlv.Options
}

// Dissect decodes every message in a packet.
//
// M3UA and SUA are recognized in SCTP DATA chunks by payload protocol identifier,
// or by well-known SCTP port if the payload protocol identifier is unspecified.
// iSNS is recognized by TCP or UDP port; each segment is assumed to carry one whole PDU.
func (d Dissector) Dissect(pkt gopacket.Packet) (records []Record) {
	var sctp *layers.SCTP
	chunk := 0
	for _, l := range pkt.Layers() {
		switch l := l.(type) {
		case *layers.SCTP:
			sctp = l
		case *layers.SCTPData:
			if protocol := classifySCTP(l, sctp); protocol != "" {
				records = append(records, d.decode(protocol, sctpUserData(l), chunk))
			}
			chunk++
		case *layers.TCP:
			if l.SrcPort == TCPPortISNS || l.DstPort == TCPPortISNS {
				if payload := l.LayerPayload(); len(payload) > 0 {
					records = append(records, d.decode("isns", payload, -1))
				}
			}
		case *layers.UDP:
			if l.SrcPort == UDPPortISNS || l.DstPort == UDPPortISNS {
				records = append(records, d.decode("isns", l.LayerPayload(), -1))
			}
		}
	}
	return records
}

func (d Dissector) decode(protocol string, wire []byte, chunk int) (rec Record) {
	rec.Chunk = chunk
	if rec.Variant, rec.Err = sigtran.Select(protocol, d.M3UA, d.SUA); rec.Err != nil {
		return rec
	}
	if rec.PDU, rec.Err = sigtran.Decode(wire, rec.Variant, d.Options); rec.Err != nil {
		logger.Debug("decode error",
			zap.Stringer("variant", rec.Variant),
			zap.Int("chunk", chunk),
			zap.Int("length", len(wire)),
			zap.Error(rec.Err),
		)
	}
	return rec
}

func classifySCTP(chunk *layers.SCTPData, sctp *layers.SCTP) string {
	switch uint32(chunk.PayloadProtocol) {
	case an.PpidM3UA:
		return "m3ua"
	case an.PpidSUA:
		return "sua"
	case 0:
		if sctp == nil {
			return ""
		}
		switch {
		case sctp.SrcPort == SCTPPortM3UA || sctp.DstPort == SCTPPortM3UA:
			return "m3ua"
		case sctp.SrcPort == SCTPPortSUA || sctp.DstPort == SCTPPortSUA:
			return "sua"
		}
	}
	return ""
}

// sctpUserData returns the user data of a DATA chunk, excluding chunk padding.
func sctpUserData(chunk *layers.SCTPData) []byte {
	if contents, n := chunk.LayerContents(), int(chunk.Length); n >= sctpDataHeaderLen && len(contents) >= n {
		return contents[sctpDataHeaderLen:n]
	}
	payload := chunk.LayerPayload()
	if n := int(chunk.Length) - sctpDataHeaderLen; n >= 0 && n < len(payload) {
		payload = payload[:n]
	}
	return payload
}
