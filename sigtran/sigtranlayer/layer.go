// Package sigtranlayer provides GoPacket layers for M3UA, SUA, and iSNS.
package sigtranlayer

import (
	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/usnistgov/sigtran-tlv/core/logging"
	"github.com/usnistgov/sigtran-tlv/sigtran"
	"github.com/usnistgov/sigtran-tlv/sigtran/an"
	"github.com/usnistgov/sigtran-tlv/sigtran/tlv"
)

var logger = logging.New("sigtranlayer")

// Assigned numbers.
const (
	SCTPPortM3UA layers.SCTPPort = an.SctpPortM3UA
	SCTPPortSUA  layers.SCTPPort = an.SctpPortSUA
	TCPPortISNS  layers.TCPPort  = an.PortISNS
	UDPPortISNS  layers.UDPPort  = an.PortISNS
)

// Layer types.
var (
	LayerTypeM3UA = gopacket.RegisterLayerType(1700, gopacket.LayerTypeMetadata{
		Name:    "M3UA",
		Decoder: gopacket.DecodeFunc(decodeM3UA),
	})
	LayerTypeSUA = gopacket.RegisterLayerType(1701, gopacket.LayerTypeMetadata{
		Name:    "SUA",
		Decoder: gopacket.DecodeFunc(decodeSUA),
	})
	LayerTypeISNS = gopacket.RegisterLayerType(1702, gopacket.LayerTypeMetadata{
		Name:    "iSNS",
		Decoder: gopacket.DecodeFunc(decodeISNS),
	})
)

// pduLayer contains fields shared by all layers.
type pduLayer struct {
	// Variant selects the tag numbering. It must be set before DecodeFromBytes.
	Variant sigtran.Variant
	// Options contains decoder options.
	Options tlv.Options
	// PDU is the decoded message, possibly partial if DecodeFromBytes returned an error.
	PDU  sigtran.PDU
	wire []byte
}

// LayerContents returns message bytes.
func (l *pduLayer) LayerContents() []byte {
	return l.wire
}

// LayerPayload returns nil; embedded payloads are reported through Options.OnPayload.
func (l *pduLayer) LayerPayload() []byte {
	return nil
}

// Payload implements gopacket.ApplicationLayer interface.
func (l *pduLayer) Payload() []byte {
	return l.wire
}

// DecodeFromBytes decodes a message.
// Input must contain exactly one message.
func (l *pduLayer) DecodeFromBytes(wire []byte, df gopacket.DecodeFeedback) (e error) {
	l.wire = wire
	l.PDU, e = sigtran.Decode(wire, l.Variant, l.Options)
	if e != nil && l.PDU != nil {
		df.SetTruncated()
	}
	return e
}

// NextLayerType implements gopacket.DecodingLayer interface.
func (pduLayer) NextLayerType() gopacket.LayerType {
	return gopacket.LayerTypeZero
}

// M3UA is the layer for M3UA messages.
type M3UA struct {
	pduLayer
}

// NewM3UA creates an M3UA layer with the given variant.
func NewM3UA(variant sigtran.Variant, opts tlv.Options) *M3UA {
	return &M3UA{pduLayer{Variant: variant, Options: opts}}
}

// LayerType returns LayerTypeM3UA.
func (M3UA) LayerType() gopacket.LayerType {
	return LayerTypeM3UA
}

// CanDecode implements gopacket.DecodingLayer interface.
func (M3UA) CanDecode() gopacket.LayerClass {
	return LayerTypeM3UA
}

// SUA is the layer for SUA messages.
type SUA struct {
	pduLayer
}

// NewSUA creates an SUA layer with the given variant.
func NewSUA(variant sigtran.Variant, opts tlv.Options) *SUA {
	return &SUA{pduLayer{Variant: variant, Options: opts}}
}

// LayerType returns LayerTypeSUA.
func (SUA) LayerType() gopacket.LayerType {
	return LayerTypeSUA
}

// CanDecode implements gopacket.DecodingLayer interface.
func (SUA) CanDecode() gopacket.LayerClass {
	return LayerTypeSUA
}

// ISNS is the layer for iSNS PDUs.
type ISNS struct {
	pduLayer
}

// NewISNS creates an iSNS layer.
func NewISNS(opts tlv.Options) *ISNS {
	return &ISNS{pduLayer{Variant: sigtran.ISNS, Options: opts}}
}

// LayerType returns LayerTypeISNS.
func (ISNS) LayerType() gopacket.LayerType {
	return LayerTypeISNS
}

// CanDecode implements gopacket.DecodingLayer interface.
func (ISNS) CanDecode() gopacket.LayerClass {
	return LayerTypeISNS
}

type decodingApplicationLayer interface {
	gopacket.ApplicationLayer
	gopacket.DecodingLayer
}

var (
	_ decodingApplicationLayer = &M3UA{}
	_ decodingApplicationLayer = &SUA{}
	_ decodingApplicationLayer = &ISNS{}
)

func decodeLayer(l decodingApplicationLayer, base *pduLayer, wire []byte, p gopacket.PacketBuilder) error {
	e := base.DecodeFromBytes(wire, p)
	if base.PDU != nil {
		p.AddLayer(l)
		p.SetApplicationLayer(l)
	}
	return e
}

func decodeM3UA(wire []byte, p gopacket.PacketBuilder) error {
	l := NewM3UA(sigtran.M3UAv10, tlv.Options{})
	return decodeLayer(l, &l.pduLayer, wire, p)
}

func decodeSUA(wire []byte, p gopacket.PacketBuilder) error {
	l := NewSUA(sigtran.SUAIetf08, tlv.Options{})
	return decodeLayer(l, &l.pduLayer, wire, p)
}

func decodeISNS(wire []byte, p gopacket.PacketBuilder) error {
	l := NewISNS(tlv.Options{})
	return decodeLayer(l, &l.pduLayer, wire, p)
}

func init() {
	layers.RegisterTCPPortLayerType(TCPPortISNS, LayerTypeISNS)
	layers.RegisterUDPPortLayerType(UDPPortISNS, LayerTypeISNS)
}
