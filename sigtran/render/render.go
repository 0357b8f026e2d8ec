// Package render converts decoded messages into serializable trees.
package render

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/usnistgov/sigtran-tlv/core/jsonhelper"
	"github.com/usnistgov/sigtran-tlv/sigtran"
	"github.com/usnistgov/sigtran-tlv/sigtran/isns"
	"github.com/usnistgov/sigtran-tlv/sigtran/tlv"
)

// Node is a rendered parameter, header field, or structure member.
type Node struct {
	Key      string `json:"key" yaml:"key"`
	Name     string `json:"name" yaml:"name"`
	Tag      *int   `json:"tag,omitempty" yaml:"tag,omitempty"`
	Offset   *int   `json:"offset,omitempty" yaml:"offset,omitempty"`
	Length   *int   `json:"length,omitempty" yaml:"length,omitempty"`
	Padding  int    `json:"padding,omitempty" yaml:"padding,omitempty"`
	Kind     string `json:"kind,omitempty" yaml:"kind,omitempty"`
	Value    any    `json:"value,omitempty" yaml:"value,omitempty"`
	Display  string `json:"display,omitempty" yaml:"display,omitempty"`
	Children []Node `json:"children,omitempty" yaml:"children,omitempty"`
	Extra    string `json:"extra,omitempty" yaml:"extra,omitempty"`
	Error    string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Document is a rendered PDU.
type Document struct {
	Index      int    `json:"index,omitempty" yaml:"index,omitempty"`
	Protocol   string `json:"protocol" yaml:"protocol"`
	Variant    string `json:"variant" yaml:"variant"`
	Message    string `json:"message" yaml:"message"`
	Header     []Node `json:"header" yaml:"header"`
	Parameters []Node `json:"parameters" yaml:"parameters"`
	Error      string `json:"error,omitempty" yaml:"error,omitempty"`
}

func intPtr(n int) *int {
	return &n
}

func field(name string, value any) Node {
	return Node{Key: jsonhelper.Key(name), Name: name, Value: value}
}

// Render converts a PDU and its decode error into a Document.
// pdu may be nil if the header could not be decoded.
func Render(variant sigtran.Variant, pdu sigtran.PDU, e error) (doc Document) {
	doc.Protocol = variant.Protocol()
	doc.Variant = variant.String()
	if e != nil {
		doc.Error = e.Error()
	}

	switch pdu := pdu.(type) {
	case *tlv.Message:
		doc.Protocol, doc.Message = pdu.Protocol, pdu.Name
		doc.Header = []Node{
			field("Version", pdu.Version),
			field("Reserved", pdu.Reserved),
			field("Message Class", pdu.Class),
			field("Message Type", pdu.Type),
			field("Message Length", pdu.Length),
		}
		if pdu.LengthMismatch() {
			doc.Header = append(doc.Header, field("Length Mismatch", true))
		}
		doc.Parameters = Parameters(pdu.Parameters)
	case *isns.PDU:
		doc.Protocol, doc.Message = "iSNS", pdu.Name
		doc.Header = []Node{
			field("Version", pdu.Version),
			field("Function ID", pdu.FunctionID),
			field("PDU Length", pdu.Length),
			{Key: "flags", Name: "Flags", Value: pdu.Flags.Raw, Display: pdu.Flags.String()},
			field("Transaction ID", pdu.TransactionID),
			field("Sequence ID", pdu.SequenceID),
		}
		if pdu.LengthMismatch() {
			doc.Header = append(doc.Header, field("Length Mismatch", true))
		}
		if pdu.Status != nil {
			doc.Header = append(doc.Header, Node{Key: "status", Name: "Status", Value: pdu.Status.Uint, Display: pdu.Status.String()})
		}
		if pdu.Heartbeat != nil {
			doc.Header = append(doc.Header, Value("Heartbeat", pdu.Heartbeat))
		}
		doc.Parameters = Parameters(pdu.Attributes)
	}
	return doc
}

// Parameters renders a parameter list.
func Parameters(list []tlv.Parameter) (nodes []Node) {
	nodes = make([]Node, 0, len(list))
	for _, p := range list {
		nodes = append(nodes, Parameter(p))
	}
	return nodes
}

// Parameter renders one parameter.
func Parameter(p tlv.Parameter) Node {
	node := Value(p.Name, p.Value)
	if p.Name == tlv.UnknownName {
		node.Key = "unknown" + strconv.FormatUint(uint64(p.Tag), 10)
	}
	node.Tag = intPtr(int(p.Tag))
	node.Offset = intPtr(p.Offset)
	node.Length = intPtr(p.Length)
	node.Padding = p.Padding
	if len(p.Extra) > 0 {
		node.Extra = strings.ToUpper(hex.EncodeToString(p.Extra))
	}
	if p.Malformed != nil {
		node.Error = p.Malformed.Error()
	}
	return node
}

// Value renders a named value.
func Value(name string, value tlv.Value) (node Node) {
	node.Key, node.Name = jsonhelper.Key(name), name
	if value == nil {
		return node
	}
	node.Kind = value.Kind().String()

	switch value := value.(type) {
	case tlv.Scalar:
		node.Value = value.Uint
		node.Display = value.Name
	case tlv.Bitmask:
		node.Value = value.Raw
		node.Display = value.String()
	case tlv.Text:
		node.Value = value.String()
		if value.Lossy {
			node.Display = "lossy"
		}
	case tlv.Address:
		node.Value = value.String()
		node.Display = value.Family.String()
	case tlv.Opaque:
		node.Value = strings.ToUpper(hex.EncodeToString(value))
	case tlv.Embedded:
		node.Value = strings.ToUpper(hex.EncodeToString(value.Payload))
		node.Display = fmt.Sprintf("%s@%d", value.Hint, value.Offset)
	case tlv.ScalarList:
		node.Value = value.Values
	case tlv.List:
		node.Children = Parameters(value)
	case tlv.Struct:
		for _, f := range value {
			node.Children = append(node.Children, Value(f.Name, f.Value))
		}
	case tlv.Records:
		for i, rec := range value {
			node.Children = append(node.Children, Value("Record "+strconv.Itoa(i), rec))
		}
	}
	return node
}
