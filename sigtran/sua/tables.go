package sua

import (
	"github.com/usnistgov/sigtran-tlv/sigtran/an"
	"github.com/usnistgov/sigtran-tlv/sigtran/tlv"
)

// Field names of structured values.
const (
	FieldRoutingIndicator  = "Routing Indicator"
	FieldAddressIndicator  = "Address Indicator"
	FieldAddressParameters = "Address Parameters"
	FieldSSN               = "SSN"
	FieldCauseType         = "Cause Type"
	FieldCauseValue        = "Cause Value"
	FieldProtocolClass     = "Protocol Class"
	FieldReturnOption      = "Return Option"
	FieldProtocolClasses   = "Protocol Classes"
	FieldInterworking      = "Interworking"
	FieldSegmentationInd   = "Segmentation Indicator"
	FieldSegmentationRef   = "Segmentation Reference"
)

var addressIndicatorBits = []tlv.Bit{
	{Mask: an.AddrIndPC, Name: "PC"},
	{Mask: an.AddrIndSSN, Name: "SSN"},
	{Mask: an.AddrIndGT, Name: "GT"},
}

func reservedThen(name string, s tlv.Strategy) tlv.Strategy {
	return tlv.AsStruct(tlv.Reserved(3), tlv.F(name, 1, s))
}

func addressTable(name string, gt, pc, ssn, ipv4, hostname, ipv6 uint32) *tlv.Table {
	return tlv.NewTable(name, tlv.FramingSigtran,
		tlv.Entry{Tag: gt, Name: "Global Title", Strategy: tlv.AsGlobalTitle},
		tlv.Entry{Tag: pc, Name: "Point Code", Strategy: tlv.AsPointCode},
		tlv.Entry{Tag: ssn, Name: "Subsystem Number", Strategy: reservedThen(FieldSSN, tlv.AsEnum(1, an.SsnNames))},
		tlv.Entry{Tag: ipv4, Name: "IPv4 Address", Strategy: tlv.AsIPv4},
		tlv.Entry{Tag: hostname, Name: "Hostname", Strategy: tlv.AsCString},
		tlv.Entry{Tag: ipv6, Name: "IPv6 Address", Strategy: tlv.AsIPv6},
	)
}

// Address parameter tables.
var (
	AddressTableIetf08 = addressTable("sua-ietf08-address",
		TagGlobalTitle, TagPointCode, TagSubsystemNumber, TagIPv4Address, TagHostname, TagIPv6Address)
	AddressTableLight = addressTable("sua-light-address",
		LightTagGlobalTitle, LightTagPointCode, LightTagSubsystemNumber, LightTagIPv4Address, LightTagHostname, LightTagIPv6Address)
)

func asAddress(table *tlv.Table) tlv.Strategy {
	return tlv.AsStruct(
		tlv.F(FieldRoutingIndicator, 2, tlv.AsEnum(2, an.RoutingIndicatorNames)),
		tlv.F(FieldAddressIndicator, 2, tlv.AsFlags(2, addressIndicatorBits...)),
		tlv.F(FieldAddressParameters, 0, tlv.AsNested(table)),
	)
}

var (
	asLabel = tlv.AsStruct(
		tlv.F("Start", 1, tlv.AsUint(1)),
		tlv.F("End", 1, tlv.AsUint(1)),
		tlv.F("Label Value", 2, tlv.AsUint(2)),
	)

	// asProtocolClass splits the class number from the return option bit.
	asProtocolClass = tlv.StrategyFunc(func(d *tlv.Decoder, c *tlv.Cursor) (tlv.Value, error) {
		if e := c.Skip(3); e != nil {
			return nil, e
		}
		b, e := c.ReadU8()
		if e != nil {
			return nil, e
		}
		return tlv.Struct{
			{Name: FieldProtocolClass, Value: tlv.Scalar{Width: 1, Uint: uint64(b & 0x03)}},
			{Name: FieldReturnOption, Value: tlv.Bitmask{Width: 1, Raw: uint64(b &^ 0x03), Bits: []tlv.Bit{
				{Mask: an.ProtocolClassReturnOnError, Name: "Return message on error"},
			}}},
		}, nil
	})
)

func makeTable(name string, address *tlv.Table) *tlv.Table {
	return tlv.NewTable(name, tlv.FramingSigtran,
		tlv.Entry{Tag: TagInfoString, Name: "Info String", Strategy: tlv.AsText},
		tlv.Entry{Tag: TagRoutingContext, Name: "Routing Context", Strategy: tlv.AsUintList(4)},
		tlv.Entry{Tag: TagDiagnosticInfo, Name: "Diagnostic Information", Strategy: tlv.AsOpaque},
		tlv.Entry{Tag: TagHeartbeatData, Name: "Heartbeat Data", Strategy: tlv.AsOpaque},
		tlv.Entry{Tag: TagTrafficModeType, Name: "Traffic Mode Type", Strategy: tlv.AsEnum(4, an.TrafficModeNames)},
		tlv.Entry{Tag: TagErrorCode, Name: "Error Code", Strategy: tlv.AsEnum(4, an.ErrorCodeNames)},
		tlv.Entry{Tag: TagStatus, Name: "Status", Strategy: tlv.AsQualifiedEnum(
			"Status Type", 2, an.StatusTypeNames,
			"Status Information", 2, an.StatusInfoNames,
		)},
		tlv.Entry{Tag: TagASPIdentifier, Name: "ASP Identifier", Strategy: tlv.AsUint(4)},
		tlv.Entry{Tag: TagAffectedPointCode, Name: "Affected Point Code", Strategy: tlv.AsRecords(4, tlv.AsPointCode)},
		tlv.Entry{Tag: TagCorrelationID, Name: "Correlation ID", Strategy: tlv.AsUint(4)},
		tlv.Entry{Tag: TagRegistrationResult, Name: "Registration Result", Strategy: tlv.AsNested(nil)},
		tlv.Entry{Tag: TagDeregistrationResult, Name: "Deregistration Result", Strategy: tlv.AsNested(nil)},
		tlv.Entry{Tag: TagRegistrationStatus, Name: "Registration Status", Strategy: tlv.AsEnum(4, an.RegistrationStatusNames)},
		tlv.Entry{Tag: TagDeregistrationStatus, Name: "Deregistration Status", Strategy: tlv.AsEnum(4, an.DeregistrationStatusNames)},
		tlv.Entry{Tag: TagLocalRoutingKeyIdentifier, Name: "Local-RK-Identifier", Strategy: tlv.AsUint(4)},

		tlv.Entry{Tag: TagHopCounter, Name: "SS7 Hop Counter", Strategy: reservedThen("Hop Counter", tlv.AsUint(1))},
		tlv.Entry{Tag: TagSourceAddress, Name: "Source Address", Strategy: asAddress(address)},
		tlv.Entry{Tag: TagDestinationAddress, Name: "Destination Address", Strategy: asAddress(address)},
		tlv.Entry{Tag: TagSourceReferenceNumber, Name: "Source Reference Number", Strategy: tlv.AsUint(4)},
		tlv.Entry{Tag: TagDestinationReferenceNumber, Name: "Destination Reference Number", Strategy: tlv.AsUint(4)},
		tlv.Entry{Tag: TagSCCPCause, Name: "SCCP Cause", Strategy: tlv.AsStruct(
			tlv.Reserved(2),
			tlv.F(FieldCauseType, 1, tlv.AsEnum(1, an.SccpCauseTypeNames)),
			tlv.F(FieldCauseValue, 1, tlv.AsUint(1)),
		)},
		tlv.Entry{Tag: TagSequenceNumber, Name: "Sequence Number", Strategy: tlv.AsStruct(
			tlv.Reserved(2),
			tlv.F("Receive Sequence Number", 1, tlv.AsUint(1)),
			tlv.F("Send Sequence Number", 1, tlv.AsFlags(1, tlv.Bit{Mask: 0x01, Name: "More Data"})),
		)},
		tlv.Entry{Tag: TagReceiveSequenceNumber, Name: "Receive Sequence Number", Strategy: reservedThen("Receive Sequence Number", tlv.AsUint(1))},
		tlv.Entry{Tag: TagASPCapabilities, Name: "ASP Capabilities", Strategy: tlv.AsStruct(
			tlv.Reserved(2),
			tlv.F(FieldProtocolClasses, 1, tlv.AsFlags(1,
				tlv.Bit{Mask: an.ProtocolClass0, Name: "Class 0"},
				tlv.Bit{Mask: an.ProtocolClass1, Name: "Class 1"},
				tlv.Bit{Mask: an.ProtocolClass2, Name: "Class 2"},
				tlv.Bit{Mask: an.ProtocolClass3, Name: "Class 3"},
			)),
			tlv.F(FieldInterworking, 1, tlv.AsEnum(1, an.InterworkingNames)),
		)},
		tlv.Entry{Tag: TagCredit, Name: "Credit", Strategy: reservedThen("Credit", tlv.AsUint(1))},
		tlv.Entry{Tag: TagData, Name: "Data", Strategy: tlv.AsEmbedded(an.HintSCCPUser)},
		tlv.Entry{Tag: TagUserCause, Name: "User/Cause", Strategy: tlv.AsStruct(
			tlv.F("Cause", 2, tlv.AsEnum(2, an.UserCauseNames)),
			tlv.F("User", 2, tlv.AsUint(2)),
		)},
		tlv.Entry{Tag: TagNetworkAppearance, Name: "Network Appearance", Strategy: tlv.AsUint(4)},
		tlv.Entry{Tag: TagRoutingKey, Name: "Routing Key", Strategy: tlv.AsNested(nil)},
		tlv.Entry{Tag: TagDRNLabel, Name: "DRN Label", Strategy: asLabel},
		tlv.Entry{Tag: TagTIDLabel, Name: "TID Label", Strategy: asLabel},
		tlv.Entry{Tag: TagAddressRange, Name: "Address Range", Strategy: tlv.AsNested(nil)},
		tlv.Entry{Tag: TagSMI, Name: "SMI", Strategy: reservedThen("SMI", tlv.AsEnum(1, an.SmiNames))},
		tlv.Entry{Tag: TagImportance, Name: "Importance", Strategy: reservedThen("Importance", tlv.AsUint(1))},
		tlv.Entry{Tag: TagMessagePriority, Name: "Message Priority", Strategy: reservedThen("Priority", tlv.AsUint(1))},
		tlv.Entry{Tag: TagProtocolClass, Name: "Protocol Class", Strategy: asProtocolClass},
		tlv.Entry{Tag: TagSequenceControl, Name: "Sequence Control", Strategy: tlv.AsUint(4)},
		tlv.Entry{Tag: TagSegmentation, Name: "Segmentation", Strategy: tlv.AsStruct(
			tlv.F(FieldSegmentationInd, 1, tlv.AsFlags(1, tlv.Bit{Mask: 0x80, Name: "First"})),
			tlv.F(FieldSegmentationRef, 3, tlv.AsUint(3)),
		)},
		tlv.Entry{Tag: TagCongestionLevel, Name: "Congestion Level", Strategy: tlv.AsEnum(4, an.CongestionLevelNames)},
	)
}

// TableIetf08 is the tag table of the Ietf08 numbering.
var TableIetf08 = makeTable("sua-ietf08", AddressTableIetf08)

// TableLight is the tag table of the Light numbering.
// Data and Congestion Level move into the common range, and addresses use AddressTableLight.
var TableLight = makeTable("sua-light", AddressTableLight).Derive("sua-light",
	tlv.Entry{Tag: LightTagData, Name: "Data", Strategy: tlv.AsEmbedded(an.HintSCCPUser)},
	tlv.Entry{Tag: LightTagCongestionLevel, Name: "Congestion Level", Strategy: tlv.AsEnum(4, an.CongestionLevelNames)},
)
