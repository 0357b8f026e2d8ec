package m3ua

import (
	"github.com/usnistgov/sigtran-tlv/sigtran/an"
	"github.com/usnistgov/sigtran-tlv/sigtran/tlv"
)

// Field names of structured values.
const (
	FieldOPC              = "OPC"
	FieldDPC              = "DPC"
	FieldSI               = "SI"
	FieldNI               = "NI"
	FieldMP               = "MP"
	FieldSLS              = "SLS"
	FieldUserProtocolData = "User Protocol Data"
	FieldStatusType       = "Status Type"
	FieldStatusInfo       = "Status Information"
	FieldCause            = "Cause"
	FieldUser             = "User"
	FieldCongestionLevel  = "Congestion Level"
)

var (
	routingLabel = tlv.AsStruct(
		tlv.F(FieldOPC, 4, tlv.AsUint(4)),
		tlv.F(FieldDPC, 4, tlv.AsUint(4)),
		tlv.F(FieldSI, 1, tlv.AsEnum(1, an.SiNames)),
		tlv.F(FieldNI, 1, tlv.AsEnum(1, an.NiNames)),
		tlv.F(FieldMP, 1, tlv.AsUint(1)),
		tlv.F(FieldSLS, 1, tlv.AsUint(1)),
	)

	// asProtocolData decodes the routing label, then hands off user data with a hint derived from SI.
	asProtocolData = tlv.StrategyFunc(func(d *tlv.Decoder, c *tlv.Cursor) (tlv.Value, error) {
		v, e := routingLabel.Decode(d, c)
		label := v.(tlv.Struct)
		if e != nil {
			return label, e
		}
		si, _ := label.Uint(FieldSI)
		return append(label, tlv.Field{
			Name:  FieldUserProtocolData,
			Value: d.Embed(c, an.SiHint(uint8(si))),
		}), nil
	})

	asStatus = tlv.AsQualifiedEnum(
		FieldStatusType, 2, an.StatusTypeNames,
		FieldStatusInfo, 2, an.StatusInfoNames,
	)

	asUserCause = tlv.AsStruct(
		tlv.F(FieldCause, 2, tlv.AsEnum(2, an.UserCauseNames)),
		tlv.F(FieldUser, 2, tlv.AsEnum(2, an.SiNames)),
	)

	asCongestion = tlv.AsStruct(
		tlv.Reserved(3),
		tlv.F(FieldCongestionLevel, 1, tlv.AsEnum(1, an.CongestionLevelNames)),
	)

	asPointCodeList = tlv.AsRecords(4, tlv.AsPointCode)

	asCircuitRange = tlv.AsRecords(8, tlv.AsStruct(
		tlv.F("Point Code", 4, tlv.AsPointCode),
		tlv.F("Lower CIC", 2, tlv.AsUint(2)),
		tlv.F("Upper CIC", 2, tlv.AsUint(2)),
	))
)

// TableV10 is the tag table of the V10 numbering.
var TableV10 = tlv.NewTable("m3ua-v10", tlv.FramingSigtran,
	tlv.Entry{Tag: TagInfoString, Name: "Info String", Strategy: tlv.AsText},
	tlv.Entry{Tag: TagRoutingContext, Name: "Routing Context", Strategy: tlv.AsUintList(4)},
	tlv.Entry{Tag: TagDiagnosticInfo, Name: "Diagnostic Information", Strategy: tlv.AsOpaque},
	tlv.Entry{Tag: TagHeartbeatData, Name: "Heartbeat Data", Strategy: tlv.AsOpaque},
	tlv.Entry{Tag: TagTrafficModeType, Name: "Traffic Mode Type", Strategy: tlv.AsEnum(4, an.TrafficModeNames)},
	tlv.Entry{Tag: TagErrorCode, Name: "Error Code", Strategy: tlv.AsEnum(4, an.ErrorCodeNames)},
	tlv.Entry{Tag: TagStatus, Name: "Status", Strategy: asStatus},
	tlv.Entry{Tag: TagASPIdentifier, Name: "ASP Identifier", Strategy: tlv.AsUint(4)},
	tlv.Entry{Tag: TagAffectedPointCode, Name: "Affected Point Code", Strategy: asPointCodeList},
	tlv.Entry{Tag: TagCorrelationID, Name: "Correlation ID", Strategy: tlv.AsUint(4)},
	tlv.Entry{Tag: TagNetworkAppearance, Name: "Network Appearance", Strategy: tlv.AsUint(4)},
	tlv.Entry{Tag: TagUserCause, Name: "User/Cause", Strategy: asUserCause},
	tlv.Entry{Tag: TagCongestionIndications, Name: "Congestion Indications", Strategy: asCongestion},
	tlv.Entry{Tag: TagConcernedDestination, Name: "Concerned Destination", Strategy: tlv.AsPointCode},
	tlv.Entry{Tag: TagRoutingKey, Name: "Routing Key", Strategy: tlv.AsNested(nil)},
	tlv.Entry{Tag: TagRegistrationResult, Name: "Registration Result", Strategy: tlv.AsNested(nil)},
	tlv.Entry{Tag: TagDeregistrationResult, Name: "Deregistration Result", Strategy: tlv.AsNested(nil)},
	tlv.Entry{Tag: TagLocalRoutingKeyIdentifier, Name: "Local-RK-Identifier", Strategy: tlv.AsUint(4)},
	tlv.Entry{Tag: TagDestinationPointCode, Name: "Destination Point Code", Strategy: tlv.AsPointCode},
	tlv.Entry{Tag: TagServiceIndicators, Name: "Service Indicators", Strategy: tlv.AsUintList(1)},
	tlv.Entry{Tag: TagOriginatingPointCodeList, Name: "Originating Point Code List", Strategy: asPointCodeList},
	tlv.Entry{Tag: TagCircuitRange, Name: "Circuit Range", Strategy: asCircuitRange},
	tlv.Entry{Tag: TagProtocolData, Name: "Protocol Data", Strategy: asProtocolData},
	tlv.Entry{Tag: TagRegistrationStatus, Name: "Registration Status", Strategy: tlv.AsEnum(4, an.RegistrationStatusNames)},
	tlv.Entry{Tag: TagDeregistrationStatus, Name: "Deregistration Status", Strategy: tlv.AsEnum(4, an.DeregistrationStatusNames)},
)

var (
	v6RegistrationResult = tlv.AsStruct(
		tlv.F("Local-RK-Identifier", 4, tlv.AsUint(4)),
		tlv.F("Registration Status", 4, tlv.AsEnum(4, an.RegistrationStatusNames)),
		tlv.F("Routing Context", 4, tlv.AsUint(4)),
	)

	v6DeregistrationResult = tlv.AsStruct(
		tlv.F("Routing Context", 4, tlv.AsUint(4)),
		tlv.F("Deregistration Status", 4, tlv.AsEnum(4, an.DeregistrationStatusNames)),
	)
)

// TableV6 is the tag table of the V6 numbering.
// Registration and deregistration results are fixed-layout records rather than nested lists.
var TableV6 = tlv.NewTable("m3ua-v6", tlv.FramingSigtran,
	tlv.Entry{Tag: V6TagNetworkAppearance, Name: "Network Appearance", Strategy: tlv.AsUint(4)},
	tlv.Entry{Tag: V6TagProtocolData1, Name: "Protocol Data 1", Strategy: tlv.AsEmbedded(an.HintMTP3)},
	tlv.Entry{Tag: V6TagProtocolData2, Name: "Protocol Data 2", Strategy: tlv.AsStruct(
		tlv.F("Length Indicator", 1, tlv.AsUint(1)),
		tlv.F("MTP3 Message", 0, tlv.AsEmbedded(an.HintMTP3)),
	)},
	tlv.Entry{Tag: V6TagInfoString, Name: "Info String", Strategy: tlv.AsText},
	tlv.Entry{Tag: V6TagAffectedDestinations, Name: "Affected Destinations", Strategy: asPointCodeList},
	tlv.Entry{Tag: V6TagRoutingContext, Name: "Routing Context", Strategy: tlv.AsUintList(4)},
	tlv.Entry{Tag: V6TagDiagnosticInfo, Name: "Diagnostic Information", Strategy: tlv.AsOpaque},
	tlv.Entry{Tag: V6TagHeartbeatData, Name: "Heartbeat Data", Strategy: tlv.AsOpaque},
	tlv.Entry{Tag: V6TagUserCause, Name: "User/Cause", Strategy: asUserCause},
	tlv.Entry{Tag: V6TagReason, Name: "Reason", Strategy: tlv.AsEnum(4, an.ReasonNames)},
	tlv.Entry{Tag: V6TagTrafficModeType, Name: "Traffic Mode Type", Strategy: tlv.AsEnum(4, an.TrafficModeNames)},
	tlv.Entry{Tag: V6TagErrorCode, Name: "Error Code", Strategy: tlv.AsEnum(4, an.ErrorCodeNames)},
	tlv.Entry{Tag: V6TagStatus, Name: "Status", Strategy: asStatus},
	tlv.Entry{Tag: V6TagCongestionIndications, Name: "Congestion Indications", Strategy: asCongestion},
	tlv.Entry{Tag: V6TagConcernedDestination, Name: "Concerned Destination", Strategy: tlv.AsPointCode},
	tlv.Entry{Tag: V6TagRoutingKey, Name: "Routing Key", Strategy: tlv.AsNested(nil)},
	tlv.Entry{Tag: V6TagRegistrationResult, Name: "Registration Result", Strategy: v6RegistrationResult},
	tlv.Entry{Tag: V6TagDeregistrationResult, Name: "Deregistration Result", Strategy: v6DeregistrationResult},
	tlv.Entry{Tag: V6TagLocalRoutingKeyIdentifier, Name: "Local-RK-Identifier", Strategy: tlv.AsUint(4)},
	tlv.Entry{Tag: V6TagDestinationPointCode, Name: "Destination Point Code", Strategy: tlv.AsPointCode},
	tlv.Entry{Tag: V6TagServiceIndicators, Name: "Service Indicators", Strategy: tlv.AsUintList(1)},
	tlv.Entry{Tag: V6TagSubsystemNumbers, Name: "Subsystem Numbers", Strategy: tlv.AsUintList(1)},
	tlv.Entry{Tag: V6TagOriginatingPointCodeList, Name: "Originating Point Code List", Strategy: asPointCodeList},
	tlv.Entry{Tag: V6TagCircuitRange, Name: "Circuit Range", Strategy: asCircuitRange},
	tlv.Entry{Tag: V6TagRegistrationResults, Name: "Registration Results", Strategy: tlv.AsNested(nil)},
	tlv.Entry{Tag: V6TagDeregistrationResults, Name: "Deregistration Results", Strategy: tlv.AsNested(nil)},
)
