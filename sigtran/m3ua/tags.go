package m3ua

// Parameter tags of the V10 numbering.
const (
	TagInfoString                = 0x0004
	TagRoutingContext            = 0x0006
	TagDiagnosticInfo            = 0x0007
	TagHeartbeatData             = 0x0009
	TagTrafficModeType           = 0x000B
	TagErrorCode                 = 0x000C
	TagStatus                    = 0x000D
	TagASPIdentifier             = 0x0011
	TagAffectedPointCode         = 0x0012
	TagCorrelationID             = 0x0013
	TagNetworkAppearance         = 0x0200
	TagUserCause                 = 0x0204
	TagCongestionIndications     = 0x0205
	TagConcernedDestination      = 0x0206
	TagRoutingKey                = 0x0207
	TagRegistrationResult        = 0x0208
	TagDeregistrationResult      = 0x0209
	TagLocalRoutingKeyIdentifier = 0x020A
	TagDestinationPointCode      = 0x020B
	TagServiceIndicators         = 0x020C
	TagOriginatingPointCodeList  = 0x020E
	TagCircuitRange              = 0x020F
	TagProtocolData              = 0x0210
	TagRegistrationStatus        = 0x0212
	TagDeregistrationStatus      = 0x0213
)

// Parameter tags of the V6 numbering.
const (
	V6TagNetworkAppearance         = 0x01
	V6TagProtocolData1             = 0x02
	V6TagProtocolData2             = 0x03
	V6TagInfoString                = 0x04
	V6TagAffectedDestinations      = 0x05
	V6TagRoutingContext            = 0x06
	V6TagDiagnosticInfo            = 0x07
	V6TagHeartbeatData             = 0x08
	V6TagUserCause                 = 0x09
	V6TagReason                    = 0x0A
	V6TagTrafficModeType           = 0x0B
	V6TagErrorCode                 = 0x0C
	V6TagStatus                    = 0x0D
	V6TagCongestionIndications     = 0x0E
	V6TagConcernedDestination      = 0x0F
	V6TagRoutingKey                = 0x10
	V6TagRegistrationResult        = 0x11
	V6TagDeregistrationResult      = 0x12
	V6TagLocalRoutingKeyIdentifier = 0x13
	V6TagDestinationPointCode      = 0x14
	V6TagServiceIndicators         = 0x15
	V6TagSubsystemNumbers          = 0x16
	V6TagOriginatingPointCodeList  = 0x17
	V6TagCircuitRange              = 0x18
	V6TagRegistrationResults       = 0x19
	V6TagDeregistrationResults     = 0x1A
)
