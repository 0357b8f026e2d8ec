package sua

// Parameter tags shared with other SIGTRAN adaptation layers.
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
	TagRegistrationResult        = 0x0014
	TagDeregistrationResult      = 0x0015
	TagRegistrationStatus        = 0x0016
	TagDeregistrationStatus      = 0x0017
	TagLocalRoutingKeyIdentifier = 0x0018
)

// SUA-specific parameter tags.
const (
	TagHopCounter                 = 0x0101
	TagSourceAddress              = 0x0102
	TagDestinationAddress         = 0x0103
	TagSourceReferenceNumber      = 0x0104
	TagDestinationReferenceNumber = 0x0105
	TagSCCPCause                  = 0x0106
	TagSequenceNumber             = 0x0107
	TagReceiveSequenceNumber      = 0x0108
	TagASPCapabilities            = 0x0109
	TagCredit                     = 0x010A
	TagData                       = 0x010B
	TagUserCause                  = 0x010C
	TagNetworkAppearance          = 0x010D
	TagRoutingKey                 = 0x010E
	TagDRNLabel                   = 0x010F
	TagTIDLabel                   = 0x0110
	TagAddressRange               = 0x0111
	TagSMI                        = 0x0112
	TagImportance                 = 0x0113
	TagMessagePriority            = 0x0114
	TagProtocolClass              = 0x0115
	TagSequenceControl            = 0x0116
	TagSegmentation               = 0x0117
	TagCongestionLevel            = 0x0118
)

// Address parameter tags, found inside Source Address and Destination Address.
const (
	TagGlobalTitle     = 0x8001
	TagPointCode       = 0x8002
	TagSubsystemNumber = 0x8003
	TagIPv4Address     = 0x8004
	TagHostname        = 0x8005
	TagIPv6Address     = 0x8006
)

// Parameter tags that differ in the Light numbering.
//
// The Light numbering is an assumed vendor layout, not taken from a published document.
// It renumbers Data, Congestion Level, and the address parameters into a compact range,
// and keeps every other tag of the IETF numbering.
const (
	LightTagData            = 0x0003
	LightTagCongestionLevel = 0x000F
)

// Address parameter tags of the Light numbering, also an assumed vendor layout.
const (
	LightTagGlobalTitle     = 0x0001
	LightTagPointCode       = 0x0002
	LightTagSubsystemNumber = 0x0003
	LightTagIPv4Address     = 0x0004
	LightTagHostname        = 0x0005
	LightTagIPv6Address     = 0x0006
)
