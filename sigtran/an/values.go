package an

// TrafficModeNames contains Traffic Mode Type values.
var TrafficModeNames = Names{
	1: "Override",
	2: "Loadshare",
	3: "Broadcast",
}

// ErrorCodeNames contains Error Code values of M3UA and SUA.
var ErrorCodeNames = Names{
	0x01: "Invalid Version",
	0x02: "Invalid Interface Identifier",
	0x03: "Unsupported Message Class",
	0x04: "Unsupported Message Type",
	0x05: "Unsupported Traffic Handling Mode",
	0x06: "Unexpected Message",
	0x07: "Protocol Error",
	0x09: "Invalid Stream Identifier",
	0x0d: "Refused - Management Blocking",
	0x0e: "ASP Identifier Required",
	0x0f: "Invalid ASP Identifier",
	0x11: "Invalid Parameter Value",
	0x12: "Parameter Field Error",
	0x13: "Unexpected Parameter",
	0x14: "Destination Status Unknown",
	0x15: "Invalid Network Appearance",
	0x16: "Missing Parameter",
	0x19: "Invalid Routing Context",
	0x1a: "No Configured AS for ASP",
	0x1b: "Subsystem Status Unknown",
	0x1c: "Invalid Loadsharing Label",
}

// StatusTypeNames contains Status Type values of the Notify message.
var StatusTypeNames = Names{
	1: "Application Server State Change",
	2: "Other",
}

// StatusInfoNames contains Status Information values, keyed by (type<<16 | info).
var StatusInfoNames = Names{
	1<<16 | 1: "Reserved",
	1<<16 | 2: "Application Server Inactive",
	1<<16 | 3: "Application Server Active",
	1<<16 | 4: "Application Server Pending",
	2<<16 | 1: "Insufficient ASP resources active in AS",
	2<<16 | 2: "Alternate ASP Active",
	2<<16 | 3: "ASP Failure",
}

// UserCauseNames contains Unavailability Cause values.
var UserCauseNames = Names{
	0: "Unknown",
	1: "Unequipped remote user",
	2: "Inaccessible remote user",
}

// CongestionLevelNames contains congestion level values.
var CongestionLevelNames = Names{
	0: "No congestion or undefined",
	1: "Congestion level 1",
	2: "Congestion level 2",
	3: "Congestion level 3",
}

// ReasonNames contains Reason values of M3UA draft 6.
var ReasonNames = Names{
	1: "Destination unavailable",
}

// RegistrationStatusNames contains Registration Status values.
var RegistrationStatusNames = Names{
	0:  "Successfully Registered",
	1:  "Error - Unknown",
	2:  "Error - Invalid DPC",
	3:  "Error - Invalid Network Appearance",
	4:  "Error - Invalid Routing Key",
	5:  "Error - Permission Denied",
	6:  "Error - Cannot Support Unique Routing",
	7:  "Error - Routing Key not Currently Provisioned",
	8:  "Error - Insufficient Resources",
	9:  "Error - Unsupported RK parameter Field",
	10: "Error - Unsupported/Invalid Traffic Handling Mode",
	11: "Error - Routing Key Change Refused",
	12: "Error - Routing Key Already Registered",
}

// DeregistrationStatusNames contains Deregistration Status values.
var DeregistrationStatusNames = Names{
	0: "Successfully Deregistered",
	1: "Error - Unknown",
	2: "Error - Invalid Routing Context",
	3: "Error - Permission Denied",
	4: "Error - Not Registered",
	5: "Error - ASP Currently Active for Routing Context",
}

// RoutingIndicatorNames contains SUA address Routing Indicator values.
var RoutingIndicatorNames = Names{
	0: "Reserved",
	1: "Route on Global Title",
	2: "Route on SSN + PC",
	3: "Route on Hostname",
	4: "Route on SSN + IP Address",
}

// Address Indicator bits of an SUA address.
const (
	AddrIndPC  = 0x0001
	AddrIndSSN = 0x0002
	AddrIndGT  = 0x0004
)

// SccpCauseTypeNames contains SCCP Cause types.
var SccpCauseTypeNames = Names{
	1: "Return Cause",
	2: "Refusal Cause",
	3: "Release Cause",
	4: "Reset Cause",
	5: "Error Cause",
}

// InterworkingNames contains ASP Capabilities interworking values.
var InterworkingNames = Names{
	0: "No Interworking with SS7 Networks",
	1: "IP-Signalling Endpoint interworking with SS7 networks",
	2: "Signalling Gateway",
	3: "Relay node support",
}

// Protocol class bits of ASP Capabilities.
const (
	ProtocolClass0 = 0x01
	ProtocolClass1 = 0x02
	ProtocolClass2 = 0x04
	ProtocolClass3 = 0x08
)

// Protocol Class parameter bits.
const (
	ProtocolClassReturnOnError = 0x80
)

// SsnNames contains commonly used SCCP subsystem numbers.
var SsnNames = Names{
	0:   "SSN not known/not used",
	1:   "SCCP management",
	3:   "ISDN user part",
	4:   "OMAP",
	5:   "MAP",
	6:   "HLR",
	7:   "VLR",
	8:   "MSC",
	9:   "EIR",
	10:  "AuC",
	142: "RANAP",
	143: "RNSAP",
	145: "GMLC",
	146: "CAP",
	147: "gsmSCF",
	149: "SGSN",
	150: "GGSN",
}

// GtiNames contains Global Title Indicator values.
var GtiNames = Names{
	1: "Nature of address indicator only",
	2: "Translation type only",
	3: "Translation type, numbering plan and encoding scheme",
	4: "Translation type, numbering plan, encoding scheme and nature of address indicator",
}

// SmiNames contains Subsystem Multiplicity Indicator values.
var SmiNames = Names{
	0:    "Reserved/Unknown",
	1:    "Solitary",
	2:    "Duplicated",
	3:    "Triplicated",
	4:    "Quadruplicated",
	0xFF: "Unspecified",
}
