package an

// ISNSVersion is the only iSNS protocol version.
const ISNSVersion = 1

// iSNS function identifiers.
const (
	IsnsDevAttrReg = 0x0001
	IsnsDevAttrQry = 0x0002
	IsnsDevGetNext = 0x0003
	IsnsDevDereg   = 0x0004
	IsnsSCNReg     = 0x0005
	IsnsSCNDereg   = 0x0006
	IsnsSCNEvent   = 0x0007
	IsnsSCN        = 0x0008
	IsnsDDReg      = 0x0009
	IsnsDDDereg    = 0x000A
	IsnsDDSReg     = 0x000B
	IsnsDDSDereg   = 0x000C
	IsnsESI        = 0x000D
	IsnsHeartbeat  = 0x000E
	IsnsRqstDomID  = 0x0011
	IsnsRlseDomID  = 0x0012
	IsnsGetDomID   = 0x0013

	// IsnsResponse is set in the function ID of a response.
	IsnsResponse = 0x8000
)

var isnsFunctionNames = Names{
	IsnsDevAttrReg: "DevAttrReg",
	IsnsDevAttrQry: "DevAttrQry",
	IsnsDevGetNext: "DevGetNext",
	IsnsDevDereg:   "DevDereg",
	IsnsSCNReg:     "SCNReg",
	IsnsSCNDereg:   "SCNDereg",
	IsnsSCNEvent:   "SCNEvent",
	IsnsSCN:        "SCN",
	IsnsDDReg:      "DDReg",
	IsnsDDDereg:    "DDDereg",
	IsnsDDSReg:     "DDSReg",
	IsnsDDSDereg:   "DDSDereg",
	IsnsESI:        "ESI",
	IsnsHeartbeat:  "Heartbeat",
	IsnsRqstDomID:  "RqstDomId",
	IsnsRlseDomID:  "RlseDomId",
	IsnsGetDomID:   "GetDomId",
}

// ISNSFunctionString returns the name of an iSNS function ID.
func ISNSFunctionString(fid uint16) string {
	if fid&IsnsResponse != 0 {
		return isnsFunctionNames.String(uint64(fid&^IsnsResponse)) + "Rsp"
	}
	return isnsFunctionNames.String(uint64(fid))
}

// iSNS header flags.
const (
	IsnsFlagClient    = 0x8000
	IsnsFlagServer    = 0x4000
	IsnsFlagAuth      = 0x2000
	IsnsFlagReplace   = 0x1000
	IsnsFlagLastPDU   = 0x0800
	IsnsFlagFirstPDU  = 0x0400
	IsnsFlagsReserved = 0x03FF
)

// ISNSStatusNames contains iSNS response status codes.
var ISNSStatusNames = Names{
	0:  "Successful",
	1:  "Unknown Error",
	2:  "Message Format Error",
	3:  "Invalid Registration",
	4:  "Reserved",
	5:  "Invalid Query",
	6:  "Source Unknown",
	7:  "Source Absent",
	8:  "Source Unauthorized",
	9:  "No Such Entry",
	10: "Version Not Supported",
	11: "Internal Error",
	12: "Busy",
	13: "Option Not Understood",
	14: "Invalid Update",
	15: "Message (FUNCTION_ID) Not Supported",
	16: "SCN Event Rejected",
	17: "SCN Registration Rejected",
	18: "Attribute Not Implemented",
	19: "FC_DOMAIN_ID Not Available",
	20: "FC_DOMAIN_ID Not Allocated",
	21: "ESI Not Available",
	22: "Invalid Deregistration",
	23: "Registration Feature Not Supported",
}

// ISNSEntityProtocolNames contains Entity Protocol values.
var ISNSEntityProtocolNames = Names{
	1: "No Protocol",
	2: "iSCSI",
	3: "iFCP",
}
