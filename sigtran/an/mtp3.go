package an

// Service indicators of the MTP3 routing label.
const (
	SiSNM   = 0
	SiMTN   = 1
	SiMTNS  = 2
	SiSCCP  = 3
	SiTUP   = 4
	SiISUP  = 5
	SiDUPC  = 6
	SiDUPF  = 7
	SiMTUP  = 8
	SiBISUP = 9
	SiSISUP = 10
	SiAAL2  = 12
	SiBICC  = 13
	SiGCP   = 14
)

// SiNames contains service indicator names.
var SiNames = Names{
	SiSNM:   "Signalling Network Management Message",
	SiMTN:   "Maintenance Regular Message",
	SiMTNS:  "Maintenance Special Message",
	SiSCCP:  "SCCP",
	SiTUP:   "TUP",
	SiISUP:  "ISUP",
	SiDUPC:  "DUP (call and circuit related messages)",
	SiDUPF:  "DUP (facility registration and cancellation message)",
	SiMTUP:  "MTP testing user part",
	SiBISUP: "Broadband ISUP",
	SiSISUP: "Satellite ISUP",
	SiAAL2:  "AAL type 2 Signalling",
	SiBICC:  "Bearer Independent Call Control",
	SiGCP:   "Gateway Control Protocol",
}

// Embedded payload hints.
// A hint names the protocol of bytes handed off to an external decoder.
const (
	HintMTP3     = "mtp3"
	HintMTP3MGMT = "mtp3mg"
	HintSCCP     = "sccp"
	HintTUP      = "tup"
	HintISUP     = "isup"
	HintBICC     = "bicc"
	HintSCCPUser = "sccp-user"
	HintData     = "data"
)

// SiHint returns the embedded payload hint for user data addressed with a service indicator.
func SiHint(si uint8) string {
	switch si {
	case SiSNM, SiMTN, SiMTNS:
		return HintMTP3MGMT
	case SiSCCP:
		return HintSCCP
	case SiTUP:
		return HintTUP
	case SiISUP, SiBISUP, SiSISUP:
		return HintISUP
	case SiBICC:
		return HintBICC
	}
	return HintData
}

// NiNames contains network indicator names.
var NiNames = Names{
	0: "International network",
	1: "Spare (for international use only)",
	2: "National network",
	3: "Reserved for national use",
}
