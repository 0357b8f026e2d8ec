package an

// Message classes shared by M3UA and SUA.
const (
	ClassMGMT  = 0
	ClassTFER  = 1
	ClassSSNM  = 2
	ClassASPSM = 3
	ClassASPTM = 4
	ClassCL    = 7
	ClassCO    = 8
	ClassRKM   = 9
)

// ClassNames contains message class names.
var ClassNames = Names{
	ClassMGMT:  "MGMT",
	ClassTFER:  "Transfer",
	ClassSSNM:  "SSNM",
	ClassASPSM: "ASPSM",
	ClassASPTM: "ASPTM",
	ClassCL:    "CL",
	ClassCO:    "CO",
	ClassRKM:   "RKM",
}

// Message types within each class.
const (
	TypeERR  = 0
	TypeNTFY = 1

	TypeDATA = 1

	TypeDUNA = 1
	TypeDAVA = 2
	TypeDAUD = 3
	TypeSCON = 4
	TypeDUPU = 5
	TypeDRST = 6

	TypeUP      = 1
	TypeDOWN    = 2
	TypeBEAT    = 3
	TypeUPACK   = 4
	TypeDOWNACK = 5
	TypeBEATACK = 6

	TypeACTIVE      = 1
	TypeINACTIVE    = 2
	TypeACTIVEACK   = 3
	TypeINACTIVEACK = 4

	TypeREGREQ   = 1
	TypeREGRSP   = 2
	TypeDEREGREQ = 3
	TypeDEREGRSP = 4

	TypeCLDT = 1
	TypeCLDR = 2

	TypeCORE  = 1
	TypeCOAK  = 2
	TypeCOREF = 3
	TypeRELRE = 4
	TypeRELCO = 5
	TypeRESCO = 6
	TypeRESRE = 7
	TypeCODT  = 8
	TypeCODA  = 9
	TypeCOERR = 10
	TypeCOIT  = 11
)

var commonMessageNames = map[uint8]Names{
	ClassMGMT: {
		TypeERR:  "ERR",
		TypeNTFY: "NTFY",
	},
	ClassSSNM: {
		TypeDUNA: "DUNA",
		TypeDAVA: "DAVA",
		TypeDAUD: "DAUD",
		TypeSCON: "SCON",
		TypeDUPU: "DUPU",
		TypeDRST: "DRST",
	},
	ClassASPSM: {
		TypeUP:      "ASPUP",
		TypeDOWN:    "ASPDN",
		TypeBEAT:    "BEAT",
		TypeUPACK:   "ASPUP_ACK",
		TypeDOWNACK: "ASPDN_ACK",
		TypeBEATACK: "BEAT_ACK",
	},
	ClassASPTM: {
		TypeACTIVE:      "ASPAC",
		TypeINACTIVE:    "ASPIA",
		TypeACTIVEACK:   "ASPAC_ACK",
		TypeINACTIVEACK: "ASPIA_ACK",
	},
	ClassRKM: {
		TypeREGREQ:   "REG_REQ",
		TypeREGRSP:   "REG_RSP",
		TypeDEREGREQ: "DEREG_REQ",
		TypeDEREGRSP: "DEREG_RSP",
	},
}

var m3uaMessageNames = map[uint8]Names{
	ClassTFER: {
		TypeDATA: "DATA",
	},
}

var suaMessageNames = map[uint8]Names{
	ClassCL: {
		TypeCLDT: "CLDT",
		TypeCLDR: "CLDR",
	},
	ClassCO: {
		TypeCORE:  "CORE",
		TypeCOAK:  "COAK",
		TypeCOREF: "COREF",
		TypeRELRE: "RELRE",
		TypeRELCO: "RELCO",
		TypeRESCO: "RESCO",
		TypeRESRE: "RESRE",
		TypeCODT:  "CODT",
		TypeCODA:  "CODA",
		TypeCOERR: "COERR",
		TypeCOIT:  "COIT",
	},
}

func messageString(specific map[uint8]Names, class, typ uint8) string {
	names, ok := specific[class]
	if !ok {
		names = commonMessageNames[class]
	}
	if name, ok := names.Lookup(uint64(typ)); ok {
		return name
	}
	return ClassNames.String(uint64(class)) + "/" + Names(nil).String(uint64(typ))
}

// M3UAMessageString returns the name of an M3UA message.
func M3UAMessageString(class, typ uint8) string {
	return messageString(m3uaMessageNames, class, typ)
}

// SUAMessageString returns the name of an SUA message.
func SUAMessageString(class, typ uint8) string {
	return messageString(suaMessageNames, class, typ)
}
