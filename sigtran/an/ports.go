package an

// SCTP payload protocol identifiers.
const (
	PpidM3UA = 3
	PpidSUA  = 4
)

// Well-known ports.
const (
	SctpPortM3UA = 2905
	SctpPortSUA  = 14001
	PortISNS     = 3205
)
