package isns

import (
	"github.com/usnistgov/sigtran-tlv/sigtran/an"
	"github.com/usnistgov/sigtran-tlv/sigtran/tlv"
)

var (
	asString = tlv.AsCString
	asIP     = tlv.AsIP16
	asU32    = tlv.AsUint(4)
	asU64    = tlv.AsUint(8)

	asPort = tlv.AsStruct(
		tlv.F("Transport", 2, tlv.AsFlags(2, tlv.Bit{Mask: 0x0001, Name: "UDP"})),
		tlv.F("Port", 2, tlv.AsUint(2)),
	)

	asVersionRange = tlv.AsStruct(
		tlv.F("Maximum", 2, tlv.AsUint(2)),
		tlv.F("Minimum", 2, tlv.AsUint(2)),
	)

	asNodeType = tlv.AsFlags(4,
		tlv.Bit{Mask: 0x01, Name: "Target"},
		tlv.Bit{Mask: 0x02, Name: "Initiator"},
		tlv.Bit{Mask: 0x04, Name: "Control"},
	)

	asSCNBitmap = tlv.AsFlags(4,
		tlv.Bit{Mask: 0x01, Name: "DD/DDS Member Added"},
		tlv.Bit{Mask: 0x02, Name: "DD/DDS Member Removed"},
		tlv.Bit{Mask: 0x04, Name: "Object Updated"},
		tlv.Bit{Mask: 0x08, Name: "Object Added"},
		tlv.Bit{Mask: 0x10, Name: "Object Removed"},
		tlv.Bit{Mask: 0x20, Name: "Management Registration/SCN"},
		tlv.Bit{Mask: 0x40, Name: "Target and Self Information Only"},
		tlv.Bit{Mask: 0x80, Name: "Initiator and Self Information Only"},
	)

	asSecurityBitmap = tlv.AsFlags(4,
		tlv.Bit{Mask: 0x01, Name: "Bitmap Valid"},
		tlv.Bit{Mask: 0x02, Name: "IKE/IPsec Enabled"},
		tlv.Bit{Mask: 0x04, Name: "Main Mode Enabled"},
		tlv.Bit{Mask: 0x08, Name: "Aggressive Mode Enabled"},
		tlv.Bit{Mask: 0x10, Name: "PFS Enabled"},
		tlv.Bit{Mask: 0x20, Name: "Transport Mode Preferred"},
		tlv.Bit{Mask: 0x40, Name: "Tunnel Mode Preferred"},
	)
)

// Table is the attribute table.
var Table = tlv.NewTable("isns", tlv.FramingISNS,
	tlv.Entry{Tag: TagDelimiter, Name: "Delimiter", Strategy: tlv.AsOpaque},
	tlv.Entry{Tag: TagEntityIdentifier, Name: "Entity Identifier", Strategy: asString},
	tlv.Entry{Tag: TagEntityProtocol, Name: "Entity Protocol", Strategy: tlv.AsEnum(4, an.ISNSEntityProtocolNames)},
	tlv.Entry{Tag: TagManagementIPAddress, Name: "Management IP Address", Strategy: asIP},
	tlv.Entry{Tag: TagTimestamp, Name: "Timestamp", Strategy: asU64},
	tlv.Entry{Tag: TagProtocolVersionRange, Name: "Protocol Version Range", Strategy: asVersionRange},
	tlv.Entry{Tag: TagRegistrationPeriod, Name: "Registration Period", Strategy: asU32},
	tlv.Entry{Tag: TagEntityIndex, Name: "Entity Index", Strategy: asU32},
	tlv.Entry{Tag: TagEntityNextIndex, Name: "Entity Next Index", Strategy: asU32},
	tlv.Entry{Tag: TagEntityISAKMPPhase1, Name: "Entity ISAKMP Phase-1", Strategy: tlv.AsOpaque},
	tlv.Entry{Tag: TagEntityCertificate, Name: "Entity Certificate", Strategy: tlv.AsOpaque},
	tlv.Entry{Tag: TagPortalIPAddress, Name: "Portal IP Address", Strategy: asIP},
	tlv.Entry{Tag: TagPortalPort, Name: "Portal TCP/UDP Port", Strategy: asPort},
	tlv.Entry{Tag: TagPortalSymbolicName, Name: "Portal Symbolic Name", Strategy: asString},
	tlv.Entry{Tag: TagESIInterval, Name: "ESI Interval", Strategy: asU32},
	tlv.Entry{Tag: TagESIPort, Name: "ESI Port", Strategy: asPort},
	tlv.Entry{Tag: TagPortalIndex, Name: "Portal Index", Strategy: asU32},
	tlv.Entry{Tag: TagSCNPort, Name: "SCN Port", Strategy: asPort},
	tlv.Entry{Tag: TagPortalNextIndex, Name: "Portal Next Index", Strategy: asU32},
	tlv.Entry{Tag: TagPortalSecurityBitmap, Name: "Portal Security Bitmap", Strategy: asSecurityBitmap},
	tlv.Entry{Tag: TagPortalISAKMPPhase1, Name: "Portal ISAKMP Phase-1", Strategy: tlv.AsOpaque},
	tlv.Entry{Tag: TagPortalISAKMPPhase2, Name: "Portal ISAKMP Phase-2", Strategy: tlv.AsOpaque},
	tlv.Entry{Tag: TagPortalCertificate, Name: "Portal Certificate", Strategy: tlv.AsOpaque},
	tlv.Entry{Tag: TagISCSIName, Name: "iSCSI Name", Strategy: asString},
	tlv.Entry{Tag: TagISCSINodeType, Name: "iSCSI Node Type", Strategy: asNodeType},
	tlv.Entry{Tag: TagISCSIAlias, Name: "iSCSI Alias", Strategy: asString},
	tlv.Entry{Tag: TagISCSISCNBitmap, Name: "iSCSI SCN Bitmap", Strategy: asSCNBitmap},
	tlv.Entry{Tag: TagISCSINodeIndex, Name: "iSCSI Node Index", Strategy: asU32},
	tlv.Entry{Tag: TagWWNNToken, Name: "WWNN Token", Strategy: asU64},
	tlv.Entry{Tag: TagISCSINodeNextIndex, Name: "iSCSI Node Next Index", Strategy: asU32},
	tlv.Entry{Tag: TagISCSIAuthMethod, Name: "iSCSI AuthMethod", Strategy: asString},
	tlv.Entry{Tag: TagPGISCSIName, Name: "PG iSCSI Name", Strategy: asString},
	tlv.Entry{Tag: TagPGPortalIPAddress, Name: "PG Portal IP Address", Strategy: asIP},
	tlv.Entry{Tag: TagPGPortalPort, Name: "PG Portal TCP/UDP Port", Strategy: asPort},
	tlv.Entry{Tag: TagPGTag, Name: "PG Tag", Strategy: asU32},
	tlv.Entry{Tag: TagPGIndex, Name: "PG Index", Strategy: asU32},
	tlv.Entry{Tag: TagPGNextIndex, Name: "PG Next Index", Strategy: asU32},
	tlv.Entry{Tag: TagFCPortNameWWPN, Name: "FC Port Name WWPN", Strategy: asU64},
	tlv.Entry{Tag: TagPortID, Name: "Port ID", Strategy: asU32},
	tlv.Entry{Tag: TagFCPortType, Name: "FC Port Type", Strategy: asU32},
	tlv.Entry{Tag: TagSymbolicPortName, Name: "Symbolic Port Name", Strategy: asString},
	tlv.Entry{Tag: TagFabricPortName, Name: "Fabric Port Name", Strategy: asU64},
	tlv.Entry{Tag: TagHardAddress, Name: "Hard Address", Strategy: asU32},
	tlv.Entry{Tag: TagPortIPAddress, Name: "Port IP Address", Strategy: asIP},
	tlv.Entry{Tag: TagClassOfService, Name: "Class of Service", Strategy: asU32},
	tlv.Entry{Tag: TagFC4Types, Name: "FC-4 Types", Strategy: tlv.AsOpaque},
	tlv.Entry{Tag: TagFC4Descriptor, Name: "FC-4 Descriptor", Strategy: asString},
	tlv.Entry{Tag: TagFC4Features, Name: "FC-4 Features", Strategy: tlv.AsOpaque},
	tlv.Entry{Tag: TagIFCPSCNBitmap, Name: "iFCP SCN Bitmap", Strategy: asSCNBitmap},
	tlv.Entry{Tag: TagPortRole, Name: "Port Role", Strategy: tlv.AsFlags(4,
		tlv.Bit{Mask: 0x01, Name: "Control"},
		tlv.Bit{Mask: 0x02, Name: "FCP Initiator"},
		tlv.Bit{Mask: 0x04, Name: "FCP Target"},
	)},
	tlv.Entry{Tag: TagPermanentPortName, Name: "Permanent Port Name", Strategy: asU64},
	tlv.Entry{Tag: TagFC4TypeCode, Name: "FC-4 Type Code", Strategy: asU32},
	tlv.Entry{Tag: TagFCNodeNameWWNN, Name: "FC Node Name WWNN", Strategy: asU64},
	tlv.Entry{Tag: TagSymbolicNodeName, Name: "Symbolic Node Name", Strategy: asString},
	tlv.Entry{Tag: TagNodeIPAddress, Name: "Node IP Address", Strategy: asIP},
	tlv.Entry{Tag: TagNodeIPA, Name: "Node IPA", Strategy: asU64},
	tlv.Entry{Tag: TagProxyISCSIName, Name: "Proxy iSCSI Name", Strategy: asString},
	tlv.Entry{Tag: TagSwitchName, Name: "Switch Name", Strategy: asU64},
	tlv.Entry{Tag: TagPreferredID, Name: "Preferred ID", Strategy: asU32},
	tlv.Entry{Tag: TagAssignedID, Name: "Assigned ID", Strategy: asU32},
	tlv.Entry{Tag: TagVirtualFabricID, Name: "Virtual Fabric ID", Strategy: asString},
	tlv.Entry{Tag: TagServerVendorOUI, Name: "iSNS Server Vendor OUI", Strategy: asU32},
	tlv.Entry{Tag: TagDDSetID, Name: "DD_Set ID", Strategy: asU32},
	tlv.Entry{Tag: TagDDSetSymbolicName, Name: "DD_Set Symbolic Name", Strategy: asString},
	tlv.Entry{Tag: TagDDSetStatus, Name: "DD_Set Status", Strategy: tlv.AsFlags(4, tlv.Bit{Mask: 0x01, Name: "Enabled"})},
	tlv.Entry{Tag: TagDDSetNextID, Name: "DD_Set Next ID", Strategy: asU32},
	tlv.Entry{Tag: TagDDID, Name: "DD ID", Strategy: asU32},
	tlv.Entry{Tag: TagDDSymbolicName, Name: "DD Symbolic Name", Strategy: asString},
	tlv.Entry{Tag: TagDDMemberISCSIIndex, Name: "DD Member iSCSI Index", Strategy: asU32},
	tlv.Entry{Tag: TagDDMemberISCSIName, Name: "DD Member iSCSI Name", Strategy: asString},
	tlv.Entry{Tag: TagDDMemberFCPortName, Name: "DD Member FC Port Name", Strategy: asU64},
	tlv.Entry{Tag: TagDDMemberPortalIndex, Name: "DD Member Portal Index", Strategy: asU32},
	tlv.Entry{Tag: TagDDMemberPortalIPAddress, Name: "DD Member Portal IP Address", Strategy: asIP},
	tlv.Entry{Tag: TagDDMemberPortalPort, Name: "DD Member Portal TCP/UDP Port", Strategy: asPort},
	tlv.Entry{Tag: TagDDFeatures, Name: "DD Features", Strategy: tlv.AsFlags(4, tlv.Bit{Mask: 0x01, Name: "Boot List"})},
	tlv.Entry{Tag: TagDDIDNextID, Name: "DD ID Next ID", Strategy: asU32},
)

var asHeartbeat = tlv.AsStruct(
	tlv.F("Heartbeat IP Address", 16, asIP),
	tlv.F("Heartbeat UDP Port", 2, tlv.AsUint(2)),
	tlv.F("Heartbeat TCP Port", 2, tlv.AsUint(2)),
	tlv.F("Heartbeat Interval", 4, asU32),
	tlv.F("Heartbeat Counter", 4, asU32),
)
