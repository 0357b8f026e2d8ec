package isns

// Attribute tags.
const (
	TagDelimiter               = 0
	TagEntityIdentifier        = 1
	TagEntityProtocol          = 2
	TagManagementIPAddress     = 3
	TagTimestamp               = 4
	TagProtocolVersionRange    = 5
	TagRegistrationPeriod      = 6
	TagEntityIndex             = 7
	TagEntityNextIndex         = 8
	TagEntityISAKMPPhase1      = 11
	TagEntityCertificate       = 12
	TagPortalIPAddress         = 16
	TagPortalPort              = 17
	TagPortalSymbolicName      = 18
	TagESIInterval             = 19
	TagESIPort                 = 20
	TagPortalIndex             = 22
	TagSCNPort                 = 23
	TagPortalNextIndex         = 24
	TagPortalSecurityBitmap    = 27
	TagPortalISAKMPPhase1      = 28
	TagPortalISAKMPPhase2      = 29
	TagPortalCertificate       = 31
	TagISCSIName               = 32
	TagISCSINodeType           = 33
	TagISCSIAlias              = 34
	TagISCSISCNBitmap          = 35
	TagISCSINodeIndex          = 36
	TagWWNNToken               = 37
	TagISCSINodeNextIndex      = 38
	TagISCSIAuthMethod         = 42
	TagPGISCSIName             = 48
	TagPGPortalIPAddress       = 49
	TagPGPortalPort            = 50
	TagPGTag                   = 51
	TagPGIndex                 = 52
	TagPGNextIndex             = 53
	TagFCPortNameWWPN          = 64
	TagPortID                  = 65
	TagFCPortType              = 66
	TagSymbolicPortName        = 67
	TagFabricPortName          = 68
	TagHardAddress             = 69
	TagPortIPAddress           = 70
	TagClassOfService          = 71
	TagFC4Types                = 72
	TagFC4Descriptor           = 73
	TagFC4Features             = 74
	TagIFCPSCNBitmap           = 75
	TagPortRole                = 76
	TagPermanentPortName       = 77
	TagFC4TypeCode             = 95
	TagFCNodeNameWWNN          = 96
	TagSymbolicNodeName        = 97
	TagNodeIPAddress           = 98
	TagNodeIPA                 = 99
	TagProxyISCSIName          = 101
	TagSwitchName              = 128
	TagPreferredID             = 129
	TagAssignedID              = 130
	TagVirtualFabricID         = 131
	TagServerVendorOUI         = 132
	TagDDSetID                 = 2049
	TagDDSetSymbolicName       = 2050
	TagDDSetStatus             = 2051
	TagDDSetNextID             = 2052
	TagDDID                    = 2065
	TagDDSymbolicName          = 2066
	TagDDMemberISCSIIndex      = 2067
	TagDDMemberISCSIName       = 2068
	TagDDMemberFCPortName      = 2069
	TagDDMemberPortalIndex     = 2070
	TagDDMemberPortalIPAddress = 2071
	TagDDMemberPortalPort      = 2072
	TagDDFeatures              = 2078
	TagDDIDNextID              = 2079
)
