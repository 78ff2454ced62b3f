// Package nvme defines the bit-exact, little-endian NVMe wire structures
// this module translates SCSI commands into, following the same fixed-size
// byte-array-plus-accessor convention as the scsi package (NVMe Base
// Specification 1.4, grounded on the [MODULE] layouts in the C++ project
// this spec distills, third_party/spdk/nvme.h).
package nvme

// AdminOpcode identifies an Admin Command Set operation (NVMe Base Spec
// Figure 139/140).
type AdminOpcode = byte

const (
	AdminOpcodeDeleteIoSq           AdminOpcode = 0x00
	AdminOpcodeCreateIoSq           AdminOpcode = 0x01
	AdminOpcodeGetLogPage           AdminOpcode = 0x02
	AdminOpcodeDeleteIoCq           AdminOpcode = 0x04
	AdminOpcodeCreateIoCq           AdminOpcode = 0x05
	AdminOpcodeIdentify             AdminOpcode = 0x06
	AdminOpcodeAbort                AdminOpcode = 0x08
	AdminOpcodeSetFeatures          AdminOpcode = 0x09
	AdminOpcodeGetFeatures          AdminOpcode = 0x0a
	AdminOpcodeAsyncEventRequest    AdminOpcode = 0x0c
	AdminOpcodeNsManagement         AdminOpcode = 0x0d
	AdminOpcodeFirmwareCommit       AdminOpcode = 0x10
	AdminOpcodeFirmwareImageDownload AdminOpcode = 0x11
	AdminOpcodeDeviceSelfTest       AdminOpcode = 0x14
	AdminOpcodeNsAttachment         AdminOpcode = 0x15
	AdminOpcodeKeepAlive            AdminOpcode = 0x18
	AdminOpcodeFormatNvm            AdminOpcode = 0x80
)

// NvmOpcode identifies an NVM Command Set I/O operation (NVMe Base Spec
// Figure 346).
type NvmOpcode = byte

const (
	NvmOpcodeFlush              NvmOpcode = 0x00
	NvmOpcodeWrite              NvmOpcode = 0x01
	NvmOpcodeRead               NvmOpcode = 0x02
	NvmOpcodeWriteUncorrectable NvmOpcode = 0x04
	NvmOpcodeCompare            NvmOpcode = 0x05
	NvmOpcodeWriteZeroes        NvmOpcode = 0x08
	NvmOpcodeDatasetManagement  NvmOpcode = 0x09
	NvmOpcodeVerify             NvmOpcode = 0x0c
)

// StatusCodeType is bits 27:25 of DW3 in a completion queue entry (NVMe
// Base Spec Figure 125).
type StatusCodeType = byte

const (
	StatusCodeTypeGeneric               StatusCodeType = 0x0
	StatusCodeTypeCommandSpecific       StatusCodeType = 0x1
	StatusCodeTypeMediaAndDataIntegrity StatusCodeType = 0x2
	StatusCodeTypePath                  StatusCodeType = 0x3
	StatusCodeTypeVendorSpecific        StatusCodeType = 0x7
)

// GenericCommandStatusCode enumerates the NVMe Base Spec Figure 126/127
// generic completion status codes this module maps to SCSI sense data.
type GenericCommandStatusCode = byte

const (
	GenericStatusSuccessfulCompletion GenericCommandStatusCode = 0x00
	GenericStatusInvalidCommandOpCode GenericCommandStatusCode = 0x01
	GenericStatusInvalidFieldInCommand GenericCommandStatusCode = 0x02
	GenericStatusDataTransferError    GenericCommandStatusCode = 0x04
	GenericStatusInternalError        GenericCommandStatusCode = 0x06
	GenericStatusCommandAbortRequested GenericCommandStatusCode = 0x07
	GenericStatusInvalidNamespaceOrFormat GenericCommandStatusCode = 0x0b
	GenericStatusLbaOutOfRange        GenericCommandStatusCode = 0x80
	GenericStatusCapacityExceeded     GenericCommandStatusCode = 0x81
	GenericStatusNamespaceNotReady    GenericCommandStatusCode = 0x82
	GenericStatusReservationConflict  GenericCommandStatusCode = 0x83
	GenericStatusFormatInProgress     GenericCommandStatusCode = 0x84
)

// CommandSpecificStatusCode enumerates NVMe Base Spec Figure 128/129
// command-specific completion status codes.
type CommandSpecificStatusCode = byte

const (
	CommandSpecificStatusInvalidFormat         CommandSpecificStatusCode = 0x0a
	CommandSpecificStatusConflictingAttributes CommandSpecificStatusCode = 0x80
	CommandSpecificStatusInvalidProtectionInfo CommandSpecificStatusCode = 0x81
	CommandSpecificStatusAttemptedWriteToReadOnlyRange CommandSpecificStatusCode = 0x82
)

// MediaErrorStatusCode enumerates NVMe Base Spec Figure 130/131 media and
// data integrity error completion status codes.
type MediaErrorStatusCode = byte

const (
	MediaErrorWriteFault                       MediaErrorStatusCode = 0x80
	MediaErrorUnrecoveredReadError              MediaErrorStatusCode = 0x81
	MediaErrorGuardCheckError                   MediaErrorStatusCode = 0x82
	MediaErrorApplicationTagCheckError           MediaErrorStatusCode = 0x83
	MediaErrorReferenceTagCheckError              MediaErrorStatusCode = 0x84
	MediaErrorCompareFailure                     MediaErrorStatusCode = 0x85
	MediaErrorAccessDenied                       MediaErrorStatusCode = 0x86
	MediaErrorDeallocatedOrUnwrittenLogicalBlock MediaErrorStatusCode = 0x87
)

// FeatureSelect chooses which value set GET FEATURES returns (NVMe Base
// Spec Figure 271).
type FeatureSelect = byte

const (
	FeatureSelectCurrent   FeatureSelect = 0b000
	FeatureSelectDefault   FeatureSelect = 0b001
	FeatureSelectSaved     FeatureSelect = 0b010
	FeatureSelectSupportedCapabilities FeatureSelect = 0b011
)

// FeatureType identifies a Get/Set Features feature identifier (NVMe Base
// Spec Figure 272).
type FeatureType = byte

const (
	FeatureTypeArbitration            FeatureType = 0x01
	FeatureTypePowerManagement        FeatureType = 0x02
	FeatureTypeLbaRangeType           FeatureType = 0x03
	FeatureTypeTemperatureThreshold   FeatureType = 0x04
	FeatureTypeVolatileWriteCache     FeatureType = 0x06
	FeatureTypeNumberOfQueues         FeatureType = 0x07
)
