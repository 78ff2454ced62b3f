// Package scsi defines the bit-exact, big-endian SCSI wire structures and
// enumerations this module translates to and from NVMe. Every type here is
// a fixed-size byte array with accessor methods performing the shift-and-
// mask arithmetic a packed C struct would otherwise hide behind compiler-
// specific bit-field layout.
//
// CDB command structures intentionally exclude the leading operation-code
// byte: callers index cdb[0] for the opcode and pass cdb[1:] to
// wire.ReadValue. This matches the byte counts quoted throughout SPC-4/SBC-3
// reference tables, where the "5 byte" TestUnitReady command is the 6-byte
// CDB minus its opcode byte.
package scsi

// OpCode is a SCSI command operation code (SPC-4 Table 49).
type OpCode = byte

const (
	TestUnitReady        OpCode = 0x00
	RequestSense         OpCode = 0x03
	Read6                OpCode = 0x08
	Write6               OpCode = 0x0a
	Inquiry              OpCode = 0x12
	ModeSelect6          OpCode = 0x15
	ModeSense6           OpCode = 0x1a
	ReadCapacity10       OpCode = 0x25
	Read10               OpCode = 0x28
	Write10              OpCode = 0x2a
	Verify10             OpCode = 0x2f
	SynchronizeCache10   OpCode = 0x35
	Unmap                OpCode = 0x42
	LogSense             OpCode = 0x4d
	ModeSelect10         OpCode = 0x55
	ModeSense10          OpCode = 0x5a
	Read12               OpCode = 0xa8
	Write12              OpCode = 0xaa
	Verify12             OpCode = 0xaf
	ReportLuns           OpCode = 0xa0
	MaintenanceIn        OpCode = 0xa3
	Read16               OpCode = 0x88
	Write16              OpCode = 0x8a
	Verify16             OpCode = 0x8f
	SynchronizeCache16   OpCode = 0x91
	WriteSame16          OpCode = 0x93
)

// ReportSupportedOpCodesAction is the MaintenanceIn service action requesting
// a single command's support status (SPC-4 Table 150).
const ReportSupportedOpCodesAction uint8 = 0x0c

// PageCode identifies a VPD page returned from an EVPD Inquiry (SPC-4 Table 462).
type PageCode = byte

const (
	PageCodeSupportedVpd                PageCode = 0x00
	PageCodeUnitSerialNumber             PageCode = 0x80
	PageCodeDeviceIdentification         PageCode = 0x83
	PageCodeExtendedInquiry              PageCode = 0x86
	PageCodeBlockLimits                  PageCode = 0xB0
	PageCodeBlockDeviceCharacteristics   PageCode = 0xB1
	PageCodeLogicalBlockProvisioning     PageCode = 0xB2
)

// ModePageCode identifies a Mode Sense/Select page (SPC-4 Table 463).
type ModePageCode = byte

const (
	ModePageCaching         ModePageCode = 0x08
	ModePageControl         ModePageCode = 0x0a
	ModePagePowerCondition  ModePageCode = 0x1a
	ModePageAllSupported    ModePageCode = 0x3f
)

// PageControl selects the current/changeable/default/saved mode-page values
// (SPC-4 Table 74).
type PageControl = byte

const (
	PageControlCurrent    PageControl = 0b00
	PageControlChangeable PageControl = 0b01
	PageControlDefault    PageControl = 0b10
	PageControlSaved      PageControl = 0b11
)

// SelectReport controls which LUN classes ReportLuns enumerates (SPC-4 Table 148).
type SelectReport = byte

const (
	SelectReportRestrictedMethods SelectReport = 0x00
	SelectReportWellKnown         SelectReport = 0x01
	SelectReportAllLogical        SelectReport = 0x02
)

// PeripheralDeviceType occupies InquiryData's low 5 bits (SPC-4 Table 85).
type PeripheralDeviceType = byte

const (
	PeripheralDeviceTypeDirectAccessBlock PeripheralDeviceType = 0x00
)

// Version is the claimed SCSI standard compliance level (SPC-4 Table 143).
type Version = byte

const (
	VersionSpc4 Version = 0x06
)

// TPGS is Target Port Group Support (SPC-4 Table 569).
type TPGS = byte

const (
	TPGSNotSupported TPGS = 0b00
)
