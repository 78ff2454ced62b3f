package scsi

// Status is the one-byte SCSI command status returned in a SAM-4 Table 33
// status phase.
type Status = byte

const (
	StatusGood             Status = 0x00
	StatusCheckCondition   Status = 0x02
	StatusConditionMet     Status = 0x04
	StatusBusy             Status = 0x08
	StatusReservationConflict Status = 0x18
	StatusTaskSetFull      Status = 0x28
	StatusAcaActive        Status = 0x30
	StatusTaskAborted      Status = 0x40
)

// SenseKey is the 4-bit sense key in fixed/descriptor format sense data
// (SPC-4 Table 48).
type SenseKey = byte

const (
	SenseNoSense        SenseKey = 0x00
	SenseRecoveredError SenseKey = 0x01
	SenseNotReady       SenseKey = 0x02
	SenseMediumError    SenseKey = 0x03
	SenseHardwareError  SenseKey = 0x04
	SenseIllegalRequest SenseKey = 0x05
	SenseUnitAttention  SenseKey = 0x06
	SenseDataProtect    SenseKey = 0x07
	SenseBlankCheck     SenseKey = 0x08
	SenseAbortedCommand SenseKey = 0x0b
	SenseVolumeOverflow SenseKey = 0x0d
	SenseMiscompare     SenseKey = 0x0e
)

// AdditionalSenseCode and AdditionalSenseCodeQualifier are the ASC/ASCQ byte
// pair further qualifying a sense key (www.t10.org/lists/asc-num.txt).
type AdditionalSenseCode = byte
type AdditionalSenseCodeQualifier = byte

const (
	AscNoAdditionalSenseInfo             AdditionalSenseCode = 0x00
	AscPeripheralDeviceWriteFault         AdditionalSenseCode = 0x03
	AscUnrecoveredReadError               AdditionalSenseCode = 0x11
	AscInvalidCommandOpCode                AdditionalSenseCode = 0x20
	AscLbaOutOfRange                       AdditionalSenseCode = 0x21
	AscInvalidFieldInCdb                   AdditionalSenseCode = 0x24
	AscAccessDeniedInvalidLuIdentifier     AdditionalSenseCode = 0x20 // sub-code combined below via explicit ascq
	AscLogicalUnitNotReadyCauseNotReportable AdditionalSenseCode = 0x04
	AscInvalidFieldInParameterList          AdditionalSenseCode = 0x26
	AscParameterListLengthError             AdditionalSenseCode = 0x1a
	AscFormatCommandFailed                  AdditionalSenseCode = 0x31
	AscInternalTargetFailure                AdditionalSenseCode = 0x44
	AscWarningPowerLossExpected              AdditionalSenseCode = 0xb
	AscMiscompareDuringVerifyOp              AdditionalSenseCode = 0x1d
	AscLogicalBlockGuardCheckFailed          AdditionalSenseCode = 0x10
	AscLogicalBlockApplicationTagCheckFailed AdditionalSenseCode = 0x10
	AscLogicalBlockReferenceTagCheckFailed   AdditionalSenseCode = 0x10
)

const (
	AscqNoAdditionalSenseInfo                AdditionalSenseCodeQualifier = 0x00
	AscqInvalidCommandOpCode                   AdditionalSenseCodeQualifier = 0x00
	AscqInvalidFieldInCdb                      AdditionalSenseCodeQualifier = 0x00
	AscqAccessDeniedInvalidLuIdentifier         AdditionalSenseCodeQualifier = 0x09
	AscqLbaOutOfRange                           AdditionalSenseCodeQualifier = 0x00
	AscqLogicalUnitNotReadyCauseNotReportable   AdditionalSenseCodeQualifier = 0x00
	AscqFormatCommandFailed                     AdditionalSenseCodeQualifier = 0x01
	AscqInternalTargetFailure                   AdditionalSenseCodeQualifier = 0x00
	AscqWarningPowerLossExpected                 AdditionalSenseCodeQualifier = 0x02
	AscqMiscompareDuringVerifyOp                 AdditionalSenseCodeQualifier = 0x00
	AscqLogicalBlockGuardCheckFailed              AdditionalSenseCodeQualifier = 0x01
	AscqLogicalBlockApplicationTagCheckFailed     AdditionalSenseCodeQualifier = 0x02
	AscqLogicalBlockReferenceTagCheckFailed       AdditionalSenseCodeQualifier = 0x03
)

// StatusQuad is the SCSI status, sense key, ASC and ASCQ quadruple the
// status mapper produces from one NVMe completion.
type StatusQuad struct {
	Status Status
	Key    SenseKey
	Asc    AdditionalSenseCode
	Ascq   AdditionalSenseCodeQualifier
}

// DefaultQuad is returned for any (SCT, SC) pair the mapper does not
// recognize.
var DefaultQuad = StatusQuad{
	Status: StatusCheckCondition,
	Key:    SenseNoSense,
	Asc:    AscNoAdditionalSenseInfo,
	Ascq:   AscqNoAdditionalSenseInfo,
}
