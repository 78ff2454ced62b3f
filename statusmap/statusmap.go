// Package statusmap translates an NVMe completion's (status-code-type,
// status-code) pair into a SCSI status/sense quadruple, per the
// NVMe-to-SCSI Translation Reference table the codecs are built against.
package statusmap

import (
	"github.com/googleinterns/scsi2nvme/logging"
	"github.com/googleinterns/scsi2nvme/nvme"
	"github.com/googleinterns/scsi2nvme/scsi"
)

// ToScsi is a pure, total function: every unmapped (sct, sc) pair falls
// back to scsi.DefaultQuad and logs a debug notice, it never panics.
func ToScsi(sct nvme.StatusCodeType, sc byte) scsi.StatusQuad {
	switch sct {
	case nvme.StatusCodeTypeGeneric:
		if q, ok := genericTable[sc]; ok {
			return q
		}
	case nvme.StatusCodeTypeCommandSpecific:
		if q, ok := commandSpecificTable[sc]; ok {
			return q
		}
	case nvme.StatusCodeTypeMediaAndDataIntegrity:
		if q, ok := mediaErrorTable[sc]; ok {
			return q
		}
	}
	logging.Debugf("statusmap: no mapping for sct=%#x sc=%#x, returning default quadruple", sct, sc)
	return scsi.DefaultQuad
}

var genericTable = map[byte]scsi.StatusQuad{
	nvme.GenericStatusSuccessfulCompletion: {
		Status: scsi.StatusGood,
		Key:    scsi.SenseNoSense,
	},
	nvme.GenericStatusInvalidCommandOpCode: {
		Status: scsi.StatusCheckCondition,
		Key:    scsi.SenseIllegalRequest,
		Asc:    scsi.AscInvalidCommandOpCode,
		Ascq:   scsi.AscqInvalidCommandOpCode,
	},
	nvme.GenericStatusInvalidFieldInCommand: {
		Status: scsi.StatusCheckCondition,
		Key:    scsi.SenseIllegalRequest,
		Asc:    scsi.AscInvalidFieldInCdb,
		Ascq:   scsi.AscqInvalidFieldInCdb,
	},
	nvme.GenericStatusDataTransferError: {
		Status: scsi.StatusCheckCondition,
		Key:    scsi.SenseMediumError,
	},
	0x05: { // AbortedPowerLoss
		Status: scsi.StatusTaskAborted,
		Key:    scsi.SenseAbortedCommand,
		Asc:    scsi.AscWarningPowerLossExpected,
		Ascq:   scsi.AscqWarningPowerLossExpected,
	},
	nvme.GenericStatusInternalError: {
		Status: scsi.StatusCheckCondition,
		Key:    scsi.SenseHardwareError,
		Asc:    scsi.AscInternalTargetFailure,
		Ascq:   scsi.AscqInternalTargetFailure,
	},
	nvme.GenericStatusCommandAbortRequested: {Status: scsi.StatusTaskAborted, Key: scsi.SenseAbortedCommand},
	0x08:                                   {Status: scsi.StatusTaskAborted, Key: scsi.SenseAbortedCommand}, // AbortedSqDeletion
	0x09:                                   {Status: scsi.StatusTaskAborted, Key: scsi.SenseAbortedCommand}, // AbortedFailedFused
	0x0a:                                   {Status: scsi.StatusTaskAborted, Key: scsi.SenseAbortedCommand}, // AbortedMissingFused
	nvme.GenericStatusInvalidNamespaceOrFormat: {
		Status: scsi.StatusCheckCondition,
		Key:    scsi.SenseIllegalRequest,
		Asc:    scsi.AscAccessDeniedInvalidLuIdentifier,
		Ascq:   scsi.AscqAccessDeniedInvalidLuIdentifier,
	},
	nvme.GenericStatusLbaOutOfRange: {
		Status: scsi.StatusCheckCondition,
		Key:    scsi.SenseIllegalRequest,
		Asc:    scsi.AscLbaOutOfRange,
		Ascq:   scsi.AscqLbaOutOfRange,
	},
	nvme.GenericStatusNamespaceNotReady: {
		Status: scsi.StatusCheckCondition,
		Key:    scsi.SenseNotReady,
		Asc:    scsi.AscLogicalUnitNotReadyCauseNotReportable,
		Ascq:   scsi.AscqLogicalUnitNotReadyCauseNotReportable,
	},
}

var commandSpecificTable = map[byte]scsi.StatusQuad{
	0x00: {Status: scsi.StatusCheckCondition, Key: scsi.SenseIllegalRequest}, // CompletionQueueInvalid
	nvme.CommandSpecificStatusInvalidFormat: {
		Status: scsi.StatusCheckCondition,
		Key:    scsi.SenseIllegalRequest,
		Asc:    scsi.AscFormatCommandFailed,
		Ascq:   scsi.AscqFormatCommandFailed,
	},
	nvme.CommandSpecificStatusConflictingAttributes: {
		Status: scsi.StatusCheckCondition,
		Key:    scsi.SenseIllegalRequest,
		Asc:    scsi.AscInvalidFieldInCdb,
		Ascq:   scsi.AscqInvalidFieldInCdb,
	},
}

var mediaErrorTable = map[byte]scsi.StatusQuad{
	nvme.MediaErrorWriteFault: {
		Status: scsi.StatusCheckCondition,
		Key:    scsi.SenseMediumError,
		Asc:    scsi.AscPeripheralDeviceWriteFault,
	},
	nvme.MediaErrorUnrecoveredReadError: {
		Status: scsi.StatusCheckCondition,
		Key:    scsi.SenseMediumError,
		Asc:    scsi.AscUnrecoveredReadError,
	},
	nvme.MediaErrorGuardCheckError: {
		Status: scsi.StatusCheckCondition,
		Key:    scsi.SenseMediumError,
		Asc:    scsi.AscLogicalBlockGuardCheckFailed,
		Ascq:   scsi.AscqLogicalBlockGuardCheckFailed,
	},
	nvme.MediaErrorApplicationTagCheckError: {
		Status: scsi.StatusCheckCondition,
		Key:    scsi.SenseMediumError,
		Asc:    scsi.AscLogicalBlockApplicationTagCheckFailed,
		Ascq:   scsi.AscqLogicalBlockApplicationTagCheckFailed,
	},
	nvme.MediaErrorReferenceTagCheckError: {
		Status: scsi.StatusCheckCondition,
		Key:    scsi.SenseMediumError,
		Asc:    scsi.AscLogicalBlockReferenceTagCheckFailed,
		Ascq:   scsi.AscqLogicalBlockReferenceTagCheckFailed,
	},
	nvme.MediaErrorCompareFailure: {
		Status: scsi.StatusCheckCondition,
		Key:    scsi.SenseMiscompare,
		Asc:    scsi.AscMiscompareDuringVerifyOp,
		Ascq:   scsi.AscqMiscompareDuringVerifyOp,
	},
	nvme.MediaErrorAccessDenied: {
		Status: scsi.StatusCheckCondition,
		Key:    scsi.SenseIllegalRequest,
		Asc:    scsi.AscAccessDeniedInvalidLuIdentifier,
		Ascq:   scsi.AscqAccessDeniedInvalidLuIdentifier,
	},
}
