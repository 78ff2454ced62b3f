package codec

import (
	"testing"

	"github.com/googleinterns/scsi2nvme/scsi"
	"github.com/stretchr/testify/assert"
)

func TestLookupKnowsEveryDispatchedOpcode(t *testing.T) {
	assert := assert.New(t)

	opcodes := []scsi.OpCode{
		scsi.TestUnitReady, scsi.RequestSense, scsi.Inquiry, scsi.ReadCapacity10,
		scsi.Read6, scsi.Read10, scsi.Read12, scsi.Read16,
		scsi.Write6, scsi.Write10, scsi.Write12, scsi.Write16,
		scsi.Verify10, scsi.Verify12, scsi.Verify16,
		scsi.SynchronizeCache10, scsi.SynchronizeCache16,
		scsi.ModeSense6, scsi.ModeSense10,
		scsi.ReportLuns, scsi.Unmap, scsi.MaintenanceIn, scsi.LogSense,
	}
	for _, op := range opcodes {
		_, ok := Lookup(op)
		assert.True(ok, "opcode %#02x should have a codec", op)
	}
}

func TestLookupRejectsUnknownOpcode(t *testing.T) {
	assert := assert.New(t)
	_, ok := Lookup(0xff)
	assert.False(ok)
}
