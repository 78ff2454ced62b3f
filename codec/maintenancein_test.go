package codec

import (
	"testing"

	"github.com/googleinterns/scsi2nvme/scsi"
	"github.com/stretchr/testify/assert"
)

func TestMaintenanceInReportsUnsupported(t *testing.T) {
	assert := assert.New(t)
	p := newTestPipeline(1)

	cdb := make([]byte, 12)
	cdb[0] = scsi.MaintenanceIn
	cdb[1] = scsi.ReportSupportedOpCodesAction
	cdb[2] = 0b001
	cdb[3] = scsi.WriteSame16
	p.Begin(cdb, nil, 0, 1)
	assert.Len(p.GetNvmeWrappers(), 0)

	inBuffer := make([]byte, 4)
	complete := p.Complete(nil, inBuffer, make([]byte, 8))
	assert.Equal(scsi.StatusGood, complete.ScsiStatus.Status)
	assert.Equal(byte(0x01), inBuffer[2]&0x07) // "not supported" support field
}

func TestMaintenanceInRejectsOtherOpcode(t *testing.T) {
	assert := assert.New(t)
	p := newTestPipeline(1)

	cdb := make([]byte, 12)
	cdb[0] = scsi.MaintenanceIn
	cdb[1] = scsi.ReportSupportedOpCodesAction
	cdb[2] = 0b001
	cdb[3] = scsi.Read10
	p.Begin(cdb, nil, 0, 1)

	complete := p.Complete(nil, make([]byte, 4), make([]byte, 8))
	assert.Equal(scsi.StatusCheckCondition, complete.ScsiStatus.Status)
}
