package codec

import (
	"testing"

	"github.com/googleinterns/scsi2nvme/scsi"
	"github.com/stretchr/testify/assert"
)

func TestLogSenseSupportedPages(t *testing.T) {
	assert := assert.New(t)
	p := newTestPipeline(1)

	cdb := []byte{scsi.LogSense, 0, 0x00, 0, 0, 0, 0, 0x00, 0xff, 0}
	p.Begin(cdb, nil, 0, 1)
	assert.Len(p.GetNvmeWrappers(), 0)

	inBuffer := make([]byte, 8)
	complete := p.Complete(nil, inBuffer, make([]byte, 8))
	assert.Equal(scsi.StatusGood, complete.ScsiStatus.Status)
	assert.Equal(byte(len(supportedLogPages)), inBuffer[3])
}

func TestLogSenseRejectsNonSupportedPagesCode(t *testing.T) {
	assert := assert.New(t)
	p := newTestPipeline(1)

	cdb := []byte{scsi.LogSense, 0, 0x0d, 0, 0, 0, 0, 0x00, 0xff, 0}
	p.Begin(cdb, nil, 0, 1)

	complete := p.Complete(nil, make([]byte, 8), make([]byte, 8))
	assert.Equal(scsi.StatusCheckCondition, complete.ScsiStatus.Status)
}
