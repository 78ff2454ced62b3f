package codec

import (
	"testing"

	"github.com/googleinterns/scsi2nvme/scsi"
	"github.com/stretchr/testify/assert"
)

func TestRequestSenseFixedFormat(t *testing.T) {
	assert := assert.New(t)
	p := newTestPipeline(1)

	cdb := []byte{scsi.RequestSense, 0x00, 0x00, 0x00, 252, 0x00}
	p.Begin(cdb, nil, 0, 1)

	inBuffer := make([]byte, 252)
	complete := p.Complete(nil, inBuffer, make([]byte, 8))
	assert.Equal(scsi.StatusGood, complete.ScsiStatus.Status)
	assert.Equal(byte(0x70), inBuffer[0]&0x7f) // fixed-format response code
	assert.Equal(byte(scsi.SenseNoSense), inBuffer[2]&0x0f)
}

func TestRequestSenseDescriptorFormat(t *testing.T) {
	assert := assert.New(t)
	p := newTestPipeline(1)

	cdb := []byte{scsi.RequestSense, 0x01, 0x00, 0x00, 252, 0x00}
	p.Begin(cdb, nil, 0, 1)

	inBuffer := make([]byte, 252)
	complete := p.Complete(nil, inBuffer, make([]byte, 8))
	assert.Equal(scsi.StatusGood, complete.ScsiStatus.Status)
	assert.Equal(byte(0x72), inBuffer[0]) // descriptor-format response code
	assert.Equal(byte(scsi.SenseNoSense), inBuffer[1])
}
