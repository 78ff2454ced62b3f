package codec

import (
	"testing"

	"github.com/googleinterns/scsi2nvme/scsi"
	"github.com/stretchr/testify/assert"
)

func TestUnitReadyNoTranslation(t *testing.T) {
	assert := assert.New(t)
	p := newTestPipeline(1)

	resp := p.Begin([]byte{scsi.TestUnitReady, 0, 0, 0, 0, 0}, nil, 0, 1)
	assert.Equal(0, int(resp.ApiStatus))
	assert.Len(p.GetNvmeWrappers(), 0)

	complete := p.Complete(nil, nil, make([]byte, 8))
	assert.Equal(scsi.StatusGood, complete.ScsiStatus.Status)
}

func TestUnitReadyRejectsNaca(t *testing.T) {
	assert := assert.New(t)
	p := newTestPipeline(1)

	p.Begin([]byte{scsi.TestUnitReady, 0, 0, 0, 0, 0x04}, nil, 0, 1)
	complete := p.Complete(nil, nil, make([]byte, 8))
	assert.Equal(scsi.StatusCheckCondition, complete.ScsiStatus.Status)
}
