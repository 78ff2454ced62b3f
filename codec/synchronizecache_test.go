package codec

import (
	"testing"

	"github.com/googleinterns/scsi2nvme/nvme"
	"github.com/googleinterns/scsi2nvme/scsi"
	"github.com/stretchr/testify/assert"
)

func TestSynchronizeCache10Flush(t *testing.T) {
	assert := assert.New(t)
	p := newTestPipeline(1)

	cdb := []byte{scsi.SynchronizeCache10, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	p.Begin(cdb, nil, 0, 1)

	wrappers := p.GetNvmeWrappers()
	assert.Len(wrappers, 1)
	assert.Equal(nvme.NvmOpcodeFlush, wrappers[0].Cmd.Opcode())
	assert.False(wrappers[0].IsAdmin)
}

func TestSynchronizeCache16RejectsNaca(t *testing.T) {
	assert := assert.New(t)
	p := newTestPipeline(1)

	cdb := make([]byte, 16)
	cdb[0] = scsi.SynchronizeCache16
	cdb[15] = 0x04
	p.Begin(cdb, nil, 0, 1)

	complete := p.Complete(nil, nil, make([]byte, 8))
	assert.Equal(scsi.StatusCheckCondition, complete.ScsiStatus.Status)
}
