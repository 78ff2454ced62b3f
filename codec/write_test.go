package codec

import (
	"testing"

	"github.com/googleinterns/scsi2nvme/nvme"
	"github.com/googleinterns/scsi2nvme/scsi"
	"github.com/stretchr/testify/assert"
)

func TestWrite10SetsOpcodeAndFua(t *testing.T) {
	assert := assert.New(t)
	p := newTestPipeline(1)

	cdb := []byte{scsi.Write10, 0x08, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x01, 0x00} // FUA set
	p.Begin(cdb, nil, 0, 1)

	wrappers := p.GetNvmeWrappers()
	assert.Len(wrappers, 1)
	assert.Equal(nvme.NvmOpcodeWrite, wrappers[0].Cmd.Opcode())
	assert.Equal(uint64(1), wrappers[0].Cmd.StartingLba())
	assert.Equal(uint32(1), wrappers[0].BufferLen)
	assert.Equal(byte(0x40), wrappers[0].Cmd[51]&0x40) // FUA (cdw12 bit 30)
}

func TestWrite6ZeroLengthMeans256(t *testing.T) {
	assert := assert.New(t)
	p := newTestPipeline(1)

	cdb := []byte{scsi.Write6, 0x00, 0x00, 0x00, 0x00, 0x00}
	p.Begin(cdb, nil, 0, 1)

	wrappers := p.GetNvmeWrappers()
	assert.Len(wrappers, 1)
	assert.Equal(uint32(256), wrappers[0].BufferLen)
}

func TestWrite16RejectsOversizeLength(t *testing.T) {
	assert := assert.New(t)
	p := newTestPipeline(1)

	cdb := make([]byte, 16)
	cdb[0] = scsi.Write16
	cdb[10] = 0x00
	cdb[11] = 0x01 // transfer length = 0x00010000
	p.Begin(cdb, nil, 0, 1)

	complete := p.Complete(nil, make([]byte, 512), make([]byte, 8))
	assert.Equal(scsi.StatusCheckCondition, complete.ScsiStatus.Status)
}
