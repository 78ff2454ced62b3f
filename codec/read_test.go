package codec

import (
	"testing"

	"github.com/googleinterns/scsi2nvme/nvme"
	"github.com/googleinterns/scsi2nvme/scsi"
	"github.com/stretchr/testify/assert"
)

func TestRead6ZeroLengthMeans256(t *testing.T) {
	assert := assert.New(t)
	p := newTestPipeline(1)

	cdb := []byte{scsi.Read6, 0x00, 0x00, 0x00, 0x00, 0x00}
	p.Begin(cdb, nil, 0, 1)

	wrappers := p.GetNvmeWrappers()
	assert.Len(wrappers, 1)
	assert.Equal(nvme.NvmOpcodeRead, wrappers[0].Cmd.Opcode())
	assert.False(wrappers[0].IsAdmin)
	assert.Equal(uint32(256), wrappers[0].BufferLen)
}

func TestRead10ZeroLengthIsNoTranslation(t *testing.T) {
	assert := assert.New(t)
	p := newTestPipeline(1)

	cdb := []byte{scsi.Read10, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	p.Begin(cdb, nil, 0, 1)
	assert.Len(p.GetNvmeWrappers(), 0)

	complete := p.Complete(nil, make([]byte, 512), make([]byte, 8))
	assert.Equal(scsi.StatusGood, complete.ScsiStatus.Status)
}

func TestRead10SetsLbaAndLength(t *testing.T) {
	assert := assert.New(t)
	p := newTestPipeline(1)

	cdb := []byte{scsi.Read10, 0x00, 0x00, 0x00, 0x00, 0x10, 0x00, 0x00, 0x04, 0x00}
	p.Begin(cdb, nil, 0, 1)

	wrappers := p.GetNvmeWrappers()
	assert.Len(wrappers, 1)
	assert.Equal(uint64(0x10), wrappers[0].Cmd.StartingLba())
	assert.Equal(uint32(4), wrappers[0].BufferLen)
}

func TestRead12RejectsOversizeLength(t *testing.T) {
	assert := assert.New(t)
	p := newTestPipeline(1)

	cdb := make([]byte, 12)
	cdb[0] = scsi.Read12
	cdb[7] = 0x01 // transfer length = 0x00010000, > 0xffff
	p.Begin(cdb, nil, 0, 1)

	complete := p.Complete(nil, make([]byte, 512), make([]byte, 8))
	assert.Equal(scsi.StatusCheckCondition, complete.ScsiStatus.Status)
}

func TestRead16SetsLba(t *testing.T) {
	assert := assert.New(t)
	p := newTestPipeline(1)

	cdb := make([]byte, 16)
	cdb[0] = scsi.Read16
	cdb[5] = 0x01
	cdb[9] = 0x02 // LBA = 0x0000000100000002
	cdb[12] = 0x00
	cdb[13] = 0x01 // transfer length = 1
	p.Begin(cdb, nil, 0, 1)

	wrappers := p.GetNvmeWrappers()
	assert.Len(wrappers, 1)
	assert.Equal(uint64(0x0000000100000002), wrappers[0].Cmd.StartingLba())
	assert.Equal(uint32(1), wrappers[0].BufferLen)
}
