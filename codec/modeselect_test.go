package codec

import (
	"testing"

	"github.com/googleinterns/scsi2nvme/scsi"
	"github.com/stretchr/testify/assert"
)

func cachingPageBytes(wce bool) []byte {
	pg := scsi.NewCachingModePage()
	pg.SetWce(wce)
	return pg[:]
}

func TestModeSelect6AcceptsEchoedCachingPage(t *testing.T) {
	assert := assert.New(t)
	p := newTestPipeline(1)

	cdb := []byte{scsi.ModeSelect6, 0x10, 0x00, 0x18, 0x00, 0x00} // PF=1, SP=0
	var hdr scsi.ModeParameter6Header
	hdr.SetBlockDescriptorLength(0)
	dataOut := append(append([]byte{}, hdr[:]...), cachingPageBytes(true)...)

	p.Begin(cdb, dataOut, 0, 1)
	assert.Len(p.GetNvmeWrappers(), 0)

	complete := p.Complete(nil, make([]byte, 64), make([]byte, 8))
	assert.Equal(scsi.StatusGood, complete.ScsiStatus.Status)
}

func TestModeSelect6RejectsUnsupportedPage(t *testing.T) {
	assert := assert.New(t)
	p := newTestPipeline(1)

	cdb := []byte{scsi.ModeSelect6, 0x10, 0x00, 0x0c, 0x00, 0x00}
	var hdr scsi.ModeParameter6Header
	hdr.SetBlockDescriptorLength(0)
	ctrl := scsi.NewControlModePage()
	dataOut := append(append([]byte{}, hdr[:]...), ctrl[:]...)

	p.Begin(cdb, dataOut, 0, 1)
	complete := p.Complete(nil, make([]byte, 64), make([]byte, 8))
	assert.Equal(scsi.StatusCheckCondition, complete.ScsiStatus.Status)
}

func TestModeSelect6RejectsMismatchedCachingPage(t *testing.T) {
	assert := assert.New(t)
	p := newTestPipeline(1)

	cdb := []byte{scsi.ModeSelect6, 0x10, 0x00, 0x18, 0x00, 0x00}
	var hdr scsi.ModeParameter6Header
	hdr.SetBlockDescriptorLength(0)
	pg := cachingPageBytes(false)
	pg[10] ^= 0xff // corrupt a reserved/retention-priority byte
	dataOut := append(append([]byte{}, hdr[:]...), pg...)

	p.Begin(cdb, dataOut, 0, 1)
	complete := p.Complete(nil, make([]byte, 64), make([]byte, 8))
	assert.Equal(scsi.StatusCheckCondition, complete.ScsiStatus.Status)
}

func TestModeSelect6RejectsPfClear(t *testing.T) {
	assert := assert.New(t)
	p := newTestPipeline(1)

	cdb := []byte{scsi.ModeSelect6, 0x00, 0x00, 0x18, 0x00, 0x00} // PF=0
	var hdr scsi.ModeParameter6Header
	dataOut := append(append([]byte{}, hdr[:]...), cachingPageBytes(true)...)

	p.Begin(cdb, dataOut, 0, 1)
	complete := p.Complete(nil, make([]byte, 64), make([]byte, 8))
	assert.Equal(scsi.StatusCheckCondition, complete.ScsiStatus.Status)
}

func TestModeSelect6RejectsSpSet(t *testing.T) {
	assert := assert.New(t)
	p := newTestPipeline(1)

	cdb := []byte{scsi.ModeSelect6, 0x11, 0x00, 0x18, 0x00, 0x00} // PF=1, SP=1
	var hdr scsi.ModeParameter6Header
	dataOut := append(append([]byte{}, hdr[:]...), cachingPageBytes(true)...)

	p.Begin(cdb, dataOut, 0, 1)
	complete := p.Complete(nil, make([]byte, 64), make([]byte, 8))
	assert.Equal(scsi.StatusCheckCondition, complete.ScsiStatus.Status)
}

func TestModeSelect6ZeroAllocLenSucceeds(t *testing.T) {
	assert := assert.New(t)
	p := newTestPipeline(1)

	cdb := []byte{scsi.ModeSelect6, 0x10, 0x00, 0x00, 0x00, 0x00}
	p.Begin(cdb, nil, 0, 1)

	complete := p.Complete(nil, make([]byte, 64), make([]byte, 8))
	assert.Equal(scsi.StatusGood, complete.ScsiStatus.Status)
}

func TestModeSelect10AcceptsEchoedCachingPage(t *testing.T) {
	assert := assert.New(t)
	p := newTestPipeline(1)

	cdb := []byte{scsi.ModeSelect10, 0x10, 0, 0, 0, 0, 0, 0x1c, 0, 0}
	var hdr scsi.ModeParameter10Header
	hdr.SetBlockDescriptorLength(0)
	dataOut := append(append([]byte{}, hdr[:]...), cachingPageBytes(false)...)

	p.Begin(cdb, dataOut, 0, 1)
	complete := p.Complete(nil, make([]byte, 64), make([]byte, 8))
	assert.Equal(scsi.StatusGood, complete.ScsiStatus.Status)
}

func TestModeSelect10SkipsBlockDescriptor(t *testing.T) {
	assert := assert.New(t)
	p := newTestPipeline(1)

	cdb := []byte{scsi.ModeSelect10, 0x10, 0, 0, 0, 0, 0, 0x24, 0, 0}
	var hdr scsi.ModeParameter10Header
	hdr.SetBlockDescriptorLength(8)
	descriptor := make([]byte, 8)
	dataOut := append(append(append([]byte{}, hdr[:]...), descriptor...), cachingPageBytes(true)...)

	p.Begin(cdb, dataOut, 0, 1)
	complete := p.Complete(nil, make([]byte, 64), make([]byte, 8))
	assert.Equal(scsi.StatusGood, complete.ScsiStatus.Status)
}
