package scsi

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestCdbSizes(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(uintptr(5), unsafe.Sizeof(TestUnitReadyCommand{}))
	assert.Equal(uintptr(5), unsafe.Sizeof(InquiryCommand{}))
	assert.Equal(uintptr(5), unsafe.Sizeof(RequestSenseCommand{}))
	assert.Equal(uintptr(9), unsafe.Sizeof(ReadCapacity10Command{}))
	assert.Equal(uintptr(5), unsafe.Sizeof(Read6Command{}))
	assert.Equal(uintptr(5), unsafe.Sizeof(Write6Command{}))
	assert.Equal(uintptr(9), unsafe.Sizeof(Read10Command{}))
	assert.Equal(uintptr(9), unsafe.Sizeof(Write10Command{}))
	assert.Equal(uintptr(11), unsafe.Sizeof(Read12Command{}))
	assert.Equal(uintptr(11), unsafe.Sizeof(Write12Command{}))
	assert.Equal(uintptr(15), unsafe.Sizeof(Read16Command{}))
	assert.Equal(uintptr(15), unsafe.Sizeof(Write16Command{}))
	assert.Equal(uintptr(9), unsafe.Sizeof(Verify10Command{}))
	assert.Equal(uintptr(11), unsafe.Sizeof(Verify12Command{}))
	assert.Equal(uintptr(15), unsafe.Sizeof(Verify16Command{}))
	assert.Equal(uintptr(9), unsafe.Sizeof(SynchronizeCache10Command{}))
	assert.Equal(uintptr(15), unsafe.Sizeof(SynchronizeCache16Command{}))
	assert.Equal(uintptr(5), unsafe.Sizeof(ModeSense6Command{}))
	assert.Equal(uintptr(9), unsafe.Sizeof(ModeSense10Command{}))
	assert.Equal(uintptr(11), unsafe.Sizeof(ReportLunsCommand{}))
	assert.Equal(uintptr(9), unsafe.Sizeof(UnmapCommand{}))
	assert.Equal(uintptr(11), unsafe.Sizeof(ReportOpCodesCommand{}))
	assert.Equal(uintptr(9), unsafe.Sizeof(LogSenseCommand{}))
}

func TestNaca(t *testing.T) {
	assert := assert.New(t)
	assert.False(Naca(0x00))
	assert.True(Naca(0x04))
	assert.True(Naca(0x07))
}

func TestInquiryCommandAccessors(t *testing.T) {
	assert := assert.New(t)
	c := InquiryCommand{0x01, PageCodeUnitSerialNumber, 0x00, 0x60, 0x04}
	assert.True(c.Evpd())
	assert.Equal(PageCode(PageCodeUnitSerialNumber), c.PageCode())
	assert.Equal(uint16(0x60), c.AllocationLength())
	assert.True(Naca(c.Control()))
}

func TestRead10CommandAccessors(t *testing.T) {
	assert := assert.New(t)
	c := Read10Command{0x28, 0x00, 0x00, 0x00, 0x10, 0x00, 0x00, 0x08, 0x00}
	assert.Equal(uint32(0x10), c.LogicalBlockAddress())
	assert.Equal(uint16(0x08), c.TransferLength())
}

func TestRead6CommandLbaPacking(t *testing.T) {
	assert := assert.New(t)
	c := Read6Command{0x1f, 0xff, 0xff, 0x01, 0x00}
	assert.Equal(uint32(0x1fffff), c.LogicalBlockAddress())
}

func TestModeSense6Accessors(t *testing.T) {
	assert := assert.New(t)
	c := ModeSense6Command{0x08, ModePageCaching, 0x00, 0xff, 0x00}
	assert.True(c.Dbd())
	assert.Equal(ModePageCode(ModePageCaching), c.PageCode())
	assert.Equal(uint8(0xff), c.AllocLength())
}

func TestUnmapCommandAccessors(t *testing.T) {
	assert := assert.New(t)
	c := UnmapCommand{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x18, 0x00}
	assert.True(c.Anchor())
	assert.Equal(uint16(0x18), c.ParamListLength())
}

func TestReportOpCodesCommandAccessors(t *testing.T) {
	assert := assert.New(t)
	c := ReportOpCodesCommand{}
	c[0] = ReportSupportedOpCodesAction
	c[2] = Read10
	assert.Equal(uint8(ReportSupportedOpCodesAction), c.ServiceAction())
	assert.Equal(OpCode(Read10), c.RequestedOpCode())
}
