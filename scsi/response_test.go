package scsi

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestResponseSizes(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(uintptr(96), unsafe.Sizeof(InquiryData{}))
	assert.Equal(uintptr(64), unsafe.Sizeof(ExtendedInquiryDataVpd{}))
	assert.Equal(uintptr(64), unsafe.Sizeof(BlockDeviceCharacteristicsVpd{}))
	assert.Equal(uintptr(64), unsafe.Sizeof(LogicalBlockProvisioningVpd{}))
	assert.Equal(uintptr(64), unsafe.Sizeof(BlockLimitsVpd{}))
	assert.Equal(uintptr(8), unsafe.Sizeof(ReadCapacity10Data{}))
	assert.Equal(uintptr(18), unsafe.Sizeof(FixedFormatSenseData{}))
	assert.Equal(uintptr(8), unsafe.Sizeof(DescriptorFormatSenseData{}))
	assert.Equal(uintptr(4), unsafe.Sizeof(ModeParameter6Header{}))
	assert.Equal(uintptr(8), unsafe.Sizeof(ModeParameter10Header{}))
	assert.Equal(uintptr(8), unsafe.Sizeof(ShortLbaBlockDescriptor{}))
	assert.Equal(uintptr(16), unsafe.Sizeof(LongLbaBlockDescriptor{}))
	assert.Equal(uintptr(20), unsafe.Sizeof(CachingModePage{}))
	assert.Equal(uintptr(12), unsafe.Sizeof(ControlModePage{}))
	assert.Equal(uintptr(40), unsafe.Sizeof(PowerConditionModePage{}))
	assert.Equal(uintptr(8), unsafe.Sizeof(UnmapParamList{}))
	assert.Equal(uintptr(16), unsafe.Sizeof(UnmapBlockDescriptor{}))
	assert.Equal(uintptr(4), unsafe.Sizeof(OneCommandParamData{}))
}

func TestNewInquiryData(t *testing.T) {
	assert := assert.New(t)
	d := NewInquiryData()
	assert.Equal(byte(PeripheralDeviceTypeDirectAccessBlock), d[0])
	assert.Equal(byte(VersionSpc4), d[2])
	d.SetVendorId("NVMe")
	d.SetProductId("scsi2nvme")
	d.SetProductRevision("1")
	assert.Equal("NVMe    ", string(d[8:16]))
	assert.Equal("scsi2nvme       ", string(d[16:32]))
	assert.Equal("1   ", string(d[32:36]))
}

func TestSupportedVpdPagesMarshal(t *testing.T) {
	assert := assert.New(t)
	v := SupportedVpdPages{Pages: []PageCode{PageCodeSupportedVpd, PageCodeUnitSerialNumber}}
	out := v.Marshal()
	assert.Equal(byte(PageCodeSupportedVpd), out[1])
	assert.Equal(uint16(2), wireReadBE16(out[2:4]))
	assert.Equal([]byte{PageCodeSupportedVpd, PageCodeUnitSerialNumber}, out[4:])
}

func TestNewReadCapacity10Data(t *testing.T) {
	assert := assert.New(t)
	d := NewReadCapacity10Data(0xff, 512)
	assert.Equal([]byte{0, 0, 0, 0xff}, d[0:4])
	assert.Equal([]byte{0, 0, 2, 0}, d[4:8])
}

func TestNewFixedFormatSenseData(t *testing.T) {
	assert := assert.New(t)
	q := StatusQuad{Status: StatusCheckCondition, Key: SenseIllegalRequest, Asc: AscInvalidFieldInCdb, Ascq: AscqInvalidFieldInCdb}
	d := NewFixedFormatSenseData(q)
	assert.Equal(byte(0x70), d[0])
	assert.Equal(byte(SenseIllegalRequest), d[2])
	assert.Equal(byte(AscInvalidFieldInCdb), d[12])
	assert.Equal(byte(AscqInvalidFieldInCdb), d[13])
}

func TestShortLbaBlockDescriptor(t *testing.T) {
	assert := assert.New(t)
	d := NewShortLbaBlockDescriptor(100, 512)
	assert.Equal([]byte{0, 0, 0, 100}, d[0:4])
	assert.Equal([]byte{0, 2, 0}, d[5:8])
}

func TestUnmapParamListAccessors(t *testing.T) {
	assert := assert.New(t)
	p := UnmapParamList{0x00, 0x1a, 0x00, 0x18}
	assert.Equal(uint16(0x1a), p.DataLength())
	assert.Equal(uint16(0x18), p.BlockDescriptorDataLength())
}

func wireReadBE16(b []byte) uint16 {
	return uint16(b[0])<<8 | uint16(b[1])
}
