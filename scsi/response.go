package scsi

import "github.com/googleinterns/scsi2nvme/wire"

// InquiryData is the 96-byte standard INQUIRY response (SPC-4 Table 139).
// This module fills bytes 0-35; the rest, including the version
// descriptors, stays zero.
type InquiryData [96]byte

func NewInquiryData() *InquiryData {
	var d InquiryData
	d[0] = PeripheralDeviceTypeDirectAccessBlock
	d[2] = VersionSpc4
	d[3] = 0x02 // response data format 2, HiSup=0
	d[4] = 0x1f // additional length: fixed portion through byte 35
	d[7] = 0x02 // CmdQue
	return &d
}

func (d *InquiryData) SetVendorId(s string)   { copyPadded(d[8:16], s) }
func (d *InquiryData) SetProductId(s string)  { copyPadded(d[16:32], s) }
func (d *InquiryData) SetProductRevision(s string) { copyPadded(d[32:36], s) }

// SetProtect sets byte 5 bit 0 (SPC-4 Table 139): set when the namespace
// backing this LUN reports a non-zero protection type or carries metadata
// ahead of each logical block (NVMe Identify Namespace DPS).
func (d *InquiryData) SetProtect(v bool) {
	if v {
		d[5] |= 0x01
	} else {
		d[5] &^= 0x01
	}
}

// copyPadded copies the ASCII bytes of s into dst, space-padding any
// remainder and truncating s if it overruns dst (SPC-4 §4.3.1's "ASCII data
// field" convention).
func copyPadded(dst []byte, s string) {
	for i := range dst {
		dst[i] = ' '
	}
	n := len(s)
	if n > len(dst) {
		n = len(dst)
	}
	copy(dst, s[:n])
}

// SupportedVpdPages is the VPD page 0x00 response (SPC-4 Table 462): a
// 4-byte header followed by the list of supported page codes.
type SupportedVpdPages struct {
	Header [4]byte
	Pages  []PageCode
}

func (v *SupportedVpdPages) Marshal() []byte {
	v.Header[0] = PeripheralDeviceTypeDirectAccessBlock
	v.Header[1] = PageCodeSupportedVpd
	length := wire.BigEndian16(uint16(len(v.Pages)))
	v.Header[2], v.Header[3] = length[0], length[1]
	out := make([]byte, 0, 4+len(v.Pages))
	out = append(out, v.Header[:]...)
	out = append(out, v.Pages...)
	return out
}

// UnitSerialNumberVpd is VPD page 0x80 (SPC-4 Table 589).
type UnitSerialNumberVpd struct {
	Header [4]byte
	Serial []byte
}

func (v *UnitSerialNumberVpd) Marshal() []byte {
	v.Header[0] = PeripheralDeviceTypeDirectAccessBlock
	v.Header[1] = PageCodeUnitSerialNumber
	length := wire.BigEndian16(uint16(len(v.Serial)))
	v.Header[2], v.Header[3] = length[0], length[1]
	out := make([]byte, 0, 4+len(v.Serial))
	out = append(out, v.Header[:]...)
	out = append(out, v.Serial...)
	return out
}

// ExtendedInquiryDataVpd is VPD page 0x86 (SPC-4 Table 593), fixed 64 bytes.
type ExtendedInquiryDataVpd [64]byte

func NewExtendedInquiryDataVpd() *ExtendedInquiryDataVpd {
	var d ExtendedInquiryDataVpd
	d[0] = PeripheralDeviceTypeDirectAccessBlock
	d[1] = PageCodeExtendedInquiry
	length := wire.BigEndian16(uint16(len(d) - 4))
	d[2], d[3] = length[0], length[1]
	return &d
}

// BlockDeviceCharacteristicsVpd is VPD page 0xB1 (SBC-3 Table 211), fixed 64 bytes.
type BlockDeviceCharacteristicsVpd [64]byte

func NewBlockDeviceCharacteristicsVpd() *BlockDeviceCharacteristicsVpd {
	var d BlockDeviceCharacteristicsVpd
	d[0] = PeripheralDeviceTypeDirectAccessBlock
	d[1] = PageCodeBlockDeviceCharacteristics
	length := wire.BigEndian16(uint16(len(d) - 4))
	d[2], d[3] = length[0], length[1]
	d[4], d[5] = 0x00, 0x01 // MEDIUM ROTATION RATE = non-rotating (SSD-backed NVMe)
	return &d
}

// LogicalBlockProvisioningVpd is VPD page 0xB2 (SBC-3 Table 212), fixed 64 bytes.
type LogicalBlockProvisioningVpd [64]byte

func NewLogicalBlockProvisioningVpd() *LogicalBlockProvisioningVpd {
	var d LogicalBlockProvisioningVpd
	d[0] = PeripheralDeviceTypeDirectAccessBlock
	d[1] = PageCodeLogicalBlockProvisioning
	length := wire.BigEndian16(uint16(len(d) - 4))
	d[2], d[3] = length[0], length[1]
	return &d
}

func (d *LogicalBlockProvisioningVpd) SetLbpu(v bool) {
	if v {
		d[4] |= 0x80
	} else {
		d[4] &^= 0x80
	}
}

// BlockLimitsVpd is VPD page 0xB0 (SBC-3 Table 209), fixed 64 bytes.
type BlockLimitsVpd [64]byte

func NewBlockLimitsVpd() *BlockLimitsVpd {
	var d BlockLimitsVpd
	d[0] = PeripheralDeviceTypeDirectAccessBlock
	d[1] = PageCodeBlockLimits
	length := wire.BigEndian16(uint16(len(d) - 4))
	d[2], d[3] = length[0], length[1]
	return &d
}

func (d *BlockLimitsVpd) SetMaxUnmapLbaCount(v uint32) {
	b := wire.BigEndian32(v)
	copy(d[20:24], b[:])
}

func (d *BlockLimitsVpd) SetMaxUnmapBlockDescriptorCount(v uint32) {
	b := wire.BigEndian32(v)
	copy(d[24:28], b[:])
}

// ReadCapacity10Data is the 8-byte READ CAPACITY(10) response (SBC-3 Table 144).
type ReadCapacity10Data [8]byte

func NewReadCapacity10Data(lastLba uint32, blockLength uint32) *ReadCapacity10Data {
	var d ReadCapacity10Data
	lba := wire.BigEndian32(lastLba)
	bl := wire.BigEndian32(blockLength)
	copy(d[0:4], lba[:])
	copy(d[4:8], bl[:])
	return &d
}

// FixedFormatSenseData is the 18-byte fixed-format sense data block
// (SPC-4 Table 46) REQUEST SENSE returns by default.
type FixedFormatSenseData [18]byte

func NewFixedFormatSenseData(q StatusQuad) *FixedFormatSenseData {
	var d FixedFormatSenseData
	d[0] = 0x70 // current errors, fixed format
	d[2] = q.Key
	d[7] = byte(len(d) - 8)
	d[12] = q.Asc
	d[13] = q.Ascq
	return &d
}

// DescriptorFormatSenseData is the 8-byte descriptor-format sense data
// header (SPC-4 Table 28), used when REQUEST SENSE's DESC bit is set.
type DescriptorFormatSenseData [8]byte

func NewDescriptorFormatSenseData(q StatusQuad) *DescriptorFormatSenseData {
	var d DescriptorFormatSenseData
	d[0] = 0x72 // current errors, descriptor format
	d[1] = q.Key
	d[2] = q.Asc
	d[3] = q.Ascq
	return &d
}

// ReportLunsParamData is the 8-byte ReportLuns header (SPC-4 Table 301)
// followed by a single 8-byte LUN 0 entry. The REPORT LUNS codec does not
// use it: it writes its own header and one entry per listed namespace.
type ReportLunsParamData [16]byte

func NewReportLunsParamData() *ReportLunsParamData {
	var d ReportLunsParamData
	length := wire.BigEndian32(8)
	copy(d[0:4], length[:])
	return &d
}

// ModeParameter6Header is the 4-byte MODE SENSE(6)/MODE SELECT(6) header
// (SPC-4 Table 464).
type ModeParameter6Header [4]byte

func (h *ModeParameter6Header) SetModeDataLength(v uint8) { h[0] = v }
func (h *ModeParameter6Header) SetBlockDescriptorLength(v uint8) { h[3] = v }
func (h *ModeParameter6Header) BlockDescriptorLength() uint8      { return h[3] }

// SetDpofua sets byte 2 bit 4 of the device-specific parameter (SPC-4
// Table 464): set whenever the target supports FUA/DPO on I/O commands.
func (h *ModeParameter6Header) SetDpofua(v bool) {
	if v {
		h[2] |= 0x10
	} else {
		h[2] &^= 0x10
	}
}

// ModeParameter10Header is the 8-byte MODE SENSE(10)/MODE SELECT(10) header
// (SPC-4 Table 466).
type ModeParameter10Header [8]byte

func (h *ModeParameter10Header) SetModeDataLength(v uint16) {
	b := wire.BigEndian16(v)
	copy(h[0:2], b[:])
}
func (h *ModeParameter10Header) SetBlockDescriptorLength(v uint16) {
	b := wire.BigEndian16(v)
	copy(h[6:8], b[:])
}
func (h *ModeParameter10Header) BlockDescriptorLength() uint16 {
	return wire.ReadBigEndian16(h[6:8])
}

// SetDpofua sets byte 3 bit 4 of the device-specific parameter (SPC-4
// Table 466), the 10-byte header's counterpart to the 6-byte header's
// byte 2 bit 4.
func (h *ModeParameter10Header) SetDpofua(v bool) {
	if v {
		h[3] |= 0x10
	} else {
		h[3] &^= 0x10
	}
}

// SetLongLba sets byte 4 bit 0 (SPC-4 Table 466): set when the block
// descriptor that follows, if any, is the 16-byte LLBAA form.
func (h *ModeParameter10Header) SetLongLba(v bool) {
	if v {
		h[4] |= 0x01
	} else {
		h[4] &^= 0x01
	}
}

// ShortLbaBlockDescriptor is the 8-byte legacy mode-parameter block
// descriptor (SPC-4 Table 465).
type ShortLbaBlockDescriptor [8]byte

func NewShortLbaBlockDescriptor(numBlocks uint32, blockLength uint32) *ShortLbaBlockDescriptor {
	var d ShortLbaBlockDescriptor
	nb := wire.BigEndian32(numBlocks)
	copy(d[0:4], nb[:])
	// block length occupies only the low 3 bytes (SPC-4 Table 465).
	bl := wire.BigEndian32(blockLength)
	copy(d[5:8], bl[1:4])
	return &d
}

// LongLbaBlockDescriptor is the 16-byte LLBAA mode-parameter block
// descriptor (SPC-4 Table 467).
type LongLbaBlockDescriptor [16]byte

func NewLongLbaBlockDescriptor(numBlocks uint64, blockLength uint32) *LongLbaBlockDescriptor {
	var d LongLbaBlockDescriptor
	nb := wire.BigEndian64(numBlocks)
	copy(d[0:8], nb[:])
	bl := wire.BigEndian32(blockLength)
	copy(d[12:16], bl[:])
	return &d
}

// CachingModePage is mode page 0x08 (SBC-3 Table 137), fixed 20 bytes
// including its 2-byte page header.
type CachingModePage [20]byte

func NewCachingModePage() *CachingModePage {
	var d CachingModePage
	d[0] = ModePageCaching
	d[1] = byte(len(d) - 2)
	return &d
}

func (d *CachingModePage) SetWce(v bool) {
	if v {
		d[2] |= 0x04
	} else {
		d[2] &^= 0x04
	}
}

// ControlModePage is mode page 0x0a (SPC-4 Table 482), fixed 12 bytes
// including its 2-byte page header.
type ControlModePage [12]byte

func NewControlModePage() *ControlModePage {
	var d ControlModePage
	d[0] = ModePageControl
	d[1] = byte(len(d) - 2)
	return &d
}

// PowerConditionModePage is mode page 0x1a (SPC-4 Table 285), fixed 40
// bytes including its 2-byte page header.
type PowerConditionModePage [40]byte

func NewPowerConditionModePage() *PowerConditionModePage {
	var d PowerConditionModePage
	d[0] = ModePagePowerCondition
	d[1] = byte(len(d) - 2)
	return &d
}

// UnmapParamList is the 8-byte UNMAP parameter list header (SBC-3 Table 203).
type UnmapParamList [8]byte

func (p *UnmapParamList) DataLength() uint16       { return wire.ReadBigEndian16(p[0:2]) }
func (p *UnmapParamList) BlockDescriptorDataLength() uint16 {
	return wire.ReadBigEndian16(p[2:4])
}

// UnmapBlockDescriptor is one 16-byte UNMAP block descriptor following
// UnmapParamList (SBC-3 Table 204).
type UnmapBlockDescriptor [16]byte

func (d *UnmapBlockDescriptor) LogicalBlockAddress() uint64 { return wire.ReadBigEndian64(d[0:8]) }
func (d *UnmapBlockDescriptor) NumberOfLogicalBlocks() uint32 {
	return wire.ReadBigEndian32(d[8:12])
}

// OneCommandParamData is the 4-byte REPORT SUPPORTED OPERATION CODES
// one-command response (SPC-4 Table 312).
type OneCommandParamData [4]byte

func NewOneCommandParamData(cdbSize uint16, supported bool) *OneCommandParamData {
	var d OneCommandParamData
	size := wire.BigEndian16(cdbSize)
	copy(d[0:2], size[:])
	if supported {
		d[2] = 0x03 // SUPPORT = 011b, command supported per current standard
	} else {
		d[2] = 0x01 // SUPPORT = 001b, not supported
	}
	return &d
}
