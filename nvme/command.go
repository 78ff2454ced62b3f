package nvme

import "github.com/googleinterns/scsi2nvme/wire"

// GenericQueueEntryCmd is the 64-byte NVMe submission queue entry common
// header plus its six opaque command-specific dwords (NVMe Base Spec
// Figure 86). Every codec builds one of these and leaves Cdw10..Cdw15 to
// its own per-opcode accessors.
type GenericQueueEntryCmd [64]byte

func (c *GenericQueueEntryCmd) SetOpcode(op byte) { c[0] = op }
func (c *GenericQueueEntryCmd) Opcode() byte       { return c[0] }

func (c *GenericQueueEntryCmd) SetCommandId(id uint16) {
	b := wire.LittleEndian16(id)
	copy(c[2:4], b[:])
}
func (c *GenericQueueEntryCmd) CommandId() uint16 { return wire.ReadLittleEndian16(c[2:4]) }

func (c *GenericQueueEntryCmd) SetNamespaceId(nsid uint32) {
	b := wire.LittleEndian32(nsid)
	copy(c[4:8], b[:])
}
func (c *GenericQueueEntryCmd) NamespaceId() uint32 { return wire.ReadLittleEndian32(c[4:8]) }

func (c *GenericQueueEntryCmd) SetPrp1(prp uint64) {
	b := wire.LittleEndian64(prp)
	copy(c[24:32], b[:])
}
func (c *GenericQueueEntryCmd) Prp1() uint64 { return wire.ReadLittleEndian64(c[24:32]) }

func (c *GenericQueueEntryCmd) SetPrp2(prp uint64) {
	b := wire.LittleEndian64(prp)
	copy(c[32:40], b[:])
}
func (c *GenericQueueEntryCmd) Prp2() uint64 { return wire.ReadLittleEndian64(c[32:40]) }

func (c *GenericQueueEntryCmd) cdwOffset(n int) int { return 40 + 4*n }

func (c *GenericQueueEntryCmd) SetCdw(n int, v uint32) {
	b := wire.LittleEndian32(v)
	off := c.cdwOffset(n)
	copy(c[off:off+4], b[:])
}
func (c *GenericQueueEntryCmd) Cdw(n int) uint32 {
	off := c.cdwOffset(n)
	return wire.ReadLittleEndian32(c[off : off+4])
}

// SetStartingLba/SetNumberOfLogicalBlocks and friends are the Read/Write/Verify-family
// aliases codecs use directly, named after the fields they hold rather
// than the generic dword index.

func (c *GenericQueueEntryCmd) SetStartingLba(lba uint64) {
	b := wire.LittleEndian64(lba)
	copy(c[40:48], b[:]) // cdw10-11
}
func (c *GenericQueueEntryCmd) StartingLba() uint64 { return wire.ReadLittleEndian64(c[40:48]) }

func (c *GenericQueueEntryCmd) SetNumberOfLogicalBlocks(n uint16) {
	b := wire.LittleEndian16(n - 1) // NLB is a 0's based value (NVMe Base Spec Figure 346)
	copy(c[48:50], b[:])            // low half of cdw12
}
func (c *GenericQueueEntryCmd) NumberOfLogicalBlocks() uint16 {
	return wire.ReadLittleEndian16(c[48:50]) + 1
}

func (c *GenericQueueEntryCmd) SetFua(v bool) {
	if v {
		c[51] |= 0x40 // cdw12 bit 30
	} else {
		c[51] &^= 0x40
	}
}

// SetPrinfo writes the 4-bit PRINFO field into cdw12 bits 29:26.
func (c *GenericQueueEntryCmd) SetPrinfo(v uint8) {
	c[51] = (c[51] &^ 0x3c) | ((v << 2) & 0x3c)
}
func (c *GenericQueueEntryCmd) Prinfo() uint8 {
	return (c[51] & 0x3c) >> 2
}

// GetFeaturesCmd is the 64-byte GET FEATURES submission entry (NVMe Base
// Spec Figure 272), sharing the common header and using only cdw10.
type GetFeaturesCmd [64]byte

func (c *GetFeaturesCmd) SetOpcode(op byte) { c[0] = op }

func (c *GetFeaturesCmd) SetNamespaceId(nsid uint32) {
	b := wire.LittleEndian32(nsid)
	copy(c[4:8], b[:])
}

func (c *GetFeaturesCmd) SetFeatureId(id FeatureType) { c[40] = id }

func (c *GetFeaturesCmd) SetSelect(sel FeatureSelect) {
	c[41] = (c[41] &^ 0x07) | (sel & 0x07)
}

// DatasetManagementCmd is the 64-byte DATASET MANAGEMENT submission entry
// (NVMe Base Spec Figure 206), used by this module to translate SCSI UNMAP.
type DatasetManagementCmd [64]byte

func (c *DatasetManagementCmd) SetOpcode(op byte) { c[0] = op }

func (c *DatasetManagementCmd) SetNamespaceId(nsid uint32) {
	b := wire.LittleEndian32(nsid)
	copy(c[4:8], b[:])
}

func (c *DatasetManagementCmd) SetPrp1(prp uint64) {
	b := wire.LittleEndian64(prp)
	copy(c[24:32], b[:])
}

// SetNumberOfRanges sets NR, the 0's-based range count, in the low byte of
// cdw10.
func (c *DatasetManagementCmd) SetNumberOfRanges(n uint8) {
	c[40] = n - 1
}

func (c *DatasetManagementCmd) SetAttributeDeallocate(v bool) {
	if v {
		c[44] |= 0x04 // cdw11 bit 2 (AD)
	} else {
		c[44] &^= 0x04
	}
}

// DatasetManagementRange is one 16-byte LBA range descriptor in the data
// buffer a DatasetManagementCmd's PRP points to (NVMe Base Spec Figure 207).
type DatasetManagementRange [16]byte

func (r *DatasetManagementRange) SetContextAttributes(v uint32) {
	b := wire.LittleEndian32(v)
	copy(r[0:4], b[:])
}

func (r *DatasetManagementRange) SetLengthInLogicalBlocks(v uint32) {
	b := wire.LittleEndian32(v)
	copy(r[4:8], b[:])
}
func (r *DatasetManagementRange) LengthInLogicalBlocks() uint32 {
	return wire.ReadLittleEndian32(r[4:8])
}

func (r *DatasetManagementRange) SetStartingLba(v uint64) {
	b := wire.LittleEndian64(v)
	copy(r[8:16], b[:])
}
func (r *DatasetManagementRange) StartingLba() uint64 { return wire.ReadLittleEndian64(r[8:16]) }
