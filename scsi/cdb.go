package scsi

import "github.com/googleinterns/scsi2nvme/wire"

// ControlByte is the last byte of every CDB (SPC-4 Table 45). Only the NACA
// bit is interpreted by this module; every CDB type below embeds it as its
// final byte and exposes it through Control(), and Naca() reads that bit,
// rather than modeling the other (obsolete/reserved/vendor) subfields.
type ControlByte = byte

// Naca reports the Normal ACA bit of a CDB's trailing control byte. Every
// codec rejects a CDB with this bit set.
func Naca(control ControlByte) bool {
	return control&0x04 != 0
}

// TestUnitReadyCommand is the 5 trailing bytes of a 6-byte TEST UNIT READY
// CDB (SPC-4 Table 202), i.e. everything after the operation code.
type TestUnitReadyCommand [5]byte

func (c *TestUnitReadyCommand) Control() ControlByte { return c[4] }

// InquiryCommand is the 5 trailing bytes of a 6-byte INQUIRY CDB (SPC-4 Table 58).
type InquiryCommand [5]byte

func (c *InquiryCommand) Evpd() bool           { return c[0]&0x01 != 0 }
func (c *InquiryCommand) PageCode() PageCode    { return c[1] }
func (c *InquiryCommand) AllocationLength() uint16 {
	return wire.ReadBigEndian16(c[2:4])
}
func (c *InquiryCommand) Control() ControlByte { return c[4] }

// RequestSenseCommand is the 5 trailing bytes of a 6-byte REQUEST SENSE CDB
// (SPC-4 Table 164).
type RequestSenseCommand [5]byte

func (c *RequestSenseCommand) Desc() bool              { return c[0]&0x01 != 0 }
func (c *RequestSenseCommand) AllocationLength() uint8 { return c[3] }
func (c *RequestSenseCommand) Control() ControlByte    { return c[4] }

// ReadCapacity10Command is the 9 trailing bytes of a 10-byte READ CAPACITY
// (10) CDB (SBC-3 Table 119). Every field but the control byte is obsolete
// or reserved; the codec needs only the control byte's NACA bit.
type ReadCapacity10Command [9]byte

func (c *ReadCapacity10Command) Control() ControlByte { return c[8] }

// read21LBA serves READ(6) and WRITE(6), which share a layout: a 5-bit high nibble packed into the
// first command byte and a 16-bit low half in the next two bytes.
func read21LBA(b []byte) uint32 {
	return uint32(b[0]&0x1f)<<16 | uint32(wire.ReadBigEndian16(b[1:3]))
}

// Read6Command is the 5 trailing bytes of a 6-byte READ(6) CDB (SBC-3 Table 96).
type Read6Command [5]byte

func (c *Read6Command) LogicalBlockAddress() uint32 { return read21LBA(c[0:3]) }
func (c *Read6Command) TransferLength() uint8       { return c[3] }
func (c *Read6Command) Control() ControlByte         { return c[4] }

// Write6Command mirrors Read6Command (SBC-3 Table 215).
type Write6Command [5]byte

func (c *Write6Command) LogicalBlockAddress() uint32 { return read21LBA(c[0:3]) }
func (c *Write6Command) TransferLength() uint8       { return c[3] }
func (c *Write6Command) Control() ControlByte         { return c[4] }

// Read10Command is the 9 trailing bytes of a 10-byte READ(10) CDB (SBC-3 Table 97).
type Read10Command [9]byte

func (c *Read10Command) RdProtect() uint8             { return c[0] >> 5 }
func (c *Read10Command) Dpo() bool                     { return c[0]&0x10 != 0 }
func (c *Read10Command) Fua() bool                     { return c[0]&0x08 != 0 }
func (c *Read10Command) LogicalBlockAddress() uint32 { return wire.ReadBigEndian32(c[1:5]) }
func (c *Read10Command) TransferLength() uint16       { return wire.ReadBigEndian16(c[6:8]) }
func (c *Read10Command) Control() ControlByte           { return c[8] }

// Read12Command is the 11 trailing bytes of a 12-byte READ(12) CDB (SBC-3 Table 99).
type Read12Command [11]byte

func (c *Read12Command) RdProtect() uint8             { return c[0] >> 5 }
func (c *Read12Command) Dpo() bool                     { return c[0]&0x10 != 0 }
func (c *Read12Command) Fua() bool                     { return c[0]&0x08 != 0 }
func (c *Read12Command) LogicalBlockAddress() uint32 { return wire.ReadBigEndian32(c[1:5]) }
func (c *Read12Command) TransferLength() uint32       { return wire.ReadBigEndian32(c[5:9]) }
func (c *Read12Command) Control() ControlByte           { return c[10] }

// Read16Command is the 15 trailing bytes of a 16-byte READ(16) CDB (SBC-3 Table 100).
type Read16Command [15]byte

func (c *Read16Command) RdProtect() uint8             { return c[0] >> 5 }
func (c *Read16Command) Dpo() bool                     { return c[0]&0x10 != 0 }
func (c *Read16Command) Fua() bool                     { return c[0]&0x08 != 0 }
func (c *Read16Command) LogicalBlockAddress() uint64 { return wire.ReadBigEndian64(c[1:9]) }
func (c *Read16Command) TransferLength() uint32       { return wire.ReadBigEndian32(c[9:13]) }
func (c *Read16Command) Control() ControlByte           { return c[14] }

// Write10Command is the 9 trailing bytes of a 10-byte WRITE(10) CDB (SBC-3 Table 216).
type Write10Command [9]byte

func (c *Write10Command) WrProtect() uint8             { return c[0] >> 5 }
func (c *Write10Command) Dpo() bool                     { return c[0]&0x10 != 0 }
func (c *Write10Command) Fua() bool                     { return c[0]&0x08 != 0 }
func (c *Write10Command) LogicalBlockAddress() uint32 { return wire.ReadBigEndian32(c[1:5]) }
func (c *Write10Command) TransferLength() uint16       { return wire.ReadBigEndian16(c[6:8]) }
func (c *Write10Command) Control() ControlByte           { return c[8] }

// Write12Command is the 11 trailing bytes of a 12-byte WRITE(12) CDB (SBC-3 Table 218).
type Write12Command [11]byte

func (c *Write12Command) WrProtect() uint8             { return c[0] >> 5 }
func (c *Write12Command) Dpo() bool                     { return c[0]&0x10 != 0 }
func (c *Write12Command) Fua() bool                     { return c[0]&0x08 != 0 }
func (c *Write12Command) LogicalBlockAddress() uint32 { return wire.ReadBigEndian32(c[1:5]) }
func (c *Write12Command) TransferLength() uint32       { return wire.ReadBigEndian32(c[5:9]) }
func (c *Write12Command) Control() ControlByte           { return c[10] }

// Write16Command is the 15 trailing bytes of a 16-byte WRITE(16) CDB (SBC-3 Table 219).
type Write16Command [15]byte

func (c *Write16Command) WrProtect() uint8             { return c[0] >> 5 }
func (c *Write16Command) Dpo() bool                     { return c[0]&0x10 != 0 }
func (c *Write16Command) Fua() bool                     { return c[0]&0x08 != 0 }
func (c *Write16Command) LogicalBlockAddress() uint64 { return wire.ReadBigEndian64(c[1:9]) }
func (c *Write16Command) TransferLength() uint32       { return wire.ReadBigEndian32(c[9:13]) }
func (c *Write16Command) Control() ControlByte           { return c[14] }

// Verify10Command is the 9 trailing bytes of a 10-byte VERIFY(10) CDB (SBC-3 Table 207).
type Verify10Command [9]byte

func (c *Verify10Command) Bytchk() uint8               { return (c[0] >> 1) & 0x3 }
func (c *Verify10Command) VrProtect() uint8             { return c[0] >> 5 }
func (c *Verify10Command) LogicalBlockAddress() uint32 { return wire.ReadBigEndian32(c[1:5]) }
func (c *Verify10Command) VerificationLength() uint16   { return wire.ReadBigEndian16(c[6:8]) }
func (c *Verify10Command) Control() ControlByte           { return c[8] }

// Verify12Command is the 11 trailing bytes of a 12-byte VERIFY(12) CDB (SBC-3 Table 218).
type Verify12Command [11]byte

func (c *Verify12Command) Bytchk() uint8               { return (c[0] >> 1) & 0x3 }
func (c *Verify12Command) VrProtect() uint8             { return c[0] >> 5 }
func (c *Verify12Command) LogicalBlockAddress() uint32 { return wire.ReadBigEndian32(c[1:5]) }
func (c *Verify12Command) VerificationLength() uint32   { return wire.ReadBigEndian32(c[5:9]) }
func (c *Verify12Command) Control() ControlByte           { return c[10] }

// Verify16Command is the 15 trailing bytes of a 16-byte VERIFY(16) CDB (SBC-3 Table 219).
type Verify16Command [15]byte

func (c *Verify16Command) Bytchk() uint8               { return (c[0] >> 1) & 0x3 }
func (c *Verify16Command) VrProtect() uint8             { return c[0] >> 5 }
func (c *Verify16Command) LogicalBlockAddress() uint64 { return wire.ReadBigEndian64(c[1:9]) }
func (c *Verify16Command) VerificationLength() uint32   { return wire.ReadBigEndian32(c[9:13]) }
func (c *Verify16Command) Control() ControlByte           { return c[14] }

// SynchronizeCache10Command is the 9 trailing bytes of a 10-byte
// SYNCHRONIZE CACHE(10) CDB (SBC-3 Table 199).
type SynchronizeCache10Command [9]byte

func (c *SynchronizeCache10Command) LogicalBlockAddress() uint32 {
	return wire.ReadBigEndian32(c[1:5])
}
func (c *SynchronizeCache10Command) Control() ControlByte { return c[8] }

// SynchronizeCache16Command is the 15 trailing bytes of a 16-byte
// SYNCHRONIZE CACHE(16) CDB (SBC-3 Table 201).
type SynchronizeCache16Command [15]byte

func (c *SynchronizeCache16Command) LogicalBlockAddress() uint64 {
	return wire.ReadBigEndian64(c[1:9])
}
func (c *SynchronizeCache16Command) Control() ControlByte { return c[14] }

// ModeSense6Command is the 5 trailing bytes of a 6-byte MODE SENSE(6) CDB
// (SPC-4 Table 73).
type ModeSense6Command [5]byte

func (c *ModeSense6Command) Dbd() bool            { return c[0]&0x08 != 0 }
func (c *ModeSense6Command) Pc() PageControl        { return c[1] >> 6 }
func (c *ModeSense6Command) PageCode() ModePageCode { return c[1] & 0x3f }
func (c *ModeSense6Command) SubPageCode() uint8     { return c[2] }
func (c *ModeSense6Command) AllocLength() uint8     { return c[3] }
func (c *ModeSense6Command) Control() ControlByte     { return c[4] }

// ModeSense10Command is the 9 trailing bytes of a 10-byte MODE SENSE(10) CDB
// (SPC-4 Table 75).
type ModeSense10Command [9]byte

func (c *ModeSense10Command) Dbd() bool            { return c[0]&0x08 != 0 }
func (c *ModeSense10Command) Llbaa() bool           { return c[0]&0x10 != 0 }
func (c *ModeSense10Command) Pc() PageControl        { return c[1] >> 6 }
func (c *ModeSense10Command) PageCode() ModePageCode { return c[1] & 0x3f }
func (c *ModeSense10Command) SubPageCode() uint8     { return c[2] }
func (c *ModeSense10Command) AllocLength() uint16    { return wire.ReadBigEndian16(c[6:8]) }
func (c *ModeSense10Command) Control() ControlByte     { return c[8] }

// ModeSelect6Command is the 5 trailing bytes of a 6-byte MODE SELECT(6) CDB
// (SPC-4 Table 69).
type ModeSelect6Command [5]byte

func (c *ModeSelect6Command) Pf() bool              { return c[0]&0x10 != 0 }
func (c *ModeSelect6Command) Sp() bool              { return c[0]&0x01 != 0 }
func (c *ModeSelect6Command) ParamListLength() uint8 { return c[3] }
func (c *ModeSelect6Command) Control() ControlByte   { return c[4] }

// ModeSelect10Command is the 9 trailing bytes of a 10-byte MODE SELECT(10)
// CDB (SPC-4 Table 71).
type ModeSelect10Command [9]byte

func (c *ModeSelect10Command) Pf() bool               { return c[0]&0x10 != 0 }
func (c *ModeSelect10Command) Sp() bool               { return c[0]&0x01 != 0 }
func (c *ModeSelect10Command) ParamListLength() uint16 { return wire.ReadBigEndian16(c[6:8]) }
func (c *ModeSelect10Command) Control() ControlByte    { return c[8] }

// ReportLunsCommand is the 11 trailing bytes of a 12-byte REPORT LUNS CDB
// (SPC-4 Table 147).
type ReportLunsCommand [11]byte

func (c *ReportLunsCommand) SelectReport() SelectReport { return c[1] }
func (c *ReportLunsCommand) AllocLength() uint32          { return wire.ReadBigEndian32(c[5:9]) }
func (c *ReportLunsCommand) Control() ControlByte           { return c[10] }

// UnmapCommand is the 9 trailing bytes of a 10-byte UNMAP CDB (SBC-3 Table 204).
type UnmapCommand [9]byte

func (c *UnmapCommand) Anchor() bool              { return c[0]&0x01 != 0 }
func (c *UnmapCommand) ParamListLength() uint16 { return wire.ReadBigEndian16(c[6:8]) }
func (c *UnmapCommand) Control() ControlByte       { return c[8] }

// ReportOpCodesCommand is the 11 trailing bytes of a 12-byte MAINTENANCE IN
// CDB requesting REPORT SUPPORTED OPERATION CODES (SPC-4 Table 150).
type ReportOpCodesCommand [11]byte

func (c *ReportOpCodesCommand) ServiceAction() uint8    { return c[0] & 0x1f }
func (c *ReportOpCodesCommand) ReportingOptions() uint8 { return c[1] & 0x07 }
func (c *ReportOpCodesCommand) RequestedOpCode() OpCode { return c[2] }
func (c *ReportOpCodesCommand) Control() ControlByte      { return c[10] }

// LogSenseCommand is the 9 trailing bytes of a 10-byte LOG SENSE CDB
// (SPC-4 Table 61).
type LogSenseCommand [9]byte

func (c *LogSenseCommand) PageCode() uint8 { return c[1] & 0x3f }
func (c *LogSenseCommand) Control() ControlByte { return c[8] }
