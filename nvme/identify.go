package nvme

import "github.com/googleinterns/scsi2nvme/wire"

// IdentifyControllerData is the 4096-byte response to IDENTIFY CNS=1 (NVMe
// Base Spec Figure 247), with accessors for vid, mn, fr, mdts and nn only
// (the Inquiry codec reads mn and fr); the rest of the 4096 bytes keeps
// the struct at its real wire size.
type IdentifyControllerData [4096]byte

func (d *IdentifyControllerData) Vid() uint16 { return wire.ReadLittleEndian16(d[0:2]) }
func (d *IdentifyControllerData) SetVid(v uint16) {
	b := wire.LittleEndian16(v)
	copy(d[0:2], b[:])
}

// ModelNumber is the 40-byte ASCII model number (offset 24).
func (d *IdentifyControllerData) ModelNumber() []byte { return d[24:64] }
func (d *IdentifyControllerData) SetModelNumber(s string) {
	for i := range d[24:64] {
		d[24+i] = ' '
	}
	copy(d[24:64], s)
}

// FirmwareRevision is the 8-byte ASCII firmware revision (offset 64).
func (d *IdentifyControllerData) FirmwareRevision() []byte { return d[64:72] }
func (d *IdentifyControllerData) SetFirmwareRevision(s string) {
	for i := range d[64:72] {
		d[64+i] = ' '
	}
	copy(d[64:72], s)
}

func (d *IdentifyControllerData) Mdts() uint8 { return d[77] }
func (d *IdentifyControllerData) SetMdts(v uint8) { d[77] = v }

// Nn is the number of namespaces (offset 516, 4 bytes).
func (d *IdentifyControllerData) Nn() uint32 { return wire.ReadLittleEndian32(d[516:520]) }
func (d *IdentifyControllerData) SetNn(v uint32) {
	b := wire.LittleEndian32(v)
	copy(d[516:520], b[:])
}

// Lbaf is one 4-byte LBA Format descriptor within an IdentifyNamespace's
// Lbaf array (NVMe Base Spec Figure 114).
type Lbaf [4]byte

func (l *Lbaf) MetadataSize() uint16 { return wire.ReadLittleEndian16(l[0:2]) }
func (l *Lbaf) LbaDataSize() uint8   { return l[2] } // 2^n bytes
func (l *Lbaf) RelativePerformance() uint8 { return l[3] & 0x03 }

func (l *Lbaf) SetLbaDataSize(exponent uint8) { l[2] = exponent }

// Dps is the Data Protection Settings byte of an IdentifyNamespace (NVMe
// Base Spec Figure 99).
type Dps = byte

func DpsProtectionType(d Dps) uint8    { return d & 0x07 }
func DpsMetadataAtStart(d Dps) bool     { return d&0x08 != 0 }

// Flbas is the Formatted LBA Size byte of an IdentifyNamespace (NVMe Base
// Spec Figure 97): bits 3:0 select the active Lbaf entry, bit 4 indicates
// metadata is transferred as an extended LBA.
type Flbas = byte

func FlbasFormatIndex(f Flbas) uint8 { return f & 0x0f }
func FlbasExtended(f Flbas) bool      { return f&0x10 != 0 }

// IdentifyNamespaceData is the 4096-byte response to IDENTIFY CNS=0 (NVMe
// Base Spec Figure 96), truncated to the fields this module's codecs read:
// namespace size/capacity, formatted LBA size, data protection settings,
// and the LBA format list itself.
type IdentifyNamespaceData [4096]byte

func (d *IdentifyNamespaceData) Nsze() uint64 { return wire.ReadLittleEndian64(d[0:8]) }
func (d *IdentifyNamespaceData) SetNsze(v uint64) {
	b := wire.LittleEndian64(v)
	copy(d[0:8], b[:])
}

func (d *IdentifyNamespaceData) Ncap() uint64 { return wire.ReadLittleEndian64(d[8:16]) }
func (d *IdentifyNamespaceData) SetNcap(v uint64) {
	b := wire.LittleEndian64(v)
	copy(d[8:16], b[:])
}

func (d *IdentifyNamespaceData) Nuse() uint64 { return wire.ReadLittleEndian64(d[16:24]) }
func (d *IdentifyNamespaceData) SetNuse(v uint64) {
	b := wire.LittleEndian64(v)
	copy(d[16:24], b[:])
}

func (d *IdentifyNamespaceData) Nlbaf() uint8 { return d[25] }
func (d *IdentifyNamespaceData) SetNlbaf(v uint8) { d[25] = v }

func (d *IdentifyNamespaceData) Flbas() Flbas { return d[26] }
func (d *IdentifyNamespaceData) SetFlbas(v Flbas) { d[26] = v }

func (d *IdentifyNamespaceData) Dps() Dps { return d[29] }
func (d *IdentifyNamespaceData) SetDps(v Dps) { d[29] = v }

// LbafAt returns a view onto the n'th LBA Format descriptor, starting at
// byte offset 128 (NVMe Base Spec Figure 96).
func (d *IdentifyNamespaceData) LbafAt(n int) *Lbaf {
	off := 128 + n*4
	return (*Lbaf)(wire.SafePointerCastWrite[[4]byte](d[off : off+4]))
}

// IdentifyNamespaceList is the 4096-byte response to IDENTIFY CNS=2 (NVMe
// Base Spec Figure 110): up to 1024 little-endian 32-bit namespace IDs in
// increasing order, zero-terminated.
type IdentifyNamespaceList [4096]byte

func (l *IdentifyNamespaceList) SetNamespaceId(index int, nsid uint32) {
	b := wire.LittleEndian32(nsid)
	copy(l[index*4:index*4+4], b[:])
}

func (l *IdentifyNamespaceList) NamespaceId(index int) uint32 {
	return wire.ReadLittleEndian32(l[index*4 : index*4+4])
}
