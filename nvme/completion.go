package nvme

import "github.com/googleinterns/scsi2nvme/wire"

// GenericQueueEntryCpl is the 16-byte NVMe completion queue entry (NVMe
// Base Spec Figure 87). The pipeline reads Status()/StatusCodeType() back
// out of this after a (simulated) command completes and feeds them to the
// status mapper.
type GenericQueueEntryCpl [16]byte

func (c *GenericQueueEntryCpl) SetCommandSpecific(v uint32) {
	b := wire.LittleEndian32(v)
	copy(c[0:4], b[:])
}
func (c *GenericQueueEntryCpl) CommandSpecific() uint32 { return wire.ReadLittleEndian32(c[0:4]) }

func (c *GenericQueueEntryCpl) SetSqHeadPointer(v uint16) {
	b := wire.LittleEndian16(v)
	copy(c[8:10], b[:])
}

func (c *GenericQueueEntryCpl) SetSqId(v uint16) {
	b := wire.LittleEndian16(v)
	copy(c[10:12], b[:])
}

func (c *GenericQueueEntryCpl) SetCommandId(v uint16) {
	b := wire.LittleEndian16(v)
	copy(c[12:14], b[:])
}
func (c *GenericQueueEntryCpl) CommandId() uint16 { return wire.ReadLittleEndian16(c[12:14]) }

// status occupies the last 16 bits of the completion entry: phase tag (bit
// 0), status code (bits 8:1), status code type (bits 11:9), more (bit 13),
// do-not-retry (bit 14) (NVMe Base Spec Figure 88).

func (c *GenericQueueEntryCpl) SetStatus(sct StatusCodeType, sc byte) {
	status := wire.ReadLittleEndian16(c[14:16])
	status &^= 0x0ffe
	status |= uint16(sc) << 1
	status |= uint16(sct&0x07) << 9
	b := wire.LittleEndian16(status)
	copy(c[14:16], b[:])
}

func (c *GenericQueueEntryCpl) StatusCode() byte {
	return byte(wire.ReadLittleEndian16(c[14:16])>>1) & 0xff
}

func (c *GenericQueueEntryCpl) StatusCodeType() StatusCodeType {
	return byte(wire.ReadLittleEndian16(c[14:16])>>9) & 0x07
}

func (c *GenericQueueEntryCpl) Phase() bool {
	return wire.ReadLittleEndian16(c[14:16])&0x01 != 0
}

func (c *GenericQueueEntryCpl) DoNotRetry() bool {
	return wire.ReadLittleEndian16(c[14:16])&0x4000 != 0
}
