// Package codec implements the storage encoding of handle values used by the
// handle protocol: big-endian int32 fields and length-prefixed byte arrays.
package codec

import (
	"encoding/binary"
	"fmt"

	"github.com/clarin-dspace/handle-resolver/internal/errors"
	"github.com/clarin-dspace/handle-resolver/internal/handle/domain"
)

// Permission bits of the encoded permissions byte.
const (
	PermAdminRead   byte = 0x08
	PermAdminWrite  byte = 0x04
	PermPublicRead  byte = 0x02
	PermPublicWrite byte = 0x01
)

const (
	intSize = 4
	// index + timestamp + ttl type + ttl + permissions
	fixedHeaderSize = intSize + intSize + 1 + intSize + 1
)

// ErrMalformed indicates an encoded value that is truncated or carries
// impossible lengths.
var ErrMalformed = errors.Wrap(errors.ErrInvalidInput, "malformed handle value")

// CalcStorageSize returns the number of bytes Encode produces for v.
func CalcStorageSize(v domain.HandleValue) int {
	size := fixedHeaderSize
	size += intSize + len(v.Type)
	size += intSize + len(v.Data)
	size += intSize
	for _, ref := range v.References {
		size += intSize + len(ref.Handle) + intSize
	}
	return size
}

// Encode serializes v in storage format.
func Encode(v domain.HandleValue) []byte {
	buf := make([]byte, 0, CalcStorageSize(v))

	buf = binary.BigEndian.AppendUint32(buf, uint32(v.Index))
	buf = binary.BigEndian.AppendUint32(buf, uint32(v.Timestamp))
	buf = append(buf, v.TTLType)
	buf = binary.BigEndian.AppendUint32(buf, uint32(v.TTL))
	buf = append(buf, permissions(v))
	buf = appendBytes(buf, v.Type)
	buf = appendBytes(buf, v.Data)

	buf = binary.BigEndian.AppendUint32(buf, uint32(len(v.References)))
	for _, ref := range v.References {
		buf = appendBytes(buf, ref.Handle)
		buf = binary.BigEndian.AppendUint32(buf, uint32(ref.Index))
	}
	return buf
}

// EncodeAll encodes every value in order.
func EncodeAll(values []domain.HandleValue) [][]byte {
	out := make([][]byte, 0, len(values))
	for _, v := range values {
		out = append(out, Encode(v))
	}
	return out
}

// Decode parses a value produced by Encode. Trailing bytes are an error.
func Decode(b []byte) (domain.HandleValue, error) {
	r := reader{buf: b}
	var v domain.HandleValue

	v.Index = r.int32()
	v.Timestamp = r.int32()
	v.TTLType = r.byte()
	v.TTL = r.int32()

	perm := r.byte()
	v.AdminRead = perm&PermAdminRead != 0
	v.AdminWrite = perm&PermAdminWrite != 0
	v.PublicRead = perm&PermPublicRead != 0
	v.PublicWrite = perm&PermPublicWrite != 0

	v.Type = r.bytes()
	v.Data = r.bytes()

	count := r.int32()
	if r.err == nil && (count < 0 || int(count) > r.remaining()/(2*intSize)) {
		r.err = fmt.Errorf("%w: reference count %d", ErrMalformed, count)
	}
	for i := int32(0); r.err == nil && i < count; i++ {
		ref := domain.ValueReference{Handle: r.bytes()}
		ref.Index = r.int32()
		v.References = append(v.References, ref)
	}

	if r.err != nil {
		return domain.HandleValue{}, r.err
	}
	if r.remaining() != 0 {
		return domain.HandleValue{}, fmt.Errorf("%w: %d trailing bytes", ErrMalformed, r.remaining())
	}
	return v, nil
}

func permissions(v domain.HandleValue) byte {
	var p byte
	if v.AdminRead {
		p |= PermAdminRead
	}
	if v.AdminWrite {
		p |= PermAdminWrite
	}
	if v.PublicRead {
		p |= PermPublicRead
	}
	if v.PublicWrite {
		p |= PermPublicWrite
	}
	return p
}

func appendBytes(buf, b []byte) []byte {
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(b)))
	return append(buf, b...)
}

// reader keeps the first error and turns later reads into no-ops.
type reader struct {
	buf []byte
	off int
	err error
}

func (r *reader) remaining() int {
	return len(r.buf) - r.off
}

func (r *reader) need(n int) bool {
	if r.err != nil {
		return false
	}
	if n < 0 || r.remaining() < n {
		r.err = fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrMalformed, n, r.off, r.remaining())
		return false
	}
	return true
}

func (r *reader) int32() int32 {
	if !r.need(intSize) {
		return 0
	}
	n := int32(binary.BigEndian.Uint32(r.buf[r.off:]))
	r.off += intSize
	return n
}

func (r *reader) byte() byte {
	if !r.need(1) {
		return 0
	}
	b := r.buf[r.off]
	r.off++
	return b
}

func (r *reader) bytes() []byte {
	n := r.int32()
	if !r.need(int(n)) {
		return nil
	}
	out := make([]byte, n)
	copy(out, r.buf[r.off:r.off+int(n)])
	r.off += int(n)
	return out
}
