// Copyright 2026 The Zaparoo Project Contributors.
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package frame

import (
	"encoding/binary"

	"github.com/ZaparooProject/go-ieee80211"
)

// Reader is a bounds-checked read cursor over a borrowed buffer.
// Byte slices it returns alias the buffer; nothing is copied.
type Reader struct {
	buf []byte
	off int
}

// NewReader returns a Reader positioned at the start of buf.
func NewReader(buf []byte) Reader {
	return Reader{buf: buf}
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int {
	return r.off
}

// Remaining returns the unread part of the buffer.
func (r *Reader) Remaining() []byte {
	return r.buf[r.off:]
}

// take advances the cursor by n bytes or reports how far short the buffer is
func (r *Reader) take(n int, field string) ([]byte, error) {
	if n < 0 || len(r.buf)-r.off < n {
		return nil, &ieee80211.TruncatedInputError{
			Field:     field,
			Needed:    r.off + n,
			Available: len(r.buf),
		}
	}
	b := r.buf[r.off : r.off+n : r.off+n]
	r.off += n
	return b, nil
}

// Uint8 reads one byte.
func (r *Reader) Uint8(field string) (uint8, error) {
	b, err := r.take(1, field)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// Uint16 reads a little-endian uint16.
func (r *Reader) Uint16(field string) (uint16, error) {
	b, err := r.take(2, field)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// Uint64 reads a little-endian uint64.
func (r *Reader) Uint64(field string) (uint64, error) {
	b, err := r.take(8, field)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// MAC reads a 6-byte address.
func (r *Reader) MAC(field string) (ieee80211.MACAddress, error) {
	var m ieee80211.MACAddress
	b, err := r.take(ieee80211.MACAddressLength, field)
	if err != nil {
		return m, err
	}
	copy(m[:], b)
	return m, nil
}

// Array4 reads 4 bytes verbatim.
func (r *Reader) Array4(field string) ([4]byte, error) {
	var a [4]byte
	b, err := r.take(len(a), field)
	if err != nil {
		return a, err
	}
	copy(a[:], b)
	return a, nil
}

// Bytes borrows the next n bytes.
func (r *Reader) Bytes(n int, field string) ([]byte, error) {
	return r.take(n, field)
}

// Rest borrows everything left and moves the cursor to the end.
// An exhausted buffer yields nil.
func (r *Reader) Rest() []byte {
	if r.off >= len(r.buf) {
		return nil
	}
	b := r.buf[r.off:len(r.buf):len(r.buf)]
	r.off = len(r.buf)
	return b
}

// Writer is a bounds-checked write cursor over a caller-owned buffer.
// It fails fast instead of truncating.
type Writer struct {
	buf []byte
	off int
}

// NewWriter returns a Writer positioned at the start of buf.
func NewWriter(buf []byte) Writer {
	return Writer{buf: buf}
}

// Offset returns the number of bytes written so far.
func (w *Writer) Offset() int {
	return w.off
}

// Reserve fails unless n more bytes fit. Encoders call it with their full
// length first so that nothing is written into a buffer that cannot hold it.
func (w *Writer) Reserve(n int) error {
	if n < 0 || len(w.buf)-w.off < n {
		return &ieee80211.DestinationTooSmallError{
			Needed:    w.off + n,
			Available: len(w.buf),
		}
	}
	return nil
}

func (w *Writer) next(n int) ([]byte, error) {
	if err := w.Reserve(n); err != nil {
		return nil, err
	}
	b := w.buf[w.off : w.off+n]
	w.off += n
	return b, nil
}

// PutUint8 writes one byte.
func (w *Writer) PutUint8(v uint8) error {
	b, err := w.next(1)
	if err != nil {
		return err
	}
	b[0] = v
	return nil
}

// PutUint16 writes a little-endian uint16.
func (w *Writer) PutUint16(v uint16) error {
	b, err := w.next(2)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint16(b, v)
	return nil
}

// PutUint64 writes a little-endian uint64.
func (w *Writer) PutUint64(v uint64) error {
	b, err := w.next(8)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(b, v)
	return nil
}

// PutBytes copies p into the buffer.
func (w *Writer) PutBytes(p []byte) error {
	b, err := w.next(len(p))
	if err != nil {
		return err
	}
	copy(b, p)
	return nil
}

// Tail returns the unwritten part of the buffer for a nested encoder.
// The caller must Skip the number of bytes the nested encoder produced.
func (w *Writer) Tail() []byte {
	return w.buf[w.off:]
}

// Skip advances the cursor past n bytes written through Tail.
func (w *Writer) Skip(n int) error {
	_, err := w.next(n)
	return err
}
