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

// Package ie reads and writes 802.11 information elements.
package ie

import (
	"errors"

	"github.com/ZaparooProject/go-ieee80211"
	"github.com/ZaparooProject/go-ieee80211/internal/frame"
)

// Element IDs used by beacon and probe bodies
const (
	IDSSID                 uint8 = 0
	IDSupportedRates       uint8 = 1
	IDDSParameterSet       uint8 = 3 // Channel
	IDTrafficIndicationMap uint8 = 5
	IDCountry              uint8 = 7
	IDERP                  uint8 = 42
	IDHTCapabilities       uint8 = 45 // 802.11n
	IDRSN                  uint8 = 48 // WPA2/WPA3
	IDExtendedRates        uint8 = 50
	IDMobilityDomain       uint8 = 54 // 802.11r
	IDHTOperation          uint8 = 61
	IDExtendedCapabilities uint8 = 127
	IDVHTCapabilities      uint8 = 191 // 802.11ac
	IDVHTOperation         uint8 = 192
	IDVendorSpecific       uint8 = 221
	IDExtension            uint8 = 255
)

// MaxDataLength is the largest element body the one-octet length can express
const MaxDataLength = 255

// headerLength is the ID and length octets in front of every element
const headerLength = 2

// ErrElementTooLong is returned when element data exceeds MaxDataLength
var ErrElementTooLong = errors.New("ie: element data longer than 255 bytes")

// Element is one information element. Data borrows from the decoded buffer.
type Element struct {
	Data []byte
	ID   uint8
}

// Len returns the encoded size of the element.
func (e Element) Len() int {
	return headerLength + len(e.Data)
}

// Encode writes the element to out.
func (e Element) Encode(out []byte) (int, error) {
	if len(e.Data) > MaxDataLength {
		return 0, ErrElementTooLong
	}
	w := frame.NewWriter(out)
	if err := w.Reserve(e.Len()); err != nil {
		return 0, err
	}
	if err := w.PutUint8(e.ID); err != nil {
		return 0, err
	}
	if err := w.PutUint8(uint8(len(e.Data))); err != nil {
		return 0, err
	}
	if err := w.PutBytes(e.Data); err != nil {
		return 0, err
	}
	return w.Offset(), nil
}

// Encode writes elems back to back into out.
func Encode(out []byte, elems ...Element) (int, error) {
	total := 0
	for _, e := range elems {
		total += e.Len()
	}
	if len(out) < total {
		return 0, &ieee80211.DestinationTooSmallError{Needed: total, Available: len(out)}
	}

	off := 0
	for _, e := range elems {
		n, err := e.Encode(out[off:])
		if err != nil {
			return 0, err
		}
		off += n
	}
	return off, nil
}

// Reader walks a sequence of elements without copying.
//
//	r := ie.NewReader(body.Elements)
//	for r.Next() {
//		e := r.Element()
//	}
//	if err := r.Err(); err != nil { ... }
type Reader struct {
	err error
	cur Element
	r   frame.Reader
}

// NewReader returns a Reader over buf.
func NewReader(buf []byte) *Reader {
	return &Reader{r: frame.NewReader(buf)}
}

// Next advances to the next element. It returns false at the end of the
// buffer or on the first malformed element.
func (r *Reader) Next() bool {
	if r.err != nil || len(r.r.Remaining()) == 0 {
		return false
	}

	id, err := r.r.Uint8("element id")
	if err != nil {
		r.err = err
		return false
	}
	n, err := r.r.Uint8("element length")
	if err != nil {
		r.err = err
		return false
	}
	data, err := r.r.Bytes(int(n), "element data")
	if err != nil {
		r.err = err
		return false
	}
	r.cur = Element{ID: id, Data: data}
	return true
}

// Element returns the element found by the last call to Next.
func (r *Reader) Element() Element {
	return r.cur
}

// Err returns the first error encountered, if any.
func (r *Reader) Err() error {
	return r.err
}

// Find returns the first element with the given ID.
func Find(buf []byte, id uint8) (Element, bool, error) {
	r := NewReader(buf)
	for r.Next() {
		if e := r.Element(); e.ID == id {
			return e, true, nil
		}
	}
	return Element{}, false, r.Err()
}
