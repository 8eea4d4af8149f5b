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

package mgmt

import (
	"github.com/ZaparooProject/go-ieee80211"
	"github.com/ZaparooProject/go-ieee80211/internal/frame"
)

// Header lengths on the wire
const (
	HeaderLength          = frame.HeaderLength    // Without HT control
	HeaderLengthHTControl = frame.MaxHeaderLength // With HT control
)

// Header is a management frame header.
//
// The HT control field is present exactly when Flags.HTCPlusOrder is set.
// HTControl must stay zero while the flag is clear; EncodeHeader rejects
// a header that violates this with ieee80211.ErrHTControlWithoutFlag.
type Header struct {
	Flags       ieee80211.FCFFlags
	Receiver    ieee80211.MACAddress
	Transmitter ieee80211.MACAddress
	BSSID       ieee80211.MACAddress
	FragSeq     ieee80211.FragSeqInfo
	Duration    uint16
	HTControl   [frame.HTControlLength]byte
}

// HasHTControl reports whether the HT control field is on the wire.
func (h Header) HasHTControl() bool {
	return h.Flags.HTCPlusOrder
}

// HT returns the HT control field and whether it is present.
func (h Header) HT() ([frame.HTControlLength]byte, bool) {
	if !h.HasHTControl() {
		return [frame.HTControlLength]byte{}, false
	}
	return h.HTControl, true
}

// Len returns the encoded size of the header.
func (h Header) Len() int {
	if h.HasHTControl() {
		return HeaderLengthHTControl
	}
	return HeaderLength
}

// Validate checks that the HT control field agrees with the flags.
func (h Header) Validate() error {
	if !h.HasHTControl() && h.HTControl != [frame.HTControlLength]byte{} {
		return ieee80211.ErrHTControlWithoutFlag
	}
	return nil
}

// DecodeHeader reads a management header from the start of b.
// flags come from the frame control field decoded upstream and decide
// whether the HT control field follows the sequence control field.
func DecodeHeader(b []byte, flags ieee80211.FCFFlags) (Header, int, error) {
	var (
		h   = Header{Flags: flags}
		r   = frame.NewReader(b)
		err error
	)

	if h.Duration, err = r.Uint16("duration"); err != nil {
		return Header{}, 0, err
	}
	if h.Receiver, err = r.MAC("receiver address"); err != nil {
		return Header{}, 0, err
	}
	if h.Transmitter, err = r.MAC("transmitter address"); err != nil {
		return Header{}, 0, err
	}
	if h.BSSID, err = r.MAC("BSSID"); err != nil {
		return Header{}, 0, err
	}
	fragSeq, err := r.Uint16("sequence control")
	if err != nil {
		return Header{}, 0, err
	}
	h.FragSeq = ieee80211.ParseFragSeqInfo(fragSeq)

	if flags.HTCPlusOrder {
		if h.HTControl, err = r.Array4("HT control"); err != nil {
			return Header{}, 0, err
		}
	}

	return h, r.Offset(), nil
}

// EncodeHeader writes h to the start of out. The HT control field is
// written according to h.Flags; no other flag set is consulted.
func EncodeHeader(h Header, out []byte) (int, error) {
	if err := h.Validate(); err != nil {
		return 0, err
	}

	w := frame.NewWriter(out)
	if err := w.Reserve(h.Len()); err != nil {
		return 0, err
	}

	// Reserve guarantees the writes below fit
	_ = w.PutUint16(h.Duration)
	_ = w.PutBytes(h.Receiver[:])
	_ = w.PutBytes(h.Transmitter[:])
	_ = w.PutBytes(h.BSSID[:])
	_ = w.PutUint16(h.FragSeq.Representation())
	if h.HasHTControl() {
		_ = w.PutBytes(h.HTControl[:])
	}

	return w.Offset(), nil
}
