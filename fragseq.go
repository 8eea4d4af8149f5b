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

package ieee80211

// Fragment/sequence field layout
const (
	fragmentMask  = 0x000F
	sequenceShift = 4
	MaxFragment   = 0x0F  // Largest fragment number (4 bits)
	MaxSequence   = 0xFFF // Largest sequence number (12 bits)
	FragSeqLength = 2     // Size of the packed field on the wire
)

// FragSeqInfo is the sequence control field: a fragment number in the low
// 4 bits and a sequence number in the high 12 bits.
type FragSeqInfo struct {
	Sequence uint16
	Fragment uint8
}

// ParseFragSeqInfo splits the packed 16-bit value. Every value is valid.
func ParseFragSeqInfo(v uint16) FragSeqInfo {
	return FragSeqInfo{
		Fragment: uint8(v & fragmentMask),
		Sequence: v >> sequenceShift,
	}
}

// Representation packs the field into its 16-bit wire value.
// Out-of-range counters are masked to their field width.
func (f FragSeqInfo) Representation() uint16 {
	return uint16(f.Fragment)&fragmentMask | (f.Sequence&MaxSequence)<<sequenceShift
}

// Next returns the sequence control for the next MSDU: the sequence number
// advances modulo 4096 and the fragment number resets.
func (f FragSeqInfo) Next() FragSeqInfo {
	return FragSeqInfo{Sequence: (f.Sequence + 1) & MaxSequence}
}
