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

import (
	"encoding/binary"
	"fmt"
)

// FrameControlFieldLength is the size of the frame control field on the wire
const FrameControlFieldLength = 2

// Flag bits in the second octet of the frame control field
const (
	flagToDS          = 1 << 0
	flagFromDS        = 1 << 1
	flagMoreFragments = 1 << 2
	flagRetry         = 1 << 3
	flagPwrMgmt       = 1 << 4
	flagMoreData      = 1 << 5
	flagProtected     = 1 << 6
	flagHTCPlusOrder  = 1 << 7
)

// FCFFlags holds the flag octet of the frame control field.
//
// The flags are decoded once by the frame classifier and passed as context
// into the header codec. HTCPlusOrder gates the 4-byte HT control field.
type FCFFlags struct {
	ToDS          bool
	FromDS        bool
	MoreFragments bool
	Retry         bool
	PwrMgmt       bool
	MoreData      bool
	Protected     bool
	HTCPlusOrder  bool
}

// ParseFCFFlags unpacks the flag octet. Every octet value is valid.
func ParseFCFFlags(b byte) FCFFlags {
	return FCFFlags{
		ToDS:          b&flagToDS != 0,
		FromDS:        b&flagFromDS != 0,
		MoreFragments: b&flagMoreFragments != 0,
		Retry:         b&flagRetry != 0,
		PwrMgmt:       b&flagPwrMgmt != 0,
		MoreData:      b&flagMoreData != 0,
		Protected:     b&flagProtected != 0,
		HTCPlusOrder:  b&flagHTCPlusOrder != 0,
	}
}

// Bits packs the flags back into their octet.
func (f FCFFlags) Bits() byte {
	var b byte
	if f.ToDS {
		b |= flagToDS
	}
	if f.FromDS {
		b |= flagFromDS
	}
	if f.MoreFragments {
		b |= flagMoreFragments
	}
	if f.Retry {
		b |= flagRetry
	}
	if f.PwrMgmt {
		b |= flagPwrMgmt
	}
	if f.MoreData {
		b |= flagMoreData
	}
	if f.Protected {
		b |= flagProtected
	}
	if f.HTCPlusOrder {
		b |= flagHTCPlusOrder
	}
	return b
}

// FrameControlField is the leading control field of every 802.11 frame.
// Subtype holds the raw 4-bit code; use ManagementSubtype or DataSubtype
// to resolve it against the registry for the frame type.
type FrameControlField struct {
	Flags   FCFFlags
	Version uint8
	Type    FrameType
	Subtype uint8
}

// ParseFrameControlField unpacks the little-endian 16-bit frame control field.
func ParseFrameControlField(v uint16) FrameControlField {
	first := byte(v)
	return FrameControlField{
		Version: first & 0x03,
		Type:    FrameType((first >> 2) & 0x03),
		Subtype: (first >> 4) & subtypeMask,
		Flags:   ParseFCFFlags(byte(v >> 8)),
	}
}

// Representation packs the field into its 16-bit wire value.
func (f FrameControlField) Representation() uint16 {
	first := (f.Version & 0x03) | (uint8(f.Type)&0x03)<<2 | (f.Subtype&subtypeMask)<<4
	return uint16(first) | uint16(f.Flags.Bits())<<8
}

// ManagementSubtype resolves the subtype code of a management frame.
func (f FrameControlField) ManagementSubtype() (ManagementFrameSubtype, error) {
	if f.Type != FrameTypeManagement {
		return 0, fmt.Errorf("%w: want management, got %s", ErrFrameTypeMismatch, f.Type)
	}
	return ParseManagementFrameSubtype(f.Subtype)
}

// DataSubtype resolves the subtype code of a data frame.
func (f FrameControlField) DataSubtype() (DataFrameSubtype, error) {
	if f.Type != FrameTypeData {
		return 0, fmt.Errorf("%w: want data, got %s", ErrFrameTypeMismatch, f.Type)
	}
	return ParseDataFrameSubtype(f.Subtype)
}

// DecodeFrameControlField reads the frame control field from the start of b.
func DecodeFrameControlField(b []byte) (FrameControlField, int, error) {
	if len(b) < FrameControlFieldLength {
		return FrameControlField{}, 0, &TruncatedInputError{
			Field:     "frame control",
			Needed:    FrameControlFieldLength,
			Available: len(b),
		}
	}
	return ParseFrameControlField(binary.LittleEndian.Uint16(b)), FrameControlFieldLength, nil
}

// EncodeFrameControlField writes the frame control field to the start of out.
func EncodeFrameControlField(f FrameControlField, out []byte) (int, error) {
	if len(out) < FrameControlFieldLength {
		return 0, &DestinationTooSmallError{Needed: FrameControlFieldLength, Available: len(out)}
	}
	binary.LittleEndian.PutUint16(out, f.Representation())
	return FrameControlFieldLength, nil
}
