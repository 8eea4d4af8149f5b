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

// Package testing provides frame fixtures shared by the codec tests.
package testing

import (
	"encoding/binary"
	"hash/crc32"
)

// Addresses used by the fixtures. They are distinct so that a field swap
// shows up in assertions.
var (
	ReceiverAddr    = [6]byte{0x02, 0x00, 0x00, 0x00, 0x00, 0x01}
	TransmitterAddr = [6]byte{0x02, 0x00, 0x00, 0x00, 0x00, 0x02}
	BSSIDAddr       = [6]byte{0x02, 0x00, 0x00, 0x00, 0x00, 0x03}
)

// BuildHeader creates a management header. ht is appended verbatim when non-nil.
func BuildHeader(duration uint16, ra, ta, bssid [6]byte, fragSeq uint16, ht []byte) []byte {
	header := make([]byte, 0, 26)
	header = binary.LittleEndian.AppendUint16(header, duration)
	header = append(header, ra[:]...)
	header = append(header, ta[:]...)
	header = append(header, bssid[:]...)
	header = binary.LittleEndian.AppendUint16(header, fragSeq)
	header = append(header, ht...)
	return header
}

// BuildDefaultHeader creates a header with the fixture addresses,
// duration 1 and sequence number 1.
func BuildDefaultHeader() []byte {
	return BuildHeader(0x0001, ReceiverAddr, TransmitterAddr, BSSIDAddr, 0x0010, nil)
}

// BuildElement creates an information element.
func BuildElement(id byte, data ...byte) []byte {
	element := make([]byte, 0, 2+len(data))
	element = append(element, id, byte(len(data)))
	return append(element, data...)
}

// BuildSSIDElement creates an SSID element.
func BuildSSIDElement(ssid string) []byte {
	return BuildElement(0, []byte(ssid)...)
}

// BuildBeaconBody creates a beacon body followed by the given elements.
func BuildBeaconBody(timestamp uint64, interval, capabilities uint16, elements ...[]byte) []byte {
	body := make([]byte, 0, 64)
	body = binary.LittleEndian.AppendUint64(body, timestamp)
	body = binary.LittleEndian.AppendUint16(body, interval)
	body = binary.LittleEndian.AppendUint16(body, capabilities)
	for _, e := range elements {
		body = append(body, e...)
	}
	return body
}

// BuildActionBody creates an action body.
func BuildActionBody(category byte, details ...byte) []byte {
	return append([]byte{category}, details...)
}

// BuildFrameControl creates a management frame control field.
func BuildFrameControl(subtype, flags byte) []byte {
	return []byte{subtype << 4, flags}
}

// Concat joins fixture parts into one buffer.
func Concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// WithFCS appends the CRC-32 frame check sequence to a frame.
func WithFCS(frame []byte) []byte {
	out := make([]byte, 0, len(frame)+4)
	out = append(out, frame...)
	return binary.LittleEndian.AppendUint32(out, crc32.ChecksumIEEE(frame))
}
