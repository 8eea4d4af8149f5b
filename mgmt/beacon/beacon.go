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

// Package beacon provides the body codec for Beacon frames.
package beacon

import (
	"time"

	"github.com/ZaparooProject/go-ieee80211/ie"
	"github.com/ZaparooProject/go-ieee80211/internal/frame"
)

// FixedLength is the size of the fixed fields in front of the elements
const FixedLength = 8 + 2 + 2

// TimeUnit is the 802.11 time unit used by the beacon interval
const TimeUnit = 1024 * time.Microsecond

// Capability information bits
const (
	CapabilityESS           uint16 = 1 << 0
	CapabilityIBSS          uint16 = 1 << 1
	CapabilityPrivacy       uint16 = 1 << 4
	CapabilityShortPreamble uint16 = 1 << 5
	CapabilitySpectrumMgmt  uint16 = 1 << 8
	CapabilityQoS           uint16 = 1 << 9
	CapabilityShortSlotTime uint16 = 1 << 10
	CapabilityRadioMeasure  uint16 = 1 << 12
)

// Body is the body of a Beacon frame. Elements borrows from the decoded
// buffer and is only valid while that buffer is retained.
type Body struct {
	Elements     []byte
	Timestamp    uint64
	Interval     uint16
	Capabilities uint16
}

// Decode reads a beacon body, consuming all of b.
func Decode(b []byte) (Body, int, error) {
	r := frame.NewReader(b)

	timestamp, err := r.Uint64("beacon timestamp")
	if err != nil {
		return Body{}, 0, err
	}
	interval, err := r.Uint16("beacon interval")
	if err != nil {
		return Body{}, 0, err
	}
	capabilities, err := r.Uint16("capability information")
	if err != nil {
		return Body{}, 0, err
	}

	return Body{
		Timestamp:    timestamp,
		Interval:     interval,
		Capabilities: capabilities,
		Elements:     r.Rest(),
	}, r.Offset(), nil
}

// Len returns the encoded size of the body.
func (b Body) Len() int {
	return FixedLength + len(b.Elements)
}

// Encode writes the body to out.
func (b Body) Encode(out []byte) (int, error) {
	w := frame.NewWriter(out)
	if err := w.Reserve(b.Len()); err != nil {
		return 0, err
	}
	if err := w.PutUint64(b.Timestamp); err != nil {
		return 0, err
	}
	if err := w.PutUint16(b.Interval); err != nil {
		return 0, err
	}
	if err := w.PutUint16(b.Capabilities); err != nil {
		return 0, err
	}
	if err := w.PutBytes(b.Elements); err != nil {
		return 0, err
	}
	return w.Offset(), nil
}

// BeaconInterval returns the interval as a duration.
func (b Body) BeaconInterval() time.Duration {
	return time.Duration(b.Interval) * TimeUnit
}

// HasCapability reports whether every bit in c is set.
func (b Body) HasCapability(c uint16) bool {
	return b.Capabilities&c == c
}

// SSID returns the network name carried in the SSID element.
// A hidden network yields an empty, present SSID.
func (b Body) SSID() ([]byte, bool, error) {
	e, ok, err := ie.Find(b.Elements, ie.IDSSID)
	if err != nil || !ok {
		return nil, false, err
	}
	return e.Data, true, nil
}

// Channel returns the current channel from the DS parameter set element.
func (b Body) Channel() (uint8, bool, error) {
	e, ok, err := ie.Find(b.Elements, ie.IDDSParameterSet)
	if err != nil || !ok || len(e.Data) < 1 {
		return 0, false, err
	}
	return e.Data[0], true, nil
}

// ElementReader returns a reader over the information elements.
func (b Body) ElementReader() *ie.Reader {
	return ie.NewReader(b.Elements)
}
