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
	"fmt"
	"net"
)

// MACAddressLength is the size of an address field on the wire
const MACAddressLength = 6

// MACAddress is a 48-bit IEEE 802 address held by value.
type MACAddress [MACAddressLength]byte

// BroadcastAddress is the all-ones group address.
var BroadcastAddress = MACAddress{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}

// ParseMAC parses an EUI-48 address in any form accepted by net.ParseMAC.
func ParseMAC(s string) (MACAddress, error) {
	hw, err := net.ParseMAC(s)
	if err != nil {
		return MACAddress{}, fmt.Errorf("parse MAC address: %w", err)
	}
	if len(hw) != MACAddressLength {
		return MACAddress{}, fmt.Errorf("parse MAC address %q: not an EUI-48 address", s)
	}
	var m MACAddress
	copy(m[:], hw)
	return m, nil
}

func (m MACAddress) String() string {
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x", m[0], m[1], m[2], m[3], m[4], m[5])
}

// IsBroadcast reports whether m is the broadcast address.
func (m MACAddress) IsBroadcast() bool {
	return m == BroadcastAddress
}

// IsMulticast reports whether the group bit is set.
func (m MACAddress) IsMulticast() bool {
	return m[0]&0x01 != 0
}

// IsLocallyAdministered reports whether the U/L bit is set.
func (m MACAddress) IsLocallyAdministered() bool {
	return m[0]&0x02 != 0
}

// HardwareAddr returns a copy of m as a net.HardwareAddr.
func (m MACAddress) HardwareAddr() net.HardwareAddr {
	hw := make(net.HardwareAddr, MACAddressLength)
	copy(hw, m[:])
	return hw
}
