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
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMAC(t *testing.T) {
	t.Parallel()

	m, err := ParseMAC("00:11:22:aa:bb:cc")
	require.NoError(t, err)
	assert.Equal(t, MACAddress{0x00, 0x11, 0x22, 0xAA, 0xBB, 0xCC}, m)
	assert.Equal(t, "00:11:22:aa:bb:cc", m.String())
	assert.Equal(t, net.HardwareAddr{0x00, 0x11, 0x22, 0xAA, 0xBB, 0xCC}, m.HardwareAddr())
}

func TestParseMAC_Invalid(t *testing.T) {
	t.Parallel()

	_, err := ParseMAC("not a mac")
	require.Error(t, err)

	// EUI-64 parses with net.ParseMAC but does not fit an 802.11 address
	_, err = ParseMAC("00:11:22:33:44:55:66:77")
	require.Error(t, err)
}

func TestMACAddress_Kinds(t *testing.T) {
	t.Parallel()

	assert.True(t, BroadcastAddress.IsBroadcast())
	assert.True(t, BroadcastAddress.IsMulticast())

	unicast := MACAddress{0x00, 0x11, 0x22, 0x33, 0x44, 0x55}
	assert.False(t, unicast.IsBroadcast())
	assert.False(t, unicast.IsMulticast())
	assert.False(t, unicast.IsLocallyAdministered())

	local := MACAddress{0x02, 0x00, 0x00, 0x00, 0x00, 0x01}
	assert.True(t, local.IsLocallyAdministered())
}
