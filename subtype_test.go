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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDataFrameSubtype_Bijection(t *testing.T) {
	t.Parallel()

	registered := 0
	for code := uint8(0); code <= 0x0F; code++ {
		s, err := ParseDataFrameSubtype(code)
		if code == 0b1101 {
			require.Error(t, err, "0b1101 is reserved")
			continue
		}
		require.NoError(t, err, "code 0b%04b", code)
		assert.Equal(t, code, s.Bits(), "code 0b%04b must round-trip", code)
		registered++
	}
	assert.Equal(t, 15, registered)
	assert.Len(t, DataFrameSubtypes, registered)

	for _, s := range DataFrameSubtypes {
		got, err := ParseDataFrameSubtype(s.Bits())
		require.NoError(t, err)
		assert.Equal(t, s, got, "%v must round-trip", s)
	}
}

func TestParseDataFrameSubtype_Unknown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		code uint8
	}{
		{name: "reserved code", code: 0b1101},
		{name: "five bit value", code: 0x10},
		{name: "high bits set", code: 0xF0},
		{name: "all bits set", code: 0xFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseDataFrameSubtype(tt.code)
			require.ErrorIs(t, err, ErrUnknownSubtype)

			var unknown *UnknownSubtypeError
			require.ErrorAs(t, err, &unknown)
			assert.Equal(t, FrameTypeData, unknown.Type)
			assert.Equal(t, tt.code, unknown.Code)
			assert.False(t, IsFeatureGap(err), "unknown codes are malformed input, not a feature gap")
		})
	}
}

func TestDataFrameSubtype_QoSNull(t *testing.T) {
	t.Parallel()

	s, err := ParseDataFrameSubtype(0b1100)
	require.NoError(t, err)
	assert.Equal(t, DataFrameSubtypeQoSNull, s)
	assert.True(t, s.IsQoS())
	assert.False(t, s.HasPayload())
}

func TestDataFrameSubtype_Predicates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		subtype    DataFrameSubtype
		isQoS      bool
		hasPayload bool
	}{
		{DataFrameSubtypeData, false, true},
		{DataFrameSubtypeDataCFAck, false, true},
		{DataFrameSubtypeDataCFPoll, false, true},
		{DataFrameSubtypeDataCFAckCFPoll, false, true},
		{DataFrameSubtypeNull, false, false},
		{DataFrameSubtypeCFAck, false, false},
		{DataFrameSubtypeCFPoll, false, false},
		{DataFrameSubtypeCFAckCFPoll, false, false},
		{DataFrameSubtypeQoSData, true, true},
		{DataFrameSubtypeQoSDataCFAck, true, true},
		{DataFrameSubtypeQoSDataCFPoll, true, true},
		{DataFrameSubtypeQoSDataCFAckCFPoll, true, true},
		{DataFrameSubtypeQoSNull, true, false},
		{DataFrameSubtypeQoSCFPoll, true, false},
		{DataFrameSubtypeQoSCFAckCFPoll, true, false},
	}
	require.Len(t, tests, len(DataFrameSubtypes), "every registered subtype needs a row")

	for _, tt := range tests {
		t.Run(tt.subtype.String(), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.isQoS, tt.subtype.IsQoS())
			assert.Equal(t, tt.hasPayload, tt.subtype.HasPayload())
		})
	}
}

func TestDataFrameSubtype_QoSMatchesHighBit(t *testing.T) {
	t.Parallel()

	// The QoS half of the table is the upper eight codes
	for _, s := range DataFrameSubtypes {
		assert.Equal(t, s.Bits()&0b1000 != 0, s.IsQoS(), "%v", s)
	}
}

func TestParseManagementFrameSubtype_Bijection(t *testing.T) {
	t.Parallel()

	registered := 0
	for code := uint8(0); code <= 0x0F; code++ {
		s, err := ParseManagementFrameSubtype(code)
		if code == 0b0111 || code == 0b1111 {
			require.ErrorIs(t, err, ErrUnknownSubtype, "code 0b%04b is reserved", code)
			continue
		}
		require.NoError(t, err, "code 0b%04b", code)
		assert.Equal(t, code, s.Bits())
		registered++
	}
	assert.Equal(t, 14, registered)
	assert.Len(t, ManagementFrameSubtypes, registered)

	for _, s := range ManagementFrameSubtypes {
		got, err := ParseManagementFrameSubtype(s.Bits())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
}

func TestManagementFrameSubtype_StandardCodes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint8(0b1000), ManagementFrameSubtypeBeacon.Bits())
	assert.Equal(t, uint8(0b1001), ManagementFrameSubtypeATIM.Bits())
	assert.Equal(t, uint8(0b1101), ManagementFrameSubtypeAction.Bits())
	assert.Equal(t, uint8(0b1110), ManagementFrameSubtypeActionNoAck.Bits())
}

func TestSubtype_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "QoS Null", DataFrameSubtypeQoSNull.String())
	assert.Equal(t, "DataFrameSubtype(0b1101)", DataFrameSubtype(0b1101).String())
	assert.Equal(t, "Beacon", ManagementFrameSubtypeBeacon.String())
	assert.Equal(t, "ManagementFrameSubtype(0b0111)", ManagementFrameSubtype(0b0111).String())
	assert.Equal(t, "management", FrameTypeManagement.String())
	assert.Equal(t, "FrameType(7)", FrameType(7).String())
}
