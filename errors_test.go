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
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorTypes_Unwrap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err      error
		sentinel error
		name     string
	}{
		{name: "truncated", err: &TruncatedInputError{Needed: 22, Available: 21}, sentinel: ErrTruncatedInput},
		{name: "unknown", err: &UnknownSubtypeError{Type: FrameTypeData, Code: 0b1101}, sentinel: ErrUnknownSubtype},
		{
			name:     "unimplemented",
			err:      &UnimplementedSubtypeError{Type: FrameTypeManagement, Subtype: ManagementFrameSubtypeProbeRequest},
			sentinel: ErrUnimplementedSubtype,
		},
		{name: "destination", err: &DestinationTooSmallError{Needed: 24, Available: 10}, sentinel: ErrDestinationTooSmall},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.ErrorIs(t, tt.err, tt.sentinel)

			wrapped := &StageError{Stage: StageBody, Err: tt.err}
			require.ErrorIs(t, wrapped, tt.sentinel)
			assert.Equal(t, StageBody, FailedStage(wrapped))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		"truncated input: BSSID needs 20 bytes, 19 available",
		(&TruncatedInputError{Field: "BSSID", Needed: 20, Available: 19}).Error())
	assert.Equal(t,
		"truncated input: need 4 bytes, 0 available",
		(&TruncatedInputError{Needed: 4}).Error())
	assert.Equal(t,
		"unknown subtype: data subtype 0b1101",
		(&UnknownSubtypeError{Type: FrameTypeData, Code: 0b1101}).Error())
	assert.Equal(t,
		"management Probe Request: subtype not implemented",
		(&UnimplementedSubtypeError{Type: FrameTypeManagement, Subtype: ManagementFrameSubtypeProbeRequest}).Error())
	assert.Equal(t,
		"destination buffer too small: need 24 bytes, 10 available",
		(&DestinationTooSmallError{Needed: 24, Available: 10}).Error())
	assert.Equal(t,
		"header: frame has no body",
		(&StageError{Stage: StageHeader, Err: ErrNilBody}).Error())
}

func TestIsFeatureGap(t *testing.T) {
	t.Parallel()

	gap := &UnimplementedSubtypeError{Type: FrameTypeManagement, Subtype: ManagementFrameSubtypeAuthentication}
	assert.True(t, IsFeatureGap(gap))
	assert.True(t, IsFeatureGap(fmt.Errorf("decode: %w", &StageError{Stage: StageBody, Err: gap})))
	assert.False(t, IsMalformed(gap))

	assert.False(t, IsFeatureGap(nil))
	assert.False(t, IsFeatureGap(&UnknownSubtypeError{Type: FrameTypeManagement, Code: 7}))
	assert.False(t, IsFeatureGap(&TruncatedInputError{}))
}

func TestIsMalformed(t *testing.T) {
	t.Parallel()

	assert.False(t, IsMalformed(nil))
	assert.True(t, IsMalformed(&TruncatedInputError{}))
	assert.True(t, IsMalformed(&UnknownSubtypeError{}))
	assert.True(t, IsMalformed(ErrFCSMismatch))
	assert.True(t, IsMalformed(fmt.Errorf("%w: want management, got data", ErrFrameTypeMismatch)))
	assert.False(t, IsMalformed(&DestinationTooSmallError{}))
	assert.False(t, IsMalformed(errors.New("other")))
}

func TestFailedStage_NoStage(t *testing.T) {
	t.Parallel()

	assert.Empty(t, FailedStage(ErrNilBody))
	assert.Empty(t, FailedStage(nil))
}
