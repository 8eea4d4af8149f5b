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

package frame

import (
	"encoding/binary"

	"github.com/ZaparooProject/go-ieee80211"
)

// SplitFCS separates a captured frame from its trailing frame check sequence.
// Returns the frame without the FCS and whether the FCS matched.
func SplitFCS(buf []byte) (frame []byte, valid bool, err error) {
	if len(buf) < FCSLength {
		return nil, false, &ieee80211.TruncatedInputError{
			Field:     "frame check sequence",
			Needed:    FCSLength,
			Available: len(buf),
		}
	}

	end := len(buf) - FCSLength
	want := binary.LittleEndian.Uint32(buf[end:])
	return buf[:end], CalculateFCS(buf[:end]) == want, nil
}

// PutFCS writes the frame check sequence of data into out.
func PutFCS(out, data []byte) (int, error) {
	if len(out) < FCSLength {
		return 0, &ieee80211.DestinationTooSmallError{Needed: FCSLength, Available: len(out)}
	}
	binary.LittleEndian.PutUint32(out, CalculateFCS(data))
	return FCSLength, nil
}
