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

// Management header field sizes
const (
	DurationLength  = 2
	AddressLength   = 6
	FragSeqLength   = 2
	HTControlLength = 4
)

// Management header lengths
const (
	HeaderLength    = DurationLength + 3*AddressLength + FragSeqLength // Header without HT control
	MaxHeaderLength = HeaderLength + HTControlLength                  // Header with HT control
)

// FCSLength is the size of the trailing CRC-32 frame check sequence
const FCSLength = 4
