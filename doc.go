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

// Package ieee80211 holds the pieces shared by every 802.11 frame codec:
// the frame control field and its flags, the data and management subtype
// registry, the sequence control field, addresses, and the error taxonomy.
//
// Decoding is a strict pipeline. The frame control field is classified
// first; its subtype and flags are then passed explicitly as context to
// the header and body codecs (see package mgmt). Codecs never allocate for
// payload data: decoded bodies borrow from the input buffer, so the buffer
// must outlive any frame decoded from it. Encoders write into a caller
// supplied buffer and fail with ErrDestinationTooSmall rather than truncate.
//
// Every codec is stateless and safe for concurrent use on distinct buffers.
package ieee80211
