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

// Package mgmt encodes and decodes 802.11 management frames.
//
// The header layout depends on the +HTC/Order flag and the body layout on
// the subtype, both taken from the frame control field:
//
//	fcf := ieee80211.ParseFrameControlField(v)
//	subtype, err := fcf.ManagementSubtype()
//	...
//	f, n, err := mgmt.DecodeFrame(buf[2:], subtype, fcf.Flags)
//
// DecodeFrameWithControl performs the classification step as well.
package mgmt
