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

// Package action provides the body codec for Action and Action No Ack frames.
package action

import "github.com/ZaparooProject/go-ieee80211/internal/frame"

// Category codes of action frames
const (
	CategorySpectrumManagement uint8 = 0
	CategoryQoS                uint8 = 1
	CategoryBlockAck           uint8 = 3
	CategoryPublic             uint8 = 4
	CategoryRadioMeasurement   uint8 = 5
	CategoryFastBSSTransition  uint8 = 6
	CategoryHT                 uint8 = 7
	CategorySAQuery            uint8 = 8
	CategoryWNM                uint8 = 10
	CategoryTDLS               uint8 = 12
	CategoryMesh               uint8 = 13
	CategoryVHT                uint8 = 21
	CategoryVendorProtected    uint8 = 126
	CategoryVendorSpecific     uint8 = 127
)

// errorCategoryBit marks a category echoed back in an error response
const errorCategoryBit = 0x80

// Body is the body of an Action or Action No Ack frame: a category octet
// followed by category-specific details. Details borrows from the decoded
// buffer and is only valid while that buffer is retained.
type Body struct {
	Details  []byte
	Category uint8
}

// Decode reads an action body, consuming all of b.
func Decode(b []byte) (Body, int, error) {
	r := frame.NewReader(b)
	category, err := r.Uint8("action category")
	if err != nil {
		return Body{}, 0, err
	}
	return Body{Category: category, Details: r.Rest()}, r.Offset(), nil
}

// Len returns the encoded size of the body.
func (b Body) Len() int {
	return 1 + len(b.Details)
}

// Encode writes the body to out.
func (b Body) Encode(out []byte) (int, error) {
	w := frame.NewWriter(out)
	if err := w.Reserve(b.Len()); err != nil {
		return 0, err
	}
	if err := w.PutUint8(b.Category); err != nil {
		return 0, err
	}
	if err := w.PutBytes(b.Details); err != nil {
		return 0, err
	}
	return w.Offset(), nil
}

// IsError reports whether the category has its error bit set.
func (b Body) IsError() bool {
	return b.Category&errorCategoryBit != 0
}

// Action returns the action field that follows the category, if present.
func (b Body) Action() (uint8, bool) {
	if len(b.Details) == 0 {
		return 0, false
	}
	return b.Details[0], true
}
