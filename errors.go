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
)

// Error categories for frame decoding and encoding
var (
	// Input errors - the buffer does not hold a well-formed frame
	ErrTruncatedInput    = errors.New("truncated input")
	ErrUnknownSubtype    = errors.New("unknown subtype")
	ErrFrameTypeMismatch = errors.New("frame type mismatch")
	ErrFCSMismatch       = errors.New("frame check sequence mismatch")

	// Capability errors - the input is valid but this codec cannot handle it
	ErrUnimplementedSubtype = errors.New("subtype not implemented")

	// Encode errors - the value or destination cannot be written
	ErrDestinationTooSmall  = errors.New("destination buffer too small")
	ErrHTControlWithoutFlag = errors.New("HT control set without +HTC/order flag")
	ErrNilBody              = errors.New("frame has no body")
)

// Frame decode/encode stages reported by StageError
const (
	StageControl = "control"
	StageHeader  = "header"
	StageBody    = "body"
	StageFCS     = "fcs"
)

// TruncatedInputError reports a field that runs past the end of the input.
// Needed and Available are byte counts relative to the start of the buffer
// handed to the failing decoder.
type TruncatedInputError struct {
	Field     string
	Needed    int
	Available int
}

func (e *TruncatedInputError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%v: %s needs %d bytes, %d available", ErrTruncatedInput, e.Field, e.Needed, e.Available)
	}
	return fmt.Sprintf("%v: need %d bytes, %d available", ErrTruncatedInput, e.Needed, e.Available)
}

func (*TruncatedInputError) Unwrap() error {
	return ErrTruncatedInput
}

// UnknownSubtypeError reports a subtype code outside the closed registry.
type UnknownSubtypeError struct {
	Type FrameType
	Code uint8
}

func (e *UnknownSubtypeError) Error() string {
	return fmt.Sprintf("%v: %s subtype 0b%04b", ErrUnknownSubtype, e.Type, e.Code)
}

func (*UnknownSubtypeError) Unwrap() error {
	return ErrUnknownSubtype
}

// UnimplementedSubtypeError reports a valid subtype for which no body codec exists.
type UnimplementedSubtypeError struct {
	Type    FrameType
	Subtype fmt.Stringer
}

func (e *UnimplementedSubtypeError) Error() string {
	return fmt.Sprintf("%s %v: %v", e.Type, e.Subtype, ErrUnimplementedSubtype)
}

func (*UnimplementedSubtypeError) Unwrap() error {
	return ErrUnimplementedSubtype
}

// DestinationTooSmallError reports an output buffer that cannot hold the encoded value.
type DestinationTooSmallError struct {
	Needed    int
	Available int
}

func (e *DestinationTooSmallError) Error() string {
	return fmt.Sprintf("%v: need %d bytes, %d available", ErrDestinationTooSmall, e.Needed, e.Available)
}

func (*DestinationTooSmallError) Unwrap() error {
	return ErrDestinationTooSmall
}

// StageError wraps a failure with the frame stage that produced it.
type StageError struct {
	Err   error
	Stage string
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// IsFeatureGap returns true if the error means the input was valid but the
// codec has no support for it. Callers should not treat such frames as malformed.
func IsFeatureGap(err error) bool {
	return errors.Is(err, ErrUnimplementedSubtype)
}

// IsMalformed returns true if the error means the input bytes themselves are bad
func IsMalformed(err error) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, ErrTruncatedInput),
		errors.Is(err, ErrUnknownSubtype),
		errors.Is(err, ErrFrameTypeMismatch),
		errors.Is(err, ErrFCSMismatch):
		return true
	default:
		return false
	}
}

// FailedStage returns the stage recorded in err, or "" if there is none
func FailedStage(err error) string {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage
	}
	return ""
}
