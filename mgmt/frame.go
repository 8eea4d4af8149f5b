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

package mgmt

import (
	"github.com/ZaparooProject/go-ieee80211"
	"github.com/ZaparooProject/go-ieee80211/internal/frame"
)

// Frame is a management frame: one header and one body. The frame control
// field is derived from them by FCF and never stored.
type Frame struct {
	Body   Body
	Header Header
}

// FCF returns the frame control field implied by the frame. The frame
// must have a body.
func (f Frame) FCF() ieee80211.FrameControlField {
	return ieee80211.FrameControlField{
		Version: 0,
		Type:    ieee80211.FrameTypeManagement,
		Subtype: SubtypeOf(f.Body).Bits(),
		Flags:   f.Header.Flags,
	}
}

// Len returns the exact number of bytes EncodeFrame writes for f.
func (f Frame) Len() int {
	return f.Header.Len() + BodyLen(f.Body)
}

// DecodeFrame reads a management frame from b. subtype and flags come from
// the frame control field, which the caller has already consumed.
//
// Bodies borrow from b; b must outlive the returned frame.
func DecodeFrame(b []byte, subtype ieee80211.ManagementFrameSubtype, flags ieee80211.FCFFlags) (Frame, int, error) {
	header, n, err := DecodeHeader(b, flags)
	if err != nil {
		return Frame{}, 0, stageFailed(ieee80211.StageHeader, err)
	}

	body, m, err := DecodeBody(b[n:], subtype)
	if err != nil {
		return Frame{}, 0, stageFailed(ieee80211.StageBody, err)
	}

	return Frame{Header: header, Body: body}, n + m, nil
}

// EncodeFrame writes f to the start of out. Nothing is written unless the
// whole frame fits.
func EncodeFrame(f Frame, out []byte) (int, error) {
	if f.Body == nil {
		return 0, stageFailed(ieee80211.StageBody, ieee80211.ErrNilBody)
	}
	if err := f.Header.Validate(); err != nil {
		return 0, stageFailed(ieee80211.StageHeader, err)
	}

	w := frame.NewWriter(out)
	if err := w.Reserve(f.Len()); err != nil {
		return 0, err
	}

	n, err := EncodeHeader(f.Header, w.Tail())
	if err != nil {
		return 0, stageFailed(ieee80211.StageHeader, err)
	}
	if err := w.Skip(n); err != nil {
		return 0, err
	}

	n, err = EncodeBody(f.Body, w.Tail())
	if err != nil {
		return 0, stageFailed(ieee80211.StageBody, err)
	}
	if err := w.Skip(n); err != nil {
		return 0, err
	}

	return w.Offset(), nil
}

// DecodeFrameWithControl classifies the frame control field at the start
// of b and decodes the management frame that follows it. The returned
// count includes the frame control field.
func DecodeFrameWithControl(b []byte) (Frame, int, error) {
	fcf, n, err := ieee80211.DecodeFrameControlField(b)
	if err != nil {
		return Frame{}, 0, stageFailed(ieee80211.StageControl, err)
	}
	subtype, err := fcf.ManagementSubtype()
	if err != nil {
		return Frame{}, 0, stageFailed(ieee80211.StageControl, err)
	}

	f, m, err := DecodeFrame(b[n:], subtype, fcf.Flags)
	if err != nil {
		return Frame{}, 0, err
	}
	return f, n + m, nil
}

// EncodeFrameWithControl writes the frame control field derived from f,
// followed by f itself.
func EncodeFrameWithControl(f Frame, out []byte) (int, error) {
	if f.Body == nil {
		return 0, stageFailed(ieee80211.StageBody, ieee80211.ErrNilBody)
	}
	total := ieee80211.FrameControlFieldLength + f.Len()
	if len(out) < total {
		return 0, &ieee80211.DestinationTooSmallError{Needed: total, Available: len(out)}
	}

	n, err := ieee80211.EncodeFrameControlField(f.FCF(), out)
	if err != nil {
		return 0, stageFailed(ieee80211.StageControl, err)
	}
	m, err := EncodeFrame(f, out[n:])
	if err != nil {
		return 0, err
	}
	return n + m, nil
}

// DecodeFrameFCS decodes a captured frame control field, frame and
// trailing frame check sequence. A bad checksum fails with
// ieee80211.ErrFCSMismatch before anything else is decoded. The checksum
// covers the whole buffer, so all of b is reported as consumed.
func DecodeFrameFCS(b []byte) (Frame, int, error) {
	payload, valid, err := frame.SplitFCS(b)
	if err != nil {
		return Frame{}, 0, stageFailed(ieee80211.StageFCS, err)
	}
	if !valid {
		return Frame{}, 0, stageFailed(ieee80211.StageFCS, ieee80211.ErrFCSMismatch)
	}

	f, _, err := DecodeFrameWithControl(payload)
	if err != nil {
		return Frame{}, 0, err
	}
	return f, len(b), nil
}

// EncodeFrameFCS writes the frame control field, f and a frame check sequence.
func EncodeFrameFCS(f Frame, out []byte) (int, error) {
	if f.Body == nil {
		return 0, stageFailed(ieee80211.StageBody, ieee80211.ErrNilBody)
	}
	total := ieee80211.FrameControlFieldLength + f.Len() + frame.FCSLength
	if len(out) < total {
		return 0, &ieee80211.DestinationTooSmallError{Needed: total, Available: len(out)}
	}

	n, err := EncodeFrameWithControl(f, out)
	if err != nil {
		return 0, err
	}
	m, err := frame.PutFCS(out[n:], out[:n])
	if err != nil {
		return 0, stageFailed(ieee80211.StageFCS, err)
	}
	return n + m, nil
}

func stageFailed(stage string, err error) error {
	if ieee80211.DebugEnabled() {
		ieee80211.Debugf("management frame %s stage failed: %v", stage, err)
	}
	return &ieee80211.StageError{Stage: stage, Err: err}
}
