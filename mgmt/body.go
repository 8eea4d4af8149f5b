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
	"fmt"

	"github.com/ZaparooProject/go-ieee80211"
	"github.com/ZaparooProject/go-ieee80211/mgmt/action"
	"github.com/ZaparooProject/go-ieee80211/mgmt/beacon"
)

// Body is the body of a management frame. The set of variants is closed:
// Action, ActionNoAck, Beacon and ATIM. The subtype is carried by the
// variant itself, never stored alongside it.
type Body interface {
	// Subtype returns the management subtype this body encodes as.
	Subtype() ieee80211.ManagementFrameSubtype
	isBody()
}

// Action is the body of an Action frame.
type Action struct {
	action.Body
}

// ActionNoAck is the body of an Action No Ack frame.
type ActionNoAck struct {
	action.Body
}

// Beacon is the body of a Beacon frame.
type Beacon struct {
	beacon.Body
}

// ATIM is the body of an announcement traffic indication message.
// It has no wire representation.
type ATIM struct{}

func (Action) Subtype() ieee80211.ManagementFrameSubtype {
	return ieee80211.ManagementFrameSubtypeAction
}

func (ActionNoAck) Subtype() ieee80211.ManagementFrameSubtype {
	return ieee80211.ManagementFrameSubtypeActionNoAck
}

func (Beacon) Subtype() ieee80211.ManagementFrameSubtype {
	return ieee80211.ManagementFrameSubtypeBeacon
}

func (ATIM) Subtype() ieee80211.ManagementFrameSubtype {
	return ieee80211.ManagementFrameSubtypeATIM
}

func (Action) isBody()      {}
func (ActionNoAck) isBody() {}
func (Beacon) isBody()      {}
func (ATIM) isBody()        {}

// SubtypeOf returns the management subtype of body.
func SubtypeOf(body Body) ieee80211.ManagementFrameSubtype {
	return body.Subtype()
}

// BodyLen returns the exact number of bytes EncodeBody writes for body.
func BodyLen(body Body) int {
	switch b := body.(type) {
	case Action:
		return b.Len()
	case ActionNoAck:
		return b.Len()
	case Beacon:
		return b.Len()
	case ATIM:
		return 0
	default:
		return 0
	}
}

// DecodeBody reads the body selected by subtype from b. Valid subtypes
// without a body variant fail with *ieee80211.UnimplementedSubtypeError.
func DecodeBody(b []byte, subtype ieee80211.ManagementFrameSubtype) (Body, int, error) {
	switch subtype {
	case ieee80211.ManagementFrameSubtypeAction:
		a, n, err := action.Decode(b)
		if err != nil {
			return nil, 0, err
		}
		return Action{a}, n, nil
	case ieee80211.ManagementFrameSubtypeActionNoAck:
		a, n, err := action.Decode(b)
		if err != nil {
			return nil, 0, err
		}
		return ActionNoAck{a}, n, nil
	case ieee80211.ManagementFrameSubtypeBeacon:
		bc, n, err := beacon.Decode(b)
		if err != nil {
			return nil, 0, err
		}
		return Beacon{bc}, n, nil
	case ieee80211.ManagementFrameSubtypeATIM:
		return ATIM{}, 0, nil
	case ieee80211.ManagementFrameSubtypeAssociationRequest,
		ieee80211.ManagementFrameSubtypeAssociationResponse,
		ieee80211.ManagementFrameSubtypeReassociationRequest,
		ieee80211.ManagementFrameSubtypeReassociationResponse,
		ieee80211.ManagementFrameSubtypeProbeRequest,
		ieee80211.ManagementFrameSubtypeProbeResponse,
		ieee80211.ManagementFrameSubtypeTimingAdvertisement,
		ieee80211.ManagementFrameSubtypeDisassociation,
		ieee80211.ManagementFrameSubtypeAuthentication,
		ieee80211.ManagementFrameSubtypeDeauthentication:
		return nil, 0, &ieee80211.UnimplementedSubtypeError{
			Type:    ieee80211.FrameTypeManagement,
			Subtype: subtype,
		}
	default:
		return nil, 0, &ieee80211.UnknownSubtypeError{
			Type: ieee80211.FrameTypeManagement,
			Code: uint8(subtype),
		}
	}
}

// EncodeBody writes body to the start of out.
func EncodeBody(body Body, out []byte) (int, error) {
	switch b := body.(type) {
	case Action:
		return b.Encode(out)
	case ActionNoAck:
		return b.Encode(out)
	case Beacon:
		return b.Encode(out)
	case ATIM:
		return 0, nil
	case nil:
		return 0, ieee80211.ErrNilBody
	default:
		return 0, fmt.Errorf("unsupported management body %T", body)
	}
}
