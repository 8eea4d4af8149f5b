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
	"errors"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"

	"github.com/ZaparooProject/go-ieee80211"
	"github.com/ZaparooProject/go-ieee80211/internal/frame"
)

// ErrNoDot11Layer is returned when a packet carries no 802.11 layer
var ErrNoDot11Layer = errors.New("packet has no 802.11 layer")

// Layer adapts a Frame to gopacket so it can be serialized together with
// other layers such as RadioTap. The frame control field is derived from
// the frame. When ComputeChecksums is set, a frame check sequence covering
// this layer and everything serialized after it is appended.
type Layer struct {
	Frame Frame
}

// LayerType returns layers.LayerTypeDot11.
func (*Layer) LayerType() gopacket.LayerType {
	return layers.LayerTypeDot11
}

// SerializeTo implements gopacket.SerializableLayer.
func (l *Layer) SerializeTo(b gopacket.SerializeBuffer, opts gopacket.SerializeOptions) error {
	if l.Frame.Body == nil {
		return ieee80211.ErrNilBody
	}

	out, err := b.PrependBytes(ieee80211.FrameControlFieldLength + l.Frame.Len())
	if err != nil {
		return err
	}
	if _, err := EncodeFrameWithControl(l.Frame, out); err != nil {
		return err
	}

	if opts.ComputeChecksums {
		covered := len(b.Bytes())
		if _, err := b.AppendBytes(frame.FCSLength); err != nil {
			return err
		}
		all := b.Bytes()
		if _, err := frame.PutFCS(all[covered:], all[:covered]); err != nil {
			return err
		}
	}
	return nil
}

// FromDot11 decodes the management frame carried by a gopacket 802.11 layer.
// The frame borrows from the layer's data.
func FromDot11(d *layers.Dot11) (Frame, error) {
	f, _, err := DecodeFrameWithControl(joinAdjacent(d.Contents, d.Payload))
	return f, err
}

// joinAdjacent returns a followed by b, reusing a's backing array when b
// already sits directly after it, as gopacket's header and payload views do.
func joinAdjacent(a, b []byte) []byte {
	if len(b) == 0 {
		return a
	}
	if n := len(a) + len(b); cap(a) >= n && &a[:n][len(a)] == &b[0] {
		return a[:n]
	}
	joined := make([]byte, 0, len(a)+len(b))
	return append(append(joined, a...), b...)
}

// FromPacket decodes the management frame of a gopacket packet.
func FromPacket(p gopacket.Packet) (Frame, error) {
	d, ok := p.Layer(layers.LayerTypeDot11).(*layers.Dot11)
	if !ok {
		return Frame{}, ErrNoDot11Layer
	}
	return FromDot11(d)
}
