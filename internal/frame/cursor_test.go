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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZaparooProject/go-ieee80211"
)

func TestReader_Sequential(t *testing.T) {
	t.Parallel()

	buf := []byte{
		// uint8, uint16, array
		0x2A, 0x34, 0x12, 0x01, 0x02, 0x03, 0x04,
		// MAC
		0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF,
		// uint64
		0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01,
		// rest
		0x99, 0x98,
	}
	r := NewReader(buf)

	u8, err := r.Uint8("u8")
	require.NoError(t, err)
	assert.Equal(t, uint8(0x2A), u8)

	u16, err := r.Uint16("u16")
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), u16)

	arr, err := r.Array4("array")
	require.NoError(t, err)
	assert.Equal(t, [4]byte{0x01, 0x02, 0x03, 0x04}, arr)

	mac, err := r.MAC("mac")
	require.NoError(t, err)
	assert.Equal(t, ieee80211.MACAddress{0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF}, mac)

	u64, err := r.Uint64("u64")
	require.NoError(t, err)
	assert.Equal(t, uint64(0x0102030405060708), u64)

	assert.Equal(t, 21, r.Offset())
	rest := r.Rest()
	assert.Equal(t, []byte{0x99, 0x98}, rest)
	assert.Equal(t, len(buf), r.Offset())
	assert.Nil(t, r.Rest(), "exhausted reader yields nil")
}

func TestReader_BorrowsBuffer(t *testing.T) {
	t.Parallel()

	buf := []byte{0x01, 0x02, 0x03}
	r := NewReader(buf)
	b, err := r.Bytes(2, "field")
	require.NoError(t, err)

	buf[0] = 0xFF
	assert.Equal(t, byte(0xFF), b[0], "Bytes must alias the input")
	assert.Equal(t, 2, cap(b), "borrowed slice must not reach past its field")
}

func TestReader_Truncated(t *testing.T) {
	t.Parallel()

	r := NewReader([]byte{0x01, 0x02, 0x03})
	_, err := r.Uint16("first")
	require.NoError(t, err)

	_, err = r.Uint16("second")
	var truncated *ieee80211.TruncatedInputError
	require.ErrorAs(t, err, &truncated)
	assert.Equal(t, "second", truncated.Field)
	assert.Equal(t, 4, truncated.Needed)
	assert.Equal(t, 3, truncated.Available)
	assert.Equal(t, 2, r.Offset(), "failed read must not advance")

	_, err = r.Bytes(-1, "negative")
	require.ErrorIs(t, err, ieee80211.ErrTruncatedInput)
}

func TestWriter_Sequential(t *testing.T) {
	t.Parallel()

	out := make([]byte, 14)
	w := NewWriter(out)
	require.NoError(t, w.PutUint8(0x2A))
	require.NoError(t, w.PutUint16(0x1234))
	require.NoError(t, w.PutBytes([]byte{0xAA, 0xBB, 0xCC}))
	require.NoError(t, w.PutUint64(0x0102030405060708))

	assert.Equal(t, 14, w.Offset())
	assert.Equal(t, []byte{
		0x2A, 0x34, 0x12, 0xAA, 0xBB, 0xCC,
		0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01,
	}, out)
}

func TestWriter_DestinationTooSmall(t *testing.T) {
	t.Parallel()

	out := make([]byte, 3)
	w := NewWriter(out)
	require.NoError(t, w.PutUint16(0xFFFF))

	err := w.PutUint16(0x1234)
	var small *ieee80211.DestinationTooSmallError
	require.ErrorAs(t, err, &small)
	assert.Equal(t, 4, small.Needed)
	assert.Equal(t, 3, small.Available)
	assert.Equal(t, byte(0x00), out[2], "failed write must not touch the buffer")
	assert.Equal(t, 2, w.Offset())
}

func TestWriter_TailAndSkip(t *testing.T) {
	t.Parallel()

	out := make([]byte, 4)
	w := NewWriter(out)
	require.NoError(t, w.PutUint8(0x01))

	tail := w.Tail()
	require.Len(t, tail, 3)
	tail[0] = 0x02
	require.NoError(t, w.Skip(1))
	assert.Equal(t, 2, w.Offset())

	require.ErrorIs(t, w.Skip(3), ieee80211.ErrDestinationTooSmall)
	assert.Equal(t, []byte{0x01, 0x02, 0x00, 0x00}, out)
}
