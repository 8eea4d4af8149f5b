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

import "fmt"

// subtypeMask covers the 4-bit subtype field of the frame control field
const subtypeMask = 0x0F

// FrameType is the 2-bit type field of the frame control field.
type FrameType uint8

const (
	FrameTypeManagement FrameType = 0b00
	FrameTypeControl    FrameType = 0b01
	FrameTypeData       FrameType = 0b10
	FrameTypeExtension  FrameType = 0b11
)

func (t FrameType) String() string {
	switch t {
	case FrameTypeManagement:
		return "management"
	case FrameTypeControl:
		return "control"
	case FrameTypeData:
		return "data"
	case FrameTypeExtension:
		return "extension"
	default:
		return fmt.Sprintf("FrameType(%d)", uint8(t))
	}
}

// DataFrameSubtype is the subtype of a data frame.
// The zero value is DataFrameSubtypeData.
type DataFrameSubtype uint8

// Data frame subtypes. Code 0b1101 is reserved.
const (
	DataFrameSubtypeData               DataFrameSubtype = 0b0000
	DataFrameSubtypeDataCFAck          DataFrameSubtype = 0b0001
	DataFrameSubtypeDataCFPoll         DataFrameSubtype = 0b0010
	DataFrameSubtypeDataCFAckCFPoll    DataFrameSubtype = 0b0011
	DataFrameSubtypeNull               DataFrameSubtype = 0b0100
	DataFrameSubtypeCFAck              DataFrameSubtype = 0b0101
	DataFrameSubtypeCFPoll             DataFrameSubtype = 0b0110
	DataFrameSubtypeCFAckCFPoll        DataFrameSubtype = 0b0111
	DataFrameSubtypeQoSData            DataFrameSubtype = 0b1000
	DataFrameSubtypeQoSDataCFAck       DataFrameSubtype = 0b1001
	DataFrameSubtypeQoSDataCFPoll      DataFrameSubtype = 0b1010
	DataFrameSubtypeQoSDataCFAckCFPoll DataFrameSubtype = 0b1011
	DataFrameSubtypeQoSNull            DataFrameSubtype = 0b1100
	DataFrameSubtypeQoSCFPoll          DataFrameSubtype = 0b1110
	DataFrameSubtypeQoSCFAckCFPoll     DataFrameSubtype = 0b1111
)

// DataFrameSubtypes lists every registered data frame subtype in code order.
var DataFrameSubtypes = []DataFrameSubtype{
	DataFrameSubtypeData,
	DataFrameSubtypeDataCFAck,
	DataFrameSubtypeDataCFPoll,
	DataFrameSubtypeDataCFAckCFPoll,
	DataFrameSubtypeNull,
	DataFrameSubtypeCFAck,
	DataFrameSubtypeCFPoll,
	DataFrameSubtypeCFAckCFPoll,
	DataFrameSubtypeQoSData,
	DataFrameSubtypeQoSDataCFAck,
	DataFrameSubtypeQoSDataCFPoll,
	DataFrameSubtypeQoSDataCFAckCFPoll,
	DataFrameSubtypeQoSNull,
	DataFrameSubtypeQoSCFPoll,
	DataFrameSubtypeQoSCFAckCFPoll,
}

// ParseDataFrameSubtype maps a 4-bit code to its data frame subtype.
// Bits above the low nibble and the reserved code are rejected.
func ParseDataFrameSubtype(code uint8) (DataFrameSubtype, error) {
	s := DataFrameSubtype(code)
	if code > subtypeMask || !s.valid() {
		return 0, &UnknownSubtypeError{Type: FrameTypeData, Code: code}
	}
	return s, nil
}

// Bits returns the 4-bit wire code of the subtype.
func (s DataFrameSubtype) Bits() uint8 {
	return uint8(s) & subtypeMask
}

func (s DataFrameSubtype) valid() bool {
	switch s {
	case DataFrameSubtypeData, DataFrameSubtypeDataCFAck, DataFrameSubtypeDataCFPoll,
		DataFrameSubtypeDataCFAckCFPoll, DataFrameSubtypeNull, DataFrameSubtypeCFAck,
		DataFrameSubtypeCFPoll, DataFrameSubtypeCFAckCFPoll, DataFrameSubtypeQoSData,
		DataFrameSubtypeQoSDataCFAck, DataFrameSubtypeQoSDataCFPoll,
		DataFrameSubtypeQoSDataCFAckCFPoll, DataFrameSubtypeQoSNull,
		DataFrameSubtypeQoSCFPoll, DataFrameSubtypeQoSCFAckCFPoll:
		return true
	default:
		return false
	}
}

// IsQoS reports whether the data frame carries a QoS control field.
func (s DataFrameSubtype) IsQoS() bool {
	switch s {
	case DataFrameSubtypeQoSData, DataFrameSubtypeQoSDataCFAck, DataFrameSubtypeQoSDataCFPoll,
		DataFrameSubtypeQoSDataCFAckCFPoll, DataFrameSubtypeQoSNull,
		DataFrameSubtypeQoSCFPoll, DataFrameSubtypeQoSCFAckCFPoll:
		return true
	case DataFrameSubtypeData, DataFrameSubtypeDataCFAck, DataFrameSubtypeDataCFPoll,
		DataFrameSubtypeDataCFAckCFPoll, DataFrameSubtypeNull, DataFrameSubtypeCFAck,
		DataFrameSubtypeCFPoll, DataFrameSubtypeCFAckCFPoll:
		return false
	default:
		return false
	}
}

// HasPayload reports whether the data frame carries an MSDU.
func (s DataFrameSubtype) HasPayload() bool {
	switch s {
	case DataFrameSubtypeData, DataFrameSubtypeDataCFAck, DataFrameSubtypeDataCFPoll,
		DataFrameSubtypeDataCFAckCFPoll, DataFrameSubtypeQoSData, DataFrameSubtypeQoSDataCFAck,
		DataFrameSubtypeQoSDataCFPoll, DataFrameSubtypeQoSDataCFAckCFPoll:
		return true
	case DataFrameSubtypeNull, DataFrameSubtypeCFAck, DataFrameSubtypeCFPoll,
		DataFrameSubtypeCFAckCFPoll, DataFrameSubtypeQoSNull, DataFrameSubtypeQoSCFPoll,
		DataFrameSubtypeQoSCFAckCFPoll:
		return false
	default:
		return false
	}
}

func (s DataFrameSubtype) String() string {
	switch s {
	case DataFrameSubtypeData:
		return "Data"
	case DataFrameSubtypeDataCFAck:
		return "Data+CF-Ack"
	case DataFrameSubtypeDataCFPoll:
		return "Data+CF-Poll"
	case DataFrameSubtypeDataCFAckCFPoll:
		return "Data+CF-Ack+CF-Poll"
	case DataFrameSubtypeNull:
		return "Null"
	case DataFrameSubtypeCFAck:
		return "CF-Ack"
	case DataFrameSubtypeCFPoll:
		return "CF-Poll"
	case DataFrameSubtypeCFAckCFPoll:
		return "CF-Ack+CF-Poll"
	case DataFrameSubtypeQoSData:
		return "QoS Data"
	case DataFrameSubtypeQoSDataCFAck:
		return "QoS Data+CF-Ack"
	case DataFrameSubtypeQoSDataCFPoll:
		return "QoS Data+CF-Poll"
	case DataFrameSubtypeQoSDataCFAckCFPoll:
		return "QoS Data+CF-Ack+CF-Poll"
	case DataFrameSubtypeQoSNull:
		return "QoS Null"
	case DataFrameSubtypeQoSCFPoll:
		return "QoS CF-Poll"
	case DataFrameSubtypeQoSCFAckCFPoll:
		return "QoS CF-Ack+CF-Poll"
	default:
		return fmt.Sprintf("DataFrameSubtype(0b%04b)", uint8(s))
	}
}

// ManagementFrameSubtype is the subtype of a management frame.
type ManagementFrameSubtype uint8

// Management frame subtypes. Codes 0b0111 and 0b1111 are reserved.
const (
	ManagementFrameSubtypeAssociationRequest    ManagementFrameSubtype = 0b0000
	ManagementFrameSubtypeAssociationResponse   ManagementFrameSubtype = 0b0001
	ManagementFrameSubtypeReassociationRequest  ManagementFrameSubtype = 0b0010
	ManagementFrameSubtypeReassociationResponse ManagementFrameSubtype = 0b0011
	ManagementFrameSubtypeProbeRequest          ManagementFrameSubtype = 0b0100
	ManagementFrameSubtypeProbeResponse         ManagementFrameSubtype = 0b0101
	ManagementFrameSubtypeTimingAdvertisement   ManagementFrameSubtype = 0b0110
	ManagementFrameSubtypeBeacon                ManagementFrameSubtype = 0b1000
	ManagementFrameSubtypeATIM                  ManagementFrameSubtype = 0b1001
	ManagementFrameSubtypeDisassociation        ManagementFrameSubtype = 0b1010
	ManagementFrameSubtypeAuthentication        ManagementFrameSubtype = 0b1011
	ManagementFrameSubtypeDeauthentication      ManagementFrameSubtype = 0b1100
	ManagementFrameSubtypeAction                ManagementFrameSubtype = 0b1101
	ManagementFrameSubtypeActionNoAck           ManagementFrameSubtype = 0b1110
)

// ManagementFrameSubtypes lists every registered management frame subtype in code order.
var ManagementFrameSubtypes = []ManagementFrameSubtype{
	ManagementFrameSubtypeAssociationRequest,
	ManagementFrameSubtypeAssociationResponse,
	ManagementFrameSubtypeReassociationRequest,
	ManagementFrameSubtypeReassociationResponse,
	ManagementFrameSubtypeProbeRequest,
	ManagementFrameSubtypeProbeResponse,
	ManagementFrameSubtypeTimingAdvertisement,
	ManagementFrameSubtypeBeacon,
	ManagementFrameSubtypeATIM,
	ManagementFrameSubtypeDisassociation,
	ManagementFrameSubtypeAuthentication,
	ManagementFrameSubtypeDeauthentication,
	ManagementFrameSubtypeAction,
	ManagementFrameSubtypeActionNoAck,
}

// ParseManagementFrameSubtype maps a 4-bit code to its management frame subtype.
func ParseManagementFrameSubtype(code uint8) (ManagementFrameSubtype, error) {
	s := ManagementFrameSubtype(code)
	if code > subtypeMask || !s.valid() {
		return 0, &UnknownSubtypeError{Type: FrameTypeManagement, Code: code}
	}
	return s, nil
}

// Bits returns the 4-bit wire code of the subtype.
func (s ManagementFrameSubtype) Bits() uint8 {
	return uint8(s) & subtypeMask
}

func (s ManagementFrameSubtype) valid() bool {
	switch s {
	case ManagementFrameSubtypeAssociationRequest, ManagementFrameSubtypeAssociationResponse,
		ManagementFrameSubtypeReassociationRequest, ManagementFrameSubtypeReassociationResponse,
		ManagementFrameSubtypeProbeRequest, ManagementFrameSubtypeProbeResponse,
		ManagementFrameSubtypeTimingAdvertisement, ManagementFrameSubtypeBeacon,
		ManagementFrameSubtypeATIM, ManagementFrameSubtypeDisassociation,
		ManagementFrameSubtypeAuthentication, ManagementFrameSubtypeDeauthentication,
		ManagementFrameSubtypeAction, ManagementFrameSubtypeActionNoAck:
		return true
	default:
		return false
	}
}

func (s ManagementFrameSubtype) String() string {
	switch s {
	case ManagementFrameSubtypeAssociationRequest:
		return "Association Request"
	case ManagementFrameSubtypeAssociationResponse:
		return "Association Response"
	case ManagementFrameSubtypeReassociationRequest:
		return "Reassociation Request"
	case ManagementFrameSubtypeReassociationResponse:
		return "Reassociation Response"
	case ManagementFrameSubtypeProbeRequest:
		return "Probe Request"
	case ManagementFrameSubtypeProbeResponse:
		return "Probe Response"
	case ManagementFrameSubtypeTimingAdvertisement:
		return "Timing Advertisement"
	case ManagementFrameSubtypeBeacon:
		return "Beacon"
	case ManagementFrameSubtypeATIM:
		return "ATIM"
	case ManagementFrameSubtypeDisassociation:
		return "Disassociation"
	case ManagementFrameSubtypeAuthentication:
		return "Authentication"
	case ManagementFrameSubtypeDeauthentication:
		return "Deauthentication"
	case ManagementFrameSubtypeAction:
		return "Action"
	case ManagementFrameSubtypeActionNoAck:
		return "Action No Ack"
	default:
		return fmt.Sprintf("ManagementFrameSubtype(0b%04b)", uint8(s))
	}
}
