/*
 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

     https://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

package cec

import (
	"fmt"
	"strconv"
	"strings"
)

// PhysAddr is an HDMI physical address, four 8-bit fields describing
// the position of a device in the HDMI connection tree. Display only.
type PhysAddr uint32

// String formats the address as an uppercase hex dotted quad.
func (a PhysAddr) String() string {
	return fmt.Sprintf("%X.%X.%X.%X",
		byte(a>>24), byte(a>>16), byte(a>>8), byte(a))
}

// LogiAddr is a logical address on the CEC bus, one of the 16 device
// roles in 0x0..0xF.
type LogiAddr uint8

const (
	// AddrTV is the television.
	AddrTV LogiAddr = 0x0
	// AddrRecDev1 is recording device 1.
	AddrRecDev1 LogiAddr = 0x1
	// AddrRecDev2 is recording device 2.
	AddrRecDev2 LogiAddr = 0x2
	// AddrTuner1 is tuner 1.
	AddrTuner1 LogiAddr = 0x3
	// AddrPlaybackDev1 is playback device 1.
	AddrPlaybackDev1 LogiAddr = 0x4
	// AddrAudioSys is the audio system.
	AddrAudioSys LogiAddr = 0x5
	// AddrTuner2 is tuner 2.
	AddrTuner2 LogiAddr = 0x6
	// AddrTuner3 is tuner 3.
	AddrTuner3 LogiAddr = 0x7
	// AddrPlaybackDev2 is playback device 2.
	AddrPlaybackDev2 LogiAddr = 0x8
	// AddrRecDev3 is recording device 3.
	AddrRecDev3 LogiAddr = 0x9
	// AddrTuner4 is tuner 4.
	AddrTuner4 LogiAddr = 0xA
	// AddrPlaybackDev3 is playback device 3.
	AddrPlaybackDev3 LogiAddr = 0xB
	// AddrRsvd1 is reserved.
	AddrRsvd1 LogiAddr = 0xC
	// AddrRsvd2 is reserved.
	AddrRsvd2 LogiAddr = 0xD
	// AddrFreeUse is free use.
	AddrFreeUse LogiAddr = 0xE
	// AddrBroadcast is unregistered as a source address and broadcast
	// as a destination address.
	AddrBroadcast LogiAddr = 0xF
)

var logiAddrNames = map[LogiAddr]string{
	AddrTV:           "tv",
	AddrRecDev1:      "recdev1",
	AddrRecDev2:      "recdev2",
	AddrTuner1:       "tuner1",
	AddrPlaybackDev1: "playbackdev1",
	AddrAudioSys:     "audiosys",
	AddrTuner2:       "tuner2",
	AddrTuner3:       "tuner3",
	AddrPlaybackDev2: "playbackdev2",
	AddrRecDev3:      "recdev3",
	AddrTuner4:       "tuner4",
	AddrPlaybackDev3: "playbackdev3",
	AddrRsvd1:        "rsvd1",
	AddrRsvd2:        "rsvd2",
	AddrFreeUse:      "freeuse",
	AddrBroadcast:    "broadcast",
}

// String returns the role name of the address.
func (a LogiAddr) String() string {
	name, ok := logiAddrNames[a]
	if !ok {
		return fmt.Sprintf("0x%X", uint8(a))
	}
	return name
}

// LogiAddrFromByte converts a raw wire nibble to a logical address.
// Values above 0xF fail with ErrBadLogiAddr carrying the byte.
func LogiAddrFromByte(b uint8) (LogiAddr, error) {
	if b > uint8(AddrBroadcast) {
		return 0, ErrBadLogiAddr{Value: b}
	}
	return LogiAddr(b), nil
}

// ParseLogiAddr converts a role name (case insensitive) or a numeric
// value like "0xF" to a logical address.
func ParseLogiAddr(s string) (LogiAddr, error) {
	lower := strings.ToLower(s)
	for addr, name := range logiAddrNames {
		if name == lower {
			return addr, nil
		}
	}
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, ErrBadLogiAddrName{Name: s}
	}
	addr, err := LogiAddrFromByte(uint8(v))
	if err != nil {
		return 0, ErrBadLogiAddrName{Name: s}
	}
	return addr, nil
}
