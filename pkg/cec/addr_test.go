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
	"testing"
)

func TestLogiAddrFromByte(t *testing.T) {
	for b := uint8(0); b <= 0xF; b++ {
		addr, err := LogiAddrFromByte(b)
		if err != nil {
			t.Fatalf("LogiAddrFromByte(0x%X): %v", b, err)
		}
		if uint8(addr) != b {
			t.Errorf("LogiAddrFromByte(0x%X): got 0x%X", b, uint8(addr))
		}
	}

	for _, b := range []uint8{0x10, 0x42, 0xFF} {
		_, err := LogiAddrFromByte(b)
		if err == nil {
			t.Fatalf("LogiAddrFromByte(0x%X): expected error", b)
		}
		bad, ok := err.(ErrBadLogiAddr)
		if !ok {
			t.Fatalf("LogiAddrFromByte(0x%X): wrong error type %T", b, err)
		}
		if bad.Value != b {
			t.Errorf("ErrBadLogiAddr.Value: got 0x%X want 0x%X", bad.Value, b)
		}
	}
}

func TestParseLogiAddr(t *testing.T) {
	cases := []struct {
		in   string
		want LogiAddr
	}{
		{"tv", AddrTV},
		{"TV", AddrTV},
		{"Broadcast", AddrBroadcast},
		{"audiosys", AddrAudioSys},
		{"0x0", AddrTV},
		{"0xF", AddrBroadcast},
		{"4", AddrPlaybackDev1},
	}
	for _, c := range cases {
		got, err := ParseLogiAddr(c.in)
		if err != nil {
			t.Errorf("ParseLogiAddr(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseLogiAddr(%q): got %s want %s", c.in, got, c.want)
		}
	}

	for _, in := range []string{"", "junk", "0x10", "16", "-1"} {
		if _, err := ParseLogiAddr(in); err == nil {
			t.Errorf("ParseLogiAddr(%q): expected error", in)
		}
	}
}

func TestLogiAddrString(t *testing.T) {
	if got := AddrTV.String(); got != "tv" {
		t.Errorf("AddrTV: got %q want %q", got, "tv")
	}
	if got := AddrBroadcast.String(); got != "broadcast" {
		t.Errorf("AddrBroadcast: got %q want %q", got, "broadcast")
	}
	if got := LogiAddr(0x42).String(); got != "0x42" {
		t.Errorf("out of range: got %q want %q", got, "0x42")
	}
}

func TestPhysAddrString(t *testing.T) {
	cases := []struct {
		a    PhysAddr
		want string
	}{
		{0, "0.0.0.0"},
		{0x01000000, "1.0.0.0"},
		{0x00001234, "0.0.12.34"},
		{0xABCD4321, "AB.CD.43.21"},
	}
	for _, c := range cases {
		if got := c.a.String(); got != c.want {
			t.Errorf("PhysAddr(0x%08X): got %q want %q", uint32(c.a), got, c.want)
		}
	}
}
