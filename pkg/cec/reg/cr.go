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

// Package reg models the registers of the HDMI-CEC peripheral as typed
// values over the raw 32-bit hardware words. Register values are
// immutable, setters return a modified copy, so a desired register
// state is composed from the default value before a single write.
package reg

const (
	crEN    uint32 = 1 << 0
	crTXSOM uint32 = 1 << 1
	crTXEOM uint32 = 1 << 2

	// CR has defined bits 0..2, everything above is reserved.
	crWriteMask uint32 = 0b111
)

// Cr is a value of the control register (CEC_CR).
type Cr uint32

// CrDefault is the reset value of the control register.
const CrDefault Cr = 0

// Control register values written by the driver during transmission.
// SOM and EOM build on EN so the peripheral stays enabled while the
// start and end of message bits are asserted.
const (
	CrEN  Cr = CrDefault | Cr(crEN)
	CrSOM Cr = CrEN | Cr(crTXSOM)
	CrEOM Cr = CrEN | Cr(crTXEOM)
)

// EN returns true if the CEC peripheral is enabled.
func (c Cr) EN() bool {
	return uint32(c)&crEN == crEN
}

// SetEN returns a copy of c with the peripheral enable bit set to en.
func (c Cr) SetEN(en bool) Cr {
	if en {
		return c | Cr(crEN)
	}
	return c &^ Cr(crEN)
}

// TXSOM returns true if a transmission start of message is requested.
// The bit is a write-only trigger, hardware clears it by itself.
func (c Cr) TXSOM() bool {
	return uint32(c)&crTXSOM == crTXSOM
}

// SetTXSOM returns a copy of c with the start of message bit set.
func (c Cr) SetTXSOM() Cr {
	return c | Cr(crTXSOM)
}

// TXEOM returns true if a transmission end of message is requested.
func (c Cr) TXEOM() bool {
	return uint32(c)&crTXEOM == crTXEOM
}

// SetTXEOM returns a copy of c with the end of message bit set.
func (c Cr) SetTXEOM() Cr {
	return c | Cr(crTXEOM)
}
