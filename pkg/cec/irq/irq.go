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

// Package irq names the interrupt flags of the HDMI-CEC peripheral.
//
// The same bit layout is shared by the interrupt status register (ISR)
// and the interrupt enable register (IER). Status flags are cleared by
// writing 1 to the flag bit, writing 0 leaves the flag untouched.
package irq

import (
	"fmt"
	"strings"
)

// Flags is a bitmask of interrupt flags.
type Flags uint32

const (
	// RXBR is set by hardware when a new byte has been received from the
	// CEC line and stored into the RXD buffer.
	RXBR Flags = 1 << 0
	// RXEND is set by hardware when the last byte of a CEC message has
	// been received. Set at the same time as RXBR.
	RXEND Flags = 1 << 1
	// RXOVR is set by hardware if RXBR is not yet cleared when a new byte
	// arrives. Stops message reception so that no acknowledge is sent.
	RXOVR Flags = 1 << 2
	// BRE is set by hardware when a data-bit waveform has a bit rising
	// error. Stops reception if BRESTP is set, generates an error bit on
	// the line if BREGEN is set.
	BRE Flags = 1 << 3
	// SBPE is set by hardware when a data-bit waveform has a short bit
	// period error. Generates an error bit on the CEC line.
	SBPE Flags = 1 << 4
	// LBPE is set by hardware when a data-bit waveform has a long bit
	// period error. Always stops reception of the CEC message.
	LBPE Flags = 1 << 5
	// RXACK is set by hardware in receive mode when no acknowledge was
	// seen on the CEC line. Aborts message reception.
	RXACK Flags = 1 << 6
	// ARBLST is set by hardware when the device switches to reception due
	// to arbitration loss after a TXSOM command. TXSOM stays pending for
	// the next transmission attempt.
	ARBLST Flags = 1 << 7
	// TXBR is set by hardware when the next transmission byte has to be
	// written to TXDR. The byte must be written within six nominal
	// data-bit periods or TXUDR occurs.
	TXBR Flags = 1 << 8
	// TXEND is set by hardware when the last byte of the CEC message has
	// been successfully transmitted. Clears TXSOM and TXEOM.
	TXEND Flags = 1 << 9
	// TXUDR is set by hardware when TXDR was not loaded in time for the
	// next byte. Aborts transmission and clears TXSOM and TXEOM.
	TXUDR Flags = 1 << 10
	// TXERR is set by hardware when the initiator detects low impedance
	// on the CEC line while it is released. Aborts transmission and
	// clears TXSOM and TXEOM.
	TXERR Flags = 1 << 11
	// TXACK is set by hardware in transmit mode when no acknowledge was
	// received, or a negative acknowledge for broadcast. Aborts
	// transmission and clears TXSOM and TXEOM.
	TXACK Flags = 1 << 12
)

// All is the bitmask of every interrupt flag. It is the only valid
// write mask for the ISR and IER registers.
const All Flags = TXACK |
	TXERR |
	TXUDR |
	TXEND |
	TXBR |
	ARBLST |
	RXACK |
	LBPE |
	SBPE |
	BRE |
	RXOVR |
	RXEND |
	RXBR

var flagNames = []struct {
	flag Flags
	name string
}{
	{RXBR, "RXBR"},
	{RXEND, "RXEND"},
	{RXOVR, "RXOVR"},
	{BRE, "BRE"},
	{SBPE, "SBPE"},
	{LBPE, "LBPE"},
	{RXACK, "RXACK"},
	{ARBLST, "ARBLST"},
	{TXBR, "TXBR"},
	{TXEND, "TXEND"},
	{TXUDR, "TXUDR"},
	{TXERR, "TXERR"},
	{TXACK, "TXACK"},
}

// String returns the names of all set flags separated by "|".
func (f Flags) String() string {
	if f == 0 {
		return "NONE"
	}
	var names []string
	for _, fn := range flagNames {
		if f&fn.flag != 0 {
			names = append(names, fn.name)
		}
	}
	if undef := f &^ All; undef != 0 {
		names = append(names, fmt.Sprintf("0x%X", uint32(undef)))
	}
	return strings.Join(names, "|")
}
