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

// Package sim provides an in-process HDMI-CEC peripheral with the
// register-level behavior the driver depends on. It backs the driver
// tests and the daemon's simulation mode, no hardware required.
package sim

import (
	"sync"

	"github.com/newAM/stm32-cec/pkg/cec/irq"
	"github.com/newAM/stm32-cec/pkg/cec/reg"
	"github.com/newAM/stm32-cec/pkg/mmio"
)

// Peripheral simulates one CEC register block.
//
// Writing a control value with TXSOM latches HeaderFlags into the
// status register, writing one with TXEOM latches DataFlags. The
// defaults model a responsive bus: TXBR after the header, TXEND after
// the payload. Tests script error paths by overriding the flags.
type Peripheral struct {
	mu sync.Mutex

	cr   uint32
	cfgr uint32
	txdr uint32
	rxdr uint32
	isr  uint32
	ier  uint32

	// HeaderFlags are latched into ISR when TXSOM is asserted.
	HeaderFlags irq.Flags
	// DataFlags are latched into ISR when TXEOM is asserted.
	DataFlags irq.Flags

	// ClockFault models a peripheral with a dead source clock:
	// configuration writes are lost and CFGR reads back zero.
	ClockFault bool

	// TxData records every byte written to the TX data register in
	// write order.
	TxData []byte
}

var _ mmio.Mem = &Peripheral{}

// NewPeripheral returns a simulated peripheral that acknowledges
// transmissions.
func NewPeripheral() *Peripheral {
	return &Peripheral{
		HeaderFlags: irq.TXBR,
		DataFlags:   irq.TXEND,
	}
}

// Read32 returns the register word at off.
func (p *Peripheral) Read32(off uintptr) uint32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	switch off {
	case reg.CrOff:
		return p.cr
	case reg.CfgrOff:
		return p.cfgr
	case reg.TxdrOff:
		// write-only on hardware
		return 0
	case reg.RxdrOff:
		return p.rxdr & 0xFF
	case reg.IsrOff:
		return p.isr
	case reg.IerOff:
		return p.ier
	}
	return 0
}

// Write32 stores the register word at off with hardware semantics:
// reserved bits are discarded, status bits clear on write-1, message
// triggers latch the scripted flags.
func (p *Peripheral) Write32(off uintptr, v uint32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	switch off {
	case reg.CrOff:
		v &= 0x7
		// TXSOM and TXEOM are self-clearing triggers.
		p.cr = v & 0x1
		if v&0x2 != 0 {
			p.isr |= uint32(p.HeaderFlags)
		}
		if v&0x4 != 0 {
			p.isr |= uint32(p.DataFlags)
		}
	case reg.CfgrOff:
		if p.ClockFault {
			return
		}
		p.cfgr = v & 0xFFFF_01FF
	case reg.TxdrOff:
		p.txdr = v & 0xFF
		p.TxData = append(p.TxData, byte(v))
	case reg.IsrOff:
		p.isr &^= v & uint32(irq.All)
	case reg.IerOff:
		p.ier = v & uint32(irq.All)
	}
}

// Isr returns the current status word.
func (p *Peripheral) Isr() irq.Flags {
	p.mu.Lock()
	defer p.mu.Unlock()
	return irq.Flags(p.isr)
}

// LatchRx stores one received byte and raises the given receive flags.
func (p *Peripheral) LatchRx(data byte, flags irq.Flags) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rxdr = uint32(data)
	p.isr |= uint32(flags & irq.All)
}
