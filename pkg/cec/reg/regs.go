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

package reg

import (
	"github.com/newAM/stm32-cec/pkg/cec/irq"
	"github.com/newAM/stm32-cec/pkg/mmio"
)

// Register offsets from the peripheral base address.
const (
	CrOff   uintptr = 0x00 // control, RW, bits 0..2
	CfgrOff uintptr = 0x04 // configuration, RW, bits 0..8 and 31
	TxdrOff uintptr = 0x08 // TX data, WO, bits 0..7
	RxdrOff uintptr = 0x0C // RX data, RO, bits 0..7
	IsrOff  uintptr = 0x10 // interrupt status, RW1C, bits 0..12
	IerOff  uintptr = 0x14 // interrupt enable, RW, bits 0..12
)

// Size is the length of the register block in bytes.
const Size = 0x18

// Regs is the register file of one HDMI-CEC peripheral instance.
//
// Every setter applies the register's defined-bits mask and issues a
// single whole-word write. There is no read-modify-write here, callers
// compose complete register values with the Cr and Cfgr types first.
type Regs struct {
	mem mmio.Mem
}

// NewRegs returns the register file backed by mem. The caller hands
// over exclusive access to the register block.
func NewRegs(mem mmio.Mem) *Regs {
	return &Regs{mem: mem}
}

// Cr reads the control register.
func (r *Regs) Cr() Cr {
	return Cr(r.mem.Read32(CrOff))
}

// SetCr writes the control register.
func (r *Regs) SetCr(cr Cr) {
	r.mem.Write32(CrOff, uint32(cr)&crWriteMask)
}

// Cfgr reads the configuration register.
func (r *Regs) Cfgr() Cfgr {
	return Cfgr(r.mem.Read32(CfgrOff))
}

// SetCfgr writes the configuration register.
func (r *Regs) SetCfgr(cfgr Cfgr) {
	r.mem.Write32(CfgrOff, uint32(cfgr)&cfgrWriteMask)
}

// SetTxdr writes one byte to the TX data register. The upper 24 bits
// of the word are zero.
func (r *Regs) SetTxdr(data byte) {
	r.mem.Write32(TxdrOff, uint32(data))
}

// Rxdr reads one byte from the RX data register.
func (r *Regs) Rxdr() byte {
	return byte(r.mem.Read32(RxdrOff))
}

// Isr reads the interrupt status register.
func (r *Regs) Isr() irq.Flags {
	return irq.Flags(r.mem.Read32(IsrOff))
}

// SetIsr writes the interrupt status register. Writing 1 to a flag
// clears it, so passing a previously read status acknowledges exactly
// the events observed.
func (r *Regs) SetIsr(isr irq.Flags) {
	r.mem.Write32(IsrOff, uint32(isr&irq.All))
}

// Ier reads the interrupt enable register.
func (r *Regs) Ier() irq.Flags {
	return irq.Flags(r.mem.Read32(IerOff))
}

// SetIer writes the interrupt enable register.
func (r *Regs) SetIer(ier irq.Flags) {
	r.mem.Write32(IerOff, uint32(ier&irq.All))
}
