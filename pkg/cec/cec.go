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

// Package cec drives the STM32 HDMI-CEC peripheral.
//
// The driver owns one register block, initializes the peripheral into
// a listening, error-tolerant state and transmits the two supported
// two-byte messages: standby and image view on.
package cec

import (
	"fmt"
	"time"

	"github.com/newAM/stm32-cec/pkg/cec/irq"
	"github.com/newAM/stm32-cec/pkg/cec/reg"
	"github.com/newAM/stm32-cec/pkg/mmio"
)

// CEC opcodes of the supported messages.
const (
	OpcodeImageViewOn byte = 0x04
	OpcodeStandby     byte = 0x36
)

// Cec drives one HDMI-CEC peripheral instance. It is the sole owner of
// the register block, callers must not drive the same block through
// another handle.
type Cec struct {
	regs        *reg.Regs
	pollTimeout time.Duration
}

// Status is a point-in-time snapshot of the peripheral registers.
// Reading the status register does not clear latched flags, only a
// write-1 does, so taking a snapshot has no side effects.
type Status struct {
	Cr   reg.Cr
	Cfgr reg.Cfgr
	Isr  irq.Flags
	Ier  irq.Flags
	Rxdr byte
}

// New initializes the peripheral and returns the driver.
//
// The caller must guarantee before calling:
//
//  1. the CEC source clock is enabled
//  2. the CEC pin is configured
//  3. the peripheral has been reset
//  4. no other live handle drives the same register block
//
// New panics if reading CFGR does not return the value written. This
// occurs when the peripheral source clock is not configured correctly,
// and register semantics cannot be trusted on a misclocked peripheral.
func New(mem mmio.Mem) *Cec {
	regs := reg.NewRegs(mem)
	regs.SetCr(reg.CrDefault)
	cfgr := reg.CfgrDefault.
		SetLSTN(true).
		SetOAR(0x8).
		SetLBPEGEN(true).
		SetBREGEN(true).
		SetBRESTP(true)
	regs.SetCfgr(cfgr)
	if oar := regs.Cfgr().OAR(); oar != 0x8 {
		panic(fmt.Sprintf("CFGR readback mismatch: oar: 0x%X, check the CEC source clock", oar))
	}
	regs.SetIer(irq.All)
	regs.SetCr(reg.CrEN)
	return &Cec{regs: regs}
}

// SetPollTimeout bounds the busy-poll on the interrupt status
// register. Zero, the default, polls forever.
func (c *Cec) SetPollTimeout(d time.Duration) {
	c.pollTimeout = d
}

// pollIsr busy-polls the status register until any flag is set, then
// writes the observed value back to clear every latched flag and
// returns it.
func (c *Cec) pollIsr() (irq.Flags, error) {
	var deadline time.Time
	if c.pollTimeout != 0 {
		deadline = time.Now().Add(c.pollTimeout)
	}
	for {
		isr := c.regs.Isr()
		if isr != 0 {
			c.regs.SetIsr(isr)
			return isr, nil
		}
		if c.pollTimeout != 0 && time.Now().After(deadline) {
			return 0, ErrPollTimeout{After: c.pollTimeout}
		}
	}
}

// sendByte transmits a two byte CEC message: the header byte
// (src << 4) | dst followed by a single payload byte.
//
// The call blocks in a busy-poll between protocol steps. A failure
// carries the raw interrupt status as ErrTx, and when the header is
// not acknowledged with TXBR the payload is never written.
func (c *Cec) sendByte(src, dst LogiAddr, data byte) error {
	c.regs.SetTxdr(uint8(src)<<4 | uint8(dst))
	c.regs.SetCr(reg.CrSOM)

	isr, err := c.pollIsr()
	if err != nil {
		return err
	}
	if isr&irq.TXBR != irq.TXBR {
		return ErrTx{Flags: isr}
	}

	c.regs.SetTxdr(data)
	c.regs.SetCr(reg.CrEOM)

	isr, err = c.pollIsr()
	if err != nil {
		return err
	}
	if isr&irq.TXEND != irq.TXEND {
		return ErrTx{Flags: isr}
	}
	return nil
}

// SetStandby powers off devices.
func (c *Cec) SetStandby(src, dst LogiAddr) error {
	return c.sendByte(src, dst, OpcodeStandby)
}

// SetImageViewOn powers on the TV.
func (c *Cec) SetImageViewOn(src, dst LogiAddr) error {
	return c.sendByte(src, dst, OpcodeImageViewOn)
}

// Status reads the current register values.
func (c *Cec) Status() Status {
	return Status{
		Cr:   c.regs.Cr(),
		Cfgr: c.regs.Cfgr(),
		Isr:  c.regs.Isr(),
		Ier:  c.regs.Ier(),
		Rxdr: c.regs.Rxdr(),
	}
}
