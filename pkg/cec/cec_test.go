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
	"bytes"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"

	"github.com/newAM/stm32-cec/pkg/cec/irq"
	"github.com/newAM/stm32-cec/pkg/cec/reg"
	"github.com/newAM/stm32-cec/pkg/sim"
)

func TestNewInit(t *testing.T) {
	p := sim.NewPeripheral()
	c := New(p)

	st := c.Status()
	if st.Cr != reg.CrEN {
		t.Errorf("CR after init: got 0x%X want 0x%X", uint32(st.Cr), uint32(reg.CrEN))
	}
	if st.Cfgr != reg.Cfgr(0x80080070) {
		t.Errorf("CFGR after init: got 0x%08X want 0x80080070", uint32(st.Cfgr))
	}
	if !st.Cfgr.LSTN() {
		t.Error("listen mode not enabled after init")
	}
	if got := st.Cfgr.OAR(); got != 0x8 {
		t.Errorf("OAR after init: got 0x%X want 0x8", got)
	}
	if st.Ier != irq.All {
		t.Errorf("IER after init: got %s want %s", st.Ier, irq.All)
	}
	if st.Isr != 0 {
		t.Errorf("ISR after init: got %s want NONE", st.Isr)
	}
}

func TestNewClockFault(t *testing.T) {
	p := sim.NewPeripheral()
	p.ClockFault = true

	defer func() {
		if recover() == nil {
			t.Fatal("New did not panic on a misclocked peripheral")
		}
	}()
	New(p)
}

func TestSendSuccess(t *testing.T) {
	p := sim.NewPeripheral()
	c := New(p)

	if err := c.SetImageViewOn(AddrPlaybackDev1, AddrBroadcast); err != nil {
		t.Fatalf("SetImageViewOn: %v", err)
	}
	want := []byte{0x4F, OpcodeImageViewOn}
	if !bytes.Equal(p.TxData, want) {
		t.Fatalf("TX bytes: %s want %s", spew.Sdump(p.TxData), spew.Sdump(want))
	}
	if got := p.Isr(); got != 0 {
		t.Errorf("ISR not acknowledged after send: %s", got)
	}

	if err := c.SetStandby(AddrPlaybackDev1, AddrTV); err != nil {
		t.Fatalf("SetStandby: %v", err)
	}
	want = append(want, 0x40, OpcodeStandby)
	if !bytes.Equal(p.TxData, want) {
		t.Fatalf("TX bytes: %s want %s", spew.Sdump(p.TxData), spew.Sdump(want))
	}
}

func TestSendHeaderError(t *testing.T) {
	p := sim.NewPeripheral()
	c := New(p)
	p.HeaderFlags = irq.TXERR

	err := c.SetStandby(AddrPlaybackDev1, AddrTV)
	if err == nil {
		t.Fatal("expected transmission error")
	}
	txErr, ok := err.(ErrTx)
	if !ok {
		t.Fatalf("wrong error type %T: %v", err, err)
	}
	if txErr.Flags != irq.TXERR {
		t.Errorf("ErrTx.Flags: got %s want %s", txErr.Flags, irq.TXERR)
	}
	if want := "Transmission failed: isr: TXERR"; err.Error() != want {
		t.Errorf("error text: got %q want %q", err.Error(), want)
	}

	// The payload byte is never written when the header fails.
	if len(p.TxData) != 1 {
		t.Fatalf("TX bytes after header failure: %s", spew.Sdump(p.TxData))
	}
	if got := p.Isr(); got != 0 {
		t.Errorf("ISR not acknowledged after failure: %s", got)
	}
}

func TestSendDataError(t *testing.T) {
	p := sim.NewPeripheral()
	c := New(p)
	p.DataFlags = irq.TXACK

	err := c.SetImageViewOn(AddrPlaybackDev1, AddrTV)
	txErr, ok := err.(ErrTx)
	if !ok {
		t.Fatalf("wrong error type %T: %v", err, err)
	}
	if txErr.Flags != irq.TXACK {
		t.Errorf("ErrTx.Flags: got %s want %s", txErr.Flags, irq.TXACK)
	}
	if len(p.TxData) != 2 {
		t.Fatalf("TX bytes after payload failure: %s", spew.Sdump(p.TxData))
	}
}

func TestSendArbitrationLost(t *testing.T) {
	p := sim.NewPeripheral()
	c := New(p)
	p.HeaderFlags = irq.ARBLST

	err := c.SetStandby(AddrPlaybackDev1, AddrTV)
	txErr, ok := err.(ErrTx)
	if !ok {
		t.Fatalf("wrong error type %T: %v", err, err)
	}
	if txErr.Flags != irq.ARBLST {
		t.Errorf("ErrTx.Flags: got %s want %s", txErr.Flags, irq.ARBLST)
	}
}

func TestPollTimeout(t *testing.T) {
	p := sim.NewPeripheral()
	c := New(p)
	// A bus that never raises a flag.
	p.HeaderFlags = 0
	c.SetPollTimeout(time.Millisecond)

	err := c.SetStandby(AddrPlaybackDev1, AddrTV)
	timeoutErr, ok := err.(ErrPollTimeout)
	if !ok {
		t.Fatalf("wrong error type %T: %v", err, err)
	}
	if timeoutErr.After != time.Millisecond {
		t.Errorf("ErrPollTimeout.After: got %s want %s", timeoutErr.After, time.Millisecond)
	}
}
