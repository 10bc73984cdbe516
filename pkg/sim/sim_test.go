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

package sim

import (
	"testing"

	"github.com/newAM/stm32-cec/pkg/cec/irq"
	"github.com/newAM/stm32-cec/pkg/cec/reg"
)

func TestStatusWriteOneToClear(t *testing.T) {
	p := NewPeripheral()
	p.LatchRx(0xAB, irq.RXBR|irq.RXEND)

	if got := irq.Flags(p.Read32(reg.IsrOff)); got != irq.RXBR|irq.RXEND {
		t.Fatalf("ISR: got %s", got)
	}
	if got := p.Read32(reg.RxdrOff); got != 0xAB {
		t.Errorf("RXDR: got 0x%X want 0xAB", got)
	}

	// Writing 1 clears only the addressed flag.
	p.Write32(reg.IsrOff, uint32(irq.RXBR))
	if got := irq.Flags(p.Read32(reg.IsrOff)); got != irq.RXEND {
		t.Errorf("ISR after clearing RXBR: got %s want RXEND", got)
	}

	// Writing 0 leaves flags untouched.
	p.Write32(reg.IsrOff, 0)
	if got := irq.Flags(p.Read32(reg.IsrOff)); got != irq.RXEND {
		t.Errorf("ISR after zero write: got %s want RXEND", got)
	}
}

func TestControlTriggers(t *testing.T) {
	p := NewPeripheral()

	p.Write32(reg.CrOff, 0x3)
	if got := p.Read32(reg.CrOff); got != 0x1 {
		t.Errorf("CR after TXSOM: got 0x%X want 0x1", got)
	}
	if got := p.Isr(); got != irq.TXBR {
		t.Errorf("ISR after TXSOM: got %s want TXBR", got)
	}

	p.Write32(reg.IsrOff, uint32(irq.TXBR))
	p.Write32(reg.CrOff, 0x5)
	if got := p.Isr(); got != irq.TXEND {
		t.Errorf("ISR after TXEOM: got %s want TXEND", got)
	}

	// Reserved control bits are discarded.
	p.Write32(reg.CrOff, 0xFFFFFFF1)
	if got := p.Read32(reg.CrOff); got != 0x1 {
		t.Errorf("CR reserved bits: got 0x%X want 0x1", got)
	}
}

func TestConfigMask(t *testing.T) {
	p := NewPeripheral()

	p.Write32(reg.CfgrOff, 0xFFFFFFFF)
	if got := p.Read32(reg.CfgrOff); got != 0xFFFF01FF {
		t.Errorf("CFGR: got 0x%08X want 0xFFFF01FF", got)
	}

	p.ClockFault = true
	p.Write32(reg.CfgrOff, 0x12340000)
	if got := p.Read32(reg.CfgrOff); got != 0xFFFF01FF {
		t.Errorf("CFGR changed on a misclocked peripheral: 0x%08X", got)
	}
}

func TestTxDataRecording(t *testing.T) {
	p := NewPeripheral()

	p.Write32(reg.TxdrOff, 0x4F)
	p.Write32(reg.TxdrOff, 0x136)
	if len(p.TxData) != 2 || p.TxData[0] != 0x4F || p.TxData[1] != 0x36 {
		t.Errorf("TxData: got % X want 4F 36", p.TxData)
	}

	// TXDR is write-only.
	if got := p.Read32(reg.TxdrOff); got != 0 {
		t.Errorf("TXDR read: got 0x%X want 0", got)
	}
}

func TestEnableMask(t *testing.T) {
	p := NewPeripheral()
	p.Write32(reg.IerOff, 0xFFFFFFFF)
	if got := irq.Flags(p.Read32(reg.IerOff)); got != irq.All {
		t.Errorf("IER: got %s want %s", got, irq.All)
	}
}
