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

package control

import (
	"context"
	"testing"

	"github.com/newAM/stm32-cec/pkg/cec"
	"github.com/newAM/stm32-cec/pkg/cec/irq"
	"github.com/newAM/stm32-cec/pkg/config"
	"github.com/newAM/stm32-cec/pkg/device"
	deviceifc "github.com/newAM/stm32-cec/pkg/device/ifc"
	"github.com/newAM/stm32-cec/pkg/sim"
	"github.com/newAM/stm32-cec/pkg/srv"
)

// newTestControlServer wires a control server around a peripheral the
// test keeps a handle on, so error paths can be scripted.
func newTestControlServer(t *testing.T, p *sim.Peripheral) *ControlServer {
	t.Helper()
	cfg := newTestConfig(t)

	state, err := NewTraceState(context.Background(), cfg)
	if err != nil {
		t.Fatalf("NewTraceState: %v", err)
	}
	t.Cleanup(state.Close)

	src, err := cec.ParseLogiAddr(cfg.Source)
	if err != nil {
		t.Fatalf("ParseLogiAddr: %v", err)
	}
	dev := device.NewDevice(cfg.Devices[0], cec.New(p), src)

	return &ControlServer{
		Server: srv.Server{
			Context: context.Background(),
			Config:  cfg,
		},
		devices: map[string]deviceifc.Device{cfg.Devices[0].Name: dev},
		state:   state,
	}
}

func TestPowerRetriesAndTrace(t *testing.T) {
	p := sim.NewPeripheral()
	s := newTestControlServer(t, p)

	// Header never acknowledged, every attempt fails.
	p.HeaderFlags = irq.TXACK
	err := s.PowerOn(config.DefaultDeviceName, cec.AddrBroadcast, cec.AddrTV, 3)
	if err == nil {
		t.Fatal("expected transmission error")
	}
	txErr, ok := err.(cec.ErrTx)
	if !ok {
		t.Fatalf("wrong error type %T: %v", err, err)
	}
	if txErr.Flags != irq.TXACK {
		t.Errorf("ErrTx.Flags: got %s want TXACK", txErr.Flags)
	}

	recs, err := s.Trace(config.DefaultDeviceName, 10)
	if err != nil {
		t.Fatalf("Trace: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("trace records: got %d want 3", len(recs))
	}
	// Newest first.
	for i, rec := range recs {
		if rec.Attempt != 3-i {
			t.Errorf("record %d: attempt %d want %d", i, rec.Attempt, 3-i)
		}
		if rec.Ok {
			t.Errorf("record %d: marked ok", i)
		}
		if rec.Isr != uint32(irq.TXACK) || rec.IsrText != "TXACK" {
			t.Errorf("record %d: isr 0x%X %q", i, rec.Isr, rec.IsrText)
		}
		if rec.Text != "broadcast -> tv: ImageViewOn" {
			t.Errorf("record %d: text %q", i, rec.Text)
		}
		if len(rec.Frame) != 2 || rec.Frame[0] != 0xF0 || rec.Frame[1] != cec.OpcodeImageViewOn {
			t.Errorf("record %d: frame % X", i, rec.Frame)
		}
	}
}

func TestPowerSuccess(t *testing.T) {
	p := sim.NewPeripheral()
	s := newTestControlServer(t, p)

	if err := s.PowerStandby(config.DefaultDeviceName, cec.AddrPlaybackDev1, cec.AddrTV, 1); err != nil {
		t.Fatalf("PowerStandby: %v", err)
	}

	recs, err := s.Trace(config.DefaultDeviceName, 1)
	if err != nil {
		t.Fatalf("Trace: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("trace records: got %d want 1", len(recs))
	}
	rec := recs[0]
	if !rec.Ok || rec.Attempt != 1 {
		t.Errorf("record: ok %t attempt %d", rec.Ok, rec.Attempt)
	}
	if rec.Text != "playbackdev1 -> tv: Standby" {
		t.Errorf("record text: %q", rec.Text)
	}
	if rec.Isr != 0 || rec.IsrText != "" {
		t.Errorf("isr fields set on success: 0x%X %q", rec.Isr, rec.IsrText)
	}
}

func TestPowerRetriesBelowOne(t *testing.T) {
	p := sim.NewPeripheral()
	s := newTestControlServer(t, p)
	p.HeaderFlags = irq.TXERR

	if err := s.PowerOn(config.DefaultDeviceName, cec.AddrBroadcast, cec.AddrTV, -5); err == nil {
		t.Fatal("expected transmission error")
	}
	recs, err := s.Trace(config.DefaultDeviceName, 10)
	if err != nil {
		t.Fatalf("Trace: %v", err)
	}
	if len(recs) != 1 {
		t.Errorf("trace records: got %d want 1", len(recs))
	}
}

func TestPowerUnknownDevice(t *testing.T) {
	p := sim.NewPeripheral()
	s := newTestControlServer(t, p)

	err := s.PowerOn("nope", cec.AddrBroadcast, cec.AddrTV, 1)
	if err == nil {
		t.Fatal("unknown device did not fail")
	}
	if _, ok := err.(config.ErrDeviceNotFound); !ok {
		t.Errorf("wrong error type %T: %v", err, err)
	}

	if _, err := s.Trace("nope", 1); err == nil {
		t.Error("trace of unknown device did not fail")
	}
}
