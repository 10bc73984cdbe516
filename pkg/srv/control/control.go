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
	"io"
	"time"

	"github.com/google/gopacket"
	"github.com/jpillora/backoff"

	"github.com/newAM/stm32-cec/pkg/cec"
	"github.com/newAM/stm32-cec/pkg/cec/reg"
	"github.com/newAM/stm32-cec/pkg/config"
	"github.com/newAM/stm32-cec/pkg/device"
	deviceifc "github.com/newAM/stm32-cec/pkg/device/ifc"
	"github.com/newAM/stm32-cec/pkg/layers"
	"github.com/newAM/stm32-cec/pkg/log"
	"github.com/newAM/stm32-cec/pkg/mmio"
	"github.com/newAM/stm32-cec/pkg/sim"
	"github.com/newAM/stm32-cec/pkg/srv"
	"github.com/newAM/stm32-cec/pkg/srv/control/ifc"
)

type ControlServer struct {
	srv.Server
	devices map[string]deviceifc.Device
	closers []io.Closer
	state   ifc.State
	api     ifc.ApiServer
}

var _ ifc.ControlServer = &ControlServer{}

// NewControlServer ...
func NewControlServer(ctx context.Context, cfg *config.Config) (ifc.ControlServer, error) {
	log.Debug("Initializing control server: devices: %d sim: %t", len(cfg.Devices), cfg.Sim)

	src, err := cec.ParseLogiAddr(cfg.Source)
	if err != nil {
		return nil, err
	}

	pollTimeout, err := cfg.PollDuration()
	if err != nil {
		return nil, err
	}

	s := &ControlServer{
		Server: srv.Server{
			Context: ctx,
			Config:  cfg,
		},
		devices: make(map[string]deviceifc.Device),
	}

	for _, d := range cfg.Devices {
		var mem mmio.Mem
		if cfg.Sim {
			mem = sim.NewPeripheral()
		} else {
			base, baseErr := d.Base()
			if baseErr != nil {
				return nil, baseErr
			}
			devMem, openErr := mmio.Open(base, reg.Size)
			if openErr != nil {
				return nil, openErr
			}
			s.closers = append(s.closers, devMem)
			mem = devMem
		}
		drv := cec.New(mem)
		drv.SetPollTimeout(pollTimeout)
		s.devices[d.Name] = device.NewDevice(d, drv, src)
		log.Info("Device initialized: name: %s base: %s", d.Name, d.BaseAddr)
	}

	state, err := NewTraceState(ctx, cfg)
	if err != nil {
		return nil, err
	}
	s.state = state

	apiServer, err := NewApiServer(ctx, cfg, s)
	if err != nil {
		return nil, err
	}
	s.api = apiServer

	return s, nil
}

func (s *ControlServer) Run() error {
	defer s.state.Close()
	defer s.closeAll()

	errChan := make(chan error, 1)

	go func() {
		errChan <- s.api.Run()
	}()

	select {
	case <-s.Context.Done():
		return s.Context.Err()
	case err := <-errChan:
		return err
	}
}

func (s *ControlServer) closeAll() {
	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			log.Error("Error while closing register block: %s", err)
		}
	}
}

// GetDeviceByName ...
func (s *ControlServer) GetDeviceByName(deviceName string) (deviceifc.Device, error) {
	dev, ok := s.devices[deviceName]
	if !ok {
		return nil, config.ErrDeviceNotFound{Name: deviceName}
	}
	return dev, nil
}

// GetAllDevices ...
func (s *ControlServer) GetAllDevices() map[string]deviceifc.Device {
	return s.devices
}

// PowerOn ...
func (s *ControlServer) PowerOn(deviceName string, src, dst cec.LogiAddr, retries int) error {
	return s.power(deviceName, ActionOn, src, dst, retries)
}

// PowerStandby ...
func (s *ControlServer) PowerStandby(deviceName string, src, dst cec.LogiAddr, retries int) error {
	return s.power(deviceName, ActionStandby, src, dst, retries)
}

func (s *ControlServer) power(deviceName, action string, src, dst cec.LogiAddr, retries int) error {
	dev, err := s.GetDeviceByName(deviceName)
	if err != nil {
		return err
	}

	var opcode byte
	switch action {
	case ActionOn:
		opcode = cec.OpcodeImageViewOn
	case ActionStandby:
		opcode = cec.OpcodeStandby
	default:
		return srv.ErrUnknownAction{What: action}
	}

	if retries < 1 {
		retries = DefaultRetries
	}
	if retries > MaxRetries {
		retries = MaxRetries
	}

	l := &layers.CECLayer{
		Initiator:   uint8(src),
		Destination: uint8(dst),
		HasOpcode:   true,
		Opcode:      opcode,
	}
	var frame []byte
	buf := gopacket.NewSerializeBuffer()
	if serErr := gopacket.SerializeLayers(buf, gopacket.SerializeOptions{}, l); serErr != nil {
		log.Error("Error while serializing frame for trace: %s", serErr)
	} else {
		frame = buf.Bytes()
	}

	b := &backoff.Backoff{
		Min:    100 * time.Millisecond,
		Max:    2 * time.Second,
		Jitter: true,
	}

	for attempt := 1; attempt <= retries; attempt++ {
		switch action {
		case ActionOn:
			err = dev.PowerOn(src, dst)
		case ActionStandby:
			err = dev.PowerStandby(src, dst)
		}

		rec := &srv.TraceRecord{
			Time:    srv.Now(),
			Frame:   frame,
			Text:    l.String(),
			Ok:      err == nil,
			Attempt: attempt,
		}
		if txErr, ok := err.(cec.ErrTx); ok {
			rec.Isr = uint32(txErr.Flags)
			rec.IsrText = txErr.Flags.String()
		}
		if stateErr := s.state.Append(deviceName, rec); stateErr != nil {
			log.Error("Error while appending trace record: %s", stateErr)
		}

		if err == nil {
			return nil
		}
		log.Warning("Transmission failed: device: %s attempt: %d/%d error: %s",
			deviceName, attempt, retries, err)
		if attempt < retries {
			time.Sleep(b.Duration())
		}
	}
	return err
}

// Trace ...
func (s *ControlServer) Trace(deviceName string, count int) ([]*srv.TraceRecord, error) {
	if _, err := s.GetDeviceByName(deviceName); err != nil {
		return nil, err
	}
	if count < 1 {
		count = DefaultTraceCount
	}
	return s.state.List(deviceName, count)
}
