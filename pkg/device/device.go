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

package device

import (
	"sync"

	"github.com/newAM/stm32-cec/pkg/cec"
	"github.com/newAM/stm32-cec/pkg/config"
	"github.com/newAM/stm32-cec/pkg/device/ifc"
	"github.com/newAM/stm32-cec/pkg/log"
)

// Device is a CEC peripheral bound to its bus identity.
// The driver allows a single owner, the mutex serializes the
// server handlers over it.
type Device struct {
	*config.Device
	drv *cec.Cec
	src cec.LogiAddr
	mu  sync.Mutex
}

var _ ifc.Device = &Device{}

// NewDevice ...
func NewDevice(cfg *config.Device, drv *cec.Cec, src cec.LogiAddr) *Device {
	return &Device{
		Device: cfg,
		drv:    drv,
		src:    src,
	}
}

// PowerOn ...
func (d *Device) PowerOn(src, dst cec.LogiAddr) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	log.Debug("Sending image view on: device: %s src: %s dst: %s", d.Name, src, dst)
	return d.drv.SetImageViewOn(src, dst)
}

// PowerStandby ...
func (d *Device) PowerStandby(src, dst cec.LogiAddr) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	log.Debug("Sending standby: device: %s src: %s dst: %s", d.Name, src, dst)
	return d.drv.SetStandby(src, dst)
}

// Status reads back the register file.
func (d *Device) Status() cec.Status {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.drv.Status()
}

// GetName ...
func (d *Device) GetName() string {
	return d.Name
}

// GetSource ...
func (d *Device) GetSource() cec.LogiAddr {
	return d.src
}

// GetPhys ...
func (d *Device) GetPhys() cec.PhysAddr {
	phys, err := d.Phys()
	if err != nil {
		log.Error("Can not parse physical address: device: %s value: %s", d.Name, d.PhysAddr)
		return cec.PhysAddr(0)
	}
	return cec.PhysAddr(phys)
}
