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

package ifc

import (
	"github.com/newAM/stm32-cec/pkg/cec"
	deviceifc "github.com/newAM/stm32-cec/pkg/device/ifc"
	"github.com/newAM/stm32-cec/pkg/srv"
)

type ControlServer interface {
	Run() error

	// deviceName is used to look the device up in config
	PowerOn(deviceName string, src, dst cec.LogiAddr, retries int) error
	PowerStandby(deviceName string, src, dst cec.LogiAddr, retries int) error
	Trace(deviceName string, count int) ([]*srv.TraceRecord, error)

	GetDeviceByName(deviceName string) (deviceifc.Device, error)
	GetAllDevices() map[string]deviceifc.Device
}

type ApiServer interface {
	Run() error
}

type State interface {
	Append(deviceName string, rec *srv.TraceRecord) error
	List(deviceName string, count int) ([]*srv.TraceRecord, error)
	Close()
}
