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
)

type Device interface {
	// PowerOn sends the image view on message from src to dst.
	PowerOn(src, dst cec.LogiAddr) error
	// PowerStandby sends the standby message from src to dst.
	PowerStandby(src, dst cec.LogiAddr) error

	Status() cec.Status

	GetName() string
	GetSource() cec.LogiAddr
	GetPhys() cec.PhysAddr
}
