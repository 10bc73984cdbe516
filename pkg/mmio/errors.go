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

package mmio

import (
	"fmt"
)

// ErrClaimed returned when a register block is already mapped by a
// live handle in this process
type ErrClaimed struct {
	Base uintptr
}

func (e ErrClaimed) Error() string {
	return fmt.Sprintf("Register block already claimed: base: 0x%08X", uint64(e.Base))
}
