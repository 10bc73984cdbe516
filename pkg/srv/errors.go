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

package srv

import (
	"fmt"
)

// ErrUnknownAction returned when a power action is neither on nor standby
type ErrUnknownAction struct {
	What string
}

func (e ErrUnknownAction) Error() string {
	return fmt.Sprintf("Unknown power action: %s", e.What)
}

// ErrUnknownRegister returned when a register read names no register
type ErrUnknownRegister struct {
	Name string
}

func (e ErrUnknownRegister) Error() string {
	return fmt.Sprintf("Unknown register: %s", e.Name)
}
