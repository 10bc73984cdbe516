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
	"fmt"
	"time"

	"github.com/newAM/stm32-cec/pkg/cec/irq"
)

// ErrTx returned when a transmission attempt fails. Flags is the raw
// interrupt status observed at the point of failure, callers needing
// finer diagnosis match it against the irq package constants.
type ErrTx struct {
	Flags irq.Flags
}

func (e ErrTx) Error() string {
	return fmt.Sprintf("Transmission failed: isr: %s", e.Flags)
}

// ErrPollTimeout returned when no interrupt flags were observed within
// the configured poll bound
type ErrPollTimeout struct {
	After time.Duration
}

func (e ErrPollTimeout) Error() string {
	return fmt.Sprintf("No interrupt flags observed within %s", e.After)
}

// ErrBadLogiAddr returned when a byte does not encode a logical
// address
type ErrBadLogiAddr struct {
	Value uint8
}

func (e ErrBadLogiAddr) Error() string {
	return fmt.Sprintf("Logical address out of range: 0x%X", e.Value)
}

// ErrBadLogiAddrName returned when a string is neither a role name nor
// a logical address value
type ErrBadLogiAddrName struct {
	Name string
}

func (e ErrBadLogiAddrName) Error() string {
	return fmt.Sprintf("Unknown logical address: %s", e.Name)
}
