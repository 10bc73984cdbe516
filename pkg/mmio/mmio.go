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

// Package mmio provides volatile access to memory-mapped register
// blocks.
package mmio

// Mem is a memory-mapped register block.
//
// Every call performs exactly one aligned 32-bit access at the given
// byte offset from the block base, in program order. Accesses are
// never merged, elided or reordered. This is the only synchronization
// contract between a driver and its hardware state machine.
type Mem interface {
	Read32(off uintptr) uint32
	Write32(off uintptr, v uint32)
}
