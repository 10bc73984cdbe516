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
	"os"
	"sync"
	"sync/atomic"
	"syscall"
	"unsafe"
)

const devMemPath = "/dev/mem"

// Claimed base addresses in this process. A register block must not be
// reachable through two live handles, claims enforce that at the
// mapping layer.
var (
	claimMu sync.Mutex
	claimed = make(map[uintptr]bool)
)

func claim(base uintptr) error {
	claimMu.Lock()
	defer claimMu.Unlock()
	if claimed[base] {
		return ErrClaimed{Base: base}
	}
	claimed[base] = true
	return nil
}

func release(base uintptr) {
	claimMu.Lock()
	defer claimMu.Unlock()
	delete(claimed, base)
}

// DevMem is a register block mapped from physical memory through
// /dev/mem.
type DevMem struct {
	base uintptr
	off  int
	mem  []byte
	f    *os.File
}

var _ Mem = &DevMem{}

// Open maps size bytes of physical memory starting at base. The
// mapping is page aligned internally, base itself does not need to be.
// A second Open for the same base fails with ErrClaimed until the
// first mapping is closed.
func Open(base uintptr, size int) (*DevMem, error) {
	if err := claim(base); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(devMemPath, os.O_RDWR|os.O_SYNC, 0)
	if err != nil {
		release(base)
		return nil, err
	}
	pageSize := uintptr(os.Getpagesize())
	pageBase := base &^ (pageSize - 1)
	mapLen := int(base-pageBase) + size
	mem, err := syscall.Mmap(int(f.Fd()), int64(pageBase), mapLen,
		syscall.PROT_READ|syscall.PROT_WRITE, syscall.MAP_SHARED)
	if err != nil {
		f.Close()
		release(base)
		return nil, err
	}
	return &DevMem{
		base: base,
		off:  int(base - pageBase),
		mem:  mem,
		f:    f,
	}, nil
}

func (m *DevMem) word(off uintptr) *uint32 {
	return (*uint32)(unsafe.Pointer(&m.mem[m.off+int(off)]))
}

// Read32 performs a single 32-bit read at off bytes from base.
// Atomic loads keep the access whole-word and program ordered.
func (m *DevMem) Read32(off uintptr) uint32 {
	return atomic.LoadUint32(m.word(off))
}

// Write32 performs a single 32-bit write at off bytes from base.
func (m *DevMem) Write32(off uintptr, v uint32) {
	atomic.StoreUint32(m.word(off), v)
}

// Base returns the physical base address of the block.
func (m *DevMem) Base() uintptr {
	return m.base
}

// Close unmaps the block and releases the base address claim.
func (m *DevMem) Close() error {
	err := syscall.Munmap(m.mem)
	m.f.Close()
	release(m.base)
	return err
}
