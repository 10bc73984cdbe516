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

package reg

// Sft is the signal free time, counted in nominal data-bit periods,
// that the peripheral waits before starting a transmission.
type Sft uint8

const (
	// SftHistory derives the signal free time from transmission history:
	// 2.5 data-bit periods if CEC is the last bus initiator with
	// unsuccessful transmission, 4 periods for a new bus initiator,
	// 6 periods if CEC is the last bus initiator with successful
	// transmission.
	SftHistory Sft = 0x0
	// SftNom0p5 is 0.5 nominal data-bit periods.
	SftNom0p5 Sft = 0x1
	// SftNom1p5 is 1.5 nominal data-bit periods.
	SftNom1p5 Sft = 0x2
	// SftNom2p5 is 2.5 nominal data-bit periods.
	SftNom2p5 Sft = 0x3
	// SftNom3p5 is 3.5 nominal data-bit periods.
	SftNom3p5 Sft = 0x4
	// SftNom4p5 is 4.5 nominal data-bit periods.
	SftNom4p5 Sft = 0x5
	// SftNom5p5 is 5.5 nominal data-bit periods.
	SftNom5p5 Sft = 0x6
	// SftNom6p5 is 6.5 nominal data-bit periods.
	SftNom6p5 Sft = 0x7
)

var sftNames = map[Sft]string{
	SftHistory: "history",
	SftNom0p5:  "0.5",
	SftNom1p5:  "1.5",
	SftNom2p5:  "2.5",
	SftNom3p5:  "3.5",
	SftNom4p5:  "4.5",
	SftNom5p5:  "5.5",
	SftNom6p5:  "6.5",
}

func (s Sft) String() string {
	name, ok := sftNames[s]
	if !ok {
		return "unknown"
	}
	return name
}

const (
	cfgrLSTN     uint32 = 1 << 31
	cfgrSFTOP    uint32 = 1 << 8
	cfgrBRDNOGEN uint32 = 1 << 7
	cfgrLBPEGEN  uint32 = 1 << 6
	cfgrBREGEN   uint32 = 1 << 5
	cfgrBRESTP   uint32 = 1 << 4
	cfgrRXTOL    uint32 = 1 << 3

	// CFGR has defined bits 0..8 and 31, the rest of bits 9..30 outside
	// the OAR field are reserved.
	cfgrWriteMask uint32 = 0xFFFF_01FF
)

// Cfgr is a value of the configuration register (CEC_CFGR).
type Cfgr uint32

// CfgrDefault is the reset value of the configuration register.
const CfgrDefault Cfgr = 0

// LSTN returns true if listen mode is enabled.
func (c Cfgr) LSTN() bool {
	return uint32(c)&cfgrLSTN != 0
}

// SetLSTN returns a copy of c with listen mode set to lstn.
//
// In listen mode the peripheral receives broadcast messages and
// messages addressed to its own address without interfering with the
// CEC line.
func (c Cfgr) SetLSTN(lstn bool) Cfgr {
	if lstn {
		return c | Cfgr(cfgrLSTN)
	}
	return c &^ Cfgr(cfgrLSTN)
}

// OAR returns the own address field, a 15-bit bitmap of the logical
// addresses this node acknowledges. Bit n set means logical address n.
func (c Cfgr) OAR() uint16 {
	return uint16((uint32(c) & 0x7FFF_0000) >> 16)
}

// SetOAR returns a copy of c with the own address bitmap set to
// oar & 0x7FFF. The LSTN bit and the low configuration bits are
// preserved.
func (c Cfgr) SetOAR(oar uint16) Cfgr {
	v := uint32(c) & 0x8000_FFFF
	v |= (uint32(oar) & 0x7FFF) << 16
	return Cfgr(v)
}

// SFTOP returns true if the signal free time option is set.
func (c Cfgr) SFTOP() bool {
	return uint32(c)&cfgrSFTOP != 0
}

// SetSFTOP returns a copy of c with the signal free time option set to
// sftop. When set, SFT counting starts when TXSOM is asserted instead
// of at the end of the last bus transmission.
func (c Cfgr) SetSFTOP(sftop bool) Cfgr {
	if sftop {
		return c | Cfgr(cfgrSFTOP)
	}
	return c &^ Cfgr(cfgrSFTOP)
}

// BRDNOGEN returns true if error-bit generation for broadcast messages
// is disabled.
func (c Cfgr) BRDNOGEN() bool {
	return uint32(c)&cfgrBRDNOGEN != 0
}

// SetBRDNOGEN returns a copy of c with broadcast error-bit generation
// disabled when brdnogen is true.
func (c Cfgr) SetBRDNOGEN(brdnogen bool) Cfgr {
	if brdnogen {
		return c | Cfgr(cfgrBRDNOGEN)
	}
	return c &^ Cfgr(cfgrBRDNOGEN)
}

// LBPEGEN returns true if an error bit is generated on the CEC line
// when a long bit period error is detected.
func (c Cfgr) LBPEGEN() bool {
	return uint32(c)&cfgrLBPEGEN != 0
}

// SetLBPEGEN returns a copy of c with long bit period error-bit
// generation set to lbpegen.
func (c Cfgr) SetLBPEGEN(lbpegen bool) Cfgr {
	if lbpegen {
		return c | Cfgr(cfgrLBPEGEN)
	}
	return c &^ Cfgr(cfgrLBPEGEN)
}

// BREGEN returns true if an error bit is generated on the CEC line
// when a bit rising error is detected.
func (c Cfgr) BREGEN() bool {
	return uint32(c)&cfgrBREGEN != 0
}

// SetBREGEN returns a copy of c with bit rising error-bit generation
// set to bregen.
func (c Cfgr) SetBREGEN(bregen bool) Cfgr {
	if bregen {
		return c | Cfgr(cfgrBREGEN)
	}
	return c &^ Cfgr(cfgrBREGEN)
}

// BRESTP returns true if reception stops on a bit rising error.
func (c Cfgr) BRESTP() bool {
	return uint32(c)&cfgrBRESTP != 0
}

// SetBRESTP returns a copy of c with reception stop on bit rising
// error set to brestp.
func (c Cfgr) SetBRESTP(brestp bool) Cfgr {
	if brestp {
		return c | Cfgr(cfgrBRESTP)
	}
	return c &^ Cfgr(cfgrBRESTP)
}

// RXTOL returns true if the extended reception bit-timing tolerance is
// enabled.
func (c Cfgr) RXTOL() bool {
	return uint32(c)&cfgrRXTOL != 0
}

// SetRXTOL returns a copy of c with the extended reception tolerance
// set to rxtol.
func (c Cfgr) SetRXTOL(rxtol bool) Cfgr {
	if rxtol {
		return c | Cfgr(cfgrRXTOL)
	}
	return c &^ Cfgr(cfgrRXTOL)
}

// SFT returns the signal free time field.
func (c Cfgr) SFT() Sft {
	return Sft(uint32(c) & 0x7)
}

// SetSFT returns a copy of c with the signal free time field set to
// sft. The value is masked to 3 bits so adjacent bits are never
// disturbed.
func (c Cfgr) SetSFT(sft Sft) Cfgr {
	v := uint32(c) & 0xFFFF_FFF8
	v |= uint32(sft) & 0x7
	return Cfgr(v)
}
