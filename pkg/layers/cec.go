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

package layers

import (
	"errors"
	"fmt"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"

	"github.com/newAM/stm32-cec/pkg/cec"
)

const (
	// CECLayerNum identifies the layer
	CECLayerNum = 1998
)

// CECLayer is one CEC bus frame: a header byte carrying the initiator
// and destination nibbles, optionally followed by an opcode and its
// operands. The driver transmits single-opcode frames, received or
// stored frames of any length decode through the same layer.
type CECLayer struct {
	layers.BaseLayer
	Initiator   uint8
	Destination uint8
	HasOpcode   bool
	Opcode      byte
	Operands    []byte
}

var CECLayerType = gopacket.RegisterLayerType(CECLayerNum,
	gopacket.LayerTypeMetadata{Name: "CECLayerType", Decoder: gopacket.DecodeFunc(DecodeCECLayer)})

// LayerType returns the type of the CEC layer in the layer catalog
func (c *CECLayer) LayerType() gopacket.LayerType {
	return CECLayerType
}

// SerializeTo serializes the CEC frame into bytes and writes the bytes
// to the SerializeBuffer
func (c *CECLayer) SerializeTo(b gopacket.SerializeBuffer, opts gopacket.SerializeOptions) error {
	size := 1
	if c.HasOpcode {
		size += 1 + len(c.Operands)
	}
	bytes, err := b.AppendBytes(size)
	if err != nil {
		return err
	}
	bytes[0] = (c.Initiator&0xF)<<4 | c.Destination&0xF
	if c.HasOpcode {
		bytes[1] = c.Opcode
		copy(bytes[2:], c.Operands)
	}
	return nil
}

func (c *CECLayer) DecodeFromBytes(data []byte, df gopacket.DecodeFeedback) error {
	if len(data) < 1 {
		df.SetTruncated()
		return errors.New("CEC frame is missing the header byte")
	}
	c.BaseLayer = layers.BaseLayer{
		Contents: data[:],
		Payload:  []byte{},
	}
	c.Initiator = data[0] >> 4
	c.Destination = data[0] & 0xF
	if len(data) > 1 {
		c.HasOpcode = true
		c.Opcode = data[1]
		c.Operands = data[2:]
	} else {
		c.HasOpcode = false
		c.Opcode = 0
		c.Operands = nil
	}
	return nil
}

func DecodeCECLayer(data []byte, p gopacket.PacketBuilder) error {
	c := &CECLayer{}
	err := c.DecodeFromBytes(data, p)
	if err != nil {
		return err
	}
	p.AddLayer(c)
	return nil
}

// OpcodeName returns the name of the opcodes this driver transmits,
// anything else renders as hex.
func OpcodeName(op byte) string {
	switch op {
	case cec.OpcodeImageViewOn:
		return "ImageViewOn"
	case cec.OpcodeStandby:
		return "Standby"
	}
	return fmt.Sprintf("0x%02X", op)
}

// String renders the frame as "initiator -> destination: opcode".
func (c *CECLayer) String() string {
	if !c.HasOpcode {
		return fmt.Sprintf("%s -> %s: ping",
			cec.LogiAddr(c.Initiator), cec.LogiAddr(c.Destination))
	}
	return fmt.Sprintf("%s -> %s: %s",
		cec.LogiAddr(c.Initiator), cec.LogiAddr(c.Destination), OpcodeName(c.Opcode))
}
