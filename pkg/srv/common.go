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
	"context"
	"time"

	"github.com/newAM/stm32-cec/pkg/config"
)

type Server struct {
	context.Context
	*config.Config
}

// TraceRecord describes one transmit attempt on the bus.
type TraceRecord struct {
	Time    string `json:"time"`
	Frame   []byte `json:"frame"`
	Text    string `json:"text"`
	Ok      bool   `json:"ok"`
	Isr     uint32 `json:"isr,omitempty"`
	IsrText string `json:"isrText,omitempty"`
	Attempt int    `json:"attempt"`
}

func Now() string {
	return time.Now().Format(time.RFC3339)
}
