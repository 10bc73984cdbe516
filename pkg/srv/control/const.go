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

package control

// Register names are in RM0433 section 55.7

const (
	RegCr   = "cr"
	RegCfgr = "cfgr"
	RegIsr  = "isr"
	RegIer  = "ier"
	RegRxdr = "rxdr"
)

// RegNamePattern constrains the register route variable
const RegNamePattern = RegCr + "|" + RegCfgr + "|" + RegIsr + "|" + RegIer + "|" + RegRxdr

const (
	ActionOn      = "on"
	ActionStandby = "standby"
)

const (
	DefaultTraceCount = 10
	DefaultRetries    = 1
	MaxRetries        = 10
)
