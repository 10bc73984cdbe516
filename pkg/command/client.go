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

package command

import (
	"errors"
	"fmt"

	"github.com/imroc/req"

	"github.com/newAM/stm32-cec/pkg/config"
	"github.com/newAM/stm32-cec/pkg/srv"
	"github.com/newAM/stm32-cec/pkg/srv/control"
)

type ApiClient struct {
	*config.Config
	ApiPrefix string
}

func NewApiClient(cfg *config.Config) *ApiClient {
	return &ApiClient{
		Config:    cfg,
		ApiPrefix: fmt.Sprintf("http://%s:%d/api", cfg.Host, cfg.Port),
	}
}

func (c *ApiClient) powerUrl(action, device, dst string) string {
	return fmt.Sprintf("%s/power/%s/%s/%s", c.ApiPrefix, action, device, dst)
}

func (c *ApiClient) devicesUrl() string {
	return fmt.Sprintf("%s/devices", c.ApiPrefix)
}

func (c *ApiClient) statusUrl(device string) string {
	return fmt.Sprintf("%s/status/%s", c.ApiPrefix, device)
}

func (c *ApiClient) traceUrl(device string) string {
	return fmt.Sprintf("%s/trace/%s", c.ApiPrefix, device)
}

func (c *ApiClient) regReadUrl(device, name string) string {
	return fmt.Sprintf("%s/reg/%s/%s", c.ApiPrefix, device, name)
}

// Power sends request to transmit image view on or standby to dst.
// Empty src means the server side default, retries below one means
// a single attempt.
func (c *ApiClient) Power(action, device, dst, src string, retries int) (*control.PowerResult, error) {
	params := req.QueryParam{}
	if src != "" {
		params["src"] = src
	}
	if retries > 0 {
		params["retries"] = retries
	}
	r, err := req.Post(c.powerUrl(action, device, dst), params)
	if err != nil {
		return nil, err
	}
	if r.Response().StatusCode != 200 {
		return nil, errors.New(r.Response().Status)
	}
	result := &control.PowerResult{}
	err = r.ToJSON(result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Devices sends request to read back the register file of every
// configured device
func (c *ApiClient) Devices() ([]*control.DeviceStatus, error) {
	r, err := req.Get(c.devicesUrl())
	if err != nil {
		return nil, err
	}
	if r.Response().StatusCode != 200 {
		return nil, errors.New(r.Response().Status)
	}
	var statuses []*control.DeviceStatus
	err = r.ToJSON(&statuses)
	if err != nil {
		return nil, err
	}
	return statuses, nil
}

// Status sends request to read back the register file of a device
func (c *ApiClient) Status(device string) (*control.DeviceStatus, error) {
	r, err := req.Get(c.statusUrl(device))
	if err != nil {
		return nil, err
	}
	if r.Response().StatusCode != 200 {
		return nil, errors.New(r.Response().Status)
	}
	status := &control.DeviceStatus{}
	err = r.ToJSON(status)
	if err != nil {
		return nil, err
	}
	return status, nil
}

// Trace sends request to list recent transmit attempts of a device
func (c *ApiClient) Trace(device string, count int) ([]*srv.TraceRecord, error) {
	params := req.QueryParam{}
	if count > 0 {
		params["count"] = count
	}
	r, err := req.Get(c.traceUrl(device), params)
	if err != nil {
		return nil, err
	}
	if r.Response().StatusCode != 200 {
		return nil, errors.New(r.Response().Status)
	}
	var recs []*srv.TraceRecord
	err = r.ToJSON(&recs)
	if err != nil {
		return nil, err
	}
	return recs, nil
}

// RegRead sends request to get the value of a register of a device
func (c *ApiClient) RegRead(device, name string) (string, error) {
	r, err := req.Get(c.regReadUrl(device, name))
	if err != nil {
		return "", err
	}
	if r.Response().StatusCode != 200 {
		return "", errors.New(r.Response().Status)
	}
	reg := &control.RegHex{}
	err = r.ToJSON(reg)
	if err != nil {
		return "", err
	}
	return reg.Value, nil
}
