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

package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"sigs.k8s.io/yaml"
)

// Device is one CEC peripheral instance.
type Device struct {
	Name string `json:"name"`
	// BaseAddr is the physical base address of the register block,
	// e.g. 0x40006C00.
	BaseAddr string `json:"baseAddr"`
	// PhysAddr is the HDMI physical address of this node, display only,
	// e.g. 0x01000000 for 1.0.0.0.
	PhysAddr string `json:"physAddr,omitempty"`
}

// Base parses the register block base address.
func (d *Device) Base() (uintptr, error) {
	v, err := strconv.ParseUint(d.BaseAddr, 0, 32)
	if err != nil {
		return 0, err
	}
	return uintptr(v), nil
}

// Phys parses the HDMI physical address, zero when unset.
func (d *Device) Phys() (uint32, error) {
	if d.PhysAddr == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(d.PhysAddr, 0, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

type ApiConfig struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

type Config struct {
	*ApiConfig `json:"api"`
	Devices    []*Device `json:"devices"`
	// DBPath is the transmit trace database location.
	DBPath   string `json:"dbPath,omitempty"`
	LogLevel string `json:"logLevel,omitempty"`
	// PollTimeout bounds the driver busy-poll, e.g. 1s. Empty means
	// poll forever.
	PollTimeout string `json:"pollTimeout,omitempty"`
	// Source is the default source logical address for outbound
	// messages.
	Source string `json:"source,omitempty"`
	// Sim runs the daemon against simulated peripherals instead of
	// /dev/mem.
	Sim bool `json:"sim,omitempty"`

	filepath string
}

// GetDeviceByName returns the configured device with the given name.
func (c *Config) GetDeviceByName(name string) (*Device, error) {
	for _, device := range c.Devices {
		if device.Name == name {
			return device, nil
		}
	}
	return nil, ErrDeviceNotFound{Name: name}
}

// PollDuration parses the poll timeout, zero when unset.
func (c *Config) PollDuration() (time.Duration, error) {
	if c.PollTimeout == "" {
		return 0, nil
	}
	return time.ParseDuration(c.PollTimeout)
}

func (c *Config) Persist(overwrite bool) error {
	if _, err := os.Stat(c.filepath); err == nil && !overwrite {
		return ErrConfigFileExists{Path: c.filepath}
	}

	data, err := yaml.Marshal(&c)
	if err != nil {
		return err
	}

	dir := filepath.Dir(c.filepath)
	err = os.MkdirAll(dir, 0755)
	if err != nil {
		return err
	}

	err = ioutil.WriteFile(c.filepath, data, 0644)
	if err != nil {
		return err
	}

	return nil
}

// Load reads the config file over the defaults. A missing file is not
// an error, the defaults stay in effect.
func (c *Config) Load() error {
	data, err := ioutil.ReadFile(c.filepath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, c)
}

// String renders the config as yaml.
func (c *Config) String() string {
	data, err := yaml.Marshal(&c)
	if err != nil {
		return ""
	}
	return string(data)
}

func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return filepath.Join(home, ConfigDir, ConfigFile)
}

func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return filepath.Join(home, ConfigDir, StateFile)
}

func NewDefaultConfig() *Config {
	return &Config{
		ApiConfig: &ApiConfig{
			Host: DefaultApiHost,
			Port: DefaultApiPort,
		},
		Devices: []*Device{
			{
				Name:     DefaultDeviceName,
				BaseAddr: DefaultBaseAddr,
			},
		},
		DBPath:      DefaultDBPath(),
		LogLevel:    DefaultLogLevel,
		PollTimeout: DefaultPollTimeout,
		Source:      DefaultSource,
		filepath:    DefaultConfigPath(),
	}
}
