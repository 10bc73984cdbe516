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

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/newAM/stm32-cec/pkg/command"
	"github.com/newAM/stm32-cec/pkg/config"
)

func NewReadCommand() *cobra.Command {
	var device, name string
	cfg := config.NewDefaultConfig()
	cfg.Load()
	cmd := &cobra.Command{
		Use:   "read",
		Short: "Read value from register",
		RunE: func(cmd *cobra.Command, args []string) error {
			apiClient := command.NewApiClient(cfg)
			value, err := apiClient.RegRead(device, name)
			if err != nil {
				return err
			}
			fmt.Printf("Register state: %s = %s\n", name, value)
			return nil
		},
	}
	cmd.Flags().StringVar(&device, DeviceOptionName, config.DefaultDeviceName, "Device name")
	cmd.Flags().StringVar(&name, NameOptionName, "", "Register name. One of cr/cfgr/isr/ier/rxdr")
	cmd.MarkFlagRequired(NameOptionName)

	return cmd
}
