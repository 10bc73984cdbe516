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

package power

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/newAM/stm32-cec/pkg/command"
	"github.com/newAM/stm32-cec/pkg/config"
	"github.com/newAM/stm32-cec/pkg/srv/control"
)

func NewOnCommand() *cobra.Command {
	var device, dst, src string
	var retries int
	cfg := config.NewDefaultConfig()
	cfg.Load()
	cmd := &cobra.Command{
		Use:   "on",
		Short: "Send image view on to a device on the bus",
		RunE: func(cmd *cobra.Command, args []string) error {
			apiClient := command.NewApiClient(cfg)
			result, err := apiClient.Power(control.ActionOn, device, dst, src, retries)
			if err != nil {
				return err
			}
			fmt.Printf("Power %s: %s -> %s: ok: %t\n", result.Action, result.Src, result.Dst, result.Ok)
			return nil
		},
	}
	cmd.Flags().StringVar(&device, DeviceOptionName, config.DefaultDeviceName, "Device name")
	cmd.Flags().StringVar(&dst, DstOptionName, "", "Destination logical address. E.g. tv or 0x0")
	cmd.MarkFlagRequired(DstOptionName)
	cmd.Flags().StringVar(&src, SrcOptionName, "", "Source logical address. Defaults to the configured source")
	cmd.Flags().IntVar(&retries, RetriesOptionName, 0, "Transmit attempts before giving up")

	return cmd
}
