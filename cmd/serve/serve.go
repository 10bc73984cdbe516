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

package serve

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/newAM/stm32-cec/pkg/command"
	"github.com/newAM/stm32-cec/pkg/config"
)

const (
	SimOptionName  = "sim"
	HostOptionName = "host"
)

// NewCommand creates a cobra command object for starting the control server
func NewCommand() *cobra.Command {
	var sim bool
	var host string
	cfg := config.NewDefaultConfig()
	cfg.Load()
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start control server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if sim {
				cfg.Sim = true
			}
			if host != "" {
				cfg.Host = host
			}
			return command.StartControlServer(cfg)
		},
	}
	cmd.Flags().BoolVar(&sim, SimOptionName, false, "Use a simulated peripheral instead of /dev/mem")
	cmd.Flags().StringVar(&host, HostOptionName, "", fmt.Sprintf("Host to bind. E.g. %s", config.DefaultApiHost))

	return cmd
}
