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

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/newAM/stm32-cec/cmd/completion"
	"github.com/newAM/stm32-cec/cmd/config"
	"github.com/newAM/stm32-cec/cmd/devices"
	"github.com/newAM/stm32-cec/cmd/power"
	"github.com/newAM/stm32-cec/cmd/reg"
	"github.com/newAM/stm32-cec/cmd/serve"
	"github.com/newAM/stm32-cec/cmd/status"
	"github.com/newAM/stm32-cec/cmd/trace"
	pkgconfig "github.com/newAM/stm32-cec/pkg/config"
	"github.com/newAM/stm32-cec/pkg/log"
)

const (
	LogLevelOptionName = "log-level"
)

func NewRootCommand(out io.Writer) *cobra.Command {
	var logLevel string
	cfg := pkgconfig.NewDefaultConfig()
	cfg.Load()
	cmd := &cobra.Command{
		Use:   "stm32-cec",
		Short: "Tool to control the STM32 HDMI-CEC peripheral",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			log.Init(cmd.ErrOrStderr(), cfg.LogLevel)
		},
	}
	cmd.SetOut(out)
	cmd.AddCommand(config.NewCommand())
	cmd.AddCommand(serve.NewCommand())
	cmd.AddCommand(power.NewCommand())
	cmd.AddCommand(devices.NewCommand())
	cmd.AddCommand(status.NewCommand())
	cmd.AddCommand(trace.NewCommand())
	cmd.AddCommand(reg.NewCommand())
	cmd.AddCommand(completion.NewCommand())
	cmd.PersistentFlags().StringVar(&logLevel, LogLevelOptionName, "", fmt.Sprintf("Log level. %s", log.HelpLevels))
	return cmd
}
