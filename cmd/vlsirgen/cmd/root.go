// Copyright © 2022 The VLSIR Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vlsir/vlsir-go/common"
	"github.com/vlsir/vlsir-go/pkg/logger"
	"github.com/vlsir/vlsir-go/pkg/version"
)

type rootOpts struct {
	cfgFile              string
	debugModeOn          bool
	quiet                bool
	hideLogTime          bool
	hideLogPath          bool
	logToFile            bool
	logDir               string
	colorMode            string
	remoteLoggerURL      string
	remoteLoggerTaskName string
}

var longRootCmdDescription = `vlsirgen compiles the VLSIR schemas of circuits, layouts, SPICE
simulations and technologies into Go packages, and converts and netlists
VLSIR data files with the generated types.
`

var supportedColorModes = []string{
	logger.ColorAuto,
	logger.ColorAlways,
	logger.ColorNever,
}

// NewRootCmd returns the vlsirgen command tree. Settings come from flags,
// VLSIRGEN_* environment variables and the config file, in that order.
func NewRootCmd() *cobra.Command {
	rootOpt := &rootOpts{}
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:           common.ExecBinaryFileName,
		Short:         "A code generator and toolbox for VLSIR circuit data.",
		Long:          longRootCmdDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd, v, rootOpt)
		},
	}
	rootCmd.SetOut(common.StdOut)
	rootCmd.SetErr(common.StdErr)

	rootCmd.AddCommand(
		NewBuildCmd(v),
		NewDescriptorCmd(v),
		NewListCmd(v),
		NewConvertCmd(),
		NewNetlistCmd(),
		NewPrimitivesCmd(),
		NewVersionCmd(),
		NewCompletionCmd(),
	)

	rootCmd.PersistentFlags().StringVar(&rootOpt.cfgFile, "config", "", fmt.Sprintf("build config file (default is %s)", common.GetDefaultConfigFile()))
	rootCmd.PersistentFlags().BoolVarP(&rootOpt.debugModeOn, "debug", "d", false, "turn on debug mode")
	rootCmd.PersistentFlags().BoolVarP(&rootOpt.quiet, "quiet", "q", false, "only log warnings and errors")
	rootCmd.PersistentFlags().BoolVar(&rootOpt.hideLogTime, "hide-time", false, "hide the log time")
	rootCmd.PersistentFlags().BoolVar(&rootOpt.hideLogPath, "hide-path", false, "hide the log path")
	rootCmd.PersistentFlags().BoolVar(&rootOpt.logToFile, "log-to-file", false, "write log message to disk")
	rootCmd.PersistentFlags().StringVar(&rootOpt.logDir, "log-dir", common.GetDefaultLogDir(), "directory of the log files, only valid when --log-to-file is set")
	rootCmd.PersistentFlags().StringVar(&rootOpt.colorMode, "color", logger.ColorAuto, fmt.Sprintf("set the log color mode, the possible values can be %v", supportedColorModes))
	rootCmd.PersistentFlags().StringVar(&rootOpt.remoteLoggerURL, "remote-logger-url", "", "remote logger url, if not empty, will send log to this url")
	rootCmd.PersistentFlags().StringVar(&rootOpt.remoteLoggerTaskName, "task-name", "", "task name which will embedded in the remote logger events, only valid when --remote-logger-url is set")
	rootCmd.DisableAutoGenTag = true
	return rootCmd
}

// Execute runs the command line and exits non-zero on failure. An interrupt
// cancels the running command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		logrus.Errorf("%s-%s: %v", common.ExecBinaryFileName, version.Get().String(), err)
		stop()
		os.Exit(1)
	}
}

// initConfig reads in config file and ENV variables if set, then sets up
// logging for the command about to run.
func initConfig(cmd *cobra.Command, v *viper.Viper, rootOpt *rootOpts) error {
	v.SetEnvPrefix(common.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return errors.Wrap(err, "failed to bind flags")
	}

	cfgFile := v.GetString("config")
	explicit := cfgFile != ""
	if !explicit {
		cfgFile = common.GetDefaultConfigFile()
	}
	if _, err := os.Stat(cfgFile); err == nil || explicit {
		v.SetConfigFile(cfgFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "failed to read config file %s", cfgFile)
		}
	}

	disableColor, err := logger.ParseColorMode(v.GetString("color"))
	if err != nil {
		return err
	}
	if err := logger.Init(logger.LogOptions{
		OutputPath:           v.GetString("log-dir"),
		Verbose:              v.GetBool("debug"),
		Quiet:                v.GetBool("quiet"),
		DisableColor:         disableColor,
		HideLogTime:          v.GetBool("hide-time"),
		HideLogPath:          v.GetBool("hide-path"),
		Output:               cmd.ErrOrStderr(),
		LogToFile:            v.GetBool("log-to-file"),
		RemoteLoggerURL:      v.GetString("remote-logger-url"),
		RemoteLoggerTaskName: v.GetString("task-name"),
	}); err != nil {
		return errors.Wrap(err, "failed to init logger")
	}
	if f := v.ConfigFileUsed(); f != "" {
		logrus.Debugf("using config file %s", f)
	}
	return nil
}
