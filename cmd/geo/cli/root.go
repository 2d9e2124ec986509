// Copyright 2025 the original author or authors.
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

// Package cli holds the root command and the helpers shared by the geo
// subcommands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables that override flags, so that
// GEO_LOG_LEVEL sets --log-level.
const EnvPrefix = "GEO"

var config = viper.New()

// RootCmd is the geo command; subcommands register themselves on it.
var RootCmd = &cobra.Command{
	Use:   "geo",
	Short: "Geographic coordinate and region tools",
	Long: `Compute distances and bearings between coordinates, bound data files
of coordinates in regions, and generate or benchmark such data files.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}

		return setupLogging(config.GetString("log-level"), config.GetString("log-format"), os.Stderr)
	},
}

func init() {
	flags := RootCmd.PersistentFlags()
	flags.String("config", "", "configuration file (default ./geo.yaml)")
	flags.String("log-level", "warn", "log level: debug, info, warn or error")
	flags.String("log-format", "text", "log format: text or json")
}

// Config returns the configuration of the running command. Values resolve
// from flags, then GEO_ environment variables, then the configuration file.
func Config() *viper.Viper {
	return config
}

// Execute runs the root command until it completes or ctx is done.
func Execute(ctx context.Context) error {
	return RootCmd.ExecuteContext(ctx)
}

func loadConfig(cmd *cobra.Command) error {
	config.SetEnvPrefix(EnvPrefix)
	config.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	config.AutomaticEnv()

	if err := config.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("could not bind flags: %w", err)
	}

	if path := config.GetString("config"); path != "" {
		config.SetConfigFile(path)

		if err := config.ReadInConfig(); err != nil {
			return fmt.Errorf("could not read config %s: %w", path, err)
		}

		return nil
	}

	config.SetConfigName("geo")
	config.SetConfigType("yaml")
	config.AddConfigPath(".")

	if err := config.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("could not read config: %w", err)
		}
	}

	return nil
}
