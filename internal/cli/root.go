// Package cli 命令行入口
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/decker502/neuralfx/internal/ui"
	"github.com/decker502/neuralfx/pkg/app"
	"github.com/decker502/neuralfx/pkg/config"
)

var version = "0.1.0"

type rootOptions struct {
	configPath string
	verbose    bool
	seed       int64
}

// loadConfig 加载 --config 指定的配置文件（为空时使用默认配置）
func (o *rootOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// NewRootCommand 创建根命令；不带子命令时打开桌面窗口
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "neuralfx",
		Short:         "neuralfx: neural network background and hero drift particles",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			app.ConfigureLogging(opts.verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow(opts)
		},
	}

	root.SetVersionTemplate("neuralfx {{ .Version }}\n")
	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Config file (.yaml, .yml or .toml)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")
	flags.Int64Var(&opts.seed, "seed", 0, "Random seed (0 = time based)")

	root.AddCommand(
		windowCmd(opts),
		termCmd(opts),
		simulateCmd(opts),
		configCmd(opts),
	)
	return root
}

// Execute 运行命令行，错误打印到 stderr
func Execute() error {
	err := NewRootCommand().Execute()
	if err != nil {
		ui.Bad.Fprintf(os.Stderr, "neuralfx: %v\n", err)
	}
	return err
}
