// Package xlog builds a [log/slog] handler from a level and format string,
// with CLI flag registration and shell-completion support via
// [github.com/spf13/cobra] and [github.com/spf13/pflag].
//
// Typical usage creates a [Config], registers flags on the root command,
// then builds a handler once flags are parsed:
//
//	cfg := xlog.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//	cfg.RegisterCompletions(rootCmd)
//
//	handler, err := cfg.NewHandler(os.Stderr)
//	slog.SetDefault(slog.New(handler))
package xlog
