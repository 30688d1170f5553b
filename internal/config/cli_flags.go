package config

import "github.com/spf13/cobra"

// RegisterFlags registers common CLI flags on the provided root command
func RegisterFlags(cmd *cobra.Command) {
	if cmd == nil {
		return
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().Bool("quiet", false, "Suppress all output except errors and results")
	cmd.PersistentFlags().Bool("json", false, "Write logs as JSON")
	cmd.PersistentFlags().String("proxy", "", "HTTP/SOCKS5 proxies, comma separated and rotated per request")
	cmd.PersistentFlags().String("timeout", DefaultHTTPTimeout.String(), "Timeout for each request")
	cmd.PersistentFlags().String("user-agent", "", "Custom user agent string")
	cmd.PersistentFlags().StringArrayP("header", "H", nil, "Extra request header 'Key: Value' (repeatable)")
	cmd.PersistentFlags().StringP("output", "o", "", "Export results to a .json, .csv, .html or .md file")
	cmd.PersistentFlags().Bool("no-progress", false, "Disable the progress bar")
	cmd.PersistentFlags().String("env-file", DefaultEnvFile, "Dotenv file loaded before reading the environment")

	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
}
