package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ayushmanparchoria16/wakeup-mob/config"
	"github.com/ayushmanparchoria16/wakeup-mob/providers"
)

func newRootCmd() *cobra.Command {
	var (
		apiKey   string
		endpoint string
		timeout  time.Duration
	)

	cmd := &cobra.Command{
		Use:           "wakeup-mob",
		Short:         "List the models available from the Google generative language API",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if apiKey != "" {
				cfg.APIKey = apiKey
			}
			if endpoint != "" {
				cfg.Endpoint = endpoint
			}
			if timeout > 0 {
				cfg.Timeout = timeout
			}

			provider := providers.NewGeminiProvider(cfg.APIKey, cfg.Endpoint, cfg.Timeout)
			names, err := provider.ListModelNames(cmd.Context())

			out := cmd.OutOrStdout()
			for _, name := range names {
				fmt.Fprintln(out, name)
			}
			if err != nil {
				// Failures land on stdout and the exit status stays zero,
				// so a scripted caller sees one line per model or one line
				// of diagnostic text.
				fmt.Fprintln(out, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&apiKey, "key", "", "API key (defaults to GOOGLE_API_KEY or GEMINI_API_KEY)")
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "base URL of the generative language API")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "HTTP client timeout")

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Println(err)
	}
}
