// internal/cli/serper.go
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/law-makers/profilehunt/internal/app"
	"github.com/law-makers/profilehunt/internal/config"
	"github.com/law-makers/profilehunt/internal/query"
	"github.com/law-makers/profilehunt/internal/reqctx"
	"github.com/law-makers/profilehunt/internal/ui"
	"github.com/law-makers/profilehunt/internal/utils/output"
)

var (
	serperQuery   string
	serperPages   int
	serperPerPage int
	serperGL      string
	serperHL      string
	serperDelay   float64
)

// serperCmd represents the search API command
var serperCmd = &cobra.Command{
	Use:   "serper -q <company or domain>",
	Short: "Query the Serper search API for LinkedIn profile names",
	Long: `Builds several LinkedIn scoped queries from a company name or domain
(3 for a domain, 4 for a name), pages through each of them on the Serper
search API and prints the unique first and last names found.

The API key is read from SERPER_API_KEY, or from the OS keyring when set
with "profilehunt key set".`,
	Example: `  # Search by domain
  profilehunt serper -q acme.io

  # Search by name with German results, 3 pages per query
  profilehunt serper -q "Acme Corp" --gl de --hl de --pages 3

  # Export names and profile URLs
  profilehunt serper -q acme.io -o acme.json`,
	Args: cobra.NoArgs,
	RunE: runSerper,
}

func init() {
	rootCmd.AddCommand(serperCmd)

	serperCmd.Flags().StringVarP(&serperQuery, "query", "q", "", "Company name or domain")
	serperCmd.Flags().IntVar(&serperPages, "pages", config.DefaultPages, "Pages to request per query")
	serperCmd.Flags().IntVar(&serperPerPage, "per-page", config.DefaultPerPage, "Results per page")
	serperCmd.Flags().StringVar(&serperGL, "gl", "", "Country code, e.g. us or de")
	serperCmd.Flags().StringVar(&serperHL, "hl", config.DefaultHL, "Interface language")
	serperCmd.Flags().Float64Var(&serperDelay, "delay", config.DefaultDelay, "Seconds to wait between pages")
	serperCmd.MarkFlagRequired("query")
}

func runSerper(cmd *cobra.Command, args []string) error {
	a := GetAppFromCmd(cmd)
	if a == nil {
		return fmt.Errorf("application not initialized")
	}
	if serperPages < 1 || serperPerPage < 1 {
		return fmt.Errorf("--pages and --per-page must be at least 1")
	}
	if serperDelay < 0 {
		return fmt.Errorf("--delay must not be negative")
	}
	ctx := cmd.Context()

	queries := query.Build(serperQuery)
	bar := ui.NewProgress(len(queries)*serperPages, "", !a.Config.NoProgress)

	client, err := a.NewSerper(app.SerperOptions{
		Pages:    serperPages,
		PerPage:  serperPerPage,
		GL:       serperGL,
		HL:       serperHL,
		Delay:    time.Duration(serperDelay * float64(time.Second)),
		Progress: describer{bar},
	})
	if err != nil {
		return reqctx.NewRunError(ctx, err)
	}

	reqctx.Logger(ctx).Info().
		Str("query", serperQuery).
		Int("queries", len(queries)).
		Int("pages", serperPages).
		Msg("Searching API")

	rs, err := client.Search(ctx, serperQuery)
	_ = bar.Finish()
	if err != nil {
		return reqctx.NewRunError(ctx, err)
	}

	if err := output.WriteNamesText(cmd.OutOrStdout(), rs); err != nil {
		return err
	}
	return export(cmd, a, rs)
}

// describer shortens query descriptions so the bar fits on one line
type describer struct {
	bar interface {
		Describe(string)
		Add(int) error
	}
}

func (d describer) Describe(q string) { d.bar.Describe(ui.Truncate(q, 40)) }

func (d describer) Add(n int) error { return d.bar.Add(n) }
