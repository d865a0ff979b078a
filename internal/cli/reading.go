package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/kingrea/yidao/internal/bazi"
	"github.com/kingrea/yidao/internal/config"
	"github.com/kingrea/yidao/internal/reading"
	"github.com/kingrea/yidao/internal/report"
	"github.com/kingrea/yidao/internal/snapshot"
)

func reportCmd(flags *globalFlags) *cobra.Command {
	var zodiac, date, timeCode, format string
	var save bool

	c := &cobra.Command{
		Use:   "report",
		Short: "Cast a reading and print the 2026 report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkResultFormat(format); err != nil {
				return err
			}
			z, err := bazi.ParseZodiac(zodiac)
			if err != nil {
				return err
			}
			d, err := bazi.ParseDate(date)
			if err != nil {
				return &reading.Error{Op: "cli.report", Kind: reading.KindInvalidDate, Err: err}
			}
			req := reading.Request{Zodiac: z, Date: d, BracketSet: cmd.Flags().Changed("time")}
			if req.BracketSet {
				if req.Bracket, err = bazi.ParseTimeBracket(timeCode); err != nil {
					return err
				}
			}

			rt, cleanup, err := setup(flags)
			if err != nil {
				return err
			}
			defer cleanup()

			svc := reading.NewService(reading.WithLogger(rt.logger))
			if save {
				svc = rt.service
			}
			res, err := svc.Consult(cmd.Context(), req)
			if err != nil && !reading.IsKind(err, reading.KindStorage) {
				return err
			}
			if perr := printResult(cmd.OutOrStdout(), rt.config, res, format); perr != nil {
				return perr
			}
			return err
		},
	}

	c.Flags().StringVar(&zodiac, "zodiac", "", "Zodiac, glyph or English name (required)")
	c.Flags().StringVar(&date, "date", "", "Birth date YYYY-MM-DD (required)")
	c.Flags().StringVar(&timeCode, "time", "", "Time bracket HH:00 (even hours) or UNKNOWN (required)")
	c.Flags().BoolVar(&save, "save", false, "Keep the reading as the saved snapshot")
	c.Flags().StringVar(&format, "format", "markdown", "Output format: markdown|pretty|json")
	_ = c.MarkFlagRequired("zodiac")
	_ = c.MarkFlagRequired("date")
	return c
}

func snapshotCmd(flags *globalFlags) *cobra.Command {
	c := &cobra.Command{
		Use:   "snapshot",
		Short: "Inspect or clear the saved reading",
	}

	var format string
	show := &cobra.Command{
		Use:   "show",
		Short: "Print the saved reading",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkResultFormat(format); err != nil {
				return err
			}
			rt, cleanup, err := setup(flags)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := rt.service.Restore(cmd.Context())
			if errors.Is(err, snapshot.ErrNotFound) {
				fmt.Fprintln(cmd.OutOrStdout(), "尚无存档。")
				return nil
			}
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), rt.config, res, format)
		},
	}
	show.Flags().StringVar(&format, "format", "markdown", "Output format: markdown|pretty|json")

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Forget the saved reading",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, cleanup, err := setup(flags)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := rt.service.Reset(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "存档已清除。")
			return nil
		},
	}

	c.AddCommand(show, clearCmd)
	return c
}

type resultJSON struct {
	User    snapshot.User `json:"user"`
	Label   string        `json:"label"`
	Report  string        `json:"report"`
	SavedAt *time.Time    `json:"savedAt,omitempty"`
}

// checkResultFormat rejects an unknown --format before anything is read or
// saved.
func checkResultFormat(format string) error {
	switch format {
	case "json", "pretty", "markdown", "":
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected markdown|pretty|json)", format)
	}
}

func printResult(w io.Writer, cfg *config.Config, res reading.Result, format string) error {
	switch format {
	case "json":
		out := resultJSON{User: res.User, Label: res.Label.String(), Report: res.Report}
		if !res.SavedAt.IsZero() {
			out.SavedAt = &res.SavedAt
		}
		return writeJSON(w, out)
	case "pretty":
		style := report.StyleDark
		if !cfg.Theme().IsDark() {
			style = report.StyleLight
		}
		fmt.Fprintf(w, "%s\n%s\n", res.User.Bazi, report.NewRenderer(style, cfg.WordWrap()).Render(res.Report))
		return nil
	case "markdown", "":
		fmt.Fprintln(w, res.Report)
		return nil
	default:
		return checkResultFormat(format)
	}
}
