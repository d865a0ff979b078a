package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kingrea/yidao/internal/almanac"
	"github.com/kingrea/yidao/internal/bazi"
	"github.com/kingrea/yidao/internal/relation"
)

func pillarsCmd() *cobra.Command {
	var date, timeCode, format string

	c := &cobra.Command{
		Use:   "pillars",
		Short: "Print the four pillars for a birth date and time bracket",
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := bazi.ParseDate(date)
			if err != nil {
				return err
			}
			bracket, err := bazi.ParseTimeBracket(timeCode)
			if err != nil {
				return err
			}
			profile := bazi.Compute(d, bracket)
			return printPillars(cmd.OutOrStdout(), d, bracket, profile, format)
		},
	}

	c.Flags().StringVar(&date, "date", "", "Birth date YYYY-MM-DD (required)")
	c.Flags().StringVar(&timeCode, "time", "UNKNOWN", "Time bracket HH:00 (even hours) or UNKNOWN")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	_ = c.MarkFlagRequired("date")
	return c
}

func printPillars(w io.Writer, d bazi.Date, b bazi.TimeBracket, p bazi.Profile, format string) error {
	switch format {
	case "json":
		payload := map[string]any{
			"date":          d,
			"time":          b,
			"effectiveYear": bazi.EffectiveYear(d),
			"julianDay":     bazi.JulianDay(d),
			"dayMaster":     p.DayMaster(),
			"bazi":          p,
		}
		return writeJSON(w, payload)
	case "pretty", "":
		fmt.Fprintf(w, "Date:       %s (%s)\n", d, b.Label())
		for _, slot := range p.Slots() {
			if slot.Pillar == nil {
				fmt.Fprintf(w, "%s柱:       待考\n", slot.Label)
				continue
			}
			fmt.Fprintf(w, "%s柱:       %s  %s%s %s%s\n", slot.Label, slot.Pillar,
				slot.Pillar.Stem.Element(), slot.Pillar.Stem.Polarity(),
				slot.Pillar.Branch.Element(), slot.Pillar.Branch.Icon())
		}
		dm := p.DayMaster()
		fmt.Fprintf(w, "Day master: %s%s %s\n", dm, dm.Element(), dm.Icon())
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func zodiacCmd() *cobra.Command {
	var year int
	var claim, format string

	c := &cobra.Command{
		Use:   "zodiac",
		Short: "Show the zodiac animal of a calendar year, optionally checking a claim",
		RunE: func(cmd *cobra.Command, _ []string) error {
			expected := relation.ZodiacForYear(year)
			if claim == "" {
				return printZodiac(cmd.OutOrStdout(), year, nil, expected, format)
			}
			claimed, err := bazi.ParseZodiac(claim)
			if err != nil {
				return err
			}
			check := relation.ValidateZodiacForYear(year, claimed)
			if err := printZodiac(cmd.OutOrStdout(), year, &check, claimed, format); err != nil {
				return err
			}
			if !check.Matches {
				return fmt.Errorf("%d is the year of the %s, not the %s", year, check.Expected, claimed)
			}
			return nil
		},
	}

	c.Flags().IntVar(&year, "year", 0, "Calendar year (required)")
	c.Flags().StringVar(&claim, "claim", "", "Claimed zodiac, glyph or English name")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	_ = c.MarkFlagRequired("year")
	return c
}

func printZodiac(w io.Writer, year int, check *relation.ZodiacCheck, z bazi.Zodiac, format string) error {
	expected := z
	if check != nil {
		expected = check.Expected
	}
	switch format {
	case "json":
		payload := map[string]any{"year": year, "expected": expected}
		if check != nil {
			payload["claimed"] = z
			payload["matches"] = check.Matches
		}
		return writeJSON(w, payload)
	case "pretty", "":
		card := almanac.Zodiac(expected)
		fmt.Fprintf(w, "%d: %s %s (%s)\n", year, card.Icon(), expected, expected.Name())
		if check != nil {
			status := "matches"
			if !check.Matches {
				status = "MISMATCH"
			}
			fmt.Fprintf(w, "Claim %s: %s\n", z, status)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func relationCmd() *cobra.Command {
	var dayMaster, against, format string

	c := &cobra.Command{
		Use:   "relation",
		Short: "Classify the Ten Gods relation of a stem as seen from a day master",
		RunE: func(cmd *cobra.Command, _ []string) error {
			dm, err := bazi.ParseStem(strings.TrimSpace(dayMaster))
			if err != nil {
				return err
			}
			target, err := bazi.ParseStem(strings.TrimSpace(against))
			if err != nil {
				return err
			}
			label := relation.ClassifyStems(dm, target)
			w := cmd.OutOrStdout()
			switch format {
			case "json":
				return writeJSON(w, map[string]any{
					"dayMaster": dm,
					"against":   target,
					"label":     label,
					"category":  label.Category().String(),
				})
			case "pretty", "":
				fmt.Fprintf(w, "%s%s → %s%s: %s (%s)\n", dm, dm.Element(), target, target.Element(), label, label.Category())
				if target == almanac.ReferenceStem {
					fmt.Fprintln(w, almanac.TenGodAdvice(label))
				}
				return nil
			default:
				return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
			}
		},
	}

	c.Flags().StringVar(&dayMaster, "day-master", "", "Day master stem, e.g. 甲 (required)")
	c.Flags().StringVar(&against, "against", almanac.ReferenceStem.String(), "Stem to classify")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	_ = c.MarkFlagRequired("day-master")
	return c
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
