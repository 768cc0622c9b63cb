package engine

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mvandervelde/bouwlca/internal/equiv"
)

//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatImpact renders a whole-building kg CO2e value with thousands
// separators.
func FormatImpact(v float64) string {
	return printer.Sprintf("%.1f", v)
}

// FormatIntensity renders a normalized per-m² or per-year value.
func FormatIntensity(v float64) string {
	return printer.Sprintf("%.3f", v)
}

// FormatShare renders an element's percentage of the A-to-C total.
func FormatShare(v float64) string {
	return printer.Sprintf("%.1f%%", v)
}

// RenderResultTable writes the module totals, the per-element breakdown
// and the compliance summary as aligned text tables.
func RenderResultTable(w io.Writer, result Result) error {
	if _, err := fmt.Fprintf(w, "Project: %s (%s)\n\n", result.ProjectName, result.ProjectID); err != nil {
		return fmt.Errorf("writing title: %w", err)
	}
	if err := renderModuleTable(w, result); err != nil {
		return err
	}
	if err := renderElementTable(w, result); err != nil {
		return err
	}
	return renderSummary(w, result)
}

func renderModuleTable(w io.Writer, result Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintln(tw, "MODULE\tSTAGE\tKG CO2E"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if _, err := fmt.Fprintln(tw, "------\t-----\t-------"); err != nil {
		return fmt.Errorf("writing separator: %w", err)
	}

	rows := []struct {
		module string
		stage  string
		value  float64
	}{
		{"A1-A3", "Production", result.A1A3},
		{"A4", "Transport to site", result.A4},
		{"A5", "Construction", result.A5},
		{"B4", "Replacement", result.B4},
		{"C1-C2", "Deconstruction and transport", result.C1C2},
		{"C3", "Waste processing", result.C3},
		{"C4", "Disposal", result.C4},
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\n", row.module, row.stage, FormatImpact(row.value)); err != nil {
			return fmt.Errorf("writing module row: %w", err)
		}
	}

	if _, err := fmt.Fprintf(tw, "A-C\tTotal\t%s\n", FormatImpact(result.TotalAToC)); err != nil {
		return fmt.Errorf("writing total row: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "D\tBenefits beyond the system\t%s\n", FormatImpact(result.D)); err != nil {
		return fmt.Errorf("writing benefits row: %w", err)
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing module table: %w", err)
	}
	_, err := fmt.Fprintln(w)
	return err
}

func renderElementTable(w io.Writer, result Result) error {
	if len(result.Elements) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintln(tw, "ELEMENT\tCATEGORY\tKG CO2E\tSHARE"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if _, err := fmt.Fprintln(tw, "-------\t--------\t-------\t-----"); err != nil {
		return fmt.Errorf("writing separator: %w", err)
	}

	for _, el := range result.Elements {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			el.Name, el.Category, FormatImpact(el.Total), FormatShare(el.Percentage)); err != nil {
			return fmt.Errorf("writing element row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing element table: %w", err)
	}
	_, err := fmt.Fprintln(w)
	return err
}

func renderSummary(w io.Writer, result Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	lines := []struct {
		label string
		value string
	}{
		{"Embodied carbon", FormatIntensity(result.PerM2) + " kg CO2e/m2"},
		{"Embodied per year", FormatIntensity(result.PerM2PerYear) + " kg CO2e/m2/yr"},
		{"Operational (B6)", FormatIntensity(result.OperationalCarbon) + " kg CO2e/m2/yr"},
		{"Combined total", FormatIntensity(result.TotalCarbon) + " kg CO2e/m2/yr"},
	}
	for _, line := range lines {
		if _, err := fmt.Fprintf(tw, "%s:\t%s\n", line.label, line.value); err != nil {
			return fmt.Errorf("writing summary row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing summary: %w", err)
	}

	if eq, err := equiv.ForEmbodiedCarbon(result.TotalAToC); err == nil && !eq.IsEmpty {
		if _, werr := fmt.Fprintf(w, "\n%s\n", eq.DisplayText); werr != nil {
			return fmt.Errorf("writing equivalencies: %w", werr)
		}
	}

	switch {
	case result.Compliance.Applicable:
		verdict := "within the limit"
		if !result.Compliance.Compliant {
			verdict = "exceeds the limit"
		}
		_, err := fmt.Fprintf(w, "\nMPG reference for %s: %s kg CO2e/m2/yr, embodied carbon %s\n",
			result.Compliance.BuildingType, FormatIntensity(result.Compliance.ReferenceValue), verdict)
		return err
	case result.Compliance.BuildingType != "":
		_, err := fmt.Fprintf(w, "\nNo MPG reference value for building type %q\n", result.Compliance.BuildingType)
		return err
	default:
		return nil
	}
}

// RenderResultJSON writes the result as indented JSON. A nil element
// breakdown encodes as an empty list so consumers always see an array.
func RenderResultJSON(w io.Writer, result Result) error {
	if result.Elements == nil {
		result.Elements = []ElementImpact{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	return nil
}

// RenderBatchTable writes one row per recalculated project.
func RenderBatchTable(w io.Writer, outcomes []BatchOutcome) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintln(tw, "PROJECT\tTOTAL A-C\tPER M2/YR\tMPG\tSTATUS"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if _, err := fmt.Fprintln(tw, "-------\t---------\t---------\t---\t------"); err != nil {
		return fmt.Errorf("writing separator: %w", err)
	}

	for _, outcome := range outcomes {
		name := outcome.ProjectName
		if name == "" {
			name = outcome.ProjectID
		}
		if outcome.Err != nil {
			if _, err := fmt.Fprintf(tw, "%s\t-\t-\t-\t%s\n", name, outcome.Err.Error()); err != nil {
				return fmt.Errorf("writing batch row: %w", err)
			}
			continue
		}
		mpg := "n/a"
		if outcome.Result.Compliance.Applicable {
			mpg = "pass"
			if !outcome.Result.Compliance.Compliant {
				mpg = "fail"
			}
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\tok\n",
			name, FormatImpact(outcome.Result.TotalAToC),
			FormatIntensity(outcome.Result.PerM2PerYear), mpg); err != nil {
			return fmt.Errorf("writing batch row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing batch table: %w", err)
	}
	return nil
}

// RenderBatchJSON writes the batch outcomes as indented JSON.
func RenderBatchJSON(w io.Writer, outcomes []BatchOutcome) error {
	if outcomes == nil {
		outcomes = []BatchOutcome{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(outcomes); err != nil {
		return fmt.Errorf("encoding batch outcomes: %w", err)
	}
	return nil
}
