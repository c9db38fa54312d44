package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clauseguard/clausectl/pkg/domain/clause"
	"github.com/clauseguard/clausectl/pkg/domain/risk"
)

var reviewCmd = &cobra.Command{
	Use:   "review <contract-id>",
	Short: "Run a compliance review and print the risk report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}

		fmt.Println("Running compliance review... this may take a moment.")
		report, err := client.ReviewContract(cmd.Context(), args[0])
		if err != nil {
			return MapError(err)
		}

		printReport(report)
		return nil
	},
}

func printReport(report *risk.Report) {
	band := risk.Band(report.OverallRiskScore)

	title := report.ContractFilename
	if title == "" {
		title = report.ContractID
	}
	fmt.Println(headerStyle.Render("Compliance Review: " + title))
	fmt.Printf("\n%s  %s\n", renderGauge(report.OverallRiskScore), bandStyle(band).Render(
		fmt.Sprintf("%.1f / 10  %s", report.OverallRiskScore, band.Label)))

	if err := report.Validate(); err != nil {
		fmt.Println(warnStyle.Render("warning: " + err.Error()))
	}

	fmt.Println("\n" + emphasisStyle.Render("Executive Summary"))
	if report.Summary != "" {
		fmt.Println(report.Summary)
	} else {
		fmt.Println("No summary available.")
	}

	buckets := risk.BucketBySeverity(report.Findings)
	fmt.Printf("\nFindings: %s high, %s medium, %s low",
		errStyle.Render(fmt.Sprint(buckets.Counts[risk.SeverityHigh])),
		warnStyle.Render(fmt.Sprint(buckets.Counts[risk.SeverityMedium])),
		fmt.Sprint(buckets.Counts[risk.SeverityLow]))
	fmt.Printf("   (default tab: %s)\n", buckets.DefaultTab().Label())

	for _, s := range risk.TabSeverities() {
		findings := buckets.Bucket(s)
		if len(findings) == 0 {
			continue
		}
		fmt.Printf("\n%s\n", severityStyle(s).Render(strings.ToUpper(s.Label())+" SEVERITY"))
		for i, f := range findings {
			fmt.Printf("%d. %s (confidence %.2f)\n", i+1, typeBadge(f.ClauseType), f.Confidence)
			if f.Deviation != "" {
				fmt.Printf("   Deviation: %s\n", f.Deviation)
			}
			if f.Risk != "" {
				fmt.Printf("   Risk: %s\n", f.Risk)
			}
			if f.Recommendation != "" {
				fmt.Printf("   Recommendation: %s\n", f.Recommendation)
			}
		}
	}

	fmt.Println("\n" + emphasisStyle.Render("Coverage"))
	statuses := risk.EvaluateCoverage(report.Coverage, report.MissingRequiredClauses)
	for _, t := range clause.Coverable() {
		var mark string
		switch statuses[t] {
		case risk.CoverageFound:
			mark = okStyle.Render("✓")
		case risk.CoverageMissingRequired:
			mark = errStyle.Render("✗")
		default:
			mark = subtleStyle.Render("·")
		}
		fmt.Printf("  %s %-16s %s\n", mark, t.Label(), statuses[t].Label())
	}
}

// renderGauge draws the risk score as a fixed-width bar using the same
// banding function as the textual label.
func renderGauge(score float64) string {
	const width = 20
	band := risk.Band(score)
	filled := int(risk.GaugeFill(score) * width)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return bandStyle(band).Render(bar)
}

func init() {
	RootCmd.AddCommand(reviewCmd)
}
