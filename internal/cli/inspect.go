package cli

import (
	"context"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/transplot/transplot/pkg/colormap"
	"github.com/transplot/transplot/pkg/config"
	"github.com/transplot/transplot/pkg/pipeline"
	"github.com/transplot/transplot/pkg/placement"
)

// inspectCommand creates the inspect command for summarizing placement files.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [file]",
		Short: "Parse a placement file and print a summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.Context(), args[0])
		},
	}
}

func (c *CLI) runInspect(ctx context.Context, input string) error {
	runner, err := c.newRunner(true)
	if err != nil {
		return err
	}
	defer runner.Close()

	model, err := runner.Parse(ctx, pipeline.Options{
		Input:  input,
		Logger: loggerFromContext(ctx),
	})
	if err != nil {
		printError("%v", err)
		return err
	}

	printSummary(input, model)
	return nil
}

// printSummary renders the inspect output for a parsed model.
func printSummary(input string, m *placement.Model) {
	fmt.Println(StyleTitle.Render(input))
	printField("syntax", m.Version.String())

	if m.Units != nil {
		printField("units", fmt.Sprintf("%d", *m.Units))
	}
	if m.DieArea != nil {
		printField("die area", fmt.Sprintf("(%d, %d) to (%d, %d), %d x %d",
			m.DieArea.XL, m.DieArea.YL, m.DieArea.XH, m.DieArea.YH,
			m.DieArea.Width(), m.DieArea.Height()))
	}
	if m.RowHeight != nil {
		printField("row height", fmt.Sprintf("%d", *m.RowHeight))
	}
	if m.SiteWidth != nil {
		printField("site width", fmt.Sprintf("%d", *m.SiteWidth))
	}
	if m.NumRows != nil {
		printField("rows", fmt.Sprintf("%d", *m.NumRows))
	}
	if m.NumSites != nil {
		printField("sites", fmt.Sprintf("%d", *m.NumSites))
	}

	printField("transistors", fmt.Sprintf("%d", len(m.Transistors)))
	if m.Version == placement.Version2 {
		printField("pins", fmt.Sprintf("%d", len(m.Pins)))
		printField("macros", fmt.Sprintf("%d", len(m.Macros)))
		printField("paths", fmt.Sprintf("%d", len(m.Paths)))
	}

	printGroups(m)
}

// printGroups lists every transistor group with its record count and, for
// qualifying groups, the color it would be plotted with.
func printGroups(m *placement.Model) {
	groups := m.Groups()
	if len(groups) == 0 {
		return
	}

	colors := colormap.New(nil, config.Default().Seed).Assign(groups)

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	slices.Sort(names)

	fmt.Println(StyleTitle.Render("groups"))
	for _, name := range names {
		if color, ok := colors[name]; ok {
			printDetail("%s: %d transistors, %s", name, groups[name], color.Hex())
		} else {
			printDetail("%s: %d transistors", name, groups[name])
		}
	}
}

// printField prints one aligned name/value line of the summary.
func printField(name, value string) {
	fmt.Printf("  %s %s\n", StyleDim.Render(fmt.Sprintf("%-12s", name)), StyleValue.Render(value))
}
