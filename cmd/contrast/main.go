// Command contrast resolves readable text colors for background colors from
// the command line.
//
//	contrast resolve '#cc343e' '#efb700'
//	contrast palette
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/keyxmakerx/teamcal/internal/contrast"
	"github.com/keyxmakerx/teamcal/internal/plugins/calendar"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "contrast",
		Short:         "pick dark or light text for a background color",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.SetOut(out)
	root.AddCommand(newResolveCmd(), newPaletteCmd())
	return root
}

func newResolveCmd() *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:   "resolve #RRGGBB...",
		Short: "print the text color for each background",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				bg, err := contrast.ParseHex(arg)
				if err != nil {
					return fmt.Errorf("%q: %w", arg, err)
				}
				text := contrast.Resolve(bg)
				if plain {
					fmt.Fprintln(cmd.OutOrStdout(), text.Hex())
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s -> %s  (luminance %.3f)\n",
					swatch(bg, text, " Aa "), bg.Hex(), text.Hex(), contrast.Luminance(bg))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "print only the resolved colors")
	return cmd
}

func newPaletteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "palette",
		Short: "show the built-in event priorities with their text colors",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range calendar.DefaultPriorities() {
				bg := contrast.MustParseHex(p.Color)
				text := contrast.MustParseHex(p.TextColor)
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %-10s %s\n",
					swatch(bg, text, fmt.Sprintf(" %-9s ", p.Name)), p.ID, p.Detail)
			}
		},
	}
}

// swatch renders label in text color on bg.
func swatch(bg, text contrast.Color, label string) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(bg.Hex())).
		Foreground(lipgloss.Color(text.Hex())).
		Bold(true).
		Render(label)
}
