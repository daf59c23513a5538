package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jsphweid/midi2array/constants"
	"github.com/jsphweid/midi2array/loader"
	"github.com/jsphweid/midi2array/midi"
	"github.com/jsphweid/midi2array/model"
	"github.com/spf13/cobra"
)

var (
	labelStyle = lipgloss.NewStyle().Faint(true).Width(6)
	onsetStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).Width(4)
	heldStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Width(4)
	restStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Width(4)
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Prints the measure grid of a midi file",
	Long:  `Prints the measure grid of a midi file, one measure per line.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := midi.ReadMidiFile(args[0])
		if err != nil {
			return err
		}
		measures, err := loader.Measures(s, opts)
		if err != nil {
			return err
		}
		fmt.Println(RenderGrid(measures))
		return nil
	},
}

func renderSlot(v int) string {
	switch v {
	case constants.Silence:
		return restStyle.Render(".")
	case constants.Continuation:
		return heldStyle.Render("--")
	default:
		return onsetStyle.Render(strconv.Itoa(v))
	}
}

func RenderGrid(measures []model.Measure) string {
	lines := make([]string, 0, len(measures))
	for i, measure := range measures {
		cells := []string{labelStyle.Render(strconv.Itoa(i + 1))}
		for _, v := range measure {
			cells = append(cells, renderSlot(v))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(lines, "\n")
}
