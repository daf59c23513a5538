package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jsphweid/midi2array/model"
	"github.com/jsphweid/midi2array/sample"
	"github.com/jsphweid/midi2array/util"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render <measures.json> <out.mid>",
	Short: "Renders a measure grid back to midi",
	Long: `Renders a JSON array of 8 slot measures, for example decoded model
predictions, back to a midi file.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := Render(args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("Wrote %v\n", args[1])
		return nil
	},
}

func Render(in string, out string) error {
	measures, err := util.ReadJSON[[]model.Measure](in)
	if err != nil {
		return err
	}

	name := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))
	data, err := sample.Bytes(measures, name)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, data, 0644); err != nil {
		return errors.Wrapf(err, "write failed for file %v", out)
	}
	return nil
}
