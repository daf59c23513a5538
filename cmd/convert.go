package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jsphweid/midi2array/config"
	"github.com/jsphweid/midi2array/constants"
	"github.com/jsphweid/midi2array/loader"
	"github.com/jsphweid/midi2array/util"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	format string
	maxNum int
)

func init() {
	convertCmd.Flags().StringVar(&format, "format", "json", "output format, json or gob")
	convertCmd.Flags().IntVar(&maxNum, "max", 0, "stop after this many files per directory, 0 for all")
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert [paths...]",
	Short: "Converts midi files into a dataset",
	Long: `Converts midi files, or every .mid/.midi file under the given directories,
into one dataset written to $MIDI2ARRAY_OUT_DIR (default ./out).`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := Convert(args, opts, format, maxNum)
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %v\n", path)
		return nil
	},
}

func gatherPaths(args []string, maxNum int) ([]string, error) {
	var res []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "could not read %v", arg)
		}
		if !info.IsDir() {
			res = append(res, arg)
			continue
		}
		paths, err := util.GatherAllMidiPaths(arg, maxNum)
		if err != nil {
			return nil, err
		}
		res = append(res, paths...)
	}
	return res, nil
}

// Convert loads every midi file under paths and writes the dataset to the
// output directory, returning the written file.
func Convert(paths []string, o config.Options, format string, maxNum int) (string, error) {
	if format != "json" && format != "gob" {
		return "", errors.Errorf("unknown format %q", format)
	}

	files, err := gatherPaths(paths, maxNum)
	if err != nil {
		return "", err
	}
	logger.Info("converting midi files", zap.Int("files", len(files)))

	d, err := loader.LoadAll(files, o)
	if err != nil {
		return "", err
	}

	outDir := constants.GetOutputDir()
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", errors.Wrap(err, "could not create output dir")
	}

	filename := filepath.Join(outDir, d.ID+"."+format)
	if format == "gob" {
		err = util.CreateBinary(filename, d)
	} else {
		err = util.CreateJSON(filename, d)
	}
	if err != nil {
		return "", err
	}
	return filename, nil
}
