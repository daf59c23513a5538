package cmd

import (
	"github.com/jsphweid/midi2array/config"
	"github.com/jsphweid/midi2array/constants"
	"github.com/jsphweid/midi2array/loader"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	verbose    bool
	configPath string
	opts       = config.Default()
	logger     = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "midi2array",
	Short: "Turns quantized midi melodies into training arrays",
	Long: `Turns monophonic, eighth-note quantized midi files into measure grids
and windowed input/output arrays for sequence models.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(verbose)
		if err != nil {
			return err
		}
		logger = l
		loader.SetLogger(l)

		if configPath == "" {
			configPath = constants.GetConfigPath()
		}
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		opts = applyFlags(cmd, loaded)
		return opts.Validate()
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	defaults := config.Default()
	flags.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	flags.StringVar(&configPath, "config", "", "JSON options file (defaults to $MIDI2ARRAY_CONFIG)")
	flags.Int("track", defaults.Track, "track holding the melody")
	flags.Int("header-offset", defaults.HeaderOffset, "setup messages before the first note")
	flags.Uint32("ticks-per-slot", defaults.TicksPerSlot, "ticks in one eighth note, 0 reads it from the file")
	flags.Bool("eight-to-eight", defaults.EightToEight, "predict whole measures instead of sliding a window")
	flags.Int("memory-steps", defaults.MemorySteps, "slots in each sliding window input")
	flags.Bool("one-hot", defaults.OneHot, "one-hot encode the arrays")
	flags.Bool("beat-vector", defaults.BeatVector, "append a one-hot of the slot within the measure")
	flags.Bool("beat-index", defaults.BeatIndex, "append the slot within the measure as a number")
}

// applyFlags overrides o with every option flag set on the command line.
func applyFlags(cmd *cobra.Command, o config.Options) config.Options {
	flags := cmd.Flags()
	if flags.Changed("track") {
		o.Track, _ = flags.GetInt("track")
	}
	if flags.Changed("header-offset") {
		o.HeaderOffset, _ = flags.GetInt("header-offset")
	}
	if flags.Changed("ticks-per-slot") {
		o.TicksPerSlot, _ = flags.GetUint32("ticks-per-slot")
	}
	if flags.Changed("eight-to-eight") {
		o.EightToEight, _ = flags.GetBool("eight-to-eight")
	}
	if flags.Changed("memory-steps") {
		o.MemorySteps, _ = flags.GetInt("memory-steps")
	}
	if flags.Changed("one-hot") {
		o.OneHot, _ = flags.GetBool("one-hot")
	}
	if flags.Changed("beat-vector") {
		o.BeatVector, _ = flags.GetBool("beat-vector")
	}
	if flags.Changed("beat-index") {
		o.BeatIndex, _ = flags.GetBool("beat-index")
	}
	return o
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
