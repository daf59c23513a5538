package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/jsphweid/midi2array/constants"
	"github.com/jsphweid/midi2array/encode"
	"github.com/pkg/errors"
)

var ErrInvalidOptions = errors.New("invalid options")

// Options controls how one file is turned into training arrays.
type Options struct {
	Track int `json:"track"`
	// number of setup messages before the first note
	HeaderOffset int `json:"headerOffset"`
	// 0 derives an eighth note from the file resolution
	TicksPerSlot uint32 `json:"ticksPerSlot"`
	// measure predicts measure when true, otherwise a sliding window
	EightToEight bool `json:"eightToEight"`
	MemorySteps  int  `json:"memorySteps"`
	OneHot       bool `json:"oneHot"`
	BeatVector   bool `json:"beatVector"`
	BeatIndex    bool `json:"beatIndex"`
}

func Default() Options {
	return Options{
		Track:        0,
		HeaderOffset: constants.DefaultHeaderOffset,
		TicksPerSlot: constants.DefaultTicksPerSlot,
		EightToEight: true,
		MemorySteps:  constants.DefaultMemorySteps,
		OneHot:       true,
	}
}

func (o Options) Validate() error {
	if o.Track < 0 {
		return errors.Wrapf(ErrInvalidOptions, "track %v", o.Track)
	}
	if o.HeaderOffset < 0 {
		return errors.Wrapf(ErrInvalidOptions, "headerOffset %v", o.HeaderOffset)
	}
	if !o.EightToEight && (o.MemorySteps < 1 || o.MemorySteps > constants.PairSlots) {
		return errors.Wrapf(ErrInvalidOptions, "memorySteps %v not in [1, %v]", o.MemorySteps, constants.PairSlots)
	}
	return nil
}

func (o Options) Encoding() encode.Options {
	return encode.Options{BeatVector: o.BeatVector, BeatIndex: o.BeatIndex}
}

// Load reads options from a JSON file. Fields missing from the file keep
// their defaults, and a missing file means all defaults.
func Load(path string) (Options, error) {
	opts := Default()
	if path == "" {
		return opts, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return opts, nil
		}
		return opts, errors.Wrapf(err, "could not read config %v", path)
	}

	if err := json.Unmarshal(data, &opts); err != nil {
		return Default(), errors.Wrapf(err, "could not parse config %v", path)
	}
	return opts, opts.Validate()
}

func (o Options) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
