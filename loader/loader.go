package loader

import (
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jsphweid/midi2array/config"
	"github.com/jsphweid/midi2array/constants"
	"github.com/jsphweid/midi2array/encode"
	"github.com/jsphweid/midi2array/midi"
	"github.com/jsphweid/midi2array/model"
	"github.com/jsphweid/midi2array/segment"
	"github.com/jsphweid/midi2array/window"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
	"go.uber.org/zap"
)

var logger = zap.NewNop()

func SetLogger(l *zap.Logger) {
	logger = l
}

// Measures reads the configured track of s as a measure grid.
func Measures(s *smf.SMF, opts config.Options) ([]model.Measure, error) {
	tps, err := midi.TicksPerSlot(s, opts.TicksPerSlot)
	if err != nil {
		return nil, err
	}
	events, err := midi.ReadTrack(s, opts.Track, tps)
	if err != nil {
		return nil, err
	}
	return segment.GetMeasures(events, opts.HeaderOffset)
}

// Arrays windows measures into inputs and outputs, one-hot encoded when
// opts.OneHot is set. Outputs never carry beat features.
func Arrays(measures []model.Measure, opts config.Options) (model.Tensor, model.Tensor, error) {
	var inputs, outputs model.Tensor
	if err := opts.Validate(); err != nil {
		return inputs, outputs, err
	}

	pairs, err := window.Split(measures, opts.EightToEight, opts.MemorySteps)
	if err != nil {
		return inputs, outputs, err
	}

	rowLen := constants.BeatsPerMeasure
	if !opts.EightToEight {
		rowLen = opts.MemorySteps
	}

	if !opts.OneHot {
		inputs = model.FromRows(pairs.Inputs, rowLen)
		if opts.EightToEight {
			outputs = model.FromRows(pairs.Outputs, rowLen)
		} else {
			values := make([]int, len(pairs.Outputs))
			for i, row := range pairs.Outputs {
				values[i] = row[0]
			}
			outputs = model.FromValues(values)
		}
		return inputs, outputs, nil
	}

	inputs, err = encode.Encode(pairs.Inputs, pairs.Starts, opts.Encoding())
	if err != nil {
		return inputs, outputs, errors.Wrap(err, "could not encode inputs")
	}
	outputs, err = encode.Encode(pairs.Outputs, nil, encode.Options{})
	if err != nil {
		return inputs, outputs, errors.Wrap(err, "could not encode outputs")
	}
	if len(pairs.Inputs) == 0 {
		// keep the trailing shape of an empty result
		inputs = model.NewTensor(0, rowLen, encode.Width(opts.Encoding()))
		outLen := rowLen
		if !opts.EightToEight {
			outLen = 1
		}
		outputs = model.NewTensor(0, outLen, encode.NumSymbols)
	}
	return inputs, outputs, nil
}

func LoadSMF(s *smf.SMF, opts config.Options) (model.Dataset, error) {
	var d model.Dataset
	if err := opts.Validate(); err != nil {
		return d, err
	}

	measures, err := Measures(s, opts)
	if err != nil {
		return d, err
	}
	inputs, outputs, err := Arrays(measures, opts)
	if err != nil {
		return d, err
	}

	d.ID = uuid.New().String()
	d.Sources = make(model.FileNumToMidiPath)
	d.Measures = len(measures)
	d.Inputs = inputs
	d.Outputs = outputs
	return d, nil
}

func LoadFile(path string, opts config.Options) (model.Dataset, error) {
	s, err := midi.ReadMidiFile(path)
	if err != nil {
		return model.Dataset{}, err
	}
	d, err := LoadSMF(s, opts)
	if err != nil {
		return d, errors.Wrapf(err, "could not load %v", path)
	}
	d.Sources[0] = path
	logger.Debug("loaded midi file",
		zap.String("path", path),
		zap.Int("measures", d.Measures),
		zap.Ints("inputs", d.Inputs.Shape),
		zap.Ints("outputs", d.Outputs.Shape))
	return d, nil
}

// LoadData returns the model inputs and outputs for one midi file.
func LoadData(path string, opts config.Options) (model.Tensor, model.Tensor, error) {
	d, err := LoadFile(path, opts)
	if err != nil {
		return model.Tensor{}, model.Tensor{}, err
	}
	return d.Inputs, d.Outputs, nil
}

// LoadAll concatenates the datasets of every file. Files that fail to
// load are skipped; it is an error only when none load.
func LoadAll(paths []string, opts config.Options) (model.Dataset, error) {
	res := model.Dataset{
		ID:      uuid.New().String(),
		Sources: make(model.FileNumToMidiPath),
	}

	for i, path := range paths {
		logger.Debug("processing midi file", zap.Int("num", i+1), zap.Int("of", len(paths)), zap.String("path", path))
		d, err := LoadFile(path, opts)
		if err != nil {
			logger.Warn("skipping midi file", zap.String("path", path), zap.Error(err))
			continue
		}

		inputs, err := res.Inputs.Concat(d.Inputs)
		if err != nil {
			logger.Warn("skipping midi file", zap.String("path", path), zap.Error(err))
			continue
		}
		outputs, err := res.Outputs.Concat(d.Outputs)
		if err != nil {
			logger.Warn("skipping midi file", zap.String("path", path), zap.Error(err))
			continue
		}

		res.Inputs, res.Outputs = inputs, outputs
		res.Sources[uint32(len(res.Sources))] = filepath.Clean(path)
		res.Measures += d.Measures
	}

	if len(res.Sources) == 0 {
		return res, errors.Errorf("none of %v midi files could be loaded", len(paths))
	}
	return res, nil
}
