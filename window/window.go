package window

import (
	"github.com/jsphweid/midi2array/constants"
	"github.com/jsphweid/midi2array/model"
	"github.com/jsphweid/midi2array/util"
	"github.com/pkg/errors"
)

var (
	ErrOddMeasureCount = errors.New("windowing needs an even number of measures")
	ErrMemorySteps     = errors.New("memory steps must be between 1 and 16")
)

// Alternate pairs every even measure (input) with the measure after it
// (output).
func Alternate(measures []model.Measure) (model.Pairs, error) {
	var p model.Pairs
	if len(measures)%2 != 0 {
		return p, errors.Wrapf(ErrOddMeasureCount, "got %v", len(measures))
	}

	for i, measure := range measures {
		row := append([]int(nil), measure...)
		if i%2 == 0 {
			p.Inputs = append(p.Inputs, row)
			p.Starts = append(p.Starts, 0)
		} else {
			p.Outputs = append(p.Outputs, row)
		}
	}
	return p, nil
}

// Slide walks each pair of measures as one 16 slot sequence. Every
// position from memorySteps on is an output, predicted from the
// memorySteps slots before it.
//
// [60,62,64,65,...] with memorySteps 2 gives inputs [[60,62],[62,64],...]
// and outputs [64,65,...].
func Slide(measures []model.Measure, memorySteps int) (model.Pairs, error) {
	var p model.Pairs
	if len(measures)%2 != 0 {
		return p, errors.Wrapf(ErrOddMeasureCount, "got %v", len(measures))
	}
	if memorySteps < 1 || memorySteps > constants.PairSlots {
		return p, errors.Wrapf(ErrMemorySteps, "got %v", memorySteps)
	}

	for _, seq := range util.Chunk(util.Flatten(measures), constants.PairSlots) {
		for i := memorySteps; i < len(seq); i++ {
			p.Inputs = append(p.Inputs, append([]int(nil), seq[i-memorySteps:i]...))
			p.Outputs = append(p.Outputs, []int{seq[i]})
			p.Starts = append(p.Starts, i-memorySteps)
		}
	}
	return p, nil
}

func Split(measures []model.Measure, eightToEight bool, memorySteps int) (model.Pairs, error) {
	if eightToEight {
		return Alternate(measures)
	}
	return Slide(measures, memorySteps)
}
