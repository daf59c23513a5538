package segment

import (
	"github.com/jsphweid/midi2array/constants"
	"github.com/jsphweid/midi2array/model"
	"github.com/jsphweid/midi2array/util"
	"github.com/pkg/errors"
)

var ErrTrackExhausted = errors.New("track ended in the middle of a note")

// GetMeasure builds the measure that starts at eventNum, an onset event,
// after leadingSilence silent slots. Events are expected to alternate
// onset/release. It returns the measure, the onset the next measure
// starts at and how many silent slots spilled over into it.
func GetMeasure(events []model.Event, eventNum int, leadingSilence int) (model.Measure, int, int, error) {
	measure := make(model.Measure, 0, 2*constants.BeatsPerMeasure)
	measure = append(measure, util.Fill(leadingSilence, constants.Silence)...)

	for len(measure) < constants.BeatsPerMeasure {
		if eventNum >= len(events) {
			return nil, eventNum, 0, errors.Wrapf(ErrTrackExhausted, "no event %v", eventNum)
		}

		onset := events[eventNum]
		if onset.Kind == model.EndOfTrack {
			// last measure, nothing sounds until the end
			rest := constants.BeatsPerMeasure - len(measure)
			measure = append(measure, util.Fill(rest, constants.Silence)...)
			// nothing past the end of track is read
			eventNum = len(events) - 1
			break
		}
		if eventNum+2 >= len(events) {
			return nil, eventNum, 0, errors.Wrapf(ErrTrackExhausted, "note at event %v", eventNum)
		}

		measure = append(measure, onset.Value)

		held := events[eventNum+1].Delta
		measure = append(measure, util.Fill(held-1, constants.Continuation)...)

		gap := events[eventNum+2].Delta
		measure = append(measure, util.Fill(gap, constants.Silence)...)

		eventNum += 2
	}

	leftover := len(measure) - constants.BeatsPerMeasure
	return measure[:constants.BeatsPerMeasure:constants.BeatsPerMeasure], eventNum, leftover, nil
}

// GetMeasures segments a whole track starting at the first onset,
// eventNum. The delta of that onset is the silence the track opens with.
func GetMeasures(events []model.Event, eventNum int) ([]model.Measure, error) {
	if eventNum < 0 || eventNum >= len(events) {
		return nil, errors.Errorf("first note %v is outside a track of %v events", eventNum, len(events))
	}

	var measures []model.Measure
	leadingSilence := events[eventNum].Delta
	for eventNum+1 < len(events) {
		measure, next, leftover, err := GetMeasure(events, eventNum, leadingSilence)
		if err != nil {
			return measures, errors.Wrapf(err, "measure %v", len(measures))
		}
		measures = append(measures, measure)
		eventNum, leadingSilence = next, leftover
	}
	return measures, nil
}
