package sample

import (
	"bytes"

	"github.com/jsphweid/midi2array/constants"
	"github.com/jsphweid/midi2array/model"
	"github.com/jsphweid/midi2array/util"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	channel  = 0
	velocity = 100
)

// header mirrors the 7 setup messages Logic Pro X writes before the first
// note, see constants.DefaultHeaderOffset.
func header(name string) []smf.Message {
	microsecondsPerBeat := uint32(60000000 / constants.DefaultTempo)
	if len(name) > 127 {
		name = name[:127]
	}
	nameMsg := append(smf.Message{0xFF, 0x03, byte(len(name))}, name...)
	return []smf.Message{
		nameMsg,
		{0xFF, 0x04, 0x00}, // instrument name
		{0xFF, 0x58, 0x04, 0x04, 0x02, 0x18, 0x08},
		{
			0xFF, 0x51, 0x03,
			byte(microsecondsPerBeat >> 16),
			byte(microsecondsPerBeat >> 8),
			byte(microsecondsPerBeat),
		},
		smf.Message(midi.ProgramChange(channel, 0)),
		smf.Message(midi.ControlChange(channel, 7, 100)), // volume
		smf.Message(midi.ControlChange(channel, 10, 64)), // pan
	}
}

// Create renders a measure grid back into a single track file: each onset
// becomes a note held for itself plus its continuations, silence becomes
// the delta before the next note.
func Create(measures []model.Measure, name string) (*smf.SMF, error) {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(constants.DefaultResolution)
	tps := uint32(constants.DefaultTicksPerSlot)

	var track smf.Track
	for _, msg := range header(name) {
		track.Add(0, msg)
	}

	silence := 0
	slots := util.Flatten(measures)
	for i := 0; i < len(slots); i++ {
		v := slots[i]
		if v == constants.Silence || v == constants.Continuation {
			// a continuation with nothing sounding is silence
			silence++
			continue
		}
		if v < 0 || v > 127 {
			return nil, errors.Errorf("slot %v holds %v which is not a midi key", i, v)
		}

		held := 1
		for i+1 < len(slots) && slots[i+1] == constants.Continuation {
			held++
			i++
		}
		track.Add(uint32(silence)*tps, midi.NoteOn(channel, uint8(v), velocity))
		track.Add(uint32(held)*tps, midi.NoteOff(channel, uint8(v)))
		silence = 0
	}
	track.Close(uint32(silence) * tps)

	s.Add(track)
	return s, nil
}

// Bytes renders measures straight to SMF bytes.
func Bytes(measures []model.Measure, name string) ([]byte, error) {
	s, err := Create(measures, name)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		return nil, errors.Wrap(err, "failed to write MIDI")
	}
	return buf.Bytes(), nil
}
