package midi

import (
	"github.com/jsphweid/midi2array/constants"
	"github.com/jsphweid/midi2array/model"
	"github.com/pkg/errors"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

var ErrTrackNum = errors.New("track does not exist")

const (
	metaStatus     = 0xFF
	metaEndOfTrack = 0x2F
)

func isEndOfTrack(msg smf.Message) bool {
	return len(msg) > 1 && msg[0] == metaStatus && msg[1] == metaEndOfTrack
}

// ToEvent reduces a track event to its kind, note and delta in beat-slots.
// Fractional slots are truncated.
func ToEvent(ev smf.Event, ticksPerSlot uint32) model.Event {
	delta := int(ev.Delta / ticksPerSlot)
	msg := gomidi.Message(ev.Message)

	var channel, key, velocity uint8
	switch {
	case isEndOfTrack(ev.Message):
		return model.Event{Kind: model.EndOfTrack, Value: constants.NoNote, Delta: delta}
	case msg.GetNoteStart(&channel, &key, &velocity):
		return model.Event{Kind: model.NoteOn, Value: int(key), Delta: delta}
	case msg.GetNoteEnd(&channel, &key):
		return model.Event{Kind: model.NoteOff, Value: int(key), Delta: delta}
	default:
		return model.Event{Kind: model.Other, Value: constants.NoNote, Delta: delta}
	}
}

// ReadTrack converts every event of one track. The result always ends
// with an EndOfTrack event.
func ReadTrack(s *smf.SMF, trackNum int, ticksPerSlot uint32) ([]model.Event, error) {
	if trackNum < 0 || trackNum >= len(s.Tracks) {
		return nil, errors.Wrapf(ErrTrackNum, "track %v of %v", trackNum, len(s.Tracks))
	}
	if ticksPerSlot == 0 {
		return nil, errors.New("ticksPerSlot must be positive")
	}

	track := s.Tracks[trackNum]
	events := make([]model.Event, 0, len(track)+1)
	for _, ev := range track {
		events = append(events, ToEvent(ev, ticksPerSlot))
	}

	if len(events) == 0 || events[len(events)-1].Kind != model.EndOfTrack {
		events = append(events, model.Event{Kind: model.EndOfTrack, Value: constants.NoNote})
	}
	return events, nil
}
