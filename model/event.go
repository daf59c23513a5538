package model

type EventKind uint8

const (
	Other EventKind = iota
	NoteOn
	NoteOff
	EndOfTrack
)

func (k EventKind) String() string {
	switch k {
	case NoteOn:
		return "note_on"
	case NoteOff:
		return "note_off"
	case EndOfTrack:
		return "end_of_track"
	default:
		return "other"
	}
}

// Event is one track message reduced to what the segmenter needs.
// Delta is measured in beat-slots, not ticks.
type Event struct {
	Kind  EventKind
	Value int
	Delta int
}
