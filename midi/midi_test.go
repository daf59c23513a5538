package midi

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/midi2array/constants"
	"github.com/jsphweid/midi2array/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func buildSMF(closed bool) *smf.SMF {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(480)

	var track smf.Track
	track.Add(0, smf.Message{0xFF, 0x58, 0x04, 0x04, 0x02, 0x18, 0x08})
	track.Add(480, gomidi.NoteOn(0, 60, 100))
	track.Add(720, gomidi.NoteOff(0, 60))
	// velocity 0 note on ends a note too
	track.Add(100, gomidi.NoteOn(0, 62, 90))
	track.Add(240, gomidi.NoteOn(0, 62, 0))
	if !closed {
		s.Tracks = append(s.Tracks, track)
		return s
	}
	track.Close(960)
	s.Add(track)
	return s
}

func TestToEvent(t *testing.T) {
	cases := []struct {
		name     string
		event    smf.Event
		expected model.Event
	}{
		{"note on", smf.Event{Delta: 480, Message: smf.Message(gomidi.NoteOn(0, 64, 100))}, model.Event{Kind: model.NoteOn, Value: 64, Delta: 2}},
		{"note off", smf.Event{Delta: 720, Message: smf.Message(gomidi.NoteOff(0, 64))}, model.Event{Kind: model.NoteOff, Value: 64, Delta: 3}},
		{"silent note on", smf.Event{Delta: 240, Message: smf.Message(gomidi.NoteOn(1, 65, 0))}, model.Event{Kind: model.NoteOff, Value: 65, Delta: 1}},
		{"end of track", smf.Event{Delta: 1200, Message: smf.Message{0xFF, 0x2F, 0x00}}, model.Event{Kind: model.EndOfTrack, Value: constants.NoNote, Delta: 5}},
		{"tempo", smf.Event{Delta: 0, Message: smf.Message{0xFF, 0x51, 0x03, 0x07, 0xA1, 0x20}}, model.Event{Kind: model.Other, Value: constants.NoNote}},
		{"fraction truncated", smf.Event{Delta: 479, Message: smf.Message(gomidi.NoteOn(0, 60, 1))}, model.Event{Kind: model.NoteOn, Value: 60, Delta: 1}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, ToEvent(c.event, constants.DefaultTicksPerSlot))
		})
	}
}

func TestReadTrack(t *testing.T) {
	events, err := ReadTrack(buildSMF(true), 0, 240)
	require.NoError(t, err)

	assert.Equal(t, []model.Event{
		{Kind: model.Other, Value: constants.NoNote, Delta: 0},
		{Kind: model.NoteOn, Value: 60, Delta: 2},
		{Kind: model.NoteOff, Value: 60, Delta: 3},
		{Kind: model.NoteOn, Value: 62, Delta: 0},
		{Kind: model.NoteOff, Value: 62, Delta: 1},
		{Kind: model.EndOfTrack, Value: constants.NoNote, Delta: 4},
	}, events)
}

func TestReadTrackAddsEndOfTrack(t *testing.T) {
	events, err := ReadTrack(buildSMF(false), 0, 240)
	require.NoError(t, err)

	last := events[len(events)-1]
	assert.Equal(t, model.EndOfTrack, last.Kind)
	assert.Equal(t, 0, last.Delta)
}

func TestReadTrackErrors(t *testing.T) {
	_, err := ReadTrack(buildSMF(true), 1, 240)
	assert.ErrorIs(t, err, ErrTrackNum)

	_, err = ReadTrack(buildSMF(true), 0, 0)
	assert.Error(t, err)
}

func TestTicksPerSlot(t *testing.T) {
	s := buildSMF(true)

	tps, err := TicksPerSlot(s, 0)
	require.NoError(t, err)
	assert.Equal(t, uint32(240), tps)

	tps, err = TicksPerSlot(s, 120)
	require.NoError(t, err)
	assert.Equal(t, uint32(120), tps)
}

func TestReadMidiFile(t *testing.T) {
	var buf bytes.Buffer
	_, err := buildSMF(true).WriteTo(&buf)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "test.mid")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))

	s, err := ReadMidiFile(path)
	require.NoError(t, err)
	require.Len(t, s.Tracks, 1)

	events, err := ReadTrack(s, 0, 240)
	require.NoError(t, err)
	assert.Equal(t, model.NoteOn, events[1].Kind)
	assert.Equal(t, 60, events[1].Value)
}

func TestReadMidiErrors(t *testing.T) {
	_, err := ReadMidiFile(filepath.Join(t.TempDir(), "missing.mid"))
	assert.Error(t, err)

	_, err = ReadMidi(bytes.NewReader([]byte("MThd garbage")))
	assert.Error(t, err)
}
