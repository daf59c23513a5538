package midi

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

// ReadMidi parses an SMF from r.
func ReadMidi(r io.Reader) (s *smf.SMF, e error) {
	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if rec := recover(); rec != nil {
			s = nil
			e = errors.Errorf("Error parsing midi file... %v", rec)
		}
	}()

	res, err := smf.ReadFrom(r)
	if err != nil {
		return nil, errors.Wrap(err, "Error parsing midi file...")
	}
	return res, nil
}

func ReadMidiFile(filepath string) (*smf.SMF, error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, errors.Wrap(err, "Error reading midi file...")
	}
	return ReadMidi(bytes.NewReader(dat))
}

// TicksPerSlot returns configured when set, otherwise an eighth note at
// the file's resolution.
func TicksPerSlot(s *smf.SMF, configured uint32) (uint32, error) {
	if configured != 0 {
		return configured, nil
	}
	ticks, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok {
		return 0, errors.New(fmt.Sprintf("unsupported time format %v, expected MetricTicks", s.TimeFormat))
	}
	res := uint32(ticks.Resolution()) / 2
	if res == 0 {
		return 0, errors.Errorf("resolution %v is too small", ticks.Resolution())
	}
	return res, nil
}
