package constants

import "os"

const BeatsPerMeasure = 8

// two consecutive measures, the unit the sliding window walks over
const PairSlots = 2 * BeatsPerMeasure

// slot values besides note ids
const (
	Silence      = 0
	Continuation = 1
)

// value of an event that carries no note (end of track, setup messages)
const NoNote = -1

// 480 ticks per quarter note, so 240 per eighth
const DefaultTicksPerSlot = 240

// Logic Pro X writes 7 setup messages (name, tempo, meter, ...) before the first note
const DefaultHeaderOffset = 7

const DefaultMemorySteps = 8

const DefaultResolution = 480

const DefaultTempo = 120

func GetOutputDir() string {
	path := os.Getenv("MIDI2ARRAY_OUT_DIR")
	if path != "" {
		return path
	}
	return "./out"
}

func GetServeAddr() string {
	addr := os.Getenv("MIDI2ARRAY_ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}

// empty when unset, callers fall back to defaults
func GetConfigPath() string {
	return os.Getenv("MIDI2ARRAY_CONFIG")
}
