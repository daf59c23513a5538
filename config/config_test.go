package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	opts := Default()

	assert := assert.New(t)
	assert.NoError(opts.Validate())
	assert.Equal(7, opts.HeaderOffset)
	assert.Equal(uint32(240), opts.TicksPerSlot)
	assert.True(opts.EightToEight)
	assert.True(opts.OneHot)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(o *Options){
		"negative track":         func(o *Options) { o.Track = -1 },
		"negative header offset": func(o *Options) { o.HeaderOffset = -3 },
		"zero memory steps":      func(o *Options) { o.EightToEight = false; o.MemorySteps = 0 },
		"too many memory steps":  func(o *Options) { o.EightToEight = false; o.MemorySteps = 17 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			opts := Default()
			mutate(&opts)
			assert.ErrorIs(t, opts.Validate(), ErrInvalidOptions)
		})
	}

	// memory steps only matter for the sliding window
	opts := Default()
	opts.MemorySteps = 0
	assert.NoError(t, opts.Validate())
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	opts, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, Default(), opts)

	opts, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), opts)
}

func TestLoadKeepsDefaultsForMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"eightToEight": false, "memorySteps": 4}`), 0644))

	opts, err := Load(path)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.False(opts.EightToEight)
	assert.Equal(4, opts.MemorySteps)
	assert.Equal(7, opts.HeaderOffset)
	assert.True(opts.OneHot)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	opts := Default()
	opts.BeatVector = true
	opts.TicksPerSlot = 0

	require.NoError(t, opts.Save(path))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, opts, loaded)
}

func TestLoadBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{`), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
