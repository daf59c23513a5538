package window

import (
	"testing"

	"github.com/jsphweid/midi2array/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var scale = []model.Measure{
	{60, 62, 64, 65, 67, 69, 71, 72},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

func TestAlternate(t *testing.T) {
	measures := []model.Measure{
		{60, 1, 1, 1, 0, 0, 0, 0},
		{62, 1, 1, 1, 0, 0, 0, 0},
		{64, 1, 0, 0, 65, 1, 0, 0},
		{67, 1, 1, 1, 1, 1, 1, 1},
	}
	p, err := Alternate(measures)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Len(p.Inputs, len(measures)/2)
	assert.Len(p.Outputs, len(measures)/2)
	assert.Equal([][]int{measures[0], measures[2]}, p.Inputs)
	assert.Equal([][]int{measures[1], measures[3]}, p.Outputs)
	assert.Equal([]int{0, 0}, p.Starts)
}

func TestAlternateCopiesRows(t *testing.T) {
	measures := []model.Measure{{60, 0, 0, 0, 0, 0, 0, 0}, {62, 0, 0, 0, 0, 0, 0, 0}}
	p, err := Alternate(measures)
	require.NoError(t, err)

	p.Inputs[0][0] = 72
	assert.Equal(t, 60, measures[0][0])
}

func TestSlideScale(t *testing.T) {
	p, err := Slide(scale, 2)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Len(p.Inputs, 14)
	assert.Len(p.Outputs, 14)
	assert.Equal([]int{60, 62}, p.Inputs[0])
	assert.Equal([]int{64}, p.Outputs[0])
	assert.Equal([]int{71, 72}, p.Inputs[6])
	assert.Equal([]int{0}, p.Outputs[6])
	assert.Equal([]int{0, 0}, p.Inputs[13])
	assert.Equal([]int{0}, p.Outputs[13])
	assert.Equal(13, p.Starts[13])
}

func TestSlideCountsForEveryMemoryStep(t *testing.T) {
	measures := append(append([]model.Measure{}, scale...), scale...)
	for steps := 1; steps <= 16; steps++ {
		p, err := Slide(measures, steps)
		require.NoError(t, err)
		assert.Len(t, p.Inputs, len(p.Outputs))
		assert.Len(t, p.Inputs, 2*(16-steps))
		for _, row := range p.Inputs {
			assert.Len(t, row, steps)
		}
	}
}

func TestOddMeasureCount(t *testing.T) {
	_, err := Alternate(scale[:1])
	assert.ErrorIs(t, err, ErrOddMeasureCount)

	_, err = Slide(scale[:1], 2)
	assert.ErrorIs(t, err, ErrOddMeasureCount)
}

func TestMemoryStepsOutOfRange(t *testing.T) {
	for _, steps := range []int{0, -1, 17} {
		_, err := Slide(scale, steps)
		assert.ErrorIs(t, err, ErrMemorySteps)
	}
}

func TestSplitPicksMode(t *testing.T) {
	alternating, err := Split(scale, true, 2)
	require.NoError(t, err)
	assert.Len(t, alternating.Inputs, 1)

	sliding, err := Split(scale, false, 2)
	require.NoError(t, err)
	assert.Len(t, sliding.Inputs, 14)
}
