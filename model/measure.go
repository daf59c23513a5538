package model

// Measure holds one slot value per eighth note: a note id on onsets,
// constants.Continuation while held, constants.Silence otherwise.
type Measure = []int

// Pairs are windowed training rows. Starts holds the slot (within the
// two-measure sequence) of the first value of each input row.
type Pairs struct {
	Inputs  [][]int
	Outputs [][]int
	Starts  []int
}
