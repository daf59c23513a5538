package encode

import (
	"github.com/jsphweid/midi2array/constants"
	"github.com/jsphweid/midi2array/model"
	"github.com/pkg/errors"
)

var ErrUnknownSymbol = errors.New("symbol has no one-hot index")

// C major from middle C to the octave, then continuation and silence.
var symbols = [...]int{60, 62, 64, 65, 67, 69, 71, 72, constants.Continuation, constants.Silence}

var indexes = func() map[int]int {
	res := make(map[int]int, len(symbols))
	for i, s := range symbols {
		res[s] = i
	}
	return res
}()

const NumSymbols = len(symbols)

type Options struct {
	// one-hot of the slot within the measure
	BeatVector bool
	// slot within the measure as a plain number
	BeatIndex bool
}

func Symbols() []int {
	return append([]int(nil), symbols[:]...)
}

func Index(symbol int) (int, error) {
	i, ok := indexes[symbol]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownSymbol, "%v", symbol)
	}
	return i, nil
}

func Symbol(index int) (int, error) {
	if index < 0 || index >= NumSymbols {
		return 0, errors.Errorf("one-hot index %v out of range", index)
	}
	return symbols[index], nil
}

func Width(opts Options) int {
	width := NumSymbols
	if opts.BeatVector {
		width += constants.BeatsPerMeasure
	}
	if opts.BeatIndex {
		width++
	}
	return width
}

// Encode turns rows of symbols into a (rows, rowLen, width) tensor.
// starts gives the measure slot of the first value of each row and may be
// nil when every row starts on the downbeat.
func Encode(rows [][]int, starts []int, opts Options) (model.Tensor, error) {
	rowLen := 0
	if len(rows) > 0 {
		rowLen = len(rows[0])
	}
	if starts != nil && len(starts) != len(rows) {
		return model.Tensor{}, errors.Errorf("%v starts for %v rows", len(starts), len(rows))
	}

	width := Width(opts)
	t := model.NewTensor(len(rows), rowLen, width)
	for i, row := range rows {
		if len(row) != rowLen {
			return model.Tensor{}, errors.Errorf("row %v has %v values, expected %v", i, len(row), rowLen)
		}
		start := 0
		if starts != nil {
			start = starts[i]
		}
		for j, symbol := range row {
			idx, err := Index(symbol)
			if err != nil {
				return model.Tensor{}, errors.Wrapf(err, "row %v slot %v", i, j)
			}
			t.Set(1, i, j, idx)

			beat := (start + j) % constants.BeatsPerMeasure
			if opts.BeatVector {
				t.Set(1, i, j, NumSymbols+beat)
			}
			if opts.BeatIndex {
				t.Set(float32(beat), i, j, width-1)
			}
		}
	}
	return t, nil
}

func Measures(measures []model.Measure, opts Options) (model.Tensor, error) {
	return Encode(measures, nil, opts)
}

// Decode recovers symbols from a (rows, rowLen, width) tensor by taking
// the largest of the symbol features. Beat features are ignored.
func Decode(t model.Tensor) ([][]int, error) {
	if len(t.Shape) != 3 || t.Shape[2] < NumSymbols {
		return nil, errors.Errorf("cannot decode shape %v", t.Shape)
	}

	rows := make([][]int, t.Shape[0])
	for i := range rows {
		rows[i] = make([]int, t.Shape[1])
		for j := range rows[i] {
			best := 0
			for k := 1; k < NumSymbols; k++ {
				if t.At(i, j, k) > t.At(i, j, best) {
					best = k
				}
			}
			rows[i][j] = symbols[best]
		}
	}
	return rows, nil
}
