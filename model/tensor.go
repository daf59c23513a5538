package model

import (
	"fmt"

	"github.com/pkg/errors"
)

// Tensor is a dense row-major array.
type Tensor struct {
	Shape []int     `json:"shape"`
	Data  []float32 `json:"data"`
}

func NewTensor(shape ...int) Tensor {
	size := 1
	for _, dim := range shape {
		size *= dim
	}
	return Tensor{Shape: shape, Data: make([]float32, size)}
}

// FromRows builds a (len(rows), width) tensor. width is used when rows is
// empty so the trailing shape survives.
func FromRows(rows [][]int, width int) Tensor {
	if len(rows) > 0 {
		width = len(rows[0])
	}
	t := NewTensor(len(rows), width)
	for i, row := range rows {
		for j, v := range row {
			t.Data[i*width+j] = float32(v)
		}
	}
	return t
}

// FromValues builds a one dimensional tensor.
func FromValues(values []int) Tensor {
	t := NewTensor(len(values))
	for i, v := range values {
		t.Data[i] = float32(v)
	}
	return t
}

func (t Tensor) offset(idx []int) int {
	if len(idx) != len(t.Shape) {
		panic(fmt.Sprintf("index %v does not match shape %v", idx, t.Shape))
	}
	off := 0
	for i, v := range idx {
		off = off*t.Shape[i] + v
	}
	return off
}

func (t Tensor) At(idx ...int) float32 {
	return t.Data[t.offset(idx)]
}

func (t Tensor) Set(v float32, idx ...int) {
	t.Data[t.offset(idx)] = v
}

// Len is the size of the first axis.
func (t Tensor) Len() int {
	if len(t.Shape) == 0 {
		return 0
	}
	return t.Shape[0]
}

// Concat appends other along the first axis.
func (t Tensor) Concat(other Tensor) (Tensor, error) {
	if len(t.Shape) == 0 {
		return other, nil
	}
	if len(t.Shape) != len(other.Shape) {
		return t, errors.Errorf("cannot concat shape %v with %v", t.Shape, other.Shape)
	}
	for i := 1; i < len(t.Shape); i++ {
		if t.Shape[i] != other.Shape[i] {
			return t, errors.Errorf("cannot concat shape %v with %v", t.Shape, other.Shape)
		}
	}

	shape := append([]int{t.Shape[0] + other.Shape[0]}, t.Shape[1:]...)
	data := make([]float32, 0, len(t.Data)+len(other.Data))
	data = append(data, t.Data...)
	data = append(data, other.Data...)
	return Tensor{Shape: shape, Data: data}, nil
}
