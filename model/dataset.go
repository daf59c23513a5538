package model

type FileNumToMidiPath = map[uint32]string

type Dataset struct {
	ID       string            `json:"id"`
	Sources  FileNumToMidiPath `json:"sources"`
	Measures int               `json:"measures"`
	Inputs   Tensor            `json:"inputs"`
	Outputs  Tensor            `json:"outputs"`
}
