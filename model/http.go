package model

type ErrorResponse struct {
	Error string `json:"detail"`
}

type SymbolsResponse struct {
	Symbols []int `json:"symbols"`
}
