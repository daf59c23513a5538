package util

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

func IsMidiPath(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasSuffix(lower, ".mid") || strings.HasSuffix(lower, ".midi")
}

// GatherAllMidiPaths walks path for midi files. A maxNum of 0 means no limit.
func GatherAllMidiPaths(path string, maxNum int) ([]string, error) {
	var res []string
	walk := func(s string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && IsMidiPath(s) {
			if maxNum == 0 || len(res) < maxNum {
				res = append(res, s)
			}
		}
		return nil
	}
	if err := filepath.WalkDir(path, walk); err != nil {
		return nil, errors.Wrapf(err, "could not walk %v", path)
	}
	return res, nil
}

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

// Fill returns n copies of v, or nothing when n is not positive.
func Fill[A constraints.Integer](n int, v A) []A {
	if n <= 0 {
		return nil
	}
	res := make([]A, n)
	for i := range res {
		res[i] = v
	}
	return res
}

func Flatten[A any](rows [][]A) []A {
	var res []A
	for _, row := range rows {
		res = append(res, row...)
	}
	return res
}

func Chunk[A any](values []A, size int) [][]A {
	var res [][]A
	for size > 0 && len(values) > 0 {
		n := Min(size, len(values))
		res = append(res, values[:n])
		values = values[n:]
	}
	return res
}

func Min[A constraints.Integer](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

func CreateBinary(filename string, data any) error {
	buf := new(bytes.Buffer)
	encoder := gob.NewEncoder(buf)
	if err := encoder.Encode(data); err != nil {
		return errors.Wrap(err, "could not gob encode")
	}
	if err := os.WriteFile(filename, buf.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, "write failed for file %v", filename)
	}
	return nil
}

func ReadBinary[A any](path string) (A, error) {
	var data A
	f, err := os.Open(path)
	if err != nil {
		return data, errors.Wrap(err, "could not load binary file")
	}
	defer f.Close()

	if err := gob.NewDecoder(f).Decode(&data); err != nil {
		return data, errors.Wrap(err, "could not decode binary file")
	}
	return data, nil
}

func CreateJSON(filename string, data any) error {
	b, err := json.Marshal(data)
	if err != nil {
		return errors.Wrap(err, "could not json encode")
	}
	if err := os.WriteFile(filename, b, 0644); err != nil {
		return errors.Wrapf(err, "write failed for file %v", filename)
	}
	return nil
}

func ReadJSON[A any](path string) (A, error) {
	var data A
	b, err := os.ReadFile(path)
	if err != nil {
		return data, errors.Wrap(err, "could not read json file")
	}
	if err := json.Unmarshal(b, &data); err != nil {
		return data, errors.Wrapf(err, "could not decode %v", path)
	}
	return data, nil
}
