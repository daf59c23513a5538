package main

import "github.com/jsphweid/midi2array/cmd"

func main() {
	cmd.Execute()
}
