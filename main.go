package main

import (
	"fmt"
	"os"
)

func main() {
	cli := parseArgs(os.Args[1:])
	cfg := LoadConfigOrDefault()

	switch cli.mode {
	case versionMode:
		fmt.Println("dispatchgen", version)
	case checkMode:
		runCheck(cli.Check, cfg)
	default:
		runGen(cli.Gen, cfg)
	}
}
