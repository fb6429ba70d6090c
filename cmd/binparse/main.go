package main

import (
	"errors"
	"fmt"
	"os"
)

// Set via -ldflags at build time.
var gitCommit = "unknown"

// main is the main entry point for binparse.
func main() {
	if len(os.Args) <= 1 {
		printHelp()
		return
	}

	var err error

	switch os.Args[1] {
	case "help", "--help", "-h":
		printHelp()

	case "version", "--version", "-v":
		fmt.Println("binparse", gitCommit)

	case "dump":
		err = dump(os.Args[2:])

	default:
		err = errors.New("unrecognized command \"" + os.Args[1] + "\"")
	}

	if err != nil {
		fmt.Println(err.Error())
		printHelp()
		os.Exit(1)
	}
}

// printHelp prints the help message for the program.
func printHelp() {
	fmt.Println("Usage:")
	fmt.Println("  binparse help")
	fmt.Println("  binparse version")
	fmt.Println("  binparse dump -s <fieldspec> [file...]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  help       Prints this help message.")
	fmt.Println("  version    Prints version information about this tool.")
	fmt.Println("  dump       Decodes the input file(s), or stdin, according to the field spec.")
	fmt.Println()
	fmt.Println("Field specs are whitespace- or comma-separated tokens, optionally")
	fmt.Println("labeled \"name:\":")
	fmt.Println("  u<N>       unsigned integer of N bits (N <= 64)")
	fmt.Println("  i<N>       signed integer of N bits (N <= 64)")
	fmt.Println("  flag       a single bit, printed as a boolean")
	fmt.Println("  ue / se    unsigned / signed Exp-Golomb code")
	fmt.Println("  b<N>       N raw bytes, printed as hex")
	fmt.Println("  align[<N>] align the cursor to an N-byte boundary (default 1)")
	fmt.Println("  skip<N>    discard N bits")
	fmt.Println()
	fmt.Println("Example:")
	fmt.Println("  binparse dump -s 'magic:u16 flag width:ue height:ue delta:se' header.bin")
}
