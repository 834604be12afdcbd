// ptlang - parser front end for the pt language
//
// Tokenizes and parses pt source files and prints the syntax tree.
package main

import (
	"os"

	"github.com/kolkov/ptlang/cmd/ptlang/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
