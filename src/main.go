package main

import (
	"github.com/dmsolve/truthtable/src/cmd"
)

func main() {
	cmd.Execute()
}
