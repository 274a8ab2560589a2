package main

import (
	"os"

	"github.com/ftahirops/xpm/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
