package main

import (
	"github.com/gungle/gungle/internal/cli"
)

func main() {
	cli.Execute()
}
