package main

import (
	"github.com/db47h/logictab/internal/cli"
)

func main() {
	cli.Execute()
}
