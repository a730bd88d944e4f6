package main

import (
	"github.com/arvheim/fkit/cmd"
)

func main() {
	cmd.Execute()
}
