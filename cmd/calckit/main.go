package main

import "github.com/rpgo/calckit/internal/cli"

func main() {
	cli.Execute()
}
