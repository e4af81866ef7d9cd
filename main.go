package main

import "github.com/robalobadob/wordboard/internal/cli"

func main() {
	cli.Execute()
}
