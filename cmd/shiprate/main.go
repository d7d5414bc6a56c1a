package main

import "github.com/aalvaropc/shiprate/internal/cli"

func main() {
	cli.Execute()
}
