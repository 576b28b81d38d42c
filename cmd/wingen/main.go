package main

import "github.com/aalvaropc/wingen/internal/cli"

func main() {
	cli.Execute()
}
