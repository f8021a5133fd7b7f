package main

import "github.com/aiagentinc/progstream/internal/cli"

func main() {
	cli.Execute()
}
