package main

import "github.com/mcoot/wordfeud-go/internal/cli"

func main() {
	cli.Execute()
}
