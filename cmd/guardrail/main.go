package main

import "github.com/guardrail-dev/guardrail/pkg/cli"

func main() {
	cli.Main()
}
