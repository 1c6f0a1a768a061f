package main

import "github.com/juice-examples/juice-mnist/cmd"

func main() {
	cmd.Execute()
}
