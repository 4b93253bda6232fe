package main

import "github.com/go-polyclip/polyclip/cmd/polyclip/cmd"

func main() {
	cmd.Execute()
}
