package main

import "github.com/saulo-duarte/lifeboard/cmd/lifeboard/cmd"

func main() {
	cmd.Execute()
}
