package main

import "github.com/zbiljic/jskit/cmd"

func main() {
	cmd.Execute()
}
