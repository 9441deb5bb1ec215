package main

import "github.com/kozaktomas/people-page/cmd"

func main() {
	cmd.Execute()
}
