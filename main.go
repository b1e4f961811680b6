package main

import "github.com/zbiljic/gitprompt/cmd"

func main() {
	cmd.Execute()
}
