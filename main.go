package main

import "github.com/tristendillon/pydeps/cmd"

func main() {
	cmd.Execute()
}
