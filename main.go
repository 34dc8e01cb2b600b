package main

import "github.com/alcancia-dev/alcancia/cmd"

func main() {
	cmd.Execute()
}
