package main

import "github.com/PIXRA-Network/typeconv/cmd"

func main() {
	cmd.Execute()
}
