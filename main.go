package main

import "github.com/mouse-blink/lswbridge/cmd"

func main() {
	cmd.Execute()
}
