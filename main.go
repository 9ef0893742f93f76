package main

import "github.com/JamesXYZT/lstm-melody/cmd"

func main() {
	cmd.Execute()
}
