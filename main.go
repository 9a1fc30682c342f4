package main

import "github.com/productdevbook/port-killer/native/cmd"

func main() {
	cmd.Execute()
}
