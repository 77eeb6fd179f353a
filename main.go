package main

import "neighbortask.com/neighbortask/cmd"

func main() {
	cmd.Execute()
}
