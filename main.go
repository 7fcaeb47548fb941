package main

import "adspend/cmd"

func main() {
	cmd.Execute()
}
