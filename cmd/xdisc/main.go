package main

import "xdisc/cmd/xdisc/cmd"

func main() {
	cmd.Execute()
}
