package main

import "github.com/snowfork/snowbridge/lightclient-harness/cmd"

func main() {
	cmd.Execute()
}
