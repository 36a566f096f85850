package main

import "loadout-manager/cmd"

func main() {
	cmd.Execute()
}
