package main

import "github.com/LegacyCodeHQ/blueprint/cmd"

func main() {
	cmd.Execute()
}
