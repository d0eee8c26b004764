package main

import "github.com/LegacyCodeHQ/connectome/cmd"

func main() {
	cmd.Execute()
}
