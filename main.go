package main

import "github.com/reportcare/reportcare_backend/cmd"

func main() {
	cmd.Execute()
}
