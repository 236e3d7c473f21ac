package main

import "humspot-backend/cmd"

func main() {
	cmd.Run()
}
