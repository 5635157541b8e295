package main

import "github.com/abrantigan/KMD-Display/cmd"

func main() {
	cmd.Execute()
}
