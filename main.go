package main

import "github.com/hoppxi/iconify/internal/cmd"

func main() {
	cmd.Execute()
}
