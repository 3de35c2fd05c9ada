package main

import "flowquest/cmd/fq/root"

func main() {
	root.Execute()
}
