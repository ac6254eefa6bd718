package main

import "github.com/gkatanacio/segmented-downloader/cmd"

func main() {
	cmd.Execute()
}
