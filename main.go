package main

import "github.com/yarp-sh/yarp/cmd"

func main() {
	cmd.Execute()
}
