package main

import "github.com/dionisiorocha/TestDeviceIntuneConnectivity/internal/cli"

func main() {
	cli.Execute()
}
