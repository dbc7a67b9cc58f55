package main

import "github.com/hessu/logconvert-wsjtx-adif/cmd"

func main() {
	cmd.Execute()
}
