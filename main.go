package main

import "github.com/Wasif-Rauf77/ai-project-schedule-cost-control/cmd"

func main() {
	cmd.Execute()
}
