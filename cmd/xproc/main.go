package main

import (
	"github.com/Paintersrp/xproc/internal/cli"
	"github.com/Paintersrp/xproc/internal/metrics"
)

func main() {
	metrics.EmitBuildInfo()
	cli.Execute()
}
