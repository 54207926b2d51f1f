// cmd/pwalign/main.go
package main

import (
	"pwalign/internal/app"
	"pwalign/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
