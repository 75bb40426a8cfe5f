// cmd/lrsim/main.go
package main

import (
	"lrsim/internal/app"
	"lrsim/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
