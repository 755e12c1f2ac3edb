package main

import (
	"fmt"
	"os"

	"github.com/punnatorn6420/Nokair-Platform/internal/bootstrap"
	"github.com/punnatorn6420/Nokair-Platform/internal/config"
)

func main() {
	if err := bootstrap.Start(config.RoleWeb); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
