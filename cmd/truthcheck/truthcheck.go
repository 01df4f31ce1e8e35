package main

import (
	"fmt"
	"os"

	"github.com/vilterp/proplog/pkg/verify"
)

func main() {
	for _, table := range verify.Tables() {
		fmt.Println(table.Format().String())
		fmt.Println()
	}
	if err := verify.Check(); err != nil {
		fmt.Fprintln(os.Stderr, "mismatch:", err)
		os.Exit(1)
	}
	fmt.Println("all connective truth tables match their classical definitions")
}
