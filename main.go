package main

import (
	"os"

	"github.com/storefront-admin/storefront-admin/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
