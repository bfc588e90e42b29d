package main

import (
	"errors"
	"io/fs"
	stdLog "log"

	"github.com/Astemirdum/bookhaven/bookhaven/cli"
	"github.com/joho/godotenv"
)

// @title       BookHaven API
// @version     1.0
// @description Books, donations, poems and the eBook catalog.
// @BasePath    /api/v1
func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		stdLog.Fatal("load envs from .env ", err)
	}
	if err := cli.Execute(); err != nil {
		stdLog.Fatal(err)
	}
}
