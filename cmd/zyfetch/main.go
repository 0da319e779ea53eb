package main

import (
	"os"

	"github.com/foelkdavid/zyfetch/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
