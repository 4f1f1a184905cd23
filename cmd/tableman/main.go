package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/fulldump/goconfig"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"tableman/bootstrap"
	"tableman/configuration"
)

var banner = `
 _____     _     _
|_   _|_ _| |__ | | ___ _ __ ___   __ _ _ __
  | |/ _` + "`" + ` | '_ \| |/ _ \ '_ ` + "`" + ` _ \ / _` + "`" + ` | '_ \
  | | (_| | |_) | |  __/ | | | | | (_| | | | |
  |_|\__,_|_.__/|_|\___|_| |_| |_|\__,_|_| |_|
`

func main() {

	c := configuration.Default()
	goconfig.Read(&c)

	if c.Version {
		fmt.Println("Version:", bootstrap.VERSION)
		return
	}

	if c.ShowBanner {
		fmt.Println(banner)
		fmt.Println("Version:", bootstrap.VERSION)
	}

	if c.ShowConfig {
		e := json.NewEncoder(os.Stdout)
		e.SetIndent("", "    ")
		e.Encode(c)
	}

	logger := slog.New(tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{
		TimeFormat: "15:04:05.000",
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	}))

	start, _ := bootstrap.Bootstrap(&c, logger)
	start()
}
