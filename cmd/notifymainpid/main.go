package main

import (
	"os"

	"github.com/hexian000/gosnippets/slog"
	"github.com/hexian000/notifymainpid"
)

func init() {
	slog.Default().SetFilePrefix("github.com/hexian000/notifymainpid/")
	_ = slog.Default().SetOutputConfig("discard", "notifymainpid")
}

func main() {
	os.Exit(notifymainpid.NewApp().Run(os.Args[1:]))
}
