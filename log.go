package qsim

import (
	"os"

	"github.com/charmbracelet/log"
)

// logger traces gate and measurement calls. It stays quiet unless a Config
// lowers the level.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "qsim",
	Level:  log.WarnLevel,
})

/*
SetLogLevel changes the package logger's level. Accepted values are the
charmbracelet/log level names: debug, info, warn, error, fatal.
*/
func SetLogLevel(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}

	logger.SetLevel(lvl)
	return nil
}
