// Package logging holds the shared loggers. Both default to stderr; server
// mode switches them to size-capped rotating files under logs/.
package logging

import (
	"log"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	InfoLog  = log.New(os.Stderr, "INFO: ", log.Ldate|log.Ltime)
	ErrorLog = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
)

// InitFileLoggers redirects InfoLog and ErrorLog to rotating log files.
func InitFileLoggers() {
	if _, err := os.Stat("logs"); os.IsNotExist(err) {
		os.Mkdir("logs", 0755)
	}

	InfoLog = log.New(&lumberjack.Logger{
		Filename:   "logs/info.log",
		MaxSize:    5, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}, "INFO: ", log.Ldate|log.Ltime)

	ErrorLog = log.New(&lumberjack.Logger{
		Filename:   "logs/error.log",
		MaxSize:    5,
		MaxBackups: 5,
		MaxAge:     60,
		Compress:   true,
	}, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
}
