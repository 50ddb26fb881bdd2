package internal

import (
	"fmt"
	"log"
	"time"

	"sispay/entity"
	"sispay/services"
)

// Logger writes structured records to stdout and, when a database is
// attached, to the log collection. One instance per module name.
type Logger struct {
	module string
	debug  bool
	db     services.Database
}

func NewLogger(module string, debug bool, db services.Database) *Logger {
	return &Logger{
		module: module,
		debug:  debug,
		db:     db,
	}
}

func (l *Logger) Debug(message string) {
	if !l.debug {
		return
	}
	l.write("DEBUG", message, nil)
}

func (l *Logger) Info(message string) {
	l.write("INFO", message, nil)
}

func (l *Logger) Warn(message string) {
	l.write("WARN", message, nil)
}

func (l *Logger) Error(message string, err error) {
	l.write("ERROR", message, err)
}

func (l *Logger) write(level, text string, err error) {
	record := entity.LogMessage{
		Time:   time.Now(),
		Level:  level,
		Module: l.module,
		Text:   text,
	}
	if err != nil {
		record.ErrorMsg = err.Error()
		log.Printf("%s: %s: %s; %v", level, l.module, text, err)
	} else {
		log.Printf("%s: %s: %s", level, l.module, text)
	}
	if l.db != nil {
		if dbErr := l.db.WriteLogMessage(&record); dbErr != nil {
			log.Println(fmt.Sprintf("write log message: %v", dbErr))
		}
	}
}
