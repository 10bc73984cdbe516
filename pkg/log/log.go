/*
 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

     https://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

package log

import (
	"errors"
	"io"
	"log"
	"os"
)

type LogLevel int

const (
	ErrorLevel LogLevel = iota
	WarningLevel
	InfoLevel
	DebugLevel
)

const (
	LogPrefix  = "[stm32-cec] "
	HelpLevels = "Must be one of: error, warning, info, debug."
)

var levelPrefixes = map[LogLevel]string{
	ErrorLevel:   "[error] ",
	WarningLevel: "[warn] ",
	InfoLevel:    "[info] ",
	DebugLevel:   "[debug] ",
}

var levelNames = map[string]LogLevel{
	"error":   ErrorLevel,
	"warning": WarningLevel,
	"info":    InfoLevel,
	"debug":   DebugLevel,
}

type Logger struct {
	level LogLevel
	*log.Logger
}

var logger = &Logger{
	level:  InfoLevel,
	Logger: log.New(os.Stderr, LogPrefix, log.LstdFlags),
}

func (l *Logger) printf(level LogLevel, format string, v ...interface{}) {
	if l.level >= level {
		l.Printf(levelPrefixes[level]+format, v...)
	}
}

// SetLevel sets the minimum level that is written out.
func SetLevel(strLevel string) error {
	level, ok := levelNames[strLevel]
	if !ok {
		return errors.New("Wrong log level. " + HelpLevels)
	}
	logger.level = level
	return nil
}

// Init directs log output to out and sets the level.
func Init(out io.Writer, strLevel string) {
	logger.SetOutput(out)
	if err := SetLevel(strLevel); err != nil {
		panic(err)
	}
}

// Writer returns the destination log output is written to.
func Writer() io.Writer {
	return logger.Logger.Writer()
}

func Error(format string, v ...interface{}) {
	logger.printf(ErrorLevel, format, v...)
}

func Warning(format string, v ...interface{}) {
	logger.printf(WarningLevel, format, v...)
}

func Info(format string, v ...interface{}) {
	logger.printf(InfoLevel, format, v...)
}

func Debug(format string, v ...interface{}) {
	logger.printf(DebugLevel, format, v...)
}
