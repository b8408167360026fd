package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

var levelOrder = map[string]int{
	"DEBUG": 0,
	"INFO":  1,
	"WARN":  2,
	"ERROR": 3,
}

// levelWriter filters "[LEVEL] message" log lines below min and can re-emit
// them as JSON objects
type levelWriter struct {
	out      io.Writer
	minLevel int
	json     bool
}

func (w *levelWriter) Write(p []byte) (int, error) {
	level, msg := splitLevel(p)
	if levelOrder[level] < w.minLevel {
		return len(p), nil
	}

	if !w.json {
		return w.out.Write(p)
	}

	line, err := json.Marshal(map[string]string{
		"time":  time.Now().UTC().Format(time.RFC3339),
		"level": strings.ToLower(level),
		"msg":   msg,
	})
	if err != nil {
		return 0, err
	}
	if _, err := w.out.Write(append(line, '\n')); err != nil {
		return 0, err
	}
	return len(p), nil
}

// splitLevel extracts the bracketed level; untagged lines count as INFO
func splitLevel(p []byte) (string, string) {
	line := string(bytes.TrimRight(p, "\n"))
	for level := range levelOrder {
		tag := "[" + level + "] "
		if i := strings.Index(line, tag); i >= 0 {
			return level, line[i+len(tag):]
		}
	}
	return "INFO", line
}

// setupLogging routes the standard logger through a level filter and picks the gin mode
func setupLogging(level string, jsonLogs bool, out io.Writer) {
	level = strings.ToUpper(strings.TrimSpace(level))
	if level == "WARNING" {
		level = "WARN"
	}
	minLevel, ok := levelOrder[level]
	if !ok {
		minLevel = levelOrder["INFO"]
	}

	if jsonLogs {
		log.SetFlags(0)
	} else {
		log.SetFlags(log.LstdFlags)
	}
	log.SetOutput(&levelWriter{out: out, minLevel: minLevel, json: jsonLogs})

	if minLevel == levelOrder["DEBUG"] {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
}
