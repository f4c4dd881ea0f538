//go:build js && wasm

package main

import (
	"encoding/json"
	"syscall/js"
)

// consoleLogger writes to the browser console.
type consoleLogger struct {
	console js.Value
}

func (l consoleLogger) print(method, msg string, args []interface{}) {
	vals := make([]interface{}, 0, len(args)+1)
	vals = append(vals, msg)
	for _, arg := range args {
		vals = append(vals, jsValue(arg))
	}
	l.console.Call(method, vals...)
}

// jsValue converts arg to something the console displays as an object.
func jsValue(arg interface{}) interface{} {
	switch v := arg.(type) {
	case error:
		return v.Error()
	case string, bool, int, float64:
		return v
	}
	data, err := json.Marshal(arg)
	if err != nil {
		return err.Error()
	}
	return js.Global().Get("JSON").Call("parse", string(data))
}

func (l consoleLogger) Debug(msg string, args ...interface{}) { l.print("debug", msg, args) }
func (l consoleLogger) Info(msg string, args ...interface{})  { l.print("log", msg, args) }
func (l consoleLogger) Warn(msg string, args ...interface{})  { l.print("warn", msg, args) }
func (l consoleLogger) Error(msg string, args ...interface{}) { l.print("error", msg, args) }
func (l consoleLogger) Fatal(msg string, args ...interface{}) { l.print("error", msg, args) }
