//go:build js && wasm

// package main provides the Wasm app.
package main

import (
	"syscall/js"

	"github.com/theory/sqljalali/internal/playground"
)

func convert(_ js.Value, args []js.Value) any {
	input := args[0].String()
	opts := args[1].Int()

	return playground.Execute(input, opts)
}

func main() {
	stream := make(chan struct{})

	js.Global().Set("convert", js.FuncOf(convert))
	js.Global().Set("optToJalali", js.ValueOf(playground.OptToJalali))
	js.Global().Set("optEndOfDay", js.ValueOf(playground.OptEndOfDay))
	js.Global().Set("optSilent", js.ValueOf(playground.OptSilent))

	<-stream
}
