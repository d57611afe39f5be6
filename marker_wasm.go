//go:build wasm

package authform

import "syscall/js"

// bodyMarker toggles a class on document.body.
type bodyMarker struct{}

func (bodyMarker) Add(class string) {
	js.Global().Get("document").Get("body").Get("classList").Call("add", class)
}

func (bodyMarker) Remove(class string) {
	js.Global().Get("document").Get("body").Get("classList").Call("remove", class)
}

func defaultMarker() Marker { return bodyMarker{} }
