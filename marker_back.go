//go:build !wasm

package authform

type noopMarker struct{}

func (noopMarker) Add(string) {}
func (noopMarker) Remove(string) {}

func defaultMarker() Marker { return noopMarker{} }
