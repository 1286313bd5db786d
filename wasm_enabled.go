//go:build js && wasm

package main

import "syscall/js"

func getUsername() string {
	// Retrieve parameter from JavaScript global scope.
	username := js.Global().Get("username")
	if username.IsUndefined() {
		return "guest"
	}
	return username.String()
}

// WriteFile does nothing, a browser has no files to write to.
func WriteFile(name string, data []byte) {
}
