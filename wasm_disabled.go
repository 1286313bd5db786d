//go:build !(js && wasm)

package main

import "os"

func getUsername() string {
	if u := os.Getenv("SUIKA1_USER"); u != "" {
		return u
	}
	return "vali-dev"
}

func WriteFile(name string, data []byte) {
	err := os.WriteFile(name, data, 0644)
	Check(err)
}
