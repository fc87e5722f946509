package main

import (
	"github.com/itchio/modkit/installer/dllmod"
	"github.com/itchio/modkit/installer/extension"
)

func init() {
	extension.Register()
	dllmod.Register()
}
