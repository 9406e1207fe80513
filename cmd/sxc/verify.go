package main

import "sxc/internal/llvmverify"

func verifyLLVM(ir string) error {
	return llvmverify.Verify(ir)
}
