// Package llvmverify is an optional, opt-in verification pass: it hands
// already-emitted IR text to the system LLVM libraries (via the same CGo
// bindings the pack's LLVM backend uses) and asks LLVM itself to parse and
// verify the module. It is never the primary emitter — package emit alone
// produces the bit-exact text this compiler promises — this package only
// catches emitter bugs that would otherwise surface as a cryptic clang
// failure downstream.
package llvmverify

import (
	"fmt"

	"tinygo.org/x/go-llvm"
)

// Verify parses ir as an LLVM module and runs LLVM's own verifier over it,
// returning a descriptive error for the first problem found.
func Verify(ir string) error {
	ctx := llvm.NewContext()
	defer ctx.Dispose()

	buf := llvm.NewMemoryBufferFromMemoryRangeCopy([]byte(ir), "sxc-module")

	mod, err := ctx.ParseIR(buf)
	if err != nil {
		return fmt.Errorf("llvm could not parse emitted IR: %w", err)
	}
	defer mod.Dispose()

	if err := llvm.VerifyModule(mod, llvm.ReturnStatusAction); err != nil {
		return fmt.Errorf("llvm module verifier: %w", err)
	}
	return nil
}
