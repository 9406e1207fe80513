/*
Sxc compiles one or more S-expression source files to textual LLVM-compatible
IR and writes it out or, with -c/--clang, hands it to clang for assembly.

Usage:

	sxc [flags] FILE...

The flags are:

	-o, --out FILE
		Write emitted IR to FILE instead of stdout. Ignored when more than
		one source file is given (see -d/--outdir).

	-d, --outdir DIR
		When compiling more than one file, write each file's IR to
		DIR/<basename>.ll instead of stdout.

	-j, --threads N
		Compile up to N files concurrently. Defaults to 1 (sequential).

	-c, --clang
		Pipe each successfully compiled file's IR into "clang -x ir -"
		instead of writing it out.

	--lex, --treeify, --literalise, --parse, --resolve, --typecheck,
	--generate, --emit
		Dump the named pipeline stage's intermediate result for the first
		source file instead of compiling normally, and exit.

	--verify-llvm
		After compiling, additionally parse the emitted IR with the LLVM
		bindings as a round-trip sanity check (see internal/llvmverify).
		This is never the primary code path; emission is always done by
		this program's own emitter.

With no FILE arguments, source is read from stdin.
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"sxc/internal/compiler"
	"sxc/internal/util"
)

const (
	exitSuccess = iota
	exitCompileError
	exitUsageError
	exitIOError
)

var (
	flagOut        = pflag.StringP("out", "o", "", "write emitted IR to this file instead of stdout")
	flagOutdir     = pflag.StringP("outdir", "d", "", "write each file's IR under this directory")
	flagThreads    = pflag.IntP("threads", "j", 1, "number of files to compile concurrently")
	flagClang      = pflag.BoolP("clang", "c", false, "pipe emitted IR into clang -x ir -")
	flagVerifyLLVM = pflag.Bool("verify-llvm", false, "round-trip verify emitted IR with the LLVM bindings")

	flagDumpLex        = pflag.Bool("lex", false, "dump the lexer's token stream and exit")
	flagDumpTreeify    = pflag.Bool("treeify", false, "dump the treeifier's token tree and exit")
	flagDumpLiteralise = pflag.Bool("literalise", false, "run the literaliser, print a one-line summary (no namespace contents) and exit")
	flagDumpParse      = pflag.Bool("parse", false, "dump the parser's AST and exit")
	flagDumpResolve    = pflag.Bool("resolve", false, "dump the resolved definitions with their overload ids and exit")
	flagDumpTypecheck  = pflag.Bool("typecheck", false, "run the type checker and exit")
	flagDumpGenerate   = pflag.Bool("generate", false, "dump the generator's lowered IR model and exit")
	flagDumpEmit       = pflag.Bool("emit", false, "dump the emitter's IR text and exit")
)

func main() {
	pflag.Parse()
	os.Exit(run(pflag.Args()))
}

func run(files []string) int {
	if dumped, code := runDebugDump(files); dumped {
		return code
	}

	if len(files) == 0 {
		return runOne("", os.Stdout)
	}
	if len(files) == 1 && *flagOutdir == "" {
		return runOne(files[0], outputFor(files[0]))
	}
	return runBatch(files)
}

// runOne compiles a single source (file path, or "" for stdin) and writes
// its IR to out, or pipes it to clang if --clang was given.
func runOne(path string, out outputCloser) int {
	src, err := util.ReadSource(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sxc: could not read source: %s\n", err)
		return exitIOError
	}

	ir, cerr := compiler.Compile(src)
	if cerr != nil {
		fmt.Fprint(os.Stderr, cerr.Print(src))
		return exitCompileError
	}

	if *flagVerifyLLVM {
		if verr := verifyLLVM(ir); verr != nil {
			fmt.Fprintf(os.Stderr, "sxc: llvm verification failed: %s\n", verr)
			return exitCompileError
		}
	}

	if *flagClang {
		return runClang(ir)
	}

	w, err := out.open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "sxc: could not open output: %s\n", err)
		return exitIOError
	}
	defer w.Close()
	fmt.Fprint(w, ir)
	return exitSuccess
}
