package main

import (
	"fmt"
	"os"

	"sxc/internal/compiler"
	"sxc/internal/diag"
	"sxc/internal/util"
)

// runDebugDump checks whether a --lex/--treeify/... stage flag was given
// and, if so, dumps that stage's result for the first source file (or
// stdin) instead of compiling normally.
func runDebugDump(files []string) (bool, int) {
	path := ""
	if len(files) > 0 {
		path = files[0]
	}

	switch {
	case *flagDumpLex:
		return true, dump(path, func(src string) (fmt.Stringer, error) {
			return tokenList(compiler.Lex(src)), nil
		})
	case *flagDumpTreeify:
		return true, dump(path, func(src string) (fmt.Stringer, error) {
			return treeString{compiler.Treeify(src)}, nil
		})
	case *flagDumpLiteralise:
		return true, dump(path, func(src string) (fmt.Stringer, error) {
			return namespaceString{compiler.Literalise(src)}, nil
		})
	case *flagDumpParse:
		return true, dumpErr(path, func(src string) (fmt.Stringer, error) {
			prog, err := compiler.Parse(src)
			return programString{prog}, diagToError(err)
		})
	case *flagDumpResolve:
		return true, dumpErr(path, func(src string) (fmt.Stringer, error) {
			prog, _, err := compiler.Resolve(src)
			return programString{prog}, diagToError(err)
		})
	case *flagDumpTypecheck:
		return true, dumpErr(path, func(src string) (fmt.Stringer, error) {
			prog, _, err := compiler.Typecheck(src)
			return programString{prog}, diagToError(err)
		})
	case *flagDumpGenerate:
		return true, dumpErr(path, func(src string) (fmt.Stringer, error) {
			target, err := compiler.Generate(src)
			return targetString{target}, diagToError(err)
		})
	case *flagDumpEmit:
		return true, dumpErr(path, func(src string) (fmt.Stringer, error) {
			ir, err := compiler.Compile(src)
			return plainString(ir), diagToError(err)
		})
	}
	return false, exitSuccess
}

func dump(path string, stage func(string) (fmt.Stringer, error)) int {
	return dumpErr(path, stage)
}

func dumpErr(path string, stage func(string) (fmt.Stringer, error)) int {
	src, err := util.ReadSource(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sxc: could not read source: %s\n", err)
		return exitIOError
	}
	result, stageErr := stage(src)
	if stageErr != nil {
		fmt.Fprintln(os.Stderr, stageErr)
		return exitCompileError
	}
	fmt.Println(result.String())
	return exitSuccess
}

// diagToError adapts a *diag.Error to the plain error interface, avoiding
// the classic nil-concrete-type-in-interface trap: a bare `return err`
// here would box a nil *diag.Error into a non-nil error value.
func diagToError(err *diag.Error) error {
	if err == nil {
		return nil
	}
	return err
}
