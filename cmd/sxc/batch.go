package main

import (
	"fmt"
	"os"
	"sync"

	"sxc/internal/compiler"
	"sxc/internal/llvmverify"
	"sxc/internal/util"
)

// runBatch compiles each of files, using up to *flagThreads worker
// goroutines, and reports every failure (not just the first) before
// exiting — batch compilation is the one place in this program where the
// otherwise-pure, single-threaded compiler core is driven concurrently,
// each call on its own independent source with no shared mutable state.
func runBatch(files []string) int {
	threads := *flagThreads
	if threads < 1 {
		threads = 1
	}

	perr := util.NewPerror(len(files))
	defer perr.Stop()

	jobs := make(chan string, len(files))
	for _, f := range files {
		jobs <- f
	}
	close(jobs)

	var wg sync.WaitGroup
	for i := 0; i < threads; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				compileBatchFile(path, perr)
			}
		}()
	}
	wg.Wait()

	if perr.Len() > 0 {
		for _, fe := range perr.Errors() {
			fmt.Fprintf(os.Stderr, "sxc: %s: %s\n", fe.File, fe.Err)
		}
		return exitCompileError
	}
	return exitSuccess
}

func compileBatchFile(path string, perr *util.Perror) {
	src, err := util.ReadSource(path)
	if err != nil {
		perr.Append(path, err)
		return
	}

	ir, cerr := compiler.Compile(src)
	if cerr != nil {
		perr.Append(path, fmt.Errorf("%s", cerr.Print(src)))
		return
	}

	if *flagVerifyLLVM {
		if verr := llvmverify.Verify(ir); verr != nil {
			perr.Append(path, verr)
			return
		}
	}

	if *flagClang {
		if code := runClang(ir); code != exitSuccess {
			perr.Append(path, fmt.Errorf("clang exited with status %d", code))
		}
		return
	}

	w, err := outdirOutputFor(path).open()
	if err != nil {
		perr.Append(path, err)
		return
	}
	defer w.Close()
	fmt.Fprint(w, ir)
}
