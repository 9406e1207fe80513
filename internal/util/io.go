// io.go reads compiler input the same way the pack's reference CLI does:
// from a named file, or from stdin with a short timeout so a forgotten
// positional argument fails fast instead of hanging the terminal.
package util

import (
	"bufio"
	"errors"
	"io"
	"os"
	"time"
)

const stdinTimeout = 500 * time.Millisecond

// ReadSource reads source text from path, or from stdin (with a timeout)
// when path is empty.
func ReadSource(path string) (string, error) {
	if path != "" {
		b, err := os.ReadFile(path)
		return string(b), err
	}

	c := make(chan string, 1)
	cerr := make(chan error, 1)
	go func() {
		reader := bufio.NewReader(os.Stdin)
		var b []byte
		for {
			line, err := reader.ReadBytes('\n')
			b = append(b, line...)
			if err != nil {
				if err == io.EOF {
					c <- string(b)
				} else {
					cerr <- err
				}
				return
			}
		}
	}()

	select {
	case <-time.After(stdinTimeout):
		return "", errors.New("expected input from stdin, got none")
	case err := <-cerr:
		return "", err
	case s := <-c:
		return s, nil
	}
}
