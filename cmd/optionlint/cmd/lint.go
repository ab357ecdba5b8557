package cmd

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/go-drift/selectfield/pkg/catalog"
)

type linter struct {
	out    io.Writer
	logger zerolog.Logger
	strict bool
}

// lintAll lints every file and reports whether any of them failed.
func (l *linter) lintAll(files []string) bool {
	failed := false
	for _, file := range files {
		if !l.lint(file) {
			failed = true
		}
	}
	return failed
}

// lint prints the problems of one file and reports whether it passed.
func (l *linter) lint(file string) bool {
	l.logger.Debug().Str("file", file).Msg("linting")
	c, err := catalog.Load(file)
	if err != nil {
		fmt.Fprintf(l.out, "%s: %v\n", file, err)
		return false
	}

	ok := true
	for _, p := range c.Validate() {
		if p.Warning() && !l.strict {
			l.logger.Debug().Str("file", file).Str("problem", p.String()).Msg("ignored warning")
			continue
		}
		ok = false
		fmt.Fprintf(l.out, "%s:%s\n", file, describe(p))
	}
	l.logger.Debug().
		Str("file", file).
		Strs("lists", c.Names()).
		Bool("ok", ok).
		Msg("linted")
	return ok
}

// describe formats a problem to follow "file:", as "line: text" or " text".
func describe(p catalog.Problem) string {
	line := p.Line
	p.Line = 0
	if line > 0 {
		return fmt.Sprintf("%d: %s", line, p)
	}
	return " " + p.String()
}
