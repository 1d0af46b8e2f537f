package main

import (
	"fmt"
	"os"
	"time"

	"log"

	"github.com/go-python/gpython/py"
	"github.com/go-python/gpython/repl"
	"github.com/go-python/gpython/repl/cli"

	_ "github.com/braid-systems/gobraid/pybraid"
	_ "github.com/go-python/gpython/stdlib"
)

func go_gpython(pathname string) {
	ctx := py.NewContext(py.DefaultContextOpts())

	var (
		err error
	)
	if len(pathname) == 0 {
		replCtx := repl.New(ctx)

		if startup := replStartupScript(); startup != "" {
			_, err = py.RunFile(ctx, startup, py.CompileOpts{}, replCtx.Module)
		}
		if err == nil {
			cli.RunREPL(replCtx)
		}

	} else {
		startTime := time.Now()
		fmt.Printf("<<<>>>   executing '%s'   <<<>>>\n", pathname)

		_, err = py.RunFile(ctx, pathname, py.CompileOpts{}, nil)

		if err == nil {
			t := time.Now()
			elapsed := t.Sub(startTime)
			fmt.Printf("<<<>>>   execution complete: %v   <<<>>>\n", elapsed)
		}

	}

	ctx.Close()
	<-ctx.Done()

	if err != nil {
		py.TracebackDump(err)
		log.Fatal(err)
	}

}

// replStartupScript returns the REPL startup script relative to the working
// directory, or "" when none is installed there. The REPL still comes up
// without one; the script just preloads the braid module.
func replStartupScript() string {
	const pathname = "lib/_REPL_startup.py"
	if _, err := os.Stat(pathname); err != nil {
		return ""
	}
	return pathname
}
