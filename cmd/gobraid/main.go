package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/plan-systems/klog"

	"github.com/braid-systems/gobraid/gobraid"
	"github.com/braid-systems/gobraid/libbraid"
	"github.com/braid-systems/gobraid/libbraid/catalog"
)

func main() {

	fset := flag.NewFlagSet("", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	fset.Set("v", "1")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	dbPath := flag.String("db", "", "catalog db to add accepted braids to")
	strict := flag.Bool("strict", false, "enable redundant driver contract checks")

	flag.Parse()

	arg := flag.Arg(0)
	switch {
	case strings.HasSuffix(arg, ".py") || arg == "":
		go_gpython(arg)
	default:
		genus, err := strconv.Atoi(arg)
		if err != nil || genus < 0 {
			fmt.Fprintf(os.Stderr, "usage: gobraid <genus> | gobraid <script.py> | gobraid\n")
		} else {
			runSearch(genus, *dbPath, *strict)
		}
	}

	klog.Flush()
}

// runSearch lists all candidate prime braid knots of the given genus to
// stdout, optionally recording them in a catalog along the way.
func runSearch(genus int, dbPath string, strict bool) {
	stream := libbraid.ListBraids(libbraid.SearchOpts{
		MaxB1:  2 * genus,
		Strict: strict,
	})

	if dbPath != "" {
		ctx := gobraid.NewCatalogContext()
		defer func() {
			ctx.Close()
			<-ctx.Done()
		}()

		cat, err := catalog.OpenCatalog(ctx, gobraid.CatalogOpts{
			DbPathName: dbPath,
		})
		if err != nil {
			klog.Fatalf("failed to open catalog: %v", err)
		}
		stream = stream.AddTo(cat, gobraid.AddBraidOpts{
			AutoCloseTarget: true,
		})
	}

	count := stream.Print(os.Stdout, gobraid.DefaultPrintOpts).PullAll()
	klog.V(1).Infof("genus %d: %d candidate words", genus, count)
}
