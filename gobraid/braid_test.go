package gobraid_test

import (
	"bytes"
	"testing"

	"github.com/braid-systems/gobraid/gobraid"
)

func newTrefoil() *gobraid.Braid {
	b := gobraid.NewBraid()
	b.Seq = 1
	b.Word = append(b.Word, 1, 1, 1)
	b.DT = append(b.DT, 4, 6, 2)
	return b
}

func TestWriteAsString(t *testing.T) {
	b := newTrefoil()
	defer b.Reclaim()

	var out bytes.Buffer
	b.WriteAsString(&out, gobraid.DefaultPrintOpts)
	if got := out.String(); got != "aaa\n: 3 1 4 6 2\n" {
		t.Fatalf("got %q", got)
	}

	out.Reset()
	b.WriteAsString(&out, gobraid.PrintOpts{Label: "genus 1", Numeric: true})
	if got := out.String(); got != "genus 1 1,1,1\n" {
		t.Fatalf("got %q", got)
	}
}

func TestStreamStages(t *testing.T) {
	stream := gobraid.NewBraidStream()
	go func() {
		for seq := 1; seq <= 3; seq++ {
			b := newTrefoil()
			b.Seq = seq
			stream.PushBraid(b)
		}
		stream.Close()
	}()

	var out bytes.Buffer
	count := stream.Print(&out, gobraid.PrintOpts{}).PullAll()
	if count != 3 {
		t.Fatalf("PullAll() = %d, want 3", count)
	}
	if got := out.String(); got != "aaa\naaa\naaa\n" {
		t.Fatalf("got %q", got)
	}
}

func TestSelectFromStream(t *testing.T) {
	sel := gobraid.DefaultBraidSelector
	sel.MinB1 = 3

	count := gobraid.StreamBraid(newTrefoil()).SelectFromStream(sel).PullAll()
	if count != 0 {
		t.Fatalf("selector passed a b1=2 braid through a MinB1=3 filter")
	}

	sel.MinB1 = 0
	count = gobraid.StreamBraid(newTrefoil()).SelectFromStream(sel).PullAll()
	if count != 1 {
		t.Fatalf("selector dropped a matching braid")
	}
}
