package libbraid_test

import (
	"testing"

	"github.com/braid-systems/gobraid/gobraid"
	"github.com/braid-systems/gobraid/libbraid"
)

func TestDropDupesAdder(t *testing.T) {
	trefoil, err := libbraid.NewBraidFromExpr("aaa")
	if err != nil {
		t.Fatal(err)
	}
	cinquefoil, err := libbraid.NewBraidFromExpr("a^5")
	if err != nil {
		t.Fatal(err)
	}

	dd := libbraid.NewDropDupes()
	if !dd.TryAddBraid(trefoil) {
		t.Fatal("first trefoil rejected")
	}
	if dd.TryAddBraid(trefoil.MakeCopy()) {
		t.Fatal("duplicate trefoil accepted")
	}
	if !dd.TryAddBraid(cinquefoil) {
		t.Fatal("cinquefoil rejected")
	}
}

func TestDropDupesStage(t *testing.T) {
	stream := gobraid.NewBraidStream()
	go func() {
		for i := 0; i < 3; i++ {
			b, err := libbraid.NewBraidFromExpr("aaa")
			if err != nil {
				panic(err)
			}
			stream.PushBraid(b)
		}
		b, err := libbraid.NewBraidFromExpr("a^5")
		if err != nil {
			panic(err)
		}
		stream.PushBraid(b)
		stream.Close()
	}()

	if count := libbraid.DropDupes(stream).PullAll(); count != 2 {
		t.Fatalf("DropDupes passed %d braids, want 2", count)
	}
}
