package libbraid

import (
	"github.com/alecthomas/participle/v2"
	"github.com/braid-systems/gobraid/gobraid"
	"github.com/pkg/errors"
)

// WordExpr is the braid word grammar. Three spellings are accepted and may
// be mixed:
//
//	aab        letters, one generator per letter
//	1,2,1      generator indices, commas optional
//	a^3 b      a single generator raised to a repeat count
type WordExpr struct {
	Runs []*GenRun `parser:"(@@ (','? @@)*)?"`
}

type GenRun struct {
	Letters string `parser:"( @Ident"`
	Gen     int    `parser:"| @Int )"`
	Pow     int    `parser:"( '^' @Int )?"`
}

var parseWordExpr = participle.MustBuild[WordExpr]()

type wordBuilder struct {
	word gobraid.Word
}

func (wb *wordBuilder) applyRun(run *GenRun) error {
	if run.Pow < 0 || (run.Pow > 0 && len(run.Letters) > 1) {
		return errors.Wrapf(gobraid.ErrBadWordExpr, "'^%d' needs a single preceding generator", run.Pow)
	}
	repeat := 1
	if run.Pow > 0 {
		repeat = run.Pow
	}

	if run.Letters != "" {
		for _, r := range run.Letters {
			if r < 'a' || r > 'z' {
				return errors.Wrapf(gobraid.ErrBadGenerator, "letter %q", r)
			}
			wb.appendGen(int(r-'a')+1, repeat)
		}
		return nil
	}

	if run.Gen < 1 || run.Gen > gobraid.MaxGenerator {
		return errors.Wrapf(gobraid.ErrBadGenerator, "index %d", run.Gen)
	}
	wb.appendGen(run.Gen, repeat)
	return nil
}

func (wb *wordBuilder) appendGen(gen, repeat int) {
	for i := 0; i < repeat; i++ {
		wb.word = append(wb.word, gen)
	}
}

// ParseWord reads a braid word expression into a Word.
func ParseWord(wordExpr string) (gobraid.Word, error) {
	expr, err := parseWordExpr.ParseString("", wordExpr)
	if err != nil {
		return nil, errors.Wrap(gobraid.ErrBadWordExpr, err.Error())
	}

	var wb wordBuilder
	for _, run := range expr.Runs {
		if err := wb.applyRun(run); err != nil {
			return nil, err
		}
	}
	if len(wb.word) == 0 {
		return nil, errors.Wrap(gobraid.ErrBadWordExpr, "empty word")
	}
	return wb.word, nil
}

// NewBraidFromExpr parses wordExpr and derives the full braid record,
// including the DT code of its closure. The expression must close to a
// knot.
func NewBraidFromExpr(wordExpr string) (*gobraid.Braid, error) {
	w, err := ParseWord(wordExpr)
	if err != nil {
		return nil, err
	}
	dt, err := ExtractDT(w)
	if err != nil {
		return nil, err
	}
	b := gobraid.NewBraid()
	b.Word = append(b.Word, w...)
	b.DT = append(b.DT, dt...)
	return b, nil
}
