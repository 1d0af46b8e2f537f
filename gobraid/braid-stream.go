package gobraid

import "io"

// BraidStream is a channel pipeline of braid records. Each stage consumes
// its upstream Outlet and feeds the stage it returns, so stages compose:
//
//	ListBraids(opts).AddTo(cat, addOpts).Print(os.Stdout, printOpts).PullAll()
//
// Stages preserve arrival order, so a deterministic producer yields a
// deterministic pipeline.
type BraidStream struct {
	Outlet chan *Braid
}

func NewBraidStream() *BraidStream {
	return &BraidStream{
		Outlet: make(chan *Braid),
	}
}

// StreamBraid returns a stream that emits a copy of b and closes.
func StreamBraid(b *Braid) *BraidStream {
	next := NewBraidStream()
	go func() {
		next.Outlet <- b.MakeCopy()
		next.Close()
	}()
	return next
}

func (stream *BraidStream) Close() {
	if stream.Outlet != nil {
		close(stream.Outlet)
	}
}

func (stream *BraidStream) PushBraid(b *Braid) {
	stream.Outlet <- b
}

// PullAll drains the stream, reclaiming every braid, and returns the count.
func (stream *BraidStream) PullAll() int {
	count := 0
	for b := range stream.Outlet {
		count++
		b.Reclaim()
	}
	return count
}

// Print renders each braid record to out and passes the braid downstream.
func (stream *BraidStream) Print(out io.Writer, opts PrintOpts) *BraidStream {
	next := &BraidStream{
		Outlet: make(chan *Braid, 1),
	}

	go func() {
		for b := range stream.Outlet {
			b.WriteAsString(out, opts)
			next.Outlet <- b
		}
		next.Close()
	}()

	return next
}

// AddBraidOpts modifies an AddTo stage.
type AddBraidOpts struct {

	// AutoCloseTarget closes the target (when it is a Catalog) after the
	// upstream stream ends.
	AutoCloseTarget bool
}

// AddTo offers each braid to target; only braids target accepts continue
// downstream. Rejected braids are reclaimed.
func (stream *BraidStream) AddTo(target BraidAdder, opts AddBraidOpts) *BraidStream {
	next := &BraidStream{
		Outlet: make(chan *Braid, 1),
	}

	go func() {
		for b := range stream.Outlet {
			if target.TryAddBraid(b) {
				next.Outlet <- b
			} else {
				b.Reclaim()
			}
		}
		if opts.AutoCloseTarget {
			if cat, isCat := target.(Catalog); isCat {
				cat.Close()
			}
		}
		next.Close()
	}()

	return next
}

// SelectFromStream passes through only braids matching sel.
func (stream *BraidStream) SelectFromStream(sel BraidSelector) *BraidStream {
	next := &BraidStream{
		Outlet: make(chan *Braid, 1),
	}

	go func() {
		for b := range stream.Outlet {
			if sel.SelectsBraid(b) {
				next.Outlet <- b
			} else {
				b.Reclaim()
			}
		}
		next.Close()
	}()

	return next
}

// SelectFromCatalog streams every stored braid matching sel out of cat.
func SelectFromCatalog(cat Catalog, sel BraidSelector) *BraidStream {
	next := &BraidStream{
		Outlet: make(chan *Braid, 1),
	}

	onHit := make(chan *Braid, 4)

	go func() {
		cat.Select(sel, onHit)
		close(onHit)
	}()

	go func() {
		for b := range onHit {
			if sel.SelectsBraid(b) {
				next.Outlet <- b
			} else {
				b.Reclaim()
			}
		}
		next.Close()
	}()

	return next
}
