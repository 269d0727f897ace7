package aiger

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

// WriteFile emits the structure to a file, binary or ASCII, gzipping
// when the path carries a .gz suffix.
func (g *Aiger) WriteFile(path string, binary bool) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "aiger: create %s", path)
	}

	var dst io.Writer = f
	var zw *gzip.Writer
	if strings.HasSuffix(path, ".gz") {
		zw = gzip.NewWriter(f)
		dst = zw
	}
	if err := g.Write(dst, binary); err != nil {
		f.Close()

		return errors.Wrapf(err, "aiger: write %s", path)
	}
	if zw != nil {
		if err := zw.Close(); err != nil {
			f.Close()

			return errors.Wrapf(err, "aiger: write %s", path)
		}
	}

	return errors.Wrapf(f.Close(), "aiger: write %s", path)
}

// Write emits the structure in ASCII ("aag") or binary ("aig") form.
// Binary form requires the canonical literal layout: inputs at 2..2I,
// latches following, and gates contiguous with LHS > RHS0 ≥ RHS1.
func (g *Aiger) Write(w io.Writer, binary bool) error {
	bw := bufio.NewWriter(w)
	if binary {
		if err := g.checkBinaryLayout(); err != nil {
			return err
		}
	}
	if err := g.writeHeader(bw, binary); err != nil {
		return err
	}
	if !binary {
		for _, s := range g.Inputs {
			fmt.Fprintf(bw, "%d\n", s.Lit)
		}
	}
	for _, s := range g.Latches {
		if !binary {
			fmt.Fprintf(bw, "%d ", s.Lit)
		}
		if s.Reset == 0 {
			fmt.Fprintf(bw, "%d\n", s.Next)
		} else {
			fmt.Fprintf(bw, "%d %d\n", s.Next, s.Reset)
		}
	}
	for _, section := range [][]Symbol{g.Outputs, g.Bads, g.Constraints} {
		for _, s := range section {
			fmt.Fprintf(bw, "%d\n", s.Lit)
		}
	}
	for _, s := range g.Justice {
		fmt.Fprintf(bw, "%d\n", len(s.Lits))
	}
	for _, s := range g.Justice {
		for _, lit := range s.Lits {
			fmt.Fprintf(bw, "%d\n", lit)
		}
	}
	for _, s := range g.Fairness {
		fmt.Fprintf(bw, "%d\n", s.Lit)
	}
	for _, gate := range g.Ands {
		if binary {
			writeVarint(bw, gate.LHS-gate.RHS0)
			writeVarint(bw, gate.RHS0-gate.RHS1)
		} else {
			fmt.Fprintf(bw, "%d %d %d\n", gate.LHS, gate.RHS0, gate.RHS1)
		}
	}
	g.writeSymbols(bw)

	return bw.Flush()
}

// writeHeader emits the magic and counts, truncating the 1.9 tail after
// its last nonzero section.
func (g *Aiger) writeHeader(bw *bufio.Writer, binary bool) error {
	magic := "aag"
	if binary {
		magic = "aig"
	}
	counts := []int{
		len(g.Bads), len(g.Constraints), len(g.Justice), len(g.Fairness),
	}
	tail := len(counts)
	for tail > 0 && counts[tail-1] == 0 {
		tail--
	}
	fmt.Fprintf(bw, "%s %d %d %d %d %d", magic,
		g.MaxVar, len(g.Inputs), len(g.Latches), len(g.Outputs), len(g.Ands))
	for _, c := range counts[:tail] {
		fmt.Fprintf(bw, " %d", c)
	}
	fmt.Fprintln(bw)

	return nil
}

// checkBinaryLayout validates the canonical ordering binary files demand.
func (g *Aiger) checkBinaryLayout() error {
	for i, s := range g.Inputs {
		if s.Lit != uint32(2*(i+1)) {
			return fmt.Errorf("%w: input %d literal %d is not canonical", ErrEncode, i, s.Lit)
		}
	}
	base := uint32(2 * (len(g.Inputs) + 1))
	for i, s := range g.Latches {
		if s.Lit != base+uint32(2*i) {
			return fmt.Errorf("%w: latch %d literal %d is not canonical", ErrEncode, i, s.Lit)
		}
	}
	base = uint32(2 * (len(g.Inputs) + len(g.Latches) + 1))
	for i, gate := range g.Ands {
		if gate.LHS != base+uint32(2*i) {
			return fmt.Errorf("%w: gate literal %d is not canonical", ErrEncode, gate.LHS)
		}
		if gate.RHS0 >= gate.LHS || gate.RHS1 > gate.RHS0 {
			return fmt.Errorf("%w: gate %d fanins %d %d not descending", ErrEncode,
				gate.LHS, gate.RHS0, gate.RHS1)
		}
	}

	return nil
}

// writeSymbols emits the symbol table and trailing comments.
func (g *Aiger) writeSymbols(bw *bufio.Writer) {
	sections := []struct {
		prefix string
		syms   []Symbol
	}{
		{"i", g.Inputs}, {"l", g.Latches}, {"o", g.Outputs},
		{"b", g.Bads}, {"c", g.Constraints}, {"j", g.Justice}, {"f", g.Fairness},
	}
	for _, sec := range sections {
		for i, s := range sec.syms {
			if s.Name != "" {
				fmt.Fprintf(bw, "%s%d %s\n", sec.prefix, i, s.Name)
			}
		}
	}
	if len(g.Comments) > 0 {
		fmt.Fprintln(bw, "c")
		for _, c := range g.Comments {
			fmt.Fprintln(bw, c)
		}
	}
}

// writeVarint emits one 7-bit little-endian delta code.
func writeVarint(bw *bufio.Writer, x uint32) {
	for x >= 0x80 {
		bw.WriteByte(byte(x&0x7f) | 0x80)
		x >>= 7
	}
	bw.WriteByte(byte(x))
}
