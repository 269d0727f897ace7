package aiger

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

// ParseFile reads an AIGER file, transparently decompressing gzip
// content (detected by magic header, so .aag.gz and .aig.gz both work).
func ParseFile(path string) (*Aiger, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "aiger: open %s", path)
	}
	defer f.Close()

	br := bufio.NewReader(f)
	var src io.Reader = br
	if magic, err := br.Peek(2); err == nil && magic[0] == 0x1f && magic[1] == 0x8b {
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, errors.Wrapf(err, "aiger: gunzip %s", path)
		}
		defer zr.Close()
		src = zr
	}
	g, err := Parse(src)
	if err != nil {
		return nil, errors.Wrapf(err, "aiger: read %s", path)
	}

	return g, nil
}

// Parse reads an AIGER stream, ASCII or binary per its header.
func Parse(r io.Reader) (*Aiger, error) {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	p := &parser{br: br}

	return p.parse()
}

// parser carries the reader and the header-derived counts.
type parser struct {
	br     *bufio.Reader
	binary bool
	counts [9]uint32 // M I L O A B C J F
}

func (p *parser) parse() (*Aiger, error) {
	if err := p.header(); err != nil {
		return nil, err
	}
	m, i, l, o, a := p.counts[0], p.counts[1], p.counts[2], p.counts[3], p.counts[4]
	b, c, j, f := p.counts[5], p.counts[6], p.counts[7], p.counts[8]
	if p.binary && uint64(m) != uint64(i)+uint64(l)+uint64(a) {
		return nil, fmt.Errorf("%w: binary header M=%d, want I+L+A=%d", ErrParse, m, i+l+a)
	}
	g := &Aiger{MaxVar: m}

	if err := p.inputs(g, i); err != nil {
		return nil, err
	}
	if err := p.latches(g, i, l); err != nil {
		return nil, err
	}
	var err error
	if g.Outputs, err = p.litSection("output", o); err != nil {
		return nil, err
	}
	if g.Bads, err = p.litSection("bad", b); err != nil {
		return nil, err
	}
	if g.Constraints, err = p.litSection("constraint", c); err != nil {
		return nil, err
	}
	if err := p.justice(g, j); err != nil {
		return nil, err
	}
	if g.Fairness, err = p.litSection("fairness", f); err != nil {
		return nil, err
	}
	if err := p.ands(g, i, l, a); err != nil {
		return nil, err
	}
	if err := p.symbolsAndComments(g); err != nil {
		return nil, err
	}

	return g, nil
}

// header parses "aag|aig M I L O A [B [C [J [F]]]]".
func (p *parser) header() error {
	line, err := p.line()
	if err != nil {
		return fmt.Errorf("%w: missing header", ErrParse)
	}
	fields := strings.Fields(line)
	if len(fields) < 6 || len(fields) > 10 {
		return fmt.Errorf("%w: bad header %q", ErrParse, line)
	}
	switch fields[0] {
	case "aag":
		p.binary = false
	case "aig":
		p.binary = true
	default:
		return fmt.Errorf("%w: bad magic %q", ErrParse, fields[0])
	}
	for k, field := range fields[1:] {
		v, err := parseLit(field)
		if err != nil {
			return fmt.Errorf("%w: bad header field %q", ErrParse, field)
		}
		p.counts[k] = v
	}

	return nil
}

func (p *parser) inputs(g *Aiger, n uint32) error {
	g.Inputs = make([]Symbol, 0, n)
	for k := uint32(0); k < n; k++ {
		if p.binary {
			g.Inputs = append(g.Inputs, Symbol{Lit: 2 * (k + 1)})
			continue
		}
		lit, err := p.uintLine("input")
		if err != nil {
			return err
		}
		if err := p.checkLit(lit); err != nil {
			return err
		}
		g.Inputs = append(g.Inputs, Symbol{Lit: lit})
	}

	return nil
}

func (p *parser) latches(g *Aiger, inputs, n uint32) error {
	g.Latches = make([]Symbol, 0, n)
	for k := uint32(0); k < n; k++ {
		line, err := p.line()
		if err != nil {
			return fmt.Errorf("%w: truncated latch section", ErrParse)
		}
		fields := strings.Fields(line)
		want := 2 // ascii: lit next [reset]
		if p.binary {
			want = 1 // binary: next [reset]
		}
		if len(fields) < want || len(fields) > want+1 {
			return fmt.Errorf("%w: bad latch line %q", ErrParse, line)
		}
		var sym Symbol
		if p.binary {
			sym.Lit = 2 * (inputs + k + 1)
		} else {
			if sym.Lit, err = parseLit(fields[0]); err != nil {
				return fmt.Errorf("%w: bad latch literal %q", ErrParse, fields[0])
			}
			fields = fields[1:]
		}
		if sym.Next, err = parseLit(fields[0]); err != nil {
			return fmt.Errorf("%w: bad latch next %q", ErrParse, fields[0])
		}
		// A missing reset means the AIGER default: initialized to 0.
		if len(fields) == 2 {
			if sym.Reset, err = parseLit(fields[1]); err != nil {
				return fmt.Errorf("%w: bad latch reset %q", ErrParse, fields[1])
			}
		}
		if err := p.checkLit(sym.Lit); err != nil {
			return err
		}
		if err := p.checkLit(sym.Next); err != nil {
			return err
		}
		g.Latches = append(g.Latches, sym)
	}

	return nil
}

func (p *parser) litSection(what string, n uint32) ([]Symbol, error) {
	syms := make([]Symbol, 0, n)
	for k := uint32(0); k < n; k++ {
		lit, err := p.uintLine(what)
		if err != nil {
			return nil, err
		}
		if err := p.checkLit(lit); err != nil {
			return nil, err
		}
		syms = append(syms, Symbol{Lit: lit})
	}

	return syms, nil
}

// justice reads the size lines first, then each property's literals.
func (p *parser) justice(g *Aiger, n uint32) error {
	sizes := make([]uint32, 0, n)
	for k := uint32(0); k < n; k++ {
		size, err := p.uintLine("justice size")
		if err != nil {
			return err
		}
		sizes = append(sizes, size)
	}
	g.Justice = make([]Symbol, 0, n)
	for _, size := range sizes {
		lits := make([]uint32, 0, size)
		for k := uint32(0); k < size; k++ {
			lit, err := p.uintLine("justice literal")
			if err != nil {
				return err
			}
			if err := p.checkLit(lit); err != nil {
				return err
			}
			lits = append(lits, lit)
		}
		g.Justice = append(g.Justice, Symbol{Lits: lits})
	}

	return nil
}

func (p *parser) ands(g *Aiger, inputs, latches, n uint32) error {
	g.Ands = make([]And, 0, n)
	for k := uint32(0); k < n; k++ {
		var gate And
		if p.binary {
			lhs := 2 * (inputs + latches + k + 1)
			delta0, err := p.varint()
			if err != nil {
				return err
			}
			delta1, err := p.varint()
			if err != nil {
				return err
			}
			if delta0 > lhs || delta1 > lhs-delta0 {
				return fmt.Errorf("%w: delta underflow at gate %d", ErrParse, lhs)
			}
			gate = And{LHS: lhs, RHS0: lhs - delta0, RHS1: lhs - delta0 - delta1}
		} else {
			line, err := p.line()
			if err != nil {
				return fmt.Errorf("%w: truncated and section", ErrParse)
			}
			fields := strings.Fields(line)
			if len(fields) != 3 {
				return fmt.Errorf("%w: bad and line %q", ErrParse, line)
			}
			if gate.LHS, err = parseLit(fields[0]); err != nil {
				return fmt.Errorf("%w: bad and lhs %q", ErrParse, fields[0])
			}
			if gate.RHS0, err = parseLit(fields[1]); err != nil {
				return fmt.Errorf("%w: bad and rhs %q", ErrParse, fields[1])
			}
			if gate.RHS1, err = parseLit(fields[2]); err != nil {
				return fmt.Errorf("%w: bad and rhs %q", ErrParse, fields[2])
			}
		}
		for _, lit := range [3]uint32{gate.LHS, gate.RHS0, gate.RHS1} {
			if err := p.checkLit(lit); err != nil {
				return err
			}
		}
		g.Ands = append(g.Ands, gate)
	}

	return nil
}

// symbolsAndComments consumes the trailing symbol table and, after a
// bare "c" line, the comment section.
func (p *parser) symbolsAndComments(g *Aiger) error {
	for {
		line, err := p.line()
		if err != nil {
			return nil // EOF ends the file
		}
		if line == "c" {
			for {
				comment, err := p.line()
				if err != nil {
					return nil
				}
				g.Comments = append(g.Comments, comment)
			}
		}
		if line == "" {
			continue
		}
		section, err := p.symbolSection(g, line[0])
		if err != nil {
			return err
		}
		rest := line[1:]
		space := strings.IndexByte(rest, ' ')
		if space < 0 {
			return fmt.Errorf("%w: bad symbol line %q", ErrParse, line)
		}
		pos, convErr := strconv.ParseUint(rest[:space], 10, 32)
		if convErr != nil || int(pos) >= len(section) {
			return fmt.Errorf("%w: bad symbol position in %q", ErrParse, line)
		}
		section[pos].Name = rest[space+1:]
	}
}

func (p *parser) symbolSection(g *Aiger, prefix byte) ([]Symbol, error) {
	switch prefix {
	case 'i':
		return g.Inputs, nil
	case 'l':
		return g.Latches, nil
	case 'o':
		return g.Outputs, nil
	case 'b':
		return g.Bads, nil
	case 'c':
		return g.Constraints, nil
	case 'j':
		return g.Justice, nil
	case 'f':
		return g.Fairness, nil
	}

	return nil, fmt.Errorf("%w: unknown symbol prefix %q", ErrParse, string(prefix))
}

// line reads one newline-terminated line, trimming the terminator.
func (p *parser) line() (string, error) {
	line, err := p.br.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// uintLine reads a line holding a single unsigned number.
func (p *parser) uintLine(what string) (uint32, error) {
	line, err := p.line()
	if err != nil {
		return 0, fmt.Errorf("%w: truncated %s section", ErrParse, what)
	}
	v, err := parseLit(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("%w: bad %s literal %q", ErrParse, what, line)
	}

	return v, nil
}

// varint reads one 7-bit little-endian delta code.
func (p *parser) varint() (uint32, error) {
	var x uint32
	shift := uint(0)
	for {
		b, err := p.br.ReadByte()
		if err != nil {
			return 0, fmt.Errorf("%w: truncated delta code", ErrParse)
		}
		if shift > 28 {
			return 0, fmt.Errorf("%w: delta code overflow", ErrParse)
		}
		x |= uint32(b&0x7f) << shift
		if b&0x80 == 0 {
			return x, nil
		}
		shift += 7
	}
}

func (p *parser) checkLit(lit uint32) error {
	if lit/2 > p.counts[0] {
		return fmt.Errorf("%w: literal %d exceeds maxvar %d", ErrParse, lit, p.counts[0])
	}

	return nil
}

func parseLit(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}

	return uint32(v), nil
}
