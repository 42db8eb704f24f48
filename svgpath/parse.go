package svgpath

import (
	"errors"
	"fmt"
	"strconv"
)

// This file implements the path command string compiler.

var errBadCommand = errors.New("invalid path command")

type parser struct {
	data []byte
	pos  int

	path Path

	x, y           float64 // current point
	startX, startY float64 // start of the current sub-path
	cpx, cpy       float64 // last control point, for S/T shorthands
	prevCmd        byte
}

func isSeparator(b byte) bool {
	return b == ' ' || b == ',' || b == '\t' || b == '\n' || b == '\r'
}

func isNumStart(b byte) bool {
	return b == '-' || b == '+' || b == '.' || ('0' <= b && b <= '9')
}

func (p *parser) skipSeparators() {
	for p.pos < len(p.data) && isSeparator(p.data[p.pos]) {
		p.pos++
	}
}

// hasNum reports whether a further parameter group follows, meaning the
// previous command is implicitly repeated.
func (p *parser) hasNum() bool {
	p.skipSeparators()
	return p.pos < len(p.data) && isNumStart(p.data[p.pos])
}

func (p *parser) num() (float64, error) {
	p.skipSeparators()
	start := p.pos
	if p.pos < len(p.data) && (p.data[p.pos] == '-' || p.data[p.pos] == '+') {
		p.pos++
	}
	seenDot := false
	for p.pos < len(p.data) {
		b := p.data[p.pos]
		if b == '.' && !seenDot {
			seenDot = true
			p.pos++
			continue
		}
		if '0' <= b && b <= '9' {
			p.pos++
			continue
		}
		if b == 'e' || b == 'E' {
			// exponent, with optional sign
			p.pos++
			if p.pos < len(p.data) && (p.data[p.pos] == '-' || p.data[p.pos] == '+') {
				p.pos++
			}
			continue
		}
		break
	}
	if p.pos == start {
		return 0, fmt.Errorf("expected number at position %d", start)
	}
	return strconv.ParseFloat(string(p.data[start:p.pos]), 64)
}

// flag reads a single arc flag, which may be written without separators
// ("011" is flag 0, flag 1, then the number 1).
func (p *parser) flag() (bool, error) {
	p.skipSeparators()
	if p.pos >= len(p.data) {
		return false, errors.New("expected arc flag")
	}
	switch p.data[p.pos] {
	case '0':
		p.pos++
		return false, nil
	case '1':
		p.pos++
		return true, nil
	}
	return false, fmt.Errorf("invalid arc flag %q", p.data[p.pos])
}

func (p *parser) pair(relative bool) (x, y float64, err error) {
	x, err = p.num()
	if err != nil {
		return
	}
	y, err = p.num()
	if relative {
		x += p.x
		y += p.y
	}
	return
}

func isLower(cmd byte) bool { return 'a' <= cmd && cmd <= 'z' }

// repeated parameter groups of M behave as L (and m as l)
func repeatCmd(cmd byte) byte {
	switch cmd {
	case 'M':
		return 'L'
	case 'm':
		return 'l'
	}
	return cmd
}

func (p *parser) command(cmd byte) error {
	rel := isLower(cmd)
	switch cmd {
	case 'M', 'm':
		x, y, err := p.pair(rel)
		if err != nil {
			return err
		}
		p.path.Start(toFixedP(x, y))
		p.x, p.y = x, y
		p.startX, p.startY = x, y
	case 'Z', 'z':
		p.path.Stop()
		p.x, p.y = p.startX, p.startY
	case 'L', 'l':
		x, y, err := p.pair(rel)
		if err != nil {
			return err
		}
		p.path.Line(toFixedP(x, y))
		p.x, p.y = x, y
	case 'H', 'h':
		x, err := p.num()
		if err != nil {
			return err
		}
		if rel {
			x += p.x
		}
		p.path.Line(toFixedP(x, p.y))
		p.x = x
	case 'V', 'v':
		y, err := p.num()
		if err != nil {
			return err
		}
		if rel {
			y += p.y
		}
		p.path.Line(toFixedP(p.x, y))
		p.y = y
	case 'C', 'c':
		c1x, c1y, err := p.pair(rel)
		if err != nil {
			return err
		}
		c2x, c2y, err := p.pair(rel)
		if err != nil {
			return err
		}
		x, y, err := p.pair(rel)
		if err != nil {
			return err
		}
		p.path.CubeBezier(toFixedP(c1x, c1y), toFixedP(c2x, c2y), toFixedP(x, y))
		p.cpx, p.cpy = c2x, c2y
		p.x, p.y = x, y
	case 'S', 's':
		c2x, c2y, err := p.pair(rel)
		if err != nil {
			return err
		}
		x, y, err := p.pair(rel)
		if err != nil {
			return err
		}
		c1x, c1y := p.x, p.y
		switch p.prevCmd {
		case 'C', 'c', 'S', 's':
			c1x, c1y = 2*p.x-p.cpx, 2*p.y-p.cpy
		}
		p.path.CubeBezier(toFixedP(c1x, c1y), toFixedP(c2x, c2y), toFixedP(x, y))
		p.cpx, p.cpy = c2x, c2y
		p.x, p.y = x, y
	case 'Q', 'q':
		cx, cy, err := p.pair(rel)
		if err != nil {
			return err
		}
		x, y, err := p.pair(rel)
		if err != nil {
			return err
		}
		p.path.QuadBezier(toFixedP(cx, cy), toFixedP(x, y))
		p.cpx, p.cpy = cx, cy
		p.x, p.y = x, y
	case 'T', 't':
		x, y, err := p.pair(rel)
		if err != nil {
			return err
		}
		cx, cy := p.x, p.y
		switch p.prevCmd {
		case 'Q', 'q', 'T', 't':
			cx, cy = 2*p.x-p.cpx, 2*p.y-p.cpy
		}
		p.path.QuadBezier(toFixedP(cx, cy), toFixedP(x, y))
		p.cpx, p.cpy = cx, cy
		p.x, p.y = x, y
	case 'A', 'a':
		rx, err := p.num()
		if err != nil {
			return err
		}
		ry, err := p.num()
		if err != nil {
			return err
		}
		rot, err := p.num()
		if err != nil {
			return err
		}
		largeArc, err := p.flag()
		if err != nil {
			return err
		}
		sweep, err := p.flag()
		if err != nil {
			return err
		}
		x, y, err := p.pair(rel)
		if err != nil {
			return err
		}
		if rx == 0 || ry == 0 {
			// zero radii collapse the arc to a straight line
			p.path.Line(toFixedP(x, y))
		} else {
			p.path.addArc(rx, ry, rot, largeArc, sweep, p.x, p.y, x, y)
		}
		p.x, p.y = x, y
	default:
		return fmt.Errorf("%w %q", errBadCommand, cmd)
	}
	p.prevCmd = cmd
	return nil
}

// Parse compiles a path command string into a Path.
func Parse(d string) (Path, error) {
	p := &parser{data: []byte(d)}
	for {
		p.skipSeparators()
		if p.pos >= len(p.data) {
			break
		}
		cmd := p.data[p.pos]
		p.pos++
		if err := p.command(cmd); err != nil {
			return p.path, err
		}
		if cmd == 'Z' || cmd == 'z' {
			continue // no parameters, nothing to repeat
		}
		// implicit command repetition while parameter groups follow
		for p.hasNum() {
			if err := p.command(repeatCmd(cmd)); err != nil {
				return p.path, err
			}
		}
	}
	return p.path, nil
}
