package scene

import (
	"fmt"
	"math"
	"strconv"
)

// number of arguments of each path command
var commandArgs = [256]int8{
	'M': 2, 'm': 2,
	'L': 2, 'l': 2,
	'H': 1, 'h': 1,
	'V': 1, 'v': 1,
	'C': 6, 'c': 6,
	'S': 4, 's': 4,
	'Q': 4, 'q': 4,
	'T': 2, 't': 2,
	'A': 7, 'a': 7,
	'Z': 0, 'z': 0,
}

func isCommand(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v', 'C', 'c', 'S', 's', 'Q', 'q', 'T', 't', 'A', 'a', 'Z', 'z':
		return true
	}
	return false
}

// ParsePath parses SVG path data (the "d" attribute), supporting
// absolute and relative M, L, H, V, C, S, Q, T, A and Z commands.
// Arcs are converted to cubic bezier curves.
// Errors wrap ErrPathSyntax.
func ParsePath(d string) (Path, error) {
	var (
		sc       = pathScanner{src: d}
		b        PathBuilder
		cmd      byte
		args     [7]float64
		lastCtrl Vec2 // last control point, for S and T
		prevCmd  byte
	)
	for {
		sc.skipSeparators()
		if sc.done() {
			break
		}
		if c := sc.src[sc.pos]; isCommand(c) {
			cmd = c
			sc.pos++
		} else {
			switch cmd {
			case 0:
				return nil, sc.errorf("expected a command, got %q", c)
			case 'Z', 'z':
				return nil, sc.errorf("unexpected %q after close command", c)
			case 'M': // implicit repetitions are lines
				cmd = 'L'
			case 'm':
				cmd = 'l'
			}
		}

		for i := 0; i < int(commandArgs[cmd]); i++ {
			var err error
			if (cmd == 'A' || cmd == 'a') && (i == 3 || i == 4) {
				args[i], err = sc.readFlag()
			} else {
				args[i], err = sc.readNumber()
			}
			if err != nil {
				return nil, err
			}
		}

		cur := b.Current()
		abs := func(x, y float64) Vec2 {
			if cmd >= 'a' { // relative command
				return Vec2{cur.X + x, cur.Y + y}
			}
			return Vec2{x, y}
		}
		// reflection of the previous control point, if the previous
		// command is of the same family
		reflect := func(family string) Vec2 {
			for i := 0; i < len(family); i++ {
				if prevCmd == family[i] {
					return cur.Scale(2).Sub(lastCtrl)
				}
			}
			return cur
		}

		switch cmd {
		case 'M', 'm':
			b.MoveTo(abs(args[0], args[1]))
		case 'L', 'l':
			b.LineTo(abs(args[0], args[1]))
		case 'H':
			b.LineTo(Vec2{args[0], cur.Y})
		case 'h':
			b.LineTo(Vec2{cur.X + args[0], cur.Y})
		case 'V':
			b.LineTo(Vec2{cur.X, args[0]})
		case 'v':
			b.LineTo(Vec2{cur.X, cur.Y + args[0]})
		case 'C', 'c':
			lastCtrl = abs(args[2], args[3])
			b.CubicTo(abs(args[0], args[1]), lastCtrl, abs(args[4], args[5]))
		case 'S', 's':
			ctrl1 := reflect("CcSs")
			lastCtrl = abs(args[0], args[1])
			b.CubicTo(ctrl1, lastCtrl, abs(args[2], args[3]))
		case 'Q', 'q':
			lastCtrl = abs(args[0], args[1])
			b.QuadTo(lastCtrl, abs(args[2], args[3]))
		case 'T', 't':
			lastCtrl = reflect("QqTt")
			b.QuadTo(lastCtrl, abs(args[0], args[1]))
		case 'A', 'a':
			rotation := args[2] * math.Pi / 180
			b.ArcTo(args[0], args[1], rotation, args[3] == 1, args[4] == 1, abs(args[5], args[6]))
		case 'Z', 'z':
			b.Close()
		}
		prevCmd = cmd
	}
	return b.path, nil
}

type pathScanner struct {
	src string
	pos int
}

func (sc *pathScanner) done() bool { return sc.pos >= len(sc.src) }

func (sc *pathScanner) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s (at offset %d)", ErrPathSyntax, fmt.Sprintf(format, args...), sc.pos)
}

// skipSeparators skips white spaces and at most one comma
func (sc *pathScanner) skipSeparators() {
	comma := false
	for !sc.done() {
		switch sc.src[sc.pos] {
		case ' ', '\t', '\n', '\r', '\f':
		case ',':
			if comma {
				return
			}
			comma = true
		default:
			return
		}
		sc.pos++
	}
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// readNumber reads a float, with the SVG grammar: the number ends as soon as
// a character can't extend it, so that "10-5" and ".5.5" are two numbers.
func (sc *pathScanner) readNumber() (float64, error) {
	sc.skipSeparators()
	start := sc.pos
	if !sc.done() && (sc.src[sc.pos] == '+' || sc.src[sc.pos] == '-') {
		sc.pos++
	}
	digits := 0
	for !sc.done() && isDigit(sc.src[sc.pos]) {
		sc.pos++
		digits++
	}
	if !sc.done() && sc.src[sc.pos] == '.' {
		sc.pos++
		for !sc.done() && isDigit(sc.src[sc.pos]) {
			sc.pos++
			digits++
		}
	}
	if digits == 0 {
		sc.pos = start
		if sc.done() {
			return 0, sc.errorf("unexpected end of data, expected a number")
		}
		return 0, sc.errorf("expected a number, got %q", sc.src[sc.pos])
	}
	if !sc.done() && (sc.src[sc.pos] == 'e' || sc.src[sc.pos] == 'E') {
		save := sc.pos
		sc.pos++
		if !sc.done() && (sc.src[sc.pos] == '+' || sc.src[sc.pos] == '-') {
			sc.pos++
		}
		expDigits := 0
		for !sc.done() && isDigit(sc.src[sc.pos]) {
			sc.pos++
			expDigits++
		}
		if expDigits == 0 { // not an exponent
			sc.pos = save
		}
	}
	f, err := strconv.ParseFloat(sc.src[start:sc.pos], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrPathSyntax, err)
	}
	return f, nil
}

// readFlag reads an arc flag, which may not be followed by a separator.
func (sc *pathScanner) readFlag() (float64, error) {
	sc.skipSeparators()
	if sc.done() {
		return 0, sc.errorf("unexpected end of data, expected a flag")
	}
	switch sc.src[sc.pos] {
	case '0':
		sc.pos++
		return 0, nil
	case '1':
		sc.pos++
		return 1, nil
	default:
		return 0, sc.errorf("invalid arc flag %q", sc.src[sc.pos])
	}
}

// MustParsePath is like ParsePath but panics on error.
func MustParsePath(d string) Path {
	p, err := ParsePath(d)
	if err != nil {
		panic(err)
	}
	return p
}
