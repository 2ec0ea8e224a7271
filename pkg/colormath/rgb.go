package colormath

import "strconv"

// Channel selects which SGR color slot a sequence targets.
type Channel int

const (
	// Foreground is SGR 38, the text color.
	Foreground Channel = 38
	// Background is SGR 48, the cell color.
	Background Channel = 48
)

// String returns the channel name
func (c Channel) String() string {
	switch c {
	case Foreground:
		return "foreground"
	case Background:
		return "background"
	default:
		return "channel(" + strconv.Itoa(int(c)) + ")"
	}
}

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

// SGR returns the escape sequence ESC[<ch>;2;<r>;<g>;<b>m for the color.
func (c RGB) SGR(ch Channel) string {
	buf := make([]byte, 0, 20)
	buf = append(buf, '\x1b', '[')
	buf = strconv.AppendInt(buf, int64(ch), 10)
	buf = append(buf, ";2;"...)
	buf = strconv.AppendUint(buf, uint64(c.R), 10)
	buf = append(buf, ';')
	buf = strconv.AppendUint(buf, uint64(c.G), 10)
	buf = append(buf, ';')
	buf = strconv.AppendUint(buf, uint64(c.B), 10)
	buf = append(buf, 'm')
	return string(buf)
}
