// Package json decodes JSON documents into variant.Value trees, preserving
// object member order so that queries see objects in the order their keys
// first appeared in the source text.
package json

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/arnodel/spath/variant"
)

// Decode reads a single JSON value from r. Trailing whitespace after the
// value is tolerated; anything else is a syntax error.
func Decode(r io.Reader) (variant.Value, error) {
	d := &decoder{buf: bufio.NewReader(r)}
	b, err := d.skipSpace()
	if err != nil {
		return nil, err
	}
	v, err := d.parseValue(b)
	if err != nil {
		return nil, err
	}
	if _, err := d.skipSpace(); err == nil {
		return nil, errors.New("syntax error: trailing data after JSON value")
	} else if !errors.Is(err, io.EOF) {
		return nil, err
	}
	return v, nil
}

type decoder struct {
	buf *bufio.Reader
}

func (d *decoder) parseValue(b byte) (variant.Value, error) {
	switch b {
	case '"':
		return d.parseString()
	case '[':
		return d.parseArray()
	case '{':
		return d.parseObject()
	case 't':
		if ok, err := d.check("rue"); err != nil {
			return nil, err
		} else if !ok {
			return nil, errors.New("syntax error: expected true")
		}
		return variant.Bool(true), nil
	case 'f':
		if ok, err := d.check("alse"); err != nil {
			return nil, err
		} else if !ok {
			return nil, errors.New("syntax error: expected false")
		}
		return variant.Bool(false), nil
	case 'n':
		if ok, err := d.check("ull"); err != nil {
			return nil, err
		} else if !ok {
			return nil, errors.New("syntax error: expected null")
		}
		return variant.Nil, nil
	default:
		if b == '-' || (b >= '0' && b <= '9') {
			return d.parseNumber(b)
		}
		return nil, fmt.Errorf("syntax error: invalid value starting with %q", b)
	}
}

func (d *decoder) parseArray() (variant.Value, error) {
	b, err := d.skipSpace()
	if err != nil {
		return nil, err
	}
	if b == ']' {
		return variant.NewArray(nil), nil
	}
	var items []variant.Value
	for {
		v, err := d.parseValue(b)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
		b, err = d.skipSpace()
		if err != nil {
			return nil, err
		}
		switch b {
		case ']':
			return variant.NewArray(items), nil
		case ',':
			b, err = d.skipSpace()
			if err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("syntax error: expected ']' or ',', got %q", b)
		}
	}
}

func (d *decoder) parseObject() (variant.Value, error) {
	b, err := d.skipSpace()
	if err != nil {
		return nil, err
	}
	if b == '}' {
		return variant.NewObject(nil, nil), nil
	}
	var keys []string
	values := map[string]variant.Value{}
	for {
		if b != '"' {
			return nil, fmt.Errorf("syntax error: expected object key, got %q", b)
		}
		key, err := d.parseRawString()
		if err != nil {
			return nil, err
		}
		b, err = d.skipSpace()
		if err != nil {
			return nil, err
		}
		if b != ':' {
			return nil, fmt.Errorf("syntax error: expected ':', got %q", b)
		}
		b, err = d.skipSpace()
		if err != nil {
			return nil, err
		}
		v, err := d.parseValue(b)
		if err != nil {
			return nil, err
		}
		if _, seen := values[key]; !seen {
			keys = append(keys, key)
		}
		values[key] = v
		b, err = d.skipSpace()
		if err != nil {
			return nil, err
		}
		switch b {
		case '}':
			return variant.NewObject(keys, values), nil
		case ',':
			b, err = d.skipSpace()
			if err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("syntax error: expected '}' or ',', got %q", b)
		}
	}
}

// The leading '"' has already been consumed by skipSpace.
func (d *decoder) parseString() (variant.Value, error) {
	s, err := d.parseRawString()
	if err != nil {
		return nil, err
	}
	return variant.String(s), nil
}

func (d *decoder) parseRawString() (string, error) {
	var raw bytes.Buffer
	for {
		b, err := d.buf.ReadByte()
		if err != nil {
			return "", err
		}
		switch b {
		case '\\':
			x, err := d.buf.ReadByte()
			if err != nil {
				return "", err
			}
			switch x {
			case '"':
				raw.WriteByte('"')
			case '\\':
				raw.WriteByte('\\')
			case '/':
				raw.WriteByte('/')
			case 'b':
				raw.WriteByte('\b')
			case 'f':
				raw.WriteByte('\f')
			case 'n':
				raw.WriteByte('\n')
			case 'r':
				raw.WriteByte('\r')
			case 't':
				raw.WriteByte('\t')
			case 'u':
				r, err := d.parseUnicodeEscape()
				if err != nil {
					return "", err
				}
				raw.WriteRune(r)
			default:
				return "", fmt.Errorf("syntax error: invalid escape %q", x)
			}
		case '"':
			return raw.String(), nil
		default:
			raw.WriteByte(b)
		}
	}
}

func (d *decoder) parseUnicodeEscape() (rune, error) {
	hi, err := d.readHex4()
	if err != nil {
		return 0, err
	}
	if hi < 0xD800 || hi > 0xDBFF {
		return rune(hi), nil
	}
	// high surrogate: a low surrogate must follow
	if b, err := d.buf.ReadByte(); err != nil || b != '\\' {
		return 0, errors.New("syntax error: unpaired surrogate escape")
	}
	if b, err := d.buf.ReadByte(); err != nil || b != 'u' {
		return 0, errors.New("syntax error: unpaired surrogate escape")
	}
	lo, err := d.readHex4()
	if err != nil {
		return 0, err
	}
	if lo < 0xDC00 || lo > 0xDFFF {
		return 0, errors.New("syntax error: invalid low surrogate")
	}
	return ((rune(hi) - 0xD800) << 10) + (rune(lo) - 0xDC00) + 0x10000, nil
}

func (d *decoder) readHex4() (int32, error) {
	hex := make([]byte, 4)
	if _, err := io.ReadFull(d.buf, hex); err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(string(hex), 16, 32)
	if err != nil {
		return 0, fmt.Errorf("syntax error: invalid unicode escape %q", hex)
	}
	return int32(v), nil
}

func (d *decoder) parseNumber(b byte) (variant.Value, error) {
	var numberBytes []byte
	isFloat := false
	var err error

	if b == '-' {
		numberBytes = append(numberBytes, b)
		b, err = d.buf.ReadByte()
		if err != nil {
			return nil, err
		}
	}

	if b == '0' {
		numberBytes = append(numberBytes, b)
		b, err = d.peekOrEOF()
		if err != nil {
			return nil, err
		}
	} else if b >= '1' && b <= '9' {
		b, _, err = d.readDigits(b, &numberBytes)
		if err != nil {
			return nil, err
		}
	} else {
		return nil, errors.New("syntax error: invalid number")
	}

	if b == '.' {
		isFloat = true
		numberBytes = append(numberBytes, b)
		b, err = d.buf.ReadByte()
		if err != nil {
			return nil, err
		}
		var n int
		b, n, err = d.readDigits(b, &numberBytes)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, errors.New("syntax error: expected digit after '.'")
		}
	}

	if b == 'e' || b == 'E' {
		isFloat = true
		numberBytes = append(numberBytes, b)
		b, err = d.buf.ReadByte()
		if err != nil {
			return nil, err
		}
		if b == '-' || b == '+' {
			numberBytes = append(numberBytes, b)
			b, err = d.buf.ReadByte()
			if err != nil {
				return nil, err
			}
		}
		var n int
		b, n, err = d.readDigits(b, &numberBytes)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, errors.New("syntax error: expected digit in exponent")
		}
	}
	// b == 0 means the number ended at EOF, so no byte was over-read.
	if b != 0 {
		d.buf.UnreadByte()
	}

	text := string(numberBytes)
	if !isFloat {
		if i, err := strconv.ParseInt(text, 10, 64); err == nil {
			return variant.Int(i), nil
		}
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, fmt.Errorf("syntax error: invalid number %q", text)
	}
	return variant.Float(f), nil
}

func (d *decoder) peekOrEOF() (byte, error) {
	b, err := d.buf.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, nil
		}
		return 0, err
	}
	return b, nil
}

func (d *decoder) readDigits(b byte, appendTo *[]byte) (byte, int, error) {
	var n int
	var err error
	for b >= '0' && b <= '9' {
		*appendTo = append(*appendTo, b)
		n++
		b, err = d.buf.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return 0, n, nil
			}
			return 0, 0, err
		}
	}
	return b, n, nil
}

func (d *decoder) check(rest string) (bool, error) {
	b := make([]byte, len(rest))
	if _, err := io.ReadFull(d.buf, b); err != nil {
		return false, err
	}
	return string(b) == rest, nil
}

func (d *decoder) skipSpace() (byte, error) {
	for {
		b, err := d.buf.ReadByte()
		if err != nil {
			return 0, err
		}
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		default:
			return b, nil
		}
	}
}
