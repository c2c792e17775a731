// notifymainpid (c) 2021-2025 He Xian <hexian000@outlook.com>
// This code is licensed under MIT license (see LICENSE for details)

package notifymainpid

import (
	"bufio"
	"errors"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// C locale isspace
const cSpace = " \t\n\v\f\r"

// ParsePID never fails. Leading whitespace and one sign are accepted, parsing
// stops at the first non-digit, no digits yields 0 and values outside pid_t
// saturate.
func ParsePID(s string) int {
	s = strings.TrimLeft(s, cSpace)
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	j := i
	for j < len(s) && '0' <= s[j] && s[j] <= '9' {
		j++
	}
	if j == i {
		return 0
	}
	n, err := strconv.ParseInt(s[:j], 10, 32)
	if err != nil {
		if s[0] == '-' {
			return math.MinInt32
		}
		return math.MaxInt32
	}
	return int(n)
}

var errEmpty = errors.New("no pid found")

func isSpace(c byte) bool {
	return strings.IndexByte(cSpace, c) >= 0
}

// ReadPIDFile parses the number at the head of the file at path, the way
// ParsePID does. Only the bytes of the number are read.
// The pid is 0 whenever err is not nil.
func ReadPIDFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	r := bufio.NewReader(f)
	var b strings.Builder
	seen, significant := false, false
	for {
		c, err := r.ReadByte()
		if err == io.EOF {
			break
		} else if err != nil {
			return 0, err
		}
		if !seen && isSpace(c) {
			continue
		}
		if !seen && (c == '+' || c == '-') {
			seen = true
			b.WriteByte(c)
			continue
		}
		seen = true
		if c < '0' || '9' < c {
			break
		}
		// leading zeros do not change the value
		if c == '0' && !significant {
			continue
		}
		significant = true
		// 11 digits already saturate
		if b.Len() < 12 {
			b.WriteByte(c)
		}
	}
	if !seen {
		return 0, errEmpty
	}
	return ParsePID(b.String()), nil
}
