// Package sysfile reads single fields out of small system text files such
// as /etc/os-release and /proc/meminfo. The helpers here deliberately stay
// close to the raw line format: tokens are separated by single spaces and
// runs of spaces produce empty tokens, which matters for the fixed-width
// value columns in /proc files.
package sysfile

import (
	"bufio"
	"os"
	"strings"

	zyerrors "github.com/foelkdavid/zyfetch/pkg/errors"
)

// ReadLine returns the first line of the file at path that starts with
// prefix. An empty prefix matches the first line. The returned line still
// includes the prefix.
func ReadLine(path, prefix string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", zyerrors.Wrap(zyerrors.ErrCodeFileNotFound, "failed to open "+path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, prefix) {
			return line, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", zyerrors.Wrap(zyerrors.ErrCodeFileNotFound, "failed to read "+path, err)
	}

	return "", zyerrors.Newf(zyerrors.ErrCodeLineNotFound, "no line with prefix %q in %s", prefix, path)
}

// TrimQuotes returns the text between the first and the last double quote
// in s. Values in /etc/os-release keep their inner quotes intact.
func TrimQuotes(s string) (string, error) {
	first := strings.IndexByte(s, '"')
	last := strings.LastIndexByte(s, '"')
	if first == -1 || last == first {
		return "", zyerrors.Newf(zyerrors.ErrCodeInvalidFormat, "expected a double-quoted value in %q", s)
	}
	return s[first+1 : last], nil
}

// Token returns the space-separated token at index. Consecutive spaces
// count as empty tokens rather than collapsing.
func Token(line string, index int) (string, error) {
	parts := strings.Split(line, " ")
	if index < 0 || index >= len(parts) {
		return "", zyerrors.Newf(zyerrors.ErrCodePartNotFound, "line %q has no part %d", line, index)
	}
	return parts[index], nil
}

// TokenAndRest returns the token at index together with everything after
// it, preserving the original spacing between the remaining tokens.
func TokenAndRest(line string, index int) (string, error) {
	parts := strings.Split(line, " ")
	if index < 0 || index >= len(parts) {
		return "", zyerrors.Newf(zyerrors.ErrCodePartNotFound, "line %q has no part %d", line, index)
	}
	return strings.Join(parts[index:], " "), nil
}
