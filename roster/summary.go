// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package roster

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/drawlots/drawlots/utils/formatting"
)

var (
	errSelfTestMismatch = errors.New("round trip changed the names")

	selfTestNames = []string{"测试名字1", "测试名字2", "测试名字3", "测试名字4"}
)

// Summary describes the size of a plain text roster and its envelope. Ratio
// is envelope characters per plain character.
type Summary struct {
	PlainLines    int     `json:"plainLines"`
	PlainChars    int     `json:"plainChars"`
	AvgLineChars  int     `json:"avgLineChars"`
	EnvelopeLines int     `json:"envelopeLines"`
	EnvelopeChars int     `json:"envelopeChars"`
	Ratio         float64 `json:"ratio"`
}

func Summarize(plain, envelope string) Summary {
	plain = strings.TrimSpace(plain)
	envelope = strings.TrimSpace(envelope)

	s := Summary{
		PlainLines:    countLines(plain),
		PlainChars:    utf8.RuneCountInString(plain),
		EnvelopeLines: countLines(envelope),
		EnvelopeChars: utf8.RuneCountInString(envelope),
	}
	s.AvgLineChars = s.PlainChars / max(1, s.PlainLines)
	s.Ratio = float64(s.EnvelopeChars) / float64(max(1, s.PlainChars))
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf(
		"input: %d lines, %d chars (%d per line); output: %d lines, %d chars; ratio %.2fx",
		s.PlainLines,
		s.PlainChars,
		s.AvgLineChars,
		s.EnvelopeLines,
		s.EnvelopeChars,
		s.Ratio,
	)
}

// countLines counts the non blank lines of [text].
func countLines(text string) int {
	count := 0
	for _, line := range strings.Split(lineEndings.Replace(text), "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}

// SelfTest round trips a fixed list of names through [enc].
func SelfTest(enc formatting.Encoding) error {
	envelope, err := Encode(selfTestNames, enc)
	if err != nil {
		return err
	}
	text, err := Decode(envelope, enc)
	if err != nil {
		return err
	}

	expected := strings.Join(selfTestNames, "\n")
	if text != expected {
		return fmt.Errorf("%w: expected %q but got %q", errSelfTestMismatch, expected, text)
	}
	return nil
}
