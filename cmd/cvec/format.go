package main

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// newPrinter formats counts with grouping separators. Vector elements go
// through fmt so they stay parseable.
func newPrinter() *message.Printer {
	return message.NewPrinter(language.English)
}

// formatVector renders x as "[e0<delim>e1...]".
func formatVector(x []complex64, delim string) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range x {
		if i > 0 {
			sb.WriteString(delim)
		}
		sb.WriteString(formatScalar(v))
	}
	sb.WriteByte(']')
	return sb.String()
}

func formatScalar(v complex64) string {
	return fmt.Sprintf("%g%+gj", real(v), imag(v))
}
