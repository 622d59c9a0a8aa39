package util

import (
	"bufio"
	"strings"
)

func ReadLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil {
		return strings.TrimRight(line, "\n"), err
	}
	return strings.TrimRight(line, "\n"), nil
}

func Fields(line string) []string {
	return strings.Fields(line)
}
