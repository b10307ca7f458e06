package api

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

func (rp *RequestProcessor) printf(format string, a ...any) {
	fmt.Fprintf(rp.out, format, a...)
}

func (rp *RequestProcessor) readLine() (string, error) {
	if !rp.in.Scan() {
		if err := rp.in.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimSpace(rp.in.Text()), nil
}

// readInt keeps asking until the line is an integer in [lower, upper].
func (rp *RequestProcessor) readInt(prompt string, lower, upper int) (int, error) {
	rp.printf("%s\n", prompt)

readLoop:
	for {
		line, err := rp.readLine()
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(line)
		if err != nil {
			rp.printf("  (provide a valid integer value)\n")
			continue readLoop
		}
		if n < lower {
			rp.printf("  (provide a value >= %d)\n", lower)
			continue readLoop
		}
		if n > upper {
			rp.printf("  (provide a value <= %d)\n", upper)
			continue readLoop
		}
		return n, nil
	}
}

func (rp *RequestProcessor) readCoordinates(maxX, maxY int) (int, int, error) {
	x, err := rp.readInt(fmt.Sprintf("Please, provide a X position in [0, %d]:", maxX), 0, maxX)
	if err != nil {
		return 0, 0, err
	}
	y, err := rp.readInt(fmt.Sprintf("Please, provide a Y position in [0, %d]:", maxY), 0, maxY)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

func (rp *RequestProcessor) readYesNo(prompt string) (bool, error) {
	rp.printf("%s (y/n)\n", prompt)

	for {
		line, err := rp.readLine()
		if err != nil {
			return false, err
		}

		switch line {
		case "y":
			return true, nil
		case "n":
			return false, nil
		default:
			rp.printf("  (y/n)\n")
		}
	}
}

// readChoice keeps asking until the line matches one of choices.
func (rp *RequestProcessor) readChoice(prompt string, choices []string) (string, error) {
	rp.printf("%s [%s]\n", prompt, strings.Join(choices, ", "))

	for {
		line, err := rp.readLine()
		if err != nil {
			return "", err
		}

		for _, choice := range choices {
			if line == choice {
				return line, nil
			}
		}
		rp.printf("  (provide one of: %s)\n", strings.Join(choices, ", "))
	}
}
