package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/PithLimb/StreamingServices/internal/common"
	"github.com/wlynxg/chardet"
	"github.com/wlynxg/chardet/consts"
	"golang.org/x/text/encoding/charmap"
)

// ErrInputClosed is returned when the operator input ends before the session is exited.
var ErrInputClosed = errors.New("input closed")

// Input reads operator answers line by line, echoing prompts to out.
type Input struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewInput creates an Input reading from r and prompting on out.
func NewInput(r io.Reader, out io.Writer) *Input {
	return &Input{
		reader: bufio.NewReader(r),
		out:    out,
	}
}

// Line prompts and returns the next line without its line terminator.
// Lines that are not valid UTF-8 are transcoded from the detected single byte encoding.
func (in *Input) Line(prompt string) (string, error) {
	if prompt != "" {
		if _, err := fmt.Fprint(in.out, prompt); err != nil {
			return "", fmt.Errorf("failed to write prompt: %w", err)
		}
	}

	line, err := in.reader.ReadBytes('\n')
	if errors.Is(err, io.EOF) {
		if len(line) == 0 {
			return "", ErrInputClosed
		}
	} else if err != nil {
		return "", fmt.Errorf("failed to bufio.Reader.ReadBytes: %w", err)
	}

	line = []byte(strings.TrimRight(string(line), "\r\n"))

	return toUTF8(line), nil
}

// WholeNumber prompts for an integer.
func (in *Input) WholeNumber(prompt string) (int, error) {
	line, err := in.Line(prompt)
	if err != nil {
		return 0, err
	}
	return common.ParseWholeNumber(line)
}

// Decimal prompts for a decimal number.
func (in *Input) Decimal(prompt string) (float64, error) {
	line, err := in.Line(prompt)
	if err != nil {
		return 0, err
	}
	return common.ParseDecimal(line)
}

func toUTF8(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}

	decoder := charmap.Windows1252.NewDecoder()
	if chardet.Detect(b).Encoding == consts.ISO88591 {
		decoder = charmap.ISO8859_1.NewDecoder()
	}

	decoded, err := decoder.Bytes(b)
	if err != nil {
		return strings.ToValidUTF8(string(b), "�")
	}

	return string(decoded)
}
