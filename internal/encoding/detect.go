package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Charset names accepted by NewUTF8Reader.
const (
	Auto     = "auto"
	UTF8     = "utf-8"
	ShiftJIS = "shift_jis"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// NewUTF8Reader returns a reader that decodes r to UTF-8.
//
// With charset Auto the detection order is:
//  1. BOM (UTF-8 BOM is stripped; UTF-16 LE/BE is decoded)
//  2. Valid UTF-8 is returned as-is
//  3. Heuristic detection via chardet (Shift_JIS, EUC-JP)
//  4. Fallback to Shift_JIS
//
// With UTF8 only the BOM is stripped. With ShiftJIS the input is always decoded
// as Shift_JIS.
func NewUTF8Reader(r io.Reader, charset string) (io.Reader, error) {
	br := bufio.NewReader(r)

	switch strings.ToLower(charset) {
	case ShiftJIS:
		return transform.NewReader(br, japanese.ShiftJIS.NewDecoder()), nil
	case UTF8, Auto, "":
	default:
		return nil, fmt.Errorf("unsupported charset %q", charset)
	}

	buf, err := br.Peek(4096)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("peek: %w", err)
	}

	if bytes.HasPrefix(buf, bomUTF8) {
		_, _ = br.Discard(len(bomUTF8))
		return br, nil
	}

	if strings.ToLower(charset) == UTF8 {
		return br, nil
	}

	if bytes.HasPrefix(buf, bomUTF16LE) {
		decoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		return transform.NewReader(br, decoder), nil
	}

	if bytes.HasPrefix(buf, bomUTF16BE) {
		decoder := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()
		return transform.NewReader(br, decoder), nil
	}

	if utf8.Valid(buf) {
		return br, nil
	}

	detector := chardet.NewTextDetector()

	result, detectErr := detector.DetectBest(buf)
	if detectErr == nil {
		switch result.Charset {
		case "UTF-8":
			return br, nil
		case "EUC-JP":
			return transform.NewReader(br, japanese.EUCJP.NewDecoder()), nil
		case "Shift_JIS":
			return transform.NewReader(br, japanese.ShiftJIS.NewDecoder()), nil
		}
	}

	return transform.NewReader(br, japanese.ShiftJIS.NewDecoder()), nil
}

// Supported reports whether charset is accepted by NewUTF8Reader.
func Supported(charset string) bool {
	switch strings.ToLower(charset) {
	case Auto, UTF8, ShiftJIS:
		return true
	}
	return false
}
