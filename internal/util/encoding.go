package util

import (
	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// DecodeText converts raw file bytes to a UTF-8 string. The charset is
// auto-detected per file; when detection fails, or the detected charset has
// no registered decoder, the bytes are decoded as UTF-8.
func DecodeText(raw []byte) (string, error) {
	if len(raw) == 0 {
		return "", nil
	}

	detected, err := chardet.NewTextDetector().DetectBest(raw)
	if err != nil || detected.Charset == "" {
		return decodeUTF8(raw)
	}

	enc, err := htmlindex.Get(detected.Charset)
	if err != nil {
		return decodeUTF8(raw)
	}

	decoded, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

func decodeUTF8(raw []byte) (string, error) {
	decoded, err := unicode.UTF8.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
