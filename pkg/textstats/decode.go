package textstats

import (
	"fmt"
	"strings"

	"github.com/gogs/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// EncodingAuto asks the loader to detect the input charset.
const EncodingAuto = "auto"

// ValidateEncoding reports whether name is a supported encoding label or
// EncodingAuto. Unknown names yield ErrUnknownEncoding.
func ValidateEncoding(name string) error {
	_, err := lookupEncoding(name)
	return err
}

// lookupEncoding resolves an encoding label. A nil encoding with a nil error
// means the bytes are used as-is (UTF-8) or, for "auto", detected later.
func lookupEncoding(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" || name == EncodingAuto {
		return nil, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	if canonical, _ := htmlindex.Name(enc); canonical == "utf-8" {
		return nil, nil
	}
	return enc, nil
}

// detectEncoding guesses the charset of content. Unrecognised or UTF-8
// results fall back to reading the bytes unchanged.
func detectEncoding(content []byte) encoding.Encoding {
	if len(content) == 0 {
		return nil
	}
	result, err := chardet.NewTextDetector().DetectBest(content)
	if err != nil || result == nil {
		return nil
	}
	enc, err := lookupEncoding(result.Charset)
	if err != nil {
		return nil
	}
	return enc
}

// decode converts content from the named charset to a UTF-8 string.
func decode(content []byte, name string) (string, error) {
	var enc encoding.Encoding
	if strings.EqualFold(strings.TrimSpace(name), EncodingAuto) {
		enc = detectEncoding(content)
	} else {
		var err error
		if enc, err = lookupEncoding(name); err != nil {
			return "", err
		}
	}
	if enc == nil {
		return string(content), nil
	}
	out, err := enc.NewDecoder().Bytes(content)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
