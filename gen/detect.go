package gen

import (
	"io"
	"os"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/matchers"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"
)

type srcEncoding int

const (
	encUnknown srcEncoding = iota
	encUTF8
	encUTF16BigEndian
	encUTF16LittleEndian
	encUTF32BigEndian
	encUTF32LittleEndian
)

// detectUTF checks the first bytes of buf for a BOM. Sources without a BOM
// are reported as encUnknown and read raw (or through the forced code page).
func detectUTF(buf []byte) srcEncoding {
	switch {
	case len(buf) >= 4 && buf[0] == 0x00 && buf[1] == 0x00 && buf[2] == 0xFE && buf[3] == 0xFF:
		return encUTF32BigEndian
	case len(buf) >= 4 && buf[0] == 0xFF && buf[1] == 0xFE && buf[2] == 0x00 && buf[3] == 0x00:
		return encUTF32LittleEndian
	case len(buf) >= 3 && buf[0] == 0xEF && buf[1] == 0xBB && buf[2] == 0xBF:
		return encUTF8
	case len(buf) >= 2 && buf[0] == 0xFE && buf[1] == 0xFF:
		return encUTF16BigEndian
	case len(buf) >= 2 && buf[0] == 0xFF && buf[1] == 0xFE:
		return encUTF16LittleEndian
	}
	return encUnknown
}

// isArchiveFile sniffs file content for zip signature, extension alone
// proves nothing.
func isArchiveFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	head := make([]byte, 262)
	n, err := f.Read(head)
	if err != nil && err != io.EOF {
		return false, err
	}
	return filetype.IsType(head[:n], matchers.TypeZip), nil
}

// selectReader wraps r so that the scanner always sees plain UTF-8 text with
// the BOM stripped. When the source carries no BOM and forced is not nil all
// input is transcoded from that encoding instead.
func selectReader(r io.Reader, detected srcEncoding, forced encoding.Encoding) io.Reader {
	switch detected {
	case encUTF8:
		return transform.NewReader(r, unicode.UTF8BOM.NewDecoder())
	case encUTF16BigEndian:
		return transform.NewReader(r, unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder())
	case encUTF16LittleEndian:
		return transform.NewReader(r, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder())
	case encUTF32BigEndian:
		return transform.NewReader(r, utf32.UTF32(utf32.BigEndian, utf32.UseBOM).NewDecoder())
	case encUTF32LittleEndian:
		return transform.NewReader(r, utf32.UTF32(utf32.LittleEndian, utf32.UseBOM).NewDecoder())
	}
	if forced != nil {
		return transform.NewReader(r, forced.NewDecoder())
	}
	return r
}
