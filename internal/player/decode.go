package player

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/gabriel-vasile/mimetype"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

// ErrUnsupportedFormat is returned when no decoder handles a file's content type.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

type decodeFunc func(f io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error)

type decoder struct {
	contentType string
	decode      decodeFunc
}

var decoders = []decoder{
	{"audio/mpeg", func(f io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) {
		return mp3.Decode(f)
	}},
	{"audio/flac", func(f io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) {
		return flac.Decode(f)
	}},
	{"audio/wav", func(f io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) {
		return wav.Decode(f)
	}},
	{"audio/ogg", func(f io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) {
		return vorbis.Decode(f)
	}},
}

// SupportedContentTypes lists the content types the output can decode.
func SupportedContentTypes() []string {
	types := make([]string, len(decoders))
	for i, d := range decoders {
		types[i] = d.contentType
	}
	return types
}

// decoderFor picks the decoder for a sniffed type, accepting the type's aliases.
func decoderFor(mt *mimetype.MIME) (decoder, error) {
	for _, d := range decoders {
		if mt.Is(d.contentType) {
			return d, nil
		}
	}
	return decoder{}, errors.Wrapf(ErrUnsupportedFormat, "%s", mt.String())
}

// sniff detects the content type of an open file and rewinds it.
func sniff(f io.ReadSeeker) (*mimetype.MIME, error) {
	mt, err := mimetype.DetectReader(f)
	if err != nil {
		return nil, errors.Wrap(err, "detect content type")
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, errors.Wrap(err, "rewind")
	}
	return mt, nil
}
