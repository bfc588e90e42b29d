// Package attachment turns uploaded files into self-describing data URIs
// that are stored inline in book records, and back.
package attachment

import (
	"bytes"
	"context"
	"encoding/base64"
	"io"
	"net/url"
	"strings"

	"github.com/Astemirdum/bookhaven/bookhaven/internal/errs"
	"github.com/Astemirdum/bookhaven/bookhaven/internal/model"
	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
)

const (
	scheme            = "data:"
	base64Marker      = ";base64"
	defaultMediaType  = "text/plain;charset=US-ASCII"
	genericMediaType  = "application/octet-stream"
	DefaultLimitBytes = 5 << 20
)

type Result struct {
	DataURI string
	Err     error
}

// Encode reads the upload in its own goroutine. The returned channel yields
// exactly one Result and is then closed. limit <= 0 disables the size check.
func Encode(ctx context.Context, up model.Upload, limit int64) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		defer close(out)
		if err := ctx.Err(); err != nil {
			out <- Result{Err: err}
			return
		}
		data, err := readAll(up.Reader, limit)
		if err != nil {
			out <- Result{Err: errors.Wrapf(err, "read %s", up.Name)}
			return
		}
		out <- Result{DataURI: EncodeBytes(data, up.ContentType)}
	}()
	return out
}

// EncodeBytes builds a base64 data URI. The declared media type wins unless it
// is empty or generic, in which case the type is sniffed from the content.
func EncodeBytes(data []byte, declared string) string {
	mediaType := strings.TrimSpace(strings.SplitN(declared, ";", 2)[0])
	if mediaType == "" || mediaType == genericMediaType {
		mediaType = strings.SplitN(mimetype.Detect(data).String(), ";", 2)[0]
	}
	var b strings.Builder
	b.Grow(len(scheme) + len(mediaType) + len(base64Marker) + 1 + base64.StdEncoding.EncodedLen(len(data)))
	b.WriteString(scheme)
	b.WriteString(mediaType)
	b.WriteString(base64Marker)
	b.WriteByte(',')
	b.WriteString(base64.StdEncoding.EncodeToString(data))
	return b.String()
}

// Decode parses a data URI into its media type and payload.
func Decode(uri string) (string, []byte, error) {
	if !strings.HasPrefix(uri, scheme) {
		return "", nil, errs.ErrInvalidDataURI
	}
	meta, payload, ok := strings.Cut(uri[len(scheme):], ",")
	if !ok {
		return "", nil, errs.ErrInvalidDataURI
	}

	isBase64 := strings.HasSuffix(meta, base64Marker)
	mediaType := strings.TrimSuffix(meta, base64Marker)
	if mediaType == "" {
		mediaType = defaultMediaType
	}

	if isBase64 {
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return "", nil, errors.Wrap(errs.ErrInvalidDataURI, err.Error())
		}
		return mediaType, data, nil
	}
	text, err := url.PathUnescape(payload)
	if err != nil {
		return "", nil, errors.Wrap(errs.ErrInvalidDataURI, err.Error())
	}
	return mediaType, []byte(text), nil
}

func readAll(r io.Reader, limit int64) ([]byte, error) {
	if r == nil {
		return nil, errors.New("empty upload")
	}
	if limit <= 0 {
		return io.ReadAll(r)
	}
	var buf bytes.Buffer
	n, err := io.Copy(&buf, io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if n > limit {
		return nil, errs.ErrAttachmentTooLarge
	}
	return buf.Bytes(), nil
}
