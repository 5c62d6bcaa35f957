package file

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
)

// Kind is a coarse media family.
type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
	KindAudio Kind = "audio"
	KindPDF   Kind = "pdf"
	KindOther Kind = "other"
)

// genericMIMEType is what DetectContentType returns when it cannot tell.
const genericMIMEType = "application/octet-stream"

var (
	imageMIMETypes = map[string]bool{
		"image/jpeg": true, "image/png": true, "image/gif": true, "image/webp": true,
		"image/svg+xml": true, "image/bmp": true, "image/tiff": true, "image/heic": true,
		"image/heif": true, "image/avif": true, "image/x-icon": true,
	}
	videoMIMETypes = map[string]bool{
		"video/mp4": true, "video/mpeg": true, "video/ogg": true, "video/webm": true,
		"video/quicktime": true, "video/x-msvideo": true, "video/3gpp": true, "video/x-matroska": true,
		"video/avi": true,
	}
	audioMIMETypes = map[string]bool{
		"audio/mpeg": true, "audio/ogg": true, "audio/wav": true, "audio/wave": true,
		"audio/webm": true, "audio/aac": true, "audio/mp4": true, "audio/x-m4a": true,
		"audio/opus": true, "audio/flac": true, "audio/x-flac": true, "audio/aiff": true,
		"audio/midi": true, "audio/basic": true,
	}
	extensionKinds = map[string]Kind{
		".jpg": KindImage, ".jpeg": KindImage, ".png": KindImage, ".gif": KindImage, ".webp": KindImage,
		".svg": KindImage, ".bmp": KindImage, ".tif": KindImage, ".tiff": KindImage, ".heic": KindImage,
		".avif": KindImage,
		".mp4": KindVideo, ".mpeg": KindVideo, ".mpg": KindVideo, ".webm": KindVideo, ".mov": KindVideo,
		".avi": KindVideo, ".mkv": KindVideo, ".3gp": KindVideo,
		".mp3": KindAudio, ".wav": KindAudio, ".aac": KindAudio, ".m4a": KindAudio, ".ogg": KindAudio,
		".opus": KindAudio, ".flac": KindAudio,
		".pdf": KindPDF,
	}
)

// Info describes an uploaded file.
type Info struct {
	Filename  string
	Extension string
	Size      int64
	MIMEType  string
	Kind      Kind
}

// Inspect opens the upload once to sniff its content type.
func Inspect(fh *multipart.FileHeader) (Info, error) {
	if fh == nil {
		return Info{}, ErrNilFileHeader
	}

	mimeType, err := DetectMIMEType(fh)
	if err != nil {
		return Info{}, err
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	return Info{
		Filename:  fh.Filename,
		Extension: ext,
		Size:      fh.Size,
		MIMEType:  mimeType,
		Kind:      kindOf(mimeType, ext),
	}, nil
}

// DetectMIMEType sniffs the content type without parameters (e.g. "text/plain").
func DetectMIMEType(fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", ErrNilFileHeader
	}

	f, err := fh.Open()
	if err != nil {
		return "", errors.Join(ErrFailedToOpenFile, err)
	}
	defer func() { _ = f.Close() }()

	buffer := make([]byte, 512)
	n, err := io.ReadFull(f, buffer)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", fmt.Errorf("%w: %w", ErrFailedToReadFile, err)
	}

	mimeType := http.DetectContentType(buffer[:n])
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = strings.TrimSpace(mimeType[:i])
	}
	return mimeType, nil
}

func kindOf(mimeType, ext string) Kind {
	switch {
	case imageMIMETypes[mimeType]:
		return KindImage
	case videoMIMETypes[mimeType]:
		return KindVideo
	case audioMIMETypes[mimeType]:
		return KindAudio
	case mimeType == "application/pdf":
		return KindPDF
	}

	// Sniffing only recognizes a handful of signatures; fall back to the
	// extension when it returned nothing specific.
	if mimeType == genericMIMEType || strings.HasPrefix(mimeType, "text/plain") {
		if kind, ok := extensionKinds[ext]; ok && kind != KindImage {
			return kind
		}
	}
	return KindOther
}
