// Package sniffer derives a MIME type from file contents. It backs the
// notification layer, which must tag email attachments even when the
// browser omitted or mislabelled the Content-Type part header.
package sniffer

import (
	"bytes"
	"strings"
)

const fallbackMIME = "application/octet-stream"

// Detect returns the MIME type for the leading bytes of a file. Unknown
// content yields application/octet-stream rather than an error; the
// attachment is still sent, just untyped.
func Detect(head []byte) string {
	switch {
	case isJPEG(head):
		return "image/jpeg"
	case isPNG(head):
		return "image/png"
	case isGIF(head):
		return "image/gif"
	case isWEBP(head):
		return "image/webp"
	case isPDF(head):
		return "application/pdf"
	default:
		return fallbackMIME
	}
}

// IsImageContentType reports whether a declared content type indicates
// an image. Any image/* subtype qualifies.
func IsImageContentType(contentType string) bool {
	if idx := strings.Index(contentType, ";"); idx >= 0 {
		contentType = contentType[:idx]
	}
	return strings.HasPrefix(strings.TrimSpace(contentType), "image/")
}

func isJPEG(head []byte) bool {
	return len(head) > 3 &&
		head[0] == 0xff &&
		head[1] == 0xd8 &&
		head[2] == 0xff
}

func isPNG(head []byte) bool {
	pngMagic := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	return len(head) >= len(pngMagic) && bytes.Equal(head[:len(pngMagic)], pngMagic)
}

func isGIF(head []byte) bool {
	return len(head) >= 6 && (bytes.Equal(head[:6], []byte("GIF87a")) || bytes.Equal(head[:6], []byte("GIF89a")))
}

func isWEBP(head []byte) bool {
	return len(head) >= 12 &&
		bytes.Equal(head[:4], []byte("RIFF")) &&
		bytes.Equal(head[8:12], []byte("WEBP"))
}

func isPDF(head []byte) bool {
	return len(head) >= 5 && bytes.Equal(head[:5], []byte("%PDF-"))
}
