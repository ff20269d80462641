package imgutil

import (
	"mime"
	"net/http"
	"strings"

	"github.com/samber/lo"
)

// SupportedMIMETypes は入力画像として受け付ける MIME タイプです。
var SupportedMIMETypes = []string{
	"image/png",
	"image/jpeg",
	"image/webp",
	"image/heic",
	"image/heif",
}

// mimeAliases は表記ゆれを正規の MIME タイプへ寄せるための対応表です。
var mimeAliases = map[string]string{
	"image/jpg":   "image/jpeg",
	"image/pjpeg": "image/jpeg",
	"image/x-png": "image/png",
}

// NormalizeMIMEType は MIME タイプを小文字化してパラメータを除去し、
// 受け付け可能なタイプかどうかを返します。
func NormalizeMIMEType(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}

	mediaType, _, err := mime.ParseMediaType(s)
	if err != nil {
		return strings.ToLower(s), false
	}
	if alias, ok := mimeAliases[mediaType]; ok {
		mediaType = alias
	}

	return mediaType, lo.Contains(SupportedMIMETypes, mediaType)
}

// SniffMIMEType はバイト列の先頭から MIME タイプを推定します。
// パラメータは除去して返します。
func SniffMIMEType(data []byte) string {
	detected := http.DetectContentType(data)
	if mediaType, _, err := mime.ParseMediaType(detected); err == nil {
		return mediaType
	}
	return detected
}

// IsImageMIMEType は MIME タイプが画像を表すかを返します。
func IsImageMIMEType(s string) bool {
	return strings.HasPrefix(s, "image/")
}
