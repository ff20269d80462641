package imgutil

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// EncodeBase64 は画像データを MCP の応答に載せるための base64 文字列に変換します。
func EncodeBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// DecodeBase64 は標準アルファベット（パディングあり）の base64 文字列をデコードします。
// 前後の空白と改行は無視します。
func DecodeBase64(s string) ([]byte, error) {
	s = strings.Join(strings.Fields(s), "")
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid base64: %w", err)
	}
	return data, nil
}
