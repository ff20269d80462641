package imgutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase64RoundTrip(t *testing.T) {
	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}

	cases := map[string][]byte{
		"空":           {},
		"1バイト":        {0x00},
		"UTF-8 ではない列": {0xff, 0xfe, 0xc3, 0x28, 0x80},
		"全バイト値":       all,
		"PNG ヘッダ":     []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"),
	}

	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			decoded, err := DecodeBase64(EncodeBase64(data))
			require.NoError(t, err)
			assert.Equal(t, len(data), len(decoded))
			assert.Equal(t, string(data), string(decoded))
		})
	}
}

func TestDecodeBase64(t *testing.T) {
	t.Run("改行を含む入力も受け付けるのだ", func(t *testing.T) {
		got, err := DecodeBase64("aGVs\nbG8=\n")
		require.NoError(t, err)
		assert.Equal(t, "hello", string(got))
	})

	t.Run("不正な文字はエラーになるのだ", func(t *testing.T) {
		_, err := DecodeBase64("not base64!!")
		assert.Error(t, err)
	})

	t.Run("パディング不足はエラーになるのだ", func(t *testing.T) {
		_, err := DecodeBase64("aGVsbG8")
		assert.Error(t, err)
	})
}
