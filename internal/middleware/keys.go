package middleware

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// SessionKeys выводит из секрета ключ подписи (32 байта) и ключ шифрования (AES-256) для cookie.
// Пустой секрет заменяется случайными 24 байтами: сессии тогда живут до перезапуска процесса.
func SessionKeys(secret string) (authKey, encKey []byte, err error) {
	raw := []byte(secret)
	if len(raw) == 0 {
		raw = make([]byte, 24)
		if _, err := rand.Read(raw); err != nil {
			return nil, nil, fmt.Errorf("generate session secret: %w", err)
		}
	}

	kdf := hkdf.New(sha256.New, raw, nil, []byte("diabetes-predictor session"))
	authKey = make([]byte, 32)
	encKey = make([]byte, 32)
	if _, err := io.ReadFull(kdf, authKey); err != nil {
		return nil, nil, err
	}
	if _, err := io.ReadFull(kdf, encKey); err != nil {
		return nil, nil, err
	}
	return authKey, encKey, nil
}
