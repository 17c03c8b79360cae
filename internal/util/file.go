package util

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"
)

// ValidateImageExtension confere a extensão contra a lista permitida.
func ValidateImageExtension(filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range AllowedImageExtensions {
		if ext == allowed {
			return ext, nil
		}
	}
	return ext, errors.New("extensão de imagem não permitida: " + ext)
}

// ValidateMimeType faz a inspeção profunda dos primeiros bytes do arquivo.
// SVG é texto e escapa da detecção por assinatura; fica coberto só pela
// extensão.
func ValidateMimeType(reader io.Reader, allowedPrefix string) (string, error) {
	buffer := make([]byte, 512)
	n, err := reader.Read(buffer)
	if err != nil && err != io.EOF {
		return "", err
	}

	mimeType := http.DetectContentType(buffer[:n])
	if strings.HasPrefix(mimeType, allowedPrefix) {
		return mimeType, nil
	}

	return mimeType, errors.New("tipo de arquivo inválido: " + mimeType)
}
