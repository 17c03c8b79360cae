package util

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

// Upload de imagens (quiz e pergunta).
const (
	MimeImage    = "image/"
	MaxImageSize = 2 << 20 // 2 MiB
)

var AllowedImageExtensions = []string{".jpeg", ".jpg", ".png", ".gif", ".svg"}
