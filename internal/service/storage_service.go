package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"quiz_app_backend/internal/config"
	"quiz_app_backend/internal/util"
	"quiz_app_backend/pkg/logger"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// StorageProvider define a interface comum de armazenamento de blobs.
type StorageProvider interface {
	Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, filename string) error
	Exists(ctx context.Context, filename string) (bool, error)
	GetURL(filename string) string
}

// LocalStorageProvider grava no sistema de arquivos local.
type LocalStorageProvider struct {
	Config *config.StorageConfig
}

func (p *LocalStorageProvider) Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	dst := filepath.Join(p.Config.LocalPath, filename)
	dir := filepath.Dir(dst)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	}

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, reader); err != nil {
		return "", err
	}

	return p.GetURL(filename), nil
}

func (p *LocalStorageProvider) Delete(ctx context.Context, filename string) error {
	return os.Remove(filepath.Join(p.Config.LocalPath, filename))
}

func (p *LocalStorageProvider) Exists(ctx context.Context, filename string) (bool, error) {
	_, err := os.Stat(filepath.Join(p.Config.LocalPath, filename))
	if os.IsNotExist(err) {
		return false, nil
	}
	return err == nil, err
}

func (p *LocalStorageProvider) GetURL(filename string) string {
	return "/uploads/" + filename
}

// MinioStorageProvider usa um bucket MinIO.
type MinioStorageProvider struct {
	Config *config.StorageConfig
	Client *minio.Client
}

func NewMinioStorageProvider(cfg *config.StorageConfig) (*MinioStorageProvider, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
		Secure: false,
	})
	if err != nil {
		return nil, err
	}
	return &MinioStorageProvider{Config: cfg, Client: client}, nil
}

func (p *MinioStorageProvider) Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	_, err := p.Client.PutObject(ctx, p.Config.MinioBucket, filename, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return p.GetURL(filename), nil
}

func (p *MinioStorageProvider) Delete(ctx context.Context, filename string) error {
	return p.Client.RemoveObject(ctx, p.Config.MinioBucket, filename, minio.RemoveObjectOptions{})
}

func (p *MinioStorageProvider) Exists(ctx context.Context, filename string) (bool, error) {
	_, err := p.Client.StatObject(ctx, p.Config.MinioBucket, filename, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (p *MinioStorageProvider) GetURL(filename string) string {
	return "/" + p.Config.MinioBucket + "/" + filename
}

// OSSStorageProvider usa um bucket Aliyun OSS.
type OSSStorageProvider struct {
	Config *config.StorageConfig
	Client *oss.Client
}

func NewOSSStorageProvider(cfg *config.StorageConfig) (*OSSStorageProvider, error) {
	client, err := oss.New(cfg.OSSEndpoint, cfg.OSSAccessKey, cfg.OSSSecretKey)
	if err != nil {
		return nil, err
	}
	return &OSSStorageProvider{Config: cfg, Client: client}, nil
}

func (p *OSSStorageProvider) Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	bucket, err := p.Client.Bucket(p.Config.OSSBucket)
	if err != nil {
		return "", err
	}

	if err := bucket.PutObject(filename, reader); err != nil {
		return "", err
	}
	return p.GetURL(filename), nil
}

func (p *OSSStorageProvider) Delete(ctx context.Context, filename string) error {
	bucket, err := p.Client.Bucket(p.Config.OSSBucket)
	if err != nil {
		return err
	}
	return bucket.DeleteObject(filename)
}

func (p *OSSStorageProvider) Exists(ctx context.Context, filename string) (bool, error) {
	bucket, err := p.Client.Bucket(p.Config.OSSBucket)
	if err != nil {
		return false, err
	}
	return bucket.IsObjectExist(filename)
}

func (p *OSSStorageProvider) GetURL(filename string) string {
	return fmt.Sprintf("https://%s.%s/%s", p.Config.OSSBucket, p.Config.OSSEndpoint, filename)
}

// StorageService guarda as imagens de quizzes e perguntas.
type StorageService struct {
	Provider StorageProvider
}

func NewStorageService(cfg *config.Config) *StorageService {
	var provider StorageProvider
	switch cfg.Storage.Type {
	case util.StorageMinio:
		p, err := NewMinioStorageProvider(&cfg.Storage)
		if err == nil {
			provider = p
		}
	case util.StorageOSS:
		p, err := NewOSSStorageProvider(&cfg.Storage)
		if err == nil {
			provider = p
		}
	}

	if provider == nil {
		provider = &LocalStorageProvider{Config: &cfg.Storage}
	}

	return &StorageService{Provider: provider}
}

// StoreImage valida o upload (extensão, tamanho, assinatura) e grava o blob
// sob images/<uuid><ext>. Devolve o caminho persistido no registro.
func (s *StorageService) StoreImage(ctx context.Context, fileHeader *multipart.FileHeader) (string, error) {
	ext, err := util.ValidateImageExtension(fileHeader.Filename)
	if err != nil {
		return "", util.NewValidationError(map[string]string{"image": "A imagem deve ser um arquivo do tipo: jpeg, png, jpg, gif, svg."})
	}

	if fileHeader.Size > util.MaxImageSize {
		return "", util.NewValidationError(map[string]string{"image": "A imagem não pode ser maior que 2048 kilobytes."})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if ext != ".svg" {
		mimeType, err := util.ValidateMimeType(file, util.MimeImage)
		if err != nil {
			return "", util.NewValidationError(map[string]string{"image": "O arquivo enviado não é uma imagem válida."})
		}
		contentType = mimeType
		if _, err := file.Seek(0, io.SeekStart); err != nil {
			return "", err
		}
	}

	filename := "images/" + uuid.New().String() + ext
	if _, err := s.Provider.Upload(ctx, filename, file, fileHeader.Size, contentType); err != nil {
		return "", err
	}
	return filename, nil
}

// RemoveImage apaga o blob em melhor esforço: a falha vira log, nunca erro
// para o chamador. Um blob órfão é aceitável; uma operação abortada por causa
// dele, não.
func (s *StorageService) RemoveImage(ctx context.Context, path string) {
	if path == "" {
		return
	}

	exists, err := s.Provider.Exists(ctx, path)
	if err == nil && !exists {
		logger.Log.Warn("image not found in storage", zap.String("path", path))
		return
	}

	if err := s.Provider.Delete(ctx, path); err != nil {
		logger.Log.Warn("failed to remove image", zap.String("path", path), zap.Error(err))
		return
	}
	logger.Log.Info("image removed", zap.String("path", path))
}

func (s *StorageService) GetURL(filename string) string {
	return s.Provider.GetURL(filename)
}
