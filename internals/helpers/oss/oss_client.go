// internals/helpers/oss/oss_client.go
package helper

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/url"
	"os"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/google/uuid"
)

// Garde-fou: 5 Mo max pour un justificatif
const MaxDocumentSize = 5 << 20

// Erreurs de refus côté client, distinguées des pannes du bucket.
var (
	ErrTooLarge        = errors.New("fichier trop volumineux")
	ErrUnsupportedType = errors.New("type de fichier non supporté")
)

/* =======================================================================
   OSS Service
======================================================================= */

type OSSService struct {
	Client     *oss.Client
	Bucket     *oss.Bucket
	Endpoint   string
	BucketName string
	Prefix     string // ex: "intents/documents"
}

func NewOSSServiceFromEnv(prefix string) (*OSSService, error) {
	endpoint := getEnv("ALI_OSS_ENDPOINT")
	ak := getEnv("ALI_OSS_ACCESS_KEY")
	sk := getEnv("ALI_OSS_SECRET_KEY")
	bucketName := getEnv("ALI_OSS_BUCKET")
	if endpoint == "" || ak == "" || sk == "" || bucketName == "" {
		return nil, fmt.Errorf("missing env: ALI_OSS_ENDPOINT/ACCESS_KEY/SECRET_KEY/BUCKET")
	}

	client, err := oss.New(endpoint, ak, sk)
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}

	bkt, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}

	return &OSSService{
		Client:     client,
		Bucket:     bkt,
		Endpoint:   endpoint,
		BucketName: bucketName,
		Prefix:     strings.Trim(prefix, "/"),
	}, nil
}

/* =======================================================================
   Upload justificatif (PDF tel quel, images recompressées en webp)
======================================================================= */

// AllowedDocumentType: extension cible pour un content-type accepté.
// Les images signalent recompress=true (pipeline webp).
func AllowedDocumentType(contentType string) (ext string, recompress bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(contentType)) {
	case "application/pdf":
		return "pdf", false, true
	case "image/jpeg", "image/png":
		return "webp", true, true
	case "image/webp":
		return "webp", false, true
	default:
		return "", false, false
	}
}

// UploadDocument pousse un justificatif vers le bucket et renvoie son URL publique.
func (s *OSSService) UploadDocument(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", fmt.Errorf("nil file header")
	}
	if fh.Size > MaxDocumentSize {
		return "", fmt.Errorf("%w (max %d octets)", ErrTooLarge, MaxDocumentSize)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, MaxDocumentSize+1))
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	if len(data) > MaxDocumentSize {
		return "", fmt.Errorf("%w (max %d octets)", ErrTooLarge, MaxDocumentSize)
	}

	contentType := SniffContentType(data, fh.Header.Get("Content-Type"))
	ext, recompress, ok := AllowedDocumentType(contentType)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}

	if recompress {
		webpData, err := ConvertToWebP(data)
		if err != nil {
			return "", fmt.Errorf("conversion webp: %w", err)
		}
		data = webpData
		contentType = "image/webp"
	}

	key := s.buildObjectKey(ext)
	opts := []oss.Option{
		oss.WithContext(ctx),
		oss.ContentType(contentType),
		oss.ContentDisposition("inline"),
		oss.CacheControl("public, max-age=31536000, immutable"),
	}
	if err := s.Bucket.PutObject(key, bytes.NewReader(data), opts...); err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}

	log.Printf("[OSS] uploaded %s (%s, %d bytes)", key, contentType, len(data))
	return s.PublicURL(key), nil
}

func (s *OSSService) PublicURL(key string) string {
	if base := strings.TrimSpace(os.Getenv("ALI_OSS_PUBLIC_BASE")); base != "" {
		return strings.TrimRight(base, "/") + "/" + escapeKey(key)
	}
	// https://<bucket>.<endpoint>/<key>
	host := strings.TrimPrefix(strings.TrimPrefix(s.Endpoint, "https://"), "http://")
	return fmt.Sprintf("https://%s.%s/%s", s.BucketName, host, escapeKey(key))
}

/* =======================================================================
   internals
======================================================================= */

func (s *OSSService) buildObjectKey(ext string) string {
	name := uuid.NewString() + "." + ext
	if s.Prefix != "" {
		return s.Prefix + "/" + name
	}
	return name
}

func escapeKey(key string) string {
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }
