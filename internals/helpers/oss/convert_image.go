// internals/helpers/oss/convert_image.go
package helper

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// Les justificatifs photo sont recompressés en webp avant stockage,
// bornés à 1600px de large (ça suffit pour relire une pièce jointe).
const (
	maxImageWidth = 1600
	webpQuality   = 80
)

// SniffContentType détecte le type réel du contenu; l'en-tête du
// formulaire ne sert que de départage pour les types ambigus.
func SniffContentType(data []byte, declared string) string {
	sniffed := http.DetectContentType(data)
	if sniffed == "application/octet-stream" && declared != "" {
		return strings.TrimSpace(strings.Split(declared, ";")[0])
	}
	return strings.TrimSpace(strings.Split(sniffed, ";")[0])
}

// ConvertToWebP décode jpg/png, réduit si besoin, ré-encode en webp.
func ConvertToWebP(data []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	if img.Bounds().Dx() > maxImageWidth {
		img = imaging.Resize(img, maxImageWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}
