package utils

import (
	"fmt"
	"strings"

	"github.com/warriorfdkl/kalogram/apperr"
)

// maxImageBytes matches the mini app's capture limit.
const maxImageBytes = 20 << 20

// NormalizeImage accepts either a bare base64 payload or a full data URI and
// returns the data-URI form the vision endpoint expects.
func NormalizeImage(image string) (string, error) {
	image = strings.TrimSpace(image)
	if image == "" {
		return "", fmt.Errorf("%w: image data is empty", apperr.ErrValidation)
	}
	if !strings.HasPrefix(image, "data:") {
		image = "data:image/jpeg;base64," + image
	}
	if err := ValidateImage(image); err != nil {
		return "", err
	}
	return image, nil
}

// ValidateImage checks the data-URI form and the decoded size limit.
func ValidateImage(dataURI string) error {
	if dataURI == "" {
		return fmt.Errorf("%w: image data is empty", apperr.ErrValidation)
	}
	if !strings.HasPrefix(dataURI, "data:image") {
		return fmt.Errorf("%w: invalid image format", apperr.ErrValidation)
	}
	comma := strings.IndexByte(dataURI, ',')
	if comma < 0 {
		return fmt.Errorf("%w: invalid image format", apperr.ErrValidation)
	}
	// Base64 expands by 4/3, so the decoded size is 3/4 of the payload.
	decodedBytes := (len(dataURI) - comma - 1) * 3 / 4
	if decodedBytes > maxImageBytes {
		return fmt.Errorf("%w: image size exceeds 20MB limit", apperr.ErrValidation)
	}
	return nil
}
