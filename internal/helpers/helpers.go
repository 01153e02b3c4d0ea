package helpers

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/golang-jwt/jwt/v5"
)

const (
	AvatarFolder = "avatars"
	EventsFolder = "events"

	// Upload ceilings enforced before anything leaves the server.
	MaxAvatarBytes     = 2 << 20 // 2MB
	MaxEventImageBytes = 5 << 20 // 5MB
)

type CustomClaims struct {
	Role        string `json:"role"`
	Email       string `json:"email"`
	AppMetadata struct {
		Provider  string   `json:"provider"`
		Providers []string `json:"providers"`
		Roles     []string `json:"roles,omitempty"`
	} `json:"app_metadata"`
	UserMetadata map[string]interface{} `json:"user_metadata"`
	jwt.RegisteredClaims
}

func ValidateToken(tokenStr string) (*CustomClaims, error) {
	// Get Supabase URL from environment
	supabaseURL := os.Getenv("SUPABASE_URL")
	if supabaseURL == "" {
		return nil, errors.New("SUPABASE_URL not set")
	}

	// Construct JWKS URL
	jwksURL := fmt.Sprintf("%s/rest/v1/auth/jwks", supabaseURL)

	// Create a context with timeout for the JWKS request
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Create the JWKS from the remote URL
	jwks, err := keyfunc.Get(jwksURL, keyfunc.Options{
		Ctx: ctx,
	})
	if err != nil {
		// Fallback to unverified parsing if JWKS fails (for development)
		token, _, parseErr := jwt.NewParser().ParseUnverified(tokenStr, &CustomClaims{})
		if parseErr != nil {
			return nil, fmt.Errorf("JWKS validation failed and fallback parsing failed: %v", parseErr)
		}
		claims, ok := token.Claims.(*CustomClaims)
		if !ok {
			return nil, errors.New("invalid token claims")
		}
		return claims, nil
	}
	defer jwks.EndBackground()

	// Parse the JWT with JWKS validation
	token, err := jwt.ParseWithClaims(tokenStr, &CustomClaims{}, jwks.Keyfunc)
	if err != nil {
		return nil, fmt.Errorf("token validation failed: %v", err)
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	return claims, nil
}

func IsPasswordStrong(password string) bool {
	if len(password) < 8 {
		return false
	}
	hasLower := regexp.MustCompile(`[a-z]`).MatchString(password)
	hasUpper := regexp.MustCompile(`[A-Z]`).MatchString(password)
	hasNumber := regexp.MustCompile(`\d`).MatchString(password)
	hasSpecial := regexp.MustCompile(`[@$!%*?&]`).MatchString(password)
	return hasLower && hasUpper && hasNumber && hasSpecial
}

func StringTrim(s string) string {
	s = strings.TrimSpace(s)
	return strings.Trim(s, "\"'")
}

// ValidateImageData checks a base64 data URI before upload: the declared MIME
// type must start with image/ and the decoded payload must fit under maxBytes.
func ValidateImageData(dataURI string, maxBytes int) error {
	if !strings.HasPrefix(dataURI, "data:") {
		return errors.New("image must be a base64 data URI")
	}

	rest := strings.TrimPrefix(dataURI, "data:")
	sep := strings.Index(rest, ";base64,")
	if sep < 0 {
		return errors.New("image must be base64 encoded")
	}

	mimeType := rest[:sep]
	if !strings.HasPrefix(mimeType, "image/") {
		return fmt.Errorf("unsupported file type %q: only images are allowed", mimeType)
	}

	payload := rest[sep+len(";base64,"):]
	decodedLen := base64.StdEncoding.DecodedLen(len(payload))
	if decodedLen > maxBytes {
		return fmt.Errorf("image is too large: max %dMB", maxBytes>>20)
	}

	return nil
}

// UploadImage pushes a single validated image to Cloudinary and returns its
// public URL plus the public ID needed for cleanup.
func UploadImage(ctx context.Context, cld *cloudinary.Cloudinary, dataURI, folder string, maxBytes int) (string, string, error) {
	if err := ValidateImageData(dataURI, maxBytes); err != nil {
		return "", "", err
	}

	uploadResult, err := cld.Upload.Upload(ctx, dataURI, uploader.UploadParams{
		Folder: folder,
		Tags:   []string{"eventa-app"},
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload image: %v", err)
	}

	return uploadResult.SecureURL, uploadResult.PublicID, nil
}

// DeleteImages removes previously uploaded assets. Used to roll back uploads
// when the row insert that should reference them fails.
func DeleteImages(ctx context.Context, cld *cloudinary.Cloudinary, publicIDs []string) {
	for _, id := range publicIDs {
		if strings.TrimSpace(id) == "" {
			continue
		}
		_, err := cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: id})
		if err != nil {
			fmt.Printf("failed to delete image %s: %v\n", id, err)
		}
	}
}
