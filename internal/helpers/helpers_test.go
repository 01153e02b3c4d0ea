package helpers

import (
	"encoding/base64"
	"strings"
	"testing"
)

func dataURI(mime string, payloadLen int) string {
	payload := base64.StdEncoding.EncodeToString(make([]byte, payloadLen))
	return "data:" + mime + ";base64," + payload
}

func TestValidateImageData(t *testing.T) {
	if err := ValidateImageData(dataURI("image/png", 1024), MaxAvatarBytes); err != nil {
		t.Errorf("small png should pass, got %v", err)
	}

	if err := ValidateImageData("https://example.com/a.png", MaxAvatarBytes); err == nil {
		t.Errorf("plain URL must be rejected")
	}

	if err := ValidateImageData("data:image/png,notbase64", MaxAvatarBytes); err == nil {
		t.Errorf("non-base64 data URI must be rejected")
	}

	err := ValidateImageData(dataURI("application/pdf", 1024), MaxAvatarBytes)
	if err == nil || !strings.Contains(err.Error(), "only images") {
		t.Errorf("non-image MIME must be rejected, got %v", err)
	}

	if err := ValidateImageData(dataURI("image/jpeg", MaxAvatarBytes+1), MaxAvatarBytes); err == nil {
		t.Errorf("avatar over 2MB must be rejected")
	}

	// The same payload is fine under the larger event-image ceiling
	if err := ValidateImageData(dataURI("image/jpeg", MaxAvatarBytes+1), MaxEventImageBytes); err != nil {
		t.Errorf("3MB event image should pass, got %v", err)
	}

	if err := ValidateImageData(dataURI("image/jpeg", MaxEventImageBytes+1), MaxEventImageBytes); err == nil {
		t.Errorf("event image over 5MB must be rejected")
	}
}

func TestIsPasswordStrong(t *testing.T) {
	strong := "Str0ng!Pass"
	if !IsPasswordStrong(strong) {
		t.Errorf("expected %q to be strong", strong)
	}

	// exactly 8 chars with every class is the lower bound
	if !IsPasswordStrong("Short1!A") {
		t.Errorf("expected 8-char password with all classes to be strong")
	}

	weak := []string{
		"alllowercase1!",   // no upper
		"ALLUPPERCASE1!",   // no lower
		"NoNumbersHere!",   // no digit
		"NoSpecials123ABc", // no special
		"Ab1!",             // too short
	}
	for _, p := range weak {
		if IsPasswordStrong(p) {
			t.Errorf("expected %q to be weak", p)
		}
	}
}

func TestStringTrim(t *testing.T) {
	if got := StringTrim(`  "abc"  `); got != "abc" {
		t.Errorf("expected quotes and spaces stripped, got %q", got)
	}
}
