package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servicemart/internal/payload"
	"servicemart/internal/validator"
)

func TestValidateImages(t *testing.T) {
	tests := []struct {
		name      string
		images    []payload.ImageRef
		wantValid bool
		wantErrs  int
	}{
		{"no images", nil, true, 0},
		{"uploaded only", payload.URLImages("https://cdn.example.com/a.jpg"), true, 0},
		{"valid pending", []payload.ImageRef{payload.PendingImage{Name: "a.png", ContentType: "image/png", Size: 1024}}, true, 0},
		{"webp pointer", []payload.ImageRef{&payload.PendingImage{Name: "a.webp", ContentType: "image/webp", Size: 1}}, true, 0},
		{"too large", []payload.ImageRef{payload.PendingImage{Name: "big.jpg", ContentType: "image/jpeg", Size: 6 * 1024 * 1024}}, false, 1},
		{"bad type", []payload.ImageRef{payload.PendingImage{Name: "a.gif", ContentType: "image/gif", Size: 10}}, false, 1},
		{"both problems", []payload.ImageRef{payload.PendingImage{Name: "a.bmp", ContentType: "image/bmp", Size: 6 * 1024 * 1024}}, false, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := validator.ValidateImages(tt.images)
			assert.Equal(t, tt.wantValid, res.IsValid)
			require.NotNil(t, res.Errors)
			assert.Len(t, res.Errors, tt.wantErrs)
		})
	}
}

func TestValidateImages_MessageNamesFile(t *testing.T) {
	res := validator.ValidateImages([]payload.ImageRef{
		payload.PendingImage{Name: "big.jpg", ContentType: "image/jpeg", Size: 6 * 1024 * 1024},
		payload.PendingImage{ContentType: "text/plain", Size: 1},
	})
	require.Len(t, res.Errors, 2)
	assert.Equal(t, "big.jpg exceeds the 5MB size limit", res.Errors[0])
	assert.Contains(t, res.Errors[1], "image 2")
}

func TestValidateImagesWithLimit(t *testing.T) {
	img := []payload.ImageRef{payload.PendingImage{Name: "a.jpg", ContentType: "IMAGE/JPEG", Size: 2 * 1024 * 1024}}
	assert.True(t, validator.ValidateImagesWithLimit(img, 5*1024*1024).IsValid)
	assert.False(t, validator.ValidateImagesWithLimit(img, 1024*1024).IsValid)
}
