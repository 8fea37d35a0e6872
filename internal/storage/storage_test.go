package storage

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngOf(w, h int) *bytes.Buffer {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, x%h, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return &buf
}

func TestEncodeAvatarFitsBox(t *testing.T) {
	out, err := EncodeAvatar(pngOf(1024, 768))
	require.NoError(t, err)

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 512, cfg.Width)
	assert.Equal(t, 384, cfg.Height)
}

func TestEncodeAvatarKeepsSmallPictures(t *testing.T) {
	out, err := EncodeAvatar(pngOf(64, 80))
	require.NoError(t, err)

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Width)
	assert.Equal(t, 80, cfg.Height)
}

func TestEncodeAvatarRejectsGarbage(t *testing.T) {
	_, err := EncodeAvatar(strings.NewReader("not an image"))
	assert.ErrorIs(t, err, ErrUnsupportedImage)
}

type fakePutter struct {
	in   *s3.PutObjectInput
	body []byte
}

func (f *fakePutter) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.in = in
	f.body, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, nil
}

func TestUploadStoresWebp(t *testing.T) {
	putter := &fakePutter{}
	store := &AvatarStore{client: putter, bucket: "avatars", publicURL: "https://cdn.example.fr"}
	id := uuid.New()

	url, err := store.Upload(context.Background(), id, pngOf(100, 100))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "https://cdn.example.fr/barbers/"+id.String()+"/avatar-"))
	assert.True(t, strings.HasSuffix(url, ".webp"))
	assert.Equal(t, "avatars", *putter.in.Bucket)
	assert.Equal(t, "image/webp", *putter.in.ContentType)
	assert.NotEmpty(t, putter.body)
}
