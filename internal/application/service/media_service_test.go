package service_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"github.com/agustiinveraa/inmoflow/internal/application/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStorage records uploads and deletes without touching S3
type fakeStorage struct {
	uploads  []string
	deletes  []string
	uploadEr error
	deleteEr error
}

func (f *fakeStorage) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	if f.uploadEr != nil {
		return "", f.uploadEr
	}
	f.uploads = append(f.uploads, key)
	return "https://bucket.s3.eu-west-1.amazonaws.com/" + key, nil
}

func (f *fakeStorage) Delete(ctx context.Context, key string) error {
	if f.deleteEr != nil {
		return f.deleteEr
	}
	f.deletes = append(f.deletes, key)
	return nil
}

func (f *fakeStorage) KeyFromURL(publicURL string) (string, error) {
	idx := strings.Index(publicURL, ".amazonaws.com/")
	if idx == -1 {
		return "", fmt.Errorf("not an object URL: %s", publicURL)
	}
	return publicURL[idx+len(".amazonaws.com/"):], nil
}

// makeFileHeaders builds real multipart file headers with the given sizes
// and content types.
func makeFileHeaders(t *testing.T, files map[string]struct {
	size        int
	contentType string
}) []*multipart.FileHeader {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for name, file := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="images"; filename="%s"`, name))
		header.Set("Content-Type", file.contentType)
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(bytes.Repeat([]byte("x"), file.size))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File["images"]
}

func TestUploadImagesReportsPerFileResults(t *testing.T) {
	env := newTestEnv(t)
	_, ctx := env.newAgency(t, "Agencia")

	property, err := env.propertySvc.CreateProperty(ctx, service.CreatePropertyInput{Title: "Piso"})
	require.NoError(t, err)

	store := &fakeStorage{}
	mediaSvc := service.NewMediaService(store, env.propertySvc, 1024, 5)

	headers := makeFileHeaders(t, map[string]struct {
		size        int
		contentType string
	}{
		"salon.jpg":    {size: 100, contentType: "image/jpeg"},
		"huge.jpg":     {size: 2048, contentType: "image/jpeg"},
		"contract.pdf": {size: 100, contentType: "application/pdf"},
	})

	output, err := mediaSvc.UploadImages(ctx, property.ID, headers)
	require.NoError(t, err)
	require.Len(t, output.Results, 3)

	byName := make(map[string]service.UploadResult)
	for _, r := range output.Results {
		byName[r.Filename] = r
	}

	assert.NotEmpty(t, byName["salon.jpg"].URL)
	assert.Empty(t, byName["salon.jpg"].Error)

	// Oversized and non-image files fail individually, not the whole batch
	assert.Empty(t, byName["huge.jpg"].URL)
	assert.NotEmpty(t, byName["huge.jpg"].Error)
	assert.Empty(t, byName["contract.pdf"].URL)
	assert.NotEmpty(t, byName["contract.pdf"].Error)

	assert.Len(t, output.Property.Images, 1)
	assert.Len(t, store.uploads, 1)
}

func TestUploadImagesHonorsImageLimit(t *testing.T) {
	env := newTestEnv(t)
	_, ctx := env.newAgency(t, "Agencia")

	property, err := env.propertySvc.CreateProperty(ctx, service.CreatePropertyInput{Title: "Piso"})
	require.NoError(t, err)

	store := &fakeStorage{}
	mediaSvc := service.NewMediaService(store, env.propertySvc, 1024, 1)

	headers := makeFileHeaders(t, map[string]struct {
		size        int
		contentType string
	}{
		"a.jpg": {size: 10, contentType: "image/jpeg"},
		"b.jpg": {size: 10, contentType: "image/jpeg"},
	})

	output, err := mediaSvc.UploadImages(ctx, property.ID, headers)
	require.NoError(t, err)

	accepted := 0
	for _, r := range output.Results {
		if r.Error == "" {
			accepted++
		}
	}
	assert.Equal(t, 1, accepted)
	assert.Len(t, output.Property.Images, 1)
}

func TestDeleteImageDetachesEvenIfStorageFails(t *testing.T) {
	env := newTestEnv(t)
	_, ctx := env.newAgency(t, "Agencia")

	property, err := env.propertySvc.CreateProperty(ctx, service.CreatePropertyInput{Title: "Piso"})
	require.NoError(t, err)

	url := "https://bucket.s3.eu-west-1.amazonaws.com/properties/a.jpg"
	_, err = env.propertySvc.AddImages(ctx, property.ID, []string{url})
	require.NoError(t, err)

	store := &fakeStorage{deleteEr: fmt.Errorf("s3 is down")}
	mediaSvc := service.NewMediaService(store, env.propertySvc, 1024, 5)

	updated, err := mediaSvc.DeleteImage(ctx, property.ID, url)
	require.NoError(t, err)
	assert.Empty(t, updated.Images)
}

func TestDeleteImageRemovesStorageObject(t *testing.T) {
	env := newTestEnv(t)
	_, ctx := env.newAgency(t, "Agencia")

	property, err := env.propertySvc.CreateProperty(ctx, service.CreatePropertyInput{Title: "Piso"})
	require.NoError(t, err)

	url := "https://bucket.s3.eu-west-1.amazonaws.com/properties/a.jpg"
	_, err = env.propertySvc.AddImages(ctx, property.ID, []string{url})
	require.NoError(t, err)

	store := &fakeStorage{}
	mediaSvc := service.NewMediaService(store, env.propertySvc, 1024, 5)

	_, err = mediaSvc.DeleteImage(ctx, property.ID, url)
	require.NoError(t, err)
	assert.Equal(t, []string{"properties/a.jpg"}, store.deletes)
}
