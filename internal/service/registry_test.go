package service

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mechgenz/backend/internal/catalog"
	"mechgenz/backend/internal/config"
	"mechgenz/backend/internal/models"
	"mechgenz/backend/internal/repository"
	"mechgenz/backend/internal/storage"
)

// fakeStore is an in-memory OverrideStore.
type fakeStore struct {
	records map[string]models.ImageOverride
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: make(map[string]models.ImageOverride)}
}

func (f *fakeStore) Get(_ context.Context, slotID string) (models.ImageOverride, error) {
	record, ok := f.records[slotID]
	if !ok {
		return models.ImageOverride{}, repository.ErrOverrideNotFound
	}
	return record, nil
}

func (f *fakeStore) List(context.Context) ([]models.ImageOverride, error) {
	records := make([]models.ImageOverride, 0, len(f.records))
	for _, record := range f.records {
		records = append(records, record)
	}
	return records, nil
}

func (f *fakeStore) Insert(_ context.Context, override models.ImageOverride) error {
	f.records[override.ID] = override
	return nil
}

func (f *fakeStore) SetCurrentURL(_ context.Context, slotID, url string, at time.Time) error {
	record, ok := f.records[slotID]
	if !ok {
		return repository.ErrOverrideNotFound
	}
	record.CurrentURL = url
	record.UpdatedAt = &at
	f.records[slotID] = record
	return nil
}

func (f *fakeStore) UpdateMetadata(_ context.Context, slotID, name, description string, at time.Time) error {
	record, ok := f.records[slotID]
	if !ok {
		return repository.ErrOverrideNotFound
	}
	record.Name = name
	record.Description = description
	record.UpdatedAt = &at
	f.records[slotID] = record
	return nil
}

func (f *fakeStore) Delete(_ context.Context, slotID string) (bool, error) {
	_, ok := f.records[slotID]
	delete(f.records, slotID)
	return ok, nil
}

func (f *fakeStore) Categories(context.Context) ([]string, error) {
	seen := make(map[string]struct{})
	var categories []string
	for _, record := range f.records {
		if _, ok := seen[record.Category]; ok {
			continue
		}
		seen[record.Category] = struct{}{}
		categories = append(categories, record.Category)
	}
	sort.Strings(categories)
	return categories, nil
}

func newTestRegistry(t *testing.T) (*Registry, *fakeStore, *storage.Disk) {
	t.Helper()

	disk := storage.NewDisk(config.StorageConfig{
		UploadsDir: filepath.Join(t.TempDir(), "uploads"),
		ImagesDir:  filepath.Join(t.TempDir(), "images"),
	})
	require.NoError(t, disk.EnsureDirs())

	store := newFakeStore()
	return NewRegistry(catalog.Default(), store, disk, zerolog.Nop()), store, disk
}

func fileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(&buf, writer.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File["file"]
	require.Len(t, files, 1)
	return files[0]
}

func TestUploadUnknownSlot(t *testing.T) {
	registry, _, _ := newTestRegistry(t)

	_, err := registry.Upload(context.Background(), "no_such_slot", fileHeader(t, "a.png", "image/png", []byte("x")))
	require.ErrorIs(t, err, ErrSlotNotFound)
}

func TestUploadRejectsNonImage(t *testing.T) {
	registry, store, _ := newTestRegistry(t)

	_, err := registry.Upload(context.Background(), "logo", fileHeader(t, "a.pdf", "application/pdf", []byte("x")))
	require.ErrorIs(t, err, ErrNotAnImage)
	assert.Empty(t, store.records)
}

func TestUploadCreatesRecordFromCatalog(t *testing.T) {
	registry, store, _ := newTestRegistry(t)

	newURL, err := registry.Upload(context.Background(), "logo", fileHeader(t, "new-logo.png", "image/png", []byte("png")))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(newURL, models.ImagePathPrefix))
	assert.True(t, strings.HasSuffix(newURL, ".png"))

	record, ok := store.records["logo"]
	require.True(t, ok)
	assert.Equal(t, newURL, record.CurrentURL)
	assert.Equal(t, "/mechgenz-logo.jpg", record.DefaultURL)
	assert.Equal(t, "Company Logo", record.Name)
	assert.Equal(t, "branding", record.Category)
	require.NotNil(t, record.CreatedAt)
}

func TestUploadPatchesExistingRecord(t *testing.T) {
	registry, store, _ := newTestRegistry(t)
	ctx := context.Background()

	first, err := registry.Upload(ctx, "logo", fileHeader(t, "one.jpg", "image/jpeg", []byte("1")))
	require.NoError(t, err)

	// Admin-edited metadata must survive a re-upload.
	require.NoError(t, registry.UpdateMetadata(ctx, "logo", "Edited", "edited description"))

	second, err := registry.Upload(ctx, "logo", fileHeader(t, "two.jpg", "image/jpeg", []byte("2")))
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	record := store.records["logo"]
	assert.Equal(t, second, record.CurrentURL)
	assert.Equal(t, "Edited", record.Name)
}

func TestUploadDefaultsExtensionToJPG(t *testing.T) {
	registry, store, _ := newTestRegistry(t)

	newURL, err := registry.Upload(context.Background(), "logo", fileHeader(t, "photo", "image/jpeg", []byte("x")))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(newURL, ".jpg"))
	assert.Equal(t, newURL, store.records["logo"].CurrentURL)
}

func TestUploadThenResetRoundTrip(t *testing.T) {
	registry, store, _ := newTestRegistry(t)
	ctx := context.Background()

	_, err := registry.Upload(ctx, "logo", fileHeader(t, "custom.png", "image/png", []byte("x")))
	require.NoError(t, err)

	defaultURL, err := registry.Reset(ctx, "logo")
	require.NoError(t, err)
	assert.Equal(t, "/mechgenz-logo.jpg", defaultURL)
	assert.Equal(t, "/mechgenz-logo.jpg", store.records["logo"].CurrentURL)
	// Whether the uploaded file is still on disk is deliberately not
	// asserted: reset does not delete it, the nightly sweep does.
}

func TestResetUnknownSlot(t *testing.T) {
	registry, _, _ := newTestRegistry(t)

	_, err := registry.Reset(context.Background(), "no_such_slot")
	require.ErrorIs(t, err, ErrSlotNotFound)
}

func TestResetWithoutRecord(t *testing.T) {
	registry, _, _ := newTestRegistry(t)

	_, err := registry.Reset(context.Background(), "logo")
	require.ErrorIs(t, err, ErrRecordNotFound)
}

func TestUpdateMetadataRequiresRecord(t *testing.T) {
	registry, _, _ := newTestRegistry(t)

	err := registry.UpdateMetadata(context.Background(), "logo", "Name", "Description")
	require.ErrorIs(t, err, ErrRecordNotFound)
}

func TestListSynthesizesCatalogDefaults(t *testing.T) {
	registry, store, _ := newTestRegistry(t)
	ctx := context.Background()

	images, err := registry.List(ctx)
	require.NoError(t, err)
	require.Len(t, images, catalog.Default().Len())

	logo, ok := images["logo"]
	require.True(t, ok)
	assert.Equal(t, "/mechgenz-logo.jpg", logo.CurrentURL)
	assert.Equal(t, "/mechgenz-logo.jpg", logo.DefaultURL)
	assert.Nil(t, logo.CreatedAt)

	// Overridden slots replace the synthesized view.
	newURL, err := registry.Upload(ctx, "logo", fileHeader(t, "l.png", "image/png", []byte("x")))
	require.NoError(t, err)

	images, err = registry.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, newURL, images["logo"].CurrentURL)
	require.Len(t, store.records, 1)
}

func TestListKeepsStaleOverrides(t *testing.T) {
	registry, store, _ := newTestRegistry(t)

	// A persisted override whose slot left the catalog stays visible so
	// it can still be purged with a complete delete.
	now := time.Now().UTC()
	store.records["retired_banner"] = models.ImageOverride{
		ID:         "retired_banner",
		CurrentURL: "/images/old.jpg",
		Category:   "hero",
		CreatedAt:  &now,
	}

	images, err := registry.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, images, catalog.Default().Len()+1)
	assert.Contains(t, images, "retired_banner")
}

func TestCategoriesReflectOverridesOnly(t *testing.T) {
	registry, _, _ := newTestRegistry(t)
	ctx := context.Background()

	categories, err := registry.Categories(ctx)
	require.NoError(t, err)
	assert.Empty(t, categories)

	_, err = registry.Upload(ctx, "logo", fileHeader(t, "l.png", "image/png", []byte("x")))
	require.NoError(t, err)
	_, err = registry.Upload(ctx, "hero_slide_1", fileHeader(t, "h.png", "image/png", []byte("x")))
	require.NoError(t, err)

	categories, err = registry.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"branding", "hero"}, categories)
}

func TestDeleteInvalidMode(t *testing.T) {
	registry, _, _ := newTestRegistry(t)
	ctx := context.Background()

	_, err := registry.Delete(ctx, "logo", "foo")
	require.ErrorIs(t, err, ErrInvalidDeleteMode)

	// Mode is validated before the slot id is even looked at.
	_, err = registry.Delete(ctx, "no_such_slot", "foo")
	require.ErrorIs(t, err, ErrInvalidDeleteMode)
}

func TestDeleteImageOnlyUnknownSlot(t *testing.T) {
	registry, _, _ := newTestRegistry(t)

	_, err := registry.Delete(context.Background(), "no_such_slot", DeleteImageOnly)
	require.ErrorIs(t, err, ErrSlotNotFound)
}

func TestDeleteImageOnlyMaterializesRecord(t *testing.T) {
	registry, store, _ := newTestRegistry(t)
	ctx := context.Background()

	result, err := registry.Delete(ctx, "logo", DeleteImageOnly)
	require.NoError(t, err)
	assert.Equal(t, DeleteImageOnly, result.Action)
	assert.Equal(t, "/mechgenz-logo.jpg", result.DefaultURL)

	record, ok := store.records["logo"]
	require.True(t, ok)
	assert.Equal(t, "/mechgenz-logo.jpg", record.CurrentURL)

	images, err := registry.List(ctx)
	require.NoError(t, err)
	require.NotNil(t, images["logo"].CreatedAt, "materialized record should carry timestamps")
}

func TestDeleteImageOnlyRemovesCustomFile(t *testing.T) {
	registry, store, disk := newTestRegistry(t)
	ctx := context.Background()

	newURL, err := registry.Upload(ctx, "logo", fileHeader(t, "custom.png", "image/png", []byte("x")))
	require.NoError(t, err)
	filename := strings.TrimPrefix(newURL, models.ImagePathPrefix)
	require.True(t, disk.ImageExists(filename))

	result, err := registry.Delete(ctx, "logo", DeleteImageOnly)
	require.NoError(t, err)
	assert.Equal(t, "/mechgenz-logo.jpg", result.DefaultURL)
	assert.False(t, disk.ImageExists(filename))
	assert.Equal(t, "/mechgenz-logo.jpg", store.records["logo"].CurrentURL)
}

func TestDeleteCompleteIsIdempotent(t *testing.T) {
	registry, store, disk := newTestRegistry(t)
	ctx := context.Background()

	newURL, err := registry.Upload(ctx, "logo", fileHeader(t, "custom.png", "image/png", []byte("x")))
	require.NoError(t, err)
	filename := strings.TrimPrefix(newURL, models.ImagePathPrefix)

	first, err := registry.Delete(ctx, "logo", DeleteComplete)
	require.NoError(t, err)
	assert.Equal(t, DeleteComplete, first.Action)
	assert.False(t, disk.ImageExists(filename))
	assert.Empty(t, store.records)

	second, err := registry.Delete(ctx, "logo", DeleteComplete)
	require.NoError(t, err)
	assert.Equal(t, DeleteComplete, second.Action)
}

func TestDeleteCompleteWorksOutsideCatalog(t *testing.T) {
	registry, store, _ := newTestRegistry(t)

	store.records["retired_banner"] = models.ImageOverride{
		ID:         "retired_banner",
		CurrentURL: "https://example.com/banner.jpg",
	}

	result, err := registry.Delete(context.Background(), "retired_banner", DeleteComplete)
	require.NoError(t, err)
	assert.Equal(t, DeleteComplete, result.Action)
	assert.Empty(t, store.records)
}

func TestUploadKeepsPreviousFileOnDisk(t *testing.T) {
	registry, _, disk := newTestRegistry(t)
	ctx := context.Background()

	first, err := registry.Upload(ctx, "logo", fileHeader(t, "one.png", "image/png", []byte("1")))
	require.NoError(t, err)
	_, err = registry.Upload(ctx, "logo", fileHeader(t, "two.png", "image/png", []byte("2")))
	require.NoError(t, err)

	// Overwrite leaves the prior upload for the sweep to collect.
	assert.True(t, disk.ImageExists(strings.TrimPrefix(first, models.ImagePathPrefix)))
}

func TestUploadWritesFileContent(t *testing.T) {
	registry, _, disk := newTestRegistry(t)

	content := []byte("fake png bytes")
	newURL, err := registry.Upload(context.Background(), "logo", fileHeader(t, "c.png", "image/png", content))
	require.NoError(t, err)

	filename := strings.TrimPrefix(newURL, models.ImagePathPrefix)
	require.True(t, disk.ImageExists(filename))

	// Read back through the public images directory.
	images, err := disk.ListImages()
	require.NoError(t, err)
	info, ok := images[filename]
	require.True(t, ok)
	assert.Equal(t, int64(len(content)), info.Size())
}
