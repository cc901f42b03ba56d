package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/rs/zerolog"

	"mechgenz/backend/internal/catalog"
	"mechgenz/backend/internal/media/sniffer"
	"mechgenz/backend/internal/models"
	"mechgenz/backend/internal/repository"
	"mechgenz/backend/internal/storage"
)

var (
	ErrSlotNotFound      = errors.New("image configuration not found")
	ErrRecordNotFound    = errors.New("image not found")
	ErrNotAnImage        = errors.New("file must be an image")
	ErrInvalidDeleteMode = errors.New("invalid delete_type, must be 'image_only' or 'complete'")
)

const (
	DeleteImageOnly = "image_only"
	DeleteComplete  = "complete"
)

// OverrideStore is the persistence boundary for per-slot overrides.
// Implementations signal a missing document with
// repository.ErrOverrideNotFound.
type OverrideStore interface {
	Get(ctx context.Context, slotID string) (models.ImageOverride, error)
	List(ctx context.Context) ([]models.ImageOverride, error)
	Insert(ctx context.Context, override models.ImageOverride) error
	SetCurrentURL(ctx context.Context, slotID, url string, at time.Time) error
	UpdateMetadata(ctx context.Context, slotID, name, description string, at time.Time) error
	Delete(ctx context.Context, slotID string) (bool, error)
	Categories(ctx context.Context) ([]string, error)
}

// Registry reconciles the immutable slot catalog with the mutable
// override store and the image files backing custom uploads. It is the
// single authority for which URL a slot currently displays.
//
// There is no per-slot locking: concurrent mutations of the same slot
// may interleave, and the record/file pair is not updated atomically.
type Registry struct {
	catalog catalog.Catalog
	store   OverrideStore
	disk    *storage.Disk
	log     zerolog.Logger
}

func NewRegistry(cat catalog.Catalog, store OverrideStore, disk *storage.Disk, log zerolog.Logger) *Registry {
	return &Registry{
		catalog: cat,
		store:   store,
		disk:    disk,
		log:     log,
	}
}

// List returns the effective state of every slot: the override record
// when one exists, otherwise a view synthesized from catalog defaults.
// Persisted overrides whose id is no longer in the catalog are included
// as-is rather than hidden.
func (r *Registry) List(ctx context.Context) (map[string]models.ImageOverride, error) {
	records, err := r.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list overrides: %w", err)
	}

	images := make(map[string]models.ImageOverride, r.catalog.Len())
	for _, record := range records {
		images[record.ID] = record
	}

	for _, id := range r.catalog.IDs() {
		if _, ok := images[id]; ok {
			continue
		}
		slot, _ := r.catalog.Get(id)
		images[id] = synthesize(slot)
	}

	return images, nil
}

// Categories reports the distinct categories present in override
// records. Never-overridden slots contribute nothing here even though
// their catalog entries carry a category.
func (r *Registry) Categories(ctx context.Context) ([]string, error) {
	categories, err := r.store.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// Upload stores a new image for the slot and points the override at it.
// The override is created from catalog metadata when absent. The
// previously uploaded file, if any, is left on disk; the nightly sweep
// collects it once unreferenced.
func (r *Registry) Upload(ctx context.Context, slotID string, header *multipart.FileHeader) (string, error) {
	slot, ok := r.catalog.Get(slotID)
	if !ok {
		return "", ErrSlotNotFound
	}

	if !sniffer.IsImageContentType(header.Header.Get("Content-Type")) {
		return "", ErrNotAnImage
	}

	filename, err := r.disk.SaveImage(header)
	if err != nil {
		return "", fmt.Errorf("save image: %w", err)
	}

	newURL := models.ImagePathPrefix + filename
	now := time.Now().UTC()

	err = r.store.SetCurrentURL(ctx, slotID, newURL, now)
	if errors.Is(err, repository.ErrOverrideNotFound) {
		err = r.store.Insert(ctx, materialize(slot, newURL, now))
	}
	if err != nil {
		return "", fmt.Errorf("persist override: %w", err)
	}

	r.log.Info().Str("slot_id", slotID).Str("new_url", newURL).Msg("slot image uploaded")
	return newURL, nil
}

// UpdateMetadata patches name and description on an existing override.
// Unlike Upload it does not materialize a record from the catalog; a
// slot that was never customized returns ErrRecordNotFound.
func (r *Registry) UpdateMetadata(ctx context.Context, slotID, name, description string) error {
	err := r.store.UpdateMetadata(ctx, slotID, name, description, time.Now().UTC())
	if errors.Is(err, repository.ErrOverrideNotFound) {
		return ErrRecordNotFound
	}
	if err != nil {
		return fmt.Errorf("update metadata: %w", err)
	}
	return nil
}

// Reset points an existing override back at the catalog default URL.
// The custom file is not deleted here. Requires both a catalog slot and
// an existing record.
func (r *Registry) Reset(ctx context.Context, slotID string) (string, error) {
	slot, ok := r.catalog.Get(slotID)
	if !ok {
		return "", ErrSlotNotFound
	}

	err := r.store.SetCurrentURL(ctx, slotID, slot.DefaultURL, time.Now().UTC())
	if errors.Is(err, repository.ErrOverrideNotFound) {
		return "", ErrRecordNotFound
	}
	if err != nil {
		return "", fmt.Errorf("reset override: %w", err)
	}

	return slot.DefaultURL, nil
}

// DeleteResult describes the outcome of a Delete call.
type DeleteResult struct {
	Action     string
	Message    string
	DefaultURL string
}

// Delete removes a slot's customization. image_only reverts the slot to
// its catalog default (materializing a record when none exists);
// complete erases the override entirely and is idempotent. complete is
// the only path that accepts an id not present in the catalog, so stale
// persisted overrides can still be purged.
func (r *Registry) Delete(ctx context.Context, slotID, mode string) (DeleteResult, error) {
	switch mode {
	case DeleteImageOnly:
		return r.deleteImageOnly(ctx, slotID)
	case DeleteComplete:
		return r.deleteComplete(ctx, slotID)
	default:
		return DeleteResult{}, ErrInvalidDeleteMode
	}
}

func (r *Registry) deleteImageOnly(ctx context.Context, slotID string) (DeleteResult, error) {
	slot, ok := r.catalog.Get(slotID)
	if !ok {
		return DeleteResult{}, ErrSlotNotFound
	}

	now := time.Now().UTC()
	existing, err := r.store.Get(ctx, slotID)
	switch {
	case err == nil:
		r.removeLocalFile(existing)
		if err := r.store.SetCurrentURL(ctx, slotID, slot.DefaultURL, now); err != nil {
			return DeleteResult{}, fmt.Errorf("reset override: %w", err)
		}
	case errors.Is(err, repository.ErrOverrideNotFound):
		if err := r.store.Insert(ctx, materialize(slot, slot.DefaultURL, now)); err != nil {
			return DeleteResult{}, fmt.Errorf("materialize override: %w", err)
		}
	default:
		return DeleteResult{}, fmt.Errorf("load override: %w", err)
	}

	return DeleteResult{
		Action:     DeleteImageOnly,
		Message:    "Custom image deleted and reset to default",
		DefaultURL: slot.DefaultURL,
	}, nil
}

func (r *Registry) deleteComplete(ctx context.Context, slotID string) (DeleteResult, error) {
	existing, err := r.store.Get(ctx, slotID)
	if errors.Is(err, repository.ErrOverrideNotFound) {
		// Already gone; a repeated complete delete succeeds.
		return DeleteResult{
			Action:  DeleteComplete,
			Message: "Image configuration was already deleted",
		}, nil
	}
	if err != nil {
		return DeleteResult{}, fmt.Errorf("load override: %w", err)
	}

	r.removeLocalFile(existing)

	if _, err := r.store.Delete(ctx, slotID); err != nil {
		return DeleteResult{}, fmt.Errorf("delete override: %w", err)
	}

	return DeleteResult{
		Action:  DeleteComplete,
		Message: "Image configuration deleted completely",
	}, nil
}

// removeLocalFile deletes the override's backing file when the current
// URL points at a local upload. Failures are logged, never fatal.
func (r *Registry) removeLocalFile(override models.ImageOverride) {
	file := override.LocalImageFile()
	if file == "" {
		return
	}
	if err := r.disk.RemoveImage(file); err != nil {
		r.log.Warn().Err(err).Str("slot_id", override.ID).Str("file", file).Msg("could not delete image file")
	}
}

func materialize(slot catalog.Slot, currentURL string, now time.Time) models.ImageOverride {
	return models.ImageOverride{
		ID:              slot.ID,
		Name:            slot.Name,
		Description:     slot.Description,
		CurrentURL:      currentURL,
		DefaultURL:      slot.DefaultURL,
		Locations:       slot.Locations,
		RecommendedSize: slot.RecommendedSize,
		Category:        slot.Category,
		CreatedAt:       &now,
		UpdatedAt:       &now,
	}
}

func synthesize(slot catalog.Slot) models.ImageOverride {
	return models.ImageOverride{
		ID:              slot.ID,
		Name:            slot.Name,
		Description:     slot.Description,
		CurrentURL:      slot.DefaultURL,
		DefaultURL:      slot.DefaultURL,
		Locations:       slot.Locations,
		RecommendedSize: slot.RecommendedSize,
		Category:        slot.Category,
	}
}
