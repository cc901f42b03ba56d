package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"mechgenz/backend/internal/config"
	"mechgenz/backend/internal/models"
)

// Disk persists uploaded binaries on the local filesystem. Contact-form
// attachments live under the uploads directory; website images live
// under the public images directory, which the HTTP server exposes at
// /images/<filename>.
type Disk struct {
	uploadsDir string
	imagesDir  string
}

func NewDisk(cfg config.StorageConfig) *Disk {
	return &Disk{
		uploadsDir: cfg.UploadsDir,
		imagesDir:  cfg.ImagesDir,
	}
}

// EnsureDirs creates both directories, mirroring the deployment layout.
func (d *Disk) EnsureDirs() error {
	for _, dir := range []string{d.uploadsDir, d.imagesDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create dir %s: %w", dir, err)
		}
	}
	return nil
}

// SaveAttachment writes one contact-form attachment under a generated
// unique name and reports the stored metadata.
func (d *Disk) SaveAttachment(header *multipart.FileHeader) (models.UploadedFile, error) {
	savedName := uuid.NewString() + filepath.Ext(header.Filename)
	size, err := d.save(header, filepath.Join(d.uploadsDir, savedName))
	if err != nil {
		return models.UploadedFile{}, err
	}

	return models.UploadedFile{
		OriginalName: header.Filename,
		SavedName:    savedName,
		FileSize:     size,
		ContentType:  header.Header.Get("Content-Type"),
	}, nil
}

// SaveImage writes a website image upload and returns the generated
// filename. The original extension is kept; uploads without a filename
// fall back to .jpg.
func (d *Disk) SaveImage(header *multipart.FileHeader) (string, error) {
	ext := filepath.Ext(header.Filename)
	if ext == "" {
		ext = ".jpg"
	}
	filename := uuid.NewString() + ext
	if _, err := d.save(header, filepath.Join(d.imagesDir, filename)); err != nil {
		return "", err
	}
	return filename, nil
}

func (d *Disk) save(header *multipart.FileHeader, path string) (int64, error) {
	src, err := header.Open()
	if err != nil {
		return 0, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", path, err)
	}
	defer dst.Close()

	size, err := io.Copy(dst, src)
	if err != nil {
		return 0, fmt.Errorf("write %s: %w", path, err)
	}
	return size, nil
}

// RemoveImage deletes a stored website image. A missing file is not an
// error; deletion here is always best-effort at the call sites.
func (d *Disk) RemoveImage(filename string) error {
	return remove(filepath.Join(d.imagesDir, filepath.Base(filename)))
}

// RemoveAttachment deletes a stored contact-form attachment.
func (d *Disk) RemoveAttachment(savedName string) error {
	return remove(filepath.Join(d.uploadsDir, filepath.Base(savedName)))
}

func remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove %s: %w", path, err)
	}
	return nil
}

// AttachmentPath resolves an attachment filename for download or
// reading. filepath.Base guards against path traversal in the name.
func (d *Disk) AttachmentPath(savedName string) string {
	return filepath.Join(d.uploadsDir, filepath.Base(savedName))
}

// ReadAttachment loads a stored attachment's bytes for emailing.
func (d *Disk) ReadAttachment(savedName string) ([]byte, error) {
	return os.ReadFile(d.AttachmentPath(savedName))
}

// ImageExists reports whether a stored website image is on disk.
func (d *Disk) ImageExists(filename string) bool {
	_, err := os.Stat(filepath.Join(d.imagesDir, filepath.Base(filename)))
	return err == nil
}

// ListImages returns the filenames currently stored in the public
// images directory, with each file's modification time.
func (d *Disk) ListImages() (map[string]os.FileInfo, error) {
	return list(d.imagesDir)
}

// ListAttachments returns the filenames currently stored in the uploads
// directory, with each file's modification time.
func (d *Disk) ListAttachments() (map[string]os.FileInfo, error) {
	return list(d.uploadsDir)
}

func list(dir string) (map[string]os.FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]os.FileInfo{}, nil
		}
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	files := make(map[string]os.FileInfo, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files[entry.Name()] = info
	}
	return files, nil
}
