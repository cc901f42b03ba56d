// Package jobs runs background maintenance. The only job today is the
// nightly sweep that removes stored files no document references
// anymore: the upload and reset paths deliberately leave a slot's
// previous custom file on disk, and deleted submissions can leave
// attachments behind when file removal failed.
package jobs

import (
	"context"
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"mechgenz/backend/internal/storage"
)

// ReferenceSource reports which stored filenames are still reachable
// from the database.
type ReferenceSource interface {
	ReferencedImages(ctx context.Context) (map[string]struct{}, error)
	ReferencedAttachments(ctx context.Context) (map[string]struct{}, error)
}

type Sweeper struct {
	cron  *cron.Cron
	refs  ReferenceSource
	disk  *storage.Disk
	log   zerolog.Logger
	grace time.Duration
}

func NewSweeper(refs ReferenceSource, disk *storage.Disk, log zerolog.Logger) *Sweeper {
	return &Sweeper{
		cron: cron.New(cron.WithSeconds()),
		refs: refs,
		disk: disk,
		log:  log,
		// Files younger than the grace window are skipped: an upload
		// may be on disk before its document is written.
		grace: time.Hour,
	}
}

func (s *Sweeper) Start() error {
	if _, err := s.cron.AddFunc("0 0 0 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		removed, err := s.Sweep(ctx)
		if err != nil {
			s.log.Error().Err(err).Msg("orphan sweep failed")
			return
		}
		s.log.Info().Int("removed", removed).Msg("orphan sweep completed")
	}); err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

// Stop halts the scheduler; the returned context is done once any
// running job has finished.
func (s *Sweeper) Stop() context.Context {
	return s.cron.Stop()
}

// Sweep removes unreferenced files from both storage directories and
// reports how many were deleted. Individual deletion failures are
// logged and do not abort the pass.
func (s *Sweeper) Sweep(ctx context.Context) (int, error) {
	images, err := s.refs.ReferencedImages(ctx)
	if err != nil {
		return 0, err
	}
	attachments, err := s.refs.ReferencedAttachments(ctx)
	if err != nil {
		return 0, err
	}

	removed := 0

	onDisk, err := s.disk.ListImages()
	if err != nil {
		return removed, err
	}
	removed += s.removeOrphans(onDisk, images, s.disk.RemoveImage)

	onDisk, err = s.disk.ListAttachments()
	if err != nil {
		return removed, err
	}
	removed += s.removeOrphans(onDisk, attachments, s.disk.RemoveAttachment)

	return removed, nil
}

func (s *Sweeper) removeOrphans(onDisk map[string]os.FileInfo, referenced map[string]struct{}, remove func(string) error) int {
	removed := 0
	cutoff := time.Now().Add(-s.grace)

	for name, info := range onDisk {
		if _, ok := referenced[name]; ok {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		if err := remove(name); err != nil {
			s.log.Warn().Err(err).Str("file", name).Msg("could not remove orphaned file")
			continue
		}
		s.log.Debug().Str("file", name).Msg("removed orphaned file")
		removed++
	}
	return removed
}
