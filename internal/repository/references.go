package repository

import "context"

// FileReferences answers which stored filenames are still referenced by
// any document. It backs the orphaned-file sweep.
type FileReferences struct {
	overrides   *OverrideRepository
	submissions *SubmissionRepository
}

func NewFileReferences(overrides *OverrideRepository, submissions *SubmissionRepository) *FileReferences {
	return &FileReferences{
		overrides:   overrides,
		submissions: submissions,
	}
}

// ReferencedImages returns the image filenames referenced by override
// documents whose current_url points at a local upload.
func (f *FileReferences) ReferencedImages(ctx context.Context) (map[string]struct{}, error) {
	overrides, err := f.overrides.List(ctx)
	if err != nil {
		return nil, err
	}

	referenced := make(map[string]struct{}, len(overrides))
	for _, override := range overrides {
		if file := override.LocalImageFile(); file != "" {
			referenced[file] = struct{}{}
		}
	}
	return referenced, nil
}

// ReferencedAttachments returns the attachment filenames referenced by
// any submission.
func (f *FileReferences) ReferencedAttachments(ctx context.Context) (map[string]struct{}, error) {
	names, err := f.submissions.AttachmentNames(ctx)
	if err != nil {
		return nil, err
	}

	referenced := make(map[string]struct{}, len(names))
	for _, name := range names {
		referenced[name] = struct{}{}
	}
	return referenced, nil
}
