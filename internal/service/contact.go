package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/rs/zerolog"

	"mechgenz/backend/internal/mail"
	"mechgenz/backend/internal/models"
	"mechgenz/backend/internal/repository"
	"mechgenz/backend/internal/storage"
)

// ContactService persists contact-form submissions and notifies the
// admin inbox as a side effect.
type ContactService struct {
	submissions *repository.SubmissionRepository
	disk        *storage.Disk
	mailer      *mail.Mailer
	log         zerolog.Logger
}

func NewContactService(submissions *repository.SubmissionRepository, disk *storage.Disk, mailer *mail.Mailer, log zerolog.Logger) *ContactService {
	return &ContactService{
		submissions: submissions,
		disk:        disk,
		mailer:      mailer,
		log:         log,
	}
}

type ContactInput struct {
	Name      string
	Phone     string
	Email     string
	Message   string
	Files     []*multipart.FileHeader
	IPAddress string
	UserAgent string
}

type ContactResult struct {
	SubmissionID  string
	FilesUploaded int
}

// Submit stores the submission and then attempts the admin notification
// email. The email is best-effort: a send failure is logged and the
// submission still succeeds.
func (s *ContactService) Submit(ctx context.Context, input ContactInput) (ContactResult, error) {
	var uploaded []models.UploadedFile
	for _, header := range input.Files {
		if header == nil || header.Filename == "" {
			continue
		}
		file, err := s.disk.SaveAttachment(header)
		if err != nil {
			return ContactResult{}, fmt.Errorf("save attachment: %w", err)
		}
		uploaded = append(uploaded, file)
	}

	submission := models.Submission{
		Name:          input.Name,
		Phone:         input.Phone,
		Email:         input.Email,
		Message:       input.Message,
		UploadedFiles: uploaded,
		SubmittedAt:   time.Now().UTC(),
		IPAddress:     input.IPAddress,
		UserAgent:     input.UserAgent,
		Status:        "new",
	}

	id, err := s.submissions.Insert(ctx, submission)
	if err != nil {
		return ContactResult{}, fmt.Errorf("store submission: %w", err)
	}

	if err := s.mailer.SendAdminNotification(ctx, submission); err != nil {
		s.log.Error().Err(err).Str("submission_id", id).Msg("admin notification failed")
	}

	return ContactResult{
		SubmissionID:  id,
		FilesUploaded: len(uploaded),
	}, nil
}
