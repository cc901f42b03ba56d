// Package mail renders and dispatches transactional email through
// Resend. Sends are HTML+text multipart; submission attachments are
// loaded from disk and inlined.
package mail

import (
	"context"
	"errors"
	"fmt"

	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"

	"mechgenz/backend/internal/config"
	"mechgenz/backend/internal/media/sniffer"
	"mechgenz/backend/internal/models"
	"mechgenz/backend/internal/storage"
)

var ErrDisabled = errors.New("mailer disabled: no resend api key configured")

type Mailer struct {
	client *resend.Client
	cfg    config.MailConfig
	disk   *storage.Disk
	log    zerolog.Logger
}

func New(cfg config.MailConfig, disk *storage.Disk, log zerolog.Logger) *Mailer {
	m := &Mailer{
		cfg:  cfg,
		disk: disk,
		log:  log,
	}
	if cfg.ResendAPIKey != "" {
		m.client = resend.NewClient(cfg.ResendAPIKey)
	}
	return m
}

func (m *Mailer) Enabled() bool {
	return m.client != nil
}

// SendAdminNotification emails the admin inbox about a new submission,
// attaching the stored files. Reply-to is set to the submitter so the
// admin can answer directly from their mail client.
func (m *Mailer) SendAdminNotification(ctx context.Context, submission models.Submission) error {
	if !m.Enabled() {
		return ErrDisabled
	}

	attachments := make([]*resend.Attachment, 0, len(submission.UploadedFiles))
	infos := make([]attachmentInfo, 0, len(submission.UploadedFiles))
	for _, file := range submission.UploadedFiles {
		content, err := m.disk.ReadAttachment(file.SavedName)
		if err != nil {
			m.log.Warn().Err(err).Str("file", file.SavedName).Msg("attachment unreadable, listing without content")
			infos = append(infos, attachmentInfo{Name: file.OriginalName, Missing: true})
			continue
		}

		contentType := file.ContentType
		if contentType == "" {
			contentType = sniffer.Detect(content)
		}

		attachments = append(attachments, &resend.Attachment{
			Filename:    file.OriginalName,
			Content:     content,
			ContentType: contentType,
		})
		infos = append(infos, attachmentInfo{
			Name:   file.OriginalName,
			SizeMB: float64(file.FileSize) / (1024 * 1024),
		})
	}

	html, text, err := renderNotification(submission, infos, m.cfg.AdminPanelURL)
	if err != nil {
		return fmt.Errorf("render notification: %w", err)
	}

	replyTo := submission.Email
	if replyTo == "" {
		replyTo = "noreply@mechgenz.com"
	}

	params := &resend.SendEmailRequest{
		From:        m.cfg.NotificationFrom,
		To:          []string{m.cfg.NotificationTo},
		ReplyTo:     replyTo,
		Subject:     fmt.Sprintf("New Contact Form Submission from %s", submission.Name),
		Html:        html,
		Text:        text,
		Attachments: attachments,
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("send notification: %w", err)
	}

	m.log.Info().Str("email_id", sent.Id).Int("attachments", len(attachments)).Msg("admin notification sent")
	return nil
}

type ReplyInput struct {
	ToEmail         string
	ToName          string
	ReplyMessage    string
	OriginalMessage string
}

// SendReply emails a branded response to an inquiry. Reply-to points
// back at the admin inbox. Returns the provider's email id.
func (m *Mailer) SendReply(ctx context.Context, input ReplyInput) (string, error) {
	if !m.Enabled() {
		return "", ErrDisabled
	}

	html, text, err := renderReply(input)
	if err != nil {
		return "", fmt.Errorf("render reply: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    m.cfg.ReplyFrom,
		To:      []string{input.ToEmail},
		ReplyTo: m.cfg.NotificationTo,
		Subject: "Reply from MECHGENZ - Your Inquiry",
		Html:    html,
		Text:    text,
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", fmt.Errorf("send reply: %w", err)
	}

	m.log.Info().Str("email_id", sent.Id).Str("to", input.ToEmail).Msg("reply sent")
	return sent.Id, nil
}
