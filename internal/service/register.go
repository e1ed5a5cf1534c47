package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/aicsoa/checkin-backend/internal/logging"
	"github.com/aicsoa/checkin-backend/internal/mailer"
	"github.com/aicsoa/checkin-backend/internal/models"
	"github.com/aicsoa/checkin-backend/internal/mykafka"
	"github.com/aicsoa/checkin-backend/internal/qr"
	"github.com/aicsoa/checkin-backend/internal/repo"
	"github.com/aicsoa/checkin-backend/internal/uid"
)

// RegistrationService creates participant records. QR rendering, email
// delivery, event publishing and search indexing are side channels: each is
// skipped when unconfigured and logged-but-ignored when it fails.
type RegistrationService struct {
	Repo     *repo.GormRepo
	QR       *qr.Generator
	Mailer   *mailer.Mailer
	Producer *mykafka.Producer
	ES       *elasticsearch.Client
	Index    string
}

type RegistrationResult struct {
	UID    string
	QRPath string
}

func (s *RegistrationService) Register(ctx context.Context, name, email, phone, college, role string) (*RegistrationResult, error) {
	l := logging.FromContext(ctx).With("svc", "registration.register", "email", email)

	if name == "" || email == "" || role == "" {
		return nil, ErrValidation
	}

	entryID := uid.New()

	qrPath := ""
	if s.QR != nil {
		path, err := s.QR.Generate(entryID)
		if err != nil {
			l.Error("qr_generate_failed", "error", err)
		} else {
			qrPath = path
		}
	}

	p := &models.Participant{
		UID:       entryID,
		Name:      name,
		Email:     email,
		Phone:     phone,
		College:   college,
		Role:      role,
		CheckedIn: false,
		QRPath:    qrPath,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.Repo.CreateParticipant(ctx, p); err != nil {
		if errors.Is(err, repo.ErrEmailExists) {
			l.Warn("register_rejected", "reason", "duplicate_email")
		} else {
			l.Error("register_failed", "reason", "db_error", "error", err)
		}
		return nil, err
	}

	s.indexParticipant(ctx, p)
	s.publishRegistered(ctx, p)

	if s.Mailer != nil {
		// Delivery can take seconds against a real SMTP server; it never
		// blocks the registration response.
		go func(to, name, entryID, qrPath string) {
			if err := s.Mailer.SendEntryPass(to, name, entryID, qrPath); err != nil {
				l.Error("entry_email_failed", "error", err)
			}
		}(p.Email, p.Name, p.UID, p.QRPath)
	}

	l.Info("register_success", "uid", p.UID)
	return &RegistrationResult{UID: p.UID, QRPath: p.QRPath}, nil
}

func (s *RegistrationService) publishRegistered(ctx context.Context, p *models.Participant) {
	if s.Producer == nil {
		return
	}
	event := map[string]interface{}{
		"type": "participant_registered",
		"uid":  p.UID,
		"role": p.Role,
	}
	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.Producer.PublishEvent(pubCtx, checkinEventsTopic, p.UID, event); err != nil {
		logging.FromContext(ctx).Error("kafka_publish_failed", "error", err)
	}
}

func (s *RegistrationService) indexParticipant(ctx context.Context, p *models.Participant) {
	if s.ES == nil {
		return
	}
	l := logging.FromContext(ctx)

	doc := map[string]interface{}{
		"uid":     p.UID,
		"name":    p.Name,
		"email":   p.Email,
		"college": p.College,
		"role":    p.Role,
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(doc); err != nil {
		l.Error("es_index_failed", "error", err)
		return
	}

	res, err := s.ES.Index(
		s.Index,
		&buf,
		s.ES.Index.WithDocumentID(p.UID),
		s.ES.Index.WithContext(ctx),
	)
	if err != nil {
		l.Error("es_index_failed", "error", err)
		return
	}
	defer res.Body.Close()
	if res.IsError() {
		l.Error("es_index_failed", "error", fmt.Errorf("es: %s", res.Status()))
	}
}
