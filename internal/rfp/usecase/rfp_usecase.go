package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Real-Streeter/liberty-command/internal/rfp/domain"
	"github.com/Real-Streeter/liberty-command/internal/rfp/dto"
	"github.com/Real-Streeter/liberty-command/internal/rfp/repository"
	"github.com/Real-Streeter/liberty-command/pkg/apperr"
)

type rfpUsecase struct {
	rfpRepo repository.RfpRepository
}

func NewRfpUsecase(rfpRepo repository.RfpRepository) RfpUsecase {
	return &rfpUsecase{rfpRepo: rfpRepo}
}

func (u *rfpUsecase) ListRfps(ctx context.Context) ([]*domain.Rfp, error) {
	rfps, err := u.rfpRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if rfps == nil {
		rfps = []*domain.Rfp{}
	}
	return rfps, nil
}

func (u *rfpUsecase) CreateRfp(ctx context.Context, req dto.CreateRfpRequest) (*domain.Rfp, error) {
	rfp := &domain.Rfp{Status: domain.StatusRequestSent}

	var err error
	if rfp.Name, err = requiredText("name", req.Name, domain.MaxNameLength); err != nil {
		return nil, err
	}
	if rfp.Carrier, err = requiredText("carrier", req.Carrier, domain.MaxCarrierLength); err != nil {
		return nil, err
	}
	if req.Progress != nil {
		if rfp.Progress, err = validateProgress(*req.Progress); err != nil {
			return nil, err
		}
	}
	if status := strings.TrimSpace(req.Status); status != "" {
		if rfp.Status, err = requiredText("status", status, domain.MaxStatusLength); err != nil {
			return nil, err
		}
	}
	if rfp.DueDate, err = parseDueDate(req.DueDate); err != nil {
		return nil, err
	}
	if rfp.Notes, err = validateNotes(req.Notes); err != nil {
		return nil, err
	}

	if err := u.rfpRepo.Create(ctx, rfp); err != nil {
		return nil, err
	}
	return rfp, nil
}

func (u *rfpUsecase) UpdateRfp(ctx context.Context, id string, req dto.UpdateRfpRequest) (*domain.Rfp, error) {
	rfp, err := u.rfpRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rfp == nil {
		return nil, domain.ErrRfpNotFound
	}

	if req.Name != nil {
		if rfp.Name, err = requiredText("name", *req.Name, domain.MaxNameLength); err != nil {
			return nil, err
		}
	}
	if req.Carrier != nil {
		if rfp.Carrier, err = requiredText("carrier", *req.Carrier, domain.MaxCarrierLength); err != nil {
			return nil, err
		}
	}
	if req.Progress != nil {
		if rfp.Progress, err = validateProgress(*req.Progress); err != nil {
			return nil, err
		}
	}
	if req.Status != nil {
		if rfp.Status, err = requiredText("status", *req.Status, domain.MaxStatusLength); err != nil {
			return nil, err
		}
	}
	if req.DueDate != nil {
		if rfp.DueDate, err = parseDueDate(req.DueDate); err != nil {
			return nil, err
		}
	}
	if req.Notes != nil {
		if rfp.Notes, err = validateNotes(*req.Notes); err != nil {
			return nil, err
		}
	}

	if err := u.rfpRepo.Update(ctx, rfp); err != nil {
		return nil, err
	}
	return rfp, nil
}

func (u *rfpUsecase) DeleteRfp(ctx context.Context, id string) error {
	deleted, err := u.rfpRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrRfpNotFound
	}
	return nil
}

func requiredText(field, value string, limit int) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", apperr.Validation(field + " is required")
	}
	if utf8.RuneCountInString(value) > limit {
		return "", apperr.Validation(fmt.Sprintf("%s must be at most %d characters", field, limit))
	}
	return value, nil
}

func validateProgress(p int) (int, error) {
	if p < 0 || p > domain.MaxProgress {
		return 0, apperr.Validation(fmt.Sprintf("progress must be between 0 and %d", domain.MaxProgress))
	}
	return p, nil
}

func validateNotes(notes string) (string, error) {
	notes = strings.TrimSpace(notes)
	if utf8.RuneCountInString(notes) > domain.MaxNotesLength {
		return "", apperr.Validation(fmt.Sprintf("notes must be at most %d characters", domain.MaxNotesLength))
	}
	return notes, nil
}

func parseDueDate(s *string) (*string, error) {
	if s == nil {
		return nil, nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil, nil
	}
	if _, err := time.Parse(time.DateOnly, v); err != nil {
		return nil, apperr.Validation("dueDate must be a date in YYYY-MM-DD format")
	}
	return &v, nil
}
