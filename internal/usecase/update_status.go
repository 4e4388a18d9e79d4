package usecase

import (
	"context"
	"fmt"

	"github.com/arclight-digital/arclight-backend/internal/entity"
)

// UpdateStatusUseCase overwrites exactly the status field of a record. No
// source-state check is made before a transition: humans run this pipeline
// and need to be able to reopen, un-reject or otherwise override. Status
// updates never touch any timestamp on the record.
type UpdateStatusUseCase struct {
	Leads         entity.LeadRepositoryInterface
	Consultations entity.ConsultationRepositoryInterface
	Applications  entity.ApplicationRepositoryInterface
}

func NewUpdateStatusUseCase(
	leads entity.LeadRepositoryInterface,
	consultations entity.ConsultationRepositoryInterface,
	applications entity.ApplicationRepositoryInterface,
) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{
		Leads:         leads,
		Consultations: consultations,
		Applications:  applications,
	}
}

func (uc *UpdateStatusUseCase) UpdateLead(ctx context.Context, id, status string) error {
	s := entity.LeadStatus(status)
	if !s.Valid() {
		return &DomainError{Code: CodeValidation, Message: fmt.Sprintf("invalid lead status %q", status)}
	}
	if err := uc.Leads.UpdateStatus(ctx, id, s); err != nil {
		return NewStoreError(err)
	}
	return nil
}

func (uc *UpdateStatusUseCase) UpdateConsultation(ctx context.Context, id, status string) error {
	s := entity.ConsultationStatus(status)
	if !s.Valid() {
		return &DomainError{Code: CodeValidation, Message: fmt.Sprintf("invalid consultation status %q", status)}
	}
	if err := uc.Consultations.UpdateStatus(ctx, id, s); err != nil {
		return NewStoreError(err)
	}
	return nil
}

// UpdateApplication accepts any raw string and canonicalizes it before the
// write, so legacy values like "reviewing" land as "Screening".
func (uc *UpdateStatusUseCase) UpdateApplication(ctx context.Context, id, raw string) error {
	if err := uc.Applications.UpdateStatus(ctx, id, entity.CanonicalStatus(raw)); err != nil {
		return NewStoreError(err)
	}
	return nil
}
