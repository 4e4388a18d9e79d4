package entity

import "errors"

var (
	ErrNotFound      = errors.New("record not found")
	ErrInviteMissing = errors.New("no pending invite for email")
)
