package client

import (
	"strings"

	"github.com/jwalitptl/records-api/internal/model"
	apperrors "github.com/jwalitptl/records-api/pkg/errors"
)

func validateCreate(req *model.CreateClientRequest) error {
	switch {
	case req.FirstName == "":
		return apperrors.NewValidation("FirstName is required")
	case req.LastName == "":
		return apperrors.NewValidation("LastName is required")
	case req.Email == "":
		return apperrors.NewValidation("Email is required")
	case !strings.Contains(req.Email, "@"):
		return apperrors.NewValidation("Invalid email format")
	}
	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
