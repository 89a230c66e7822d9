package service

import (
	"fmt"

	"github.com/google/uuid"
)

type ErrResourceNotFound struct {
	error
}

func NewErrResourceNotFound(id uuid.UUID, resourceType string) *ErrResourceNotFound {
	return &ErrResourceNotFound{fmt.Errorf("%s %s not found", resourceType, id)}
}

func NewErrInventoryNotFound(id uuid.UUID) *ErrResourceNotFound {
	return NewErrResourceNotFound(id, "inventory")
}

func NewErrPlanNotFound(id uuid.UUID) *ErrResourceNotFound {
	return NewErrResourceNotFound(id, "plan")
}

type ErrInvalidRequest struct {
	error
}

func NewErrInvalidRequest(format string, args ...any) *ErrInvalidRequest {
	return &ErrInvalidRequest{fmt.Errorf(format, args...)}
}

type ErrDuplicateName struct {
	error
}

func NewErrDuplicateName(name string) *ErrDuplicateName {
	return &ErrDuplicateName{fmt.Errorf("inventory named %q already exists", name)}
}

type ErrFileCorrupted struct {
	error
}

func NewErrFileCorrupted(message string) *ErrFileCorrupted {
	return &ErrFileCorrupted{fmt.Errorf("bad request: %s", message)}
}

func NewErrFleetFileCorrupted(message string) *ErrFileCorrupted {
	return NewErrFileCorrupted(fmt.Sprintf("the provided fleet file is corrupted: %s", message))
}
