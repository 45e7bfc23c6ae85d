// Package domain holds the persisted entities and the request/response
// shapes of the borders API.
//
// Entities mirror the two tables: a Border owns zero or more Tasks via
// the owner_id foreign key. The request types carry echo binding tags
// (param/query/json) and validator tags, and implement Validate so they
// plug into the shared bind-and-validate pipeline.
package domain

import (
	"bytes"
	"encoding/json"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Task is a leaf entity belonging to exactly one border. Text is
// nullable and starts unset at creation.
type Task struct {
	ID      int64   `json:"id"`
	Text    *string `json:"text"`
	OwnerID int64   `json:"owner_id"`
}

// Border is the top-level container entity. Tasks is derived from the
// owner_id foreign key, ordered by insertion, and is never nil so it
// serializes as [] rather than null.
type Border struct {
	ID    int64  `json:"id"`
	Tasks []Task `json:"tasks"`
}

// OKResponse is the body returned by the delete endpoints.
type OKResponse struct {
	OK bool `json:"ok"`
}

// NullableString distinguishes an absent JSON key from an explicit
// null. Set is true only when the key was present in the request body;
// Value is nil for an explicit null.
type NullableString struct {
	Set   bool
	Value *string
}

var nullLiteral = []byte("null")

// UnmarshalJSON is only invoked when the key is present, which is what
// flips Set.
func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(data, nullLiteral) {
		n.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	n.Value = &s
	return nil
}

// CreateBorderRequest accepts a tasks field for compatibility with the
// public contract, but its content is discarded: borders are always
// created empty.
type CreateBorderRequest struct {
	Tasks []Task `json:"tasks"`
}

func (r *CreateBorderRequest) Validate() error {
	return validate.Struct(r)
}

// ListBordersRequest carries the pagination query parameters. Limit is
// a pointer so an absent parameter can default to the page maximum
// while an explicit limit=0 stays zero.
type ListBordersRequest struct {
	Offset int  `query:"offset" validate:"gte=0"`
	Limit  *int `query:"limit" validate:"omitempty,gte=0,lte=100"`
}

// MaxPageSize caps the borders list page.
const MaxPageSize = 100

func (r *ListBordersRequest) Validate() error {
	return validate.Struct(r)
}

// EffectiveLimit returns the requested limit, defaulting to MaxPageSize
// when the parameter was not supplied.
func (r *ListBordersRequest) EffectiveLimit() int {
	if r.Limit == nil {
		return MaxPageSize
	}
	return *r.Limit
}

// GetBorderRequest identifies a single border by path parameter.
type GetBorderRequest struct {
	BorderID int64 `param:"border_id"`
}

func (r *GetBorderRequest) Validate() error {
	return validate.Struct(r)
}

// DeleteBorderRequest identifies the border to delete.
type DeleteBorderRequest struct {
	BorderID int64 `param:"border_id"`
}

func (r *DeleteBorderRequest) Validate() error {
	return validate.Struct(r)
}

// CreateTaskRequest identifies the owning border. The body carries no
// task content: a created task always starts with text unset.
type CreateTaskRequest struct {
	BorderID int64 `param:"border_id"`
}

func (r *CreateTaskRequest) Validate() error {
	return validate.Struct(r)
}

// UpdateTaskRequest applies a partial update to a task. Only fields
// present in the body overwrite existing state; Text distinguishes
// absent from explicit null.
type UpdateTaskRequest struct {
	BorderID int64          `param:"border_id"`
	TaskID   int64          `param:"task_id"`
	Text     NullableString `json:"text"`
}

func (r *UpdateTaskRequest) Validate() error {
	return validate.Struct(r)
}

// DeleteTaskRequest identifies a task within its owning border.
type DeleteTaskRequest struct {
	BorderID int64 `param:"border_id"`
	TaskID   int64 `param:"task_id"`
}

func (r *DeleteTaskRequest) Validate() error {
	return validate.Struct(r)
}
