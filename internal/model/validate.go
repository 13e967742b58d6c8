package model

import (
	"fmt"
	"strings"
)

// FieldError 单个字段级校验失败。
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors 一次写入的全部字段级校验失败，整体拒绝，不做部分落库。
type ValidationErrors struct {
	Violations []FieldError `json:"violations"`
}

func (e *ValidationErrors) Add(field, message string) {
	e.Violations = append(e.Violations, FieldError{Field: field, Message: message})
}

func (e *ValidationErrors) HasErrors() bool {
	return len(e.Violations) > 0
}

func (e *ValidationErrors) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsValidationErrors 判断 err 是否为校验错误。
func AsValidationErrors(err error) (*ValidationErrors, bool) {
	ve, ok := err.(*ValidationErrors)
	return ve, ok
}
