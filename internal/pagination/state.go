package pagination

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidArgument is matched by every error returned from State.Validate.
var ErrInvalidArgument = errors.New("invalid paging argument")

// State holds the inputs of one paging render.
type State struct {
	CurrentPage       int `json:"page" validate:"gte=1"`
	PageSize          int `json:"size" validate:"gte=1"`
	TotalRecords      int `json:"total" validate:"gte=0"`
	MaxDisplayedPages int `json:"max" validate:"gte=1"`
	GapSize           int `json:"gap" validate:"gte=0"`
}

// TotalPages is ceil(TotalRecords / PageSize), or 0 when there is nothing
// to page through.
func (s State) TotalPages() int {
	if s.PageSize <= 0 || s.TotalRecords <= 0 {
		return 0
	}
	pages := s.TotalRecords / s.PageSize
	if s.TotalRecords%s.PageSize != 0 {
		pages++
	}
	return pages
}

// Offset returns the record offset of the current page.
func (s State) Offset() int {
	if s.CurrentPage <= 1 {
		return 0
	}
	return (s.CurrentPage - 1) * s.PageSize
}

// Limit returns the number of records on a page.
func (s State) Limit() int { return s.PageSize }

// InvalidArgumentError lists the fields of a State that failed validation,
// keyed by their JSON name.
type InvalidArgumentError struct {
	Fields map[string]string
}

func (e *InvalidArgumentError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("%s: %s", ErrInvalidArgument, strings.Join(names, ", "))
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the bounds of every field.
func (s State) Validate() error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fmt.Sprintf("must be %s %s", comparison(fe.Tag()), fe.Param())
	}
	return &InvalidArgumentError{Fields: fields}
}

func comparison(tag string) string {
	switch tag {
	case "gte":
		return "at least"
	case "lte":
		return "at most"
	default:
		return tag
	}
}
