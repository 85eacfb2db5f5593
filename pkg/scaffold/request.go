package scaffold

import (
	"errors"
	"fmt"
	"strings"
)

// Request holds the values a scaffold is generated from.
type Request struct {
	RepoName    string
	Username    string
	Package     string
	AuthorEmail string
}

// Field keys in prompt order. They double as template slot names.
const (
	FieldRepoName    = "RepoName"
	FieldUsername    = "Username"
	FieldPackage     = "Package"
	FieldAuthorEmail = "AuthorEmail"
)

var Fields = []string{FieldRepoName, FieldUsername, FieldPackage, FieldAuthorEmail}

// NewRequest trims surrounding whitespace. Nothing else is checked.
func NewRequest(repoName, username, pkg, authorEmail string) Request {
	return Request{
		RepoName:    strings.TrimSpace(repoName),
		Username:    strings.TrimSpace(username),
		Package:     strings.TrimSpace(pkg),
		AuthorEmail: strings.TrimSpace(authorEmail),
	}
}

func (r Request) Get(field string) (string, bool) {
	switch field {
	case FieldRepoName:
		return r.RepoName, true
	case FieldUsername:
		return r.Username, true
	case FieldPackage:
		return r.Package, true
	case FieldAuthorEmail:
		return r.AuthorEmail, true
	default:
		return "", false
	}
}

// Set trims value and stores it under field.
func (r *Request) Set(field, value string) error {
	value = strings.TrimSpace(value)
	switch field {
	case FieldRepoName:
		r.RepoName = value
	case FieldUsername:
		r.Username = value
	case FieldPackage:
		r.Package = value
	case FieldAuthorEmail:
		r.AuthorEmail = value
	default:
		return fmt.Errorf("unknown field %q", field)
	}
	return nil
}

func (r Request) ToMap() map[string]any {
	m := make(map[string]any, len(Fields))
	for _, f := range Fields {
		m[f], _ = r.Get(f)
	}
	return m
}

// Validate is only used in strict mode.
func (r Request) Validate() error {
	var errs []error
	for _, f := range Fields {
		if v, _ := r.Get(f); v == "" {
			errs = append(errs, fmt.Errorf("%w: %s", ErrEmptyValue, f))
		}
	}
	return errors.Join(errs...)
}
