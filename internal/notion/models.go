package notion

import (
	"strings"
	"time"
)

// QueryRequest is the body of POST /v1/databases/{id}/query.
type QueryRequest struct {
	Filter      *Filter `json:"filter,omitempty"`
	Sorts       []Sort  `json:"sorts,omitempty"`
	StartCursor string  `json:"start_cursor,omitempty"`
	PageSize    int     `json:"page_size,omitempty"`
}

type Filter struct {
	Property string           `json:"property"`
	Select   *SelectCondition `json:"select,omitempty"`
}

type SelectCondition struct {
	Equals string `json:"equals"`
}

type Sort struct {
	Property  string `json:"property,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
	Direction string `json:"direction"`
}

const (
	Descending      = "descending"
	TimestampCreate = "created_time"
)

type QueryResponse struct {
	Object     string  `json:"object"`
	Results    []Page  `json:"results"`
	HasMore    bool    `json:"has_more"`
	NextCursor *string `json:"next_cursor"`
}

type ErrorResponse struct {
	Object  string `json:"object"`
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Page struct {
	ID          string     `json:"id"`
	CreatedTime time.Time  `json:"created_time"`
	Properties  Properties `json:"properties"`
}

// Property is a loosely-typed page property. Only the field matching Type is populated.
type Property struct {
	ID          string     `json:"id"`
	Type        string     `json:"type"`
	Title       []RichText `json:"title,omitempty"`
	RichText    []RichText `json:"rich_text,omitempty"`
	Files       []File     `json:"files,omitempty"`
	URL         *string    `json:"url,omitempty"`
	Email       *string    `json:"email,omitempty"`
	MultiSelect []Option   `json:"multi_select,omitempty"`
}

type RichText struct {
	Type      string `json:"type"`
	PlainText string `json:"plain_text"`
}

type File struct {
	Name     string      `json:"name"`
	Type     string      `json:"type"`
	File     *FileObject `json:"file,omitempty"`
	External *FileObject `json:"external,omitempty"`
}

type FileObject struct {
	URL        string     `json:"url"`
	ExpiryTime *time.Time `json:"expiry_time,omitempty"`
}

type Option struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Properties maps property names to values. Lookups of missing or mistyped
// properties return zero values.
type Properties map[string]Property

// Text returns the concatenated plain text of a title or rich_text property.
func (p Properties) Text(name string) string {
	prop, ok := p[name]
	if !ok {
		return ""
	}
	segments := prop.RichText
	if len(prop.Title) > 0 {
		segments = prop.Title
	}
	var sb strings.Builder
	for _, rt := range segments {
		sb.WriteString(rt.PlainText)
	}
	return sb.String()
}

// FileURL returns the URL of the first file, hosted or external.
func (p Properties) FileURL(name string) string {
	prop, ok := p[name]
	if !ok {
		return ""
	}
	for _, f := range prop.Files {
		switch {
		case f.File != nil && f.File.URL != "":
			return f.File.URL
		case f.External != nil && f.External.URL != "":
			return f.External.URL
		}
	}
	return ""
}

func (p Properties) URL(name string) string {
	prop, ok := p[name]
	if !ok || prop.URL == nil {
		return ""
	}
	return *prop.URL
}

func (p Properties) Email(name string) string {
	prop, ok := p[name]
	if !ok || prop.Email == nil {
		return ""
	}
	return *prop.Email
}

func (p Properties) MultiSelectNames(name string) []string {
	prop, ok := p[name]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(prop.MultiSelect))
	for _, opt := range prop.MultiSelect {
		if opt.Name != "" {
			names = append(names, opt.Name)
		}
	}
	return names
}
