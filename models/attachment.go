package models

import "io"

// Attachment is a file part of a multipart submission.
type Attachment struct {
	Field    string
	FileName string
	Content  io.Reader
}

// Present reports whether a file was actually supplied.
func (a *Attachment) Present() bool {
	return a != nil && a.Content != nil && a.FileName != ""
}

// Attachments collects the supplied files, skipping nil and empty ones.
func Attachments(files ...*Attachment) []Attachment {
	var out []Attachment
	for _, f := range files {
		if f.Present() {
			out = append(out, *f)
		}
	}
	return out
}
