package httpclient

import (
	"bytes"
	"fmt"
	"mime/multipart"

	"auction-client/internal/models"
)

type formField struct {
	name  string
	value string
}

type formFile struct {
	name   string
	upload *models.FileUpload
}

// Form accumulates the parts of a multipart request body. Fields that are
// never set are absent from the encoded body entirely, so optional form
// fields are omitted rather than sent empty.
type Form struct {
	fields []formField
	files  []formFile
}

// NewForm creates an empty multipart form
func NewForm() *Form {
	return &Form{}
}

// Set appends a string field to the form
func (f *Form) Set(name, value string) {
	f.fields = append(f.fields, formField{name: name, value: value})
}

// SetFile appends a file part to the form. A nil upload is ignored.
func (f *Form) SetFile(name string, upload *models.FileUpload) {
	if upload == nil {
		return
	}
	f.files = append(f.files, formFile{name: name, upload: upload})
}

// encode writes the form into a multipart body and returns it along with
// the matching Content-Type header value
func (f *Form) encode() ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, field := range f.fields {
		if err := w.WriteField(field.name, field.value); err != nil {
			return nil, "", fmt.Errorf("form: failed to write field %s: %w", field.name, err)
		}
	}

	for _, file := range f.files {
		part, err := w.CreateFormFile(file.name, file.upload.Filename)
		if err != nil {
			return nil, "", fmt.Errorf("form: failed to create file part %s: %w", file.name, err)
		}
		if _, err := part.Write(file.upload.Content); err != nil {
			return nil, "", fmt.Errorf("form: failed to write file part %s: %w", file.name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("form: failed to finalize body: %w", err)
	}

	return buf.Bytes(), w.FormDataContentType(), nil
}
