package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/MKhiriev/nft-creator/internal/logger"
	"github.com/MKhiriev/nft-creator/internal/store"
)

const (
	fieldImage   = "image"
	fieldName    = "name"
	fieldAddress = "address"

	// maxFieldSize bounds a single text field of the mint form.
	maxFieldSize = 64 << 10
)

// mintForm is a parsed mint request. The image, when present, lives in a
// temporary file owned by the request and must be released with remove.
type mintForm struct {
	fields map[string][]string
	image  *store.TempFile
}

// value returns the first value submitted for name.
func (f *mintForm) value(name string) string {
	if values := f.fields[name]; len(values) > 0 {
		return values[0]
	}
	return ""
}

func (f *mintForm) remove(log *logger.Logger) {
	if f.image == nil {
		return
	}
	if err := f.image.Remove(); err != nil {
		log.Err(err).Str("path", f.image.Path()).Msg("failed to remove uploaded image")
	}
}

// parseMintForm streams the multipart body of r. The first file part named
// "image" is spooled to the upload storage, further file parts are drained,
// and text parts are collected. On error nothing is left on disk.
func (h *Handler) parseMintForm(w http.ResponseWriter, r *http.Request) (*mintForm, error) {
	if h.uploads == nil {
		return nil, ErrNoUploadStorage
	}
	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}

	reader, err := r.MultipartReader()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMultipart, err)
	}

	log := logger.FromRequest(r)
	form := &mintForm{fields: make(map[string][]string)}

	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			form.remove(log)
			return nil, fmt.Errorf("%w: %w", ErrReadingPart, err)
		}

		err = h.readPart(r.Context(), form, part)
		part.Close()
		if err != nil {
			form.remove(log)
			return nil, err
		}
	}

	return form, nil
}

func (h *Handler) readPart(ctx context.Context, form *mintForm, part *multipart.Part) error {
	name := part.FormName()

	if part.FileName() == "" {
		value, err := io.ReadAll(io.LimitReader(part, maxFieldSize+1))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrReadingPart, err)
		}
		if len(value) > maxFieldSize {
			return fmt.Errorf("%w: field %q exceeds %d bytes", ErrReadingPart, name, maxFieldSize)
		}
		form.fields[name] = append(form.fields[name], string(value))
		return nil
	}

	if name != fieldImage || form.image != nil {
		if _, err := io.Copy(io.Discard, part); err != nil {
			return fmt.Errorf("%w: %w", ErrReadingPart, err)
		}
		return nil
	}

	file, err := h.uploads.Save(ctx, part)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSavingImage, err)
	}

	// an empty upload is the same as no upload
	if file.Size() == 0 {
		return file.Remove()
	}

	form.image = file
	return nil
}
