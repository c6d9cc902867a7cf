package server

import (
	"errors"
	"net/http"

	"lumiere/internal/storage"
)

// uploadFromForm pushes an optional file field to the object store and
// returns its public URL. A request without that file (or without a
// multipart body at all) is not an error; uploaded reports whether anything
// was stored.
func (s *Service) uploadFromForm(r *http.Request, field, bucket, prefix string) (url string, uploaded bool, err error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return "", false, nil
		}
		return "", false, err
	}
	defer file.Close()

	if header.Size == 0 {
		return "", false, nil
	}

	objectName := storage.ObjectName(prefix, header.Filename)
	contentType := header.Header.Get("Content-Type")

	url, err = s.media.Upload(r.Context(), bucket, objectName, file, contentType)
	if err != nil {
		return "", false, err
	}

	return url, true, nil
}
