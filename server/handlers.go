package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/pagelift/pagelift"
	"github.com/pagelift/pagelift/ocr"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleOCR(w http.ResponseWriter, r *http.Request) {
	path, err := s.receiveUpload(w, r, "image")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	defer os.Remove(path)

	text, warnings, err := s.converter(r.FormValue("lang"), path).Text()
	if err != nil {
		s.writeConvertError(w, "OCR", err)
		return
	}
	s.logWarnings(warnings)

	writeJSON(w, http.StatusOK, map[string]string{"text": text})
}

func (s *Server) handleBuildDocx(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.uploadLimit())
	if err := r.ParseForm(); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid form: %v", err))
		return
	}
	text := r.FormValue("text")
	if text == "" {
		s.writeError(w, http.StatusBadRequest, "text form field is required")
		return
	}

	data, _, err := pagelift.FromText(text).
		WithLayout(s.config.LayoutEngineConfig()).
		DocxBytes()
	if err != nil {
		s.writeConvertError(w, "DOCX", err)
		return
	}
	writeDocx(w, data)
}

func (s *Server) handleImageToDocx(w http.ResponseWriter, r *http.Request) {
	path, err := s.receiveUpload(w, r, "image")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	defer os.Remove(path)

	data, warnings, err := s.converter(r.FormValue("lang"), path).DocxBytes()
	if err != nil {
		s.writeConvertError(w, "IMAGE->DOCX", err)
		return
	}
	s.logWarnings(warnings)

	writeDocx(w, data)
}

func (s *Server) handleImagesToDocx(w http.ResponseWriter, r *http.Request) {
	if err := s.parseMultipart(w, r); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	headers := r.MultipartForm.File["images"]
	if len(headers) == 0 {
		s.writeError(w, http.StatusBadRequest, "images form field is required")
		return
	}

	paths := make([]string, 0, len(headers))
	defer func() {
		for _, p := range paths {
			os.Remove(p)
		}
	}()
	for _, fh := range headers {
		path, err := s.saveUpload(fh)
		if err != nil {
			s.writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to store upload: %v", err))
			return
		}
		paths = append(paths, path)
	}

	data, warnings, err := s.converter(r.FormValue("lang"), paths...).DocxBytes()
	if err != nil {
		s.writeConvertError(w, "IMAGES->DOCX", err)
		return
	}
	s.logWarnings(warnings)

	writeDocx(w, data)
}

// converter builds a configured conversion chain for the given images.
func (s *Server) converter(lang string, paths ...string) *pagelift.Converter {
	if lang == "" {
		lang = s.config.OCR.Languages
	}
	conv := pagelift.Open(paths...).
		Language(lang).
		WithLayout(s.config.LayoutEngineConfig())
	if s.config.Preprocess.FastMode {
		conv = conv.FastMode()
	}
	if s.recognizer != nil {
		conv = conv.WithRecognizer(s.recognizer)
	}
	return conv
}

// uploadLimit is the request body cap in bytes. Every endpoint that
// reads a body applies it, form-encoded and multipart alike.
func (s *Server) uploadLimit() int64 {
	return int64(s.config.Server.MaxUploadMB) << 20
}

func (s *Server) parseMultipart(w http.ResponseWriter, r *http.Request) error {
	limit := s.uploadLimit()
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	if err := r.ParseMultipartForm(limit); err != nil {
		return fmt.Errorf("invalid multipart form: %w", err)
	}
	return nil
}

// receiveUpload parses the form and stores the named file field in the
// upload directory. The caller removes the returned file.
func (s *Server) receiveUpload(w http.ResponseWriter, r *http.Request, field string) (string, error) {
	if err := s.parseMultipart(w, r); err != nil {
		return "", err
	}
	headers := r.MultipartForm.File[field]
	if len(headers) == 0 {
		return "", fmt.Errorf("%s form field is required", field)
	}
	return s.saveUpload(headers[0])
}

// saveUpload writes an uploaded file under a random name so concurrent
// uploads never collide.
func (s *Server) saveUpload(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	ext := filepath.Ext(fh.Filename)
	if ext == "" {
		ext = ".jpg"
	}
	path := filepath.Join(s.config.Server.UploadDir, "img_"+uuid.NewString()+ext)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to store upload: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to store upload: %w", err)
	}
	return path, nil
}

func (s *Server) logWarnings(warnings []pagelift.Warning) {
	if len(warnings) == 0 {
		return
	}
	s.logger.Warn("conversion finished with warnings",
		"count", len(warnings),
		"detail", pagelift.FormatWarnings(warnings),
	)
}

// writeConvertError maps a conversion failure to a response. A build
// without OCR support reports service unavailability rather than an
// internal error.
func (s *Server) writeConvertError(w http.ResponseWriter, stage string, err error) {
	if errors.Is(err, ocr.ErrOCRNotEnabled) {
		s.writeError(w, http.StatusServiceUnavailable, fmt.Sprintf("%s error: %v", stage, err))
		return
	}
	s.writeError(w, http.StatusInternalServerError, fmt.Sprintf("%s error: %v", stage, err))
}

func (s *Server) writeError(w http.ResponseWriter, code int, detail string) {
	s.logger.Error("request failed", "status", code, "detail", detail)
	writeJSON(w, code, map[string]string{"detail": detail})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.Encode(v)
}

func writeDocx(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", docxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="result.docx"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
