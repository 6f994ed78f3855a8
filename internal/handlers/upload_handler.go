package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"path"
	"path/filepath"
	"strings"
	"time"

	"mistriBack/utils"
)

const maxProfileImageSize = 5 * 1024 * 1024

var (
	errNotAnImage   = errors.New("please select an image file")
	errImageTooBig  = errors.New("file size must be less than 5MB")
	errMissingImage = errors.New("image file is required")
)

type UploadHandler struct{}

// UploadProfileImage stores a profile picture under a key derived from the
// owning account and returns its public URL. Only image/* up to 5MB.
func (h *UploadHandler) UploadProfileImage(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value("user_id").(string)
	if userID == "" {
		http.Error(w, "Missing user identity", http.StatusUnauthorized)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxProfileImageSize+4096)
	if err := r.ParseMultipartForm(maxProfileImageSize); err != nil {
		http.Error(w, errImageTooBig.Error(), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, errMissingImage.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if err := validateProfileImage(contentType, header.Size); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		log.Printf("UploadProfileImage read error: %v", err)
		http.Error(w, "Failed to read image", http.StatusInternalServerError)
		return
	}

	fileName := fmt.Sprintf("%s-%d%s", userID, time.Now().UnixNano(), strings.ToLower(filepath.Ext(header.Filename)))
	url, err := utils.UploadFileToS3(data, fileName, "profile-pictures", contentType)
	if err != nil {
		log.Printf("UploadProfileImage error: %v", err)
		http.Error(w, "Failed to upload image", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"url": url})
}

func (h *UploadHandler) DeleteProfileImage(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value("user_id").(string)
	if userID == "" {
		http.Error(w, "Missing user identity", http.StatusUnauthorized)
		return
	}

	key := r.URL.Query().Get("path")
	if key == "" {
		http.Error(w, "Missing path", http.StatusBadRequest)
		return
	}
	if !ownsProfileImage(userID, key) {
		http.Error(w, "Forbidden: not the image owner", http.StatusForbidden)
		return
	}
	if err := utils.DeleteFileFromS3(key); err != nil {
		log.Printf("DeleteProfileImage error: %v", err)
		http.Error(w, "Failed to delete image", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// ownsProfileImage checks that the object key names a file uploaded by this
// account; upload keys are always "<userID>-<timestamp>.<ext>" in a folder.
func ownsProfileImage(userID, key string) bool {
	if userID == "" {
		return false
	}
	return strings.HasPrefix(path.Base(key), userID+"-")
}

func validateProfileImage(contentType string, size int64) error {
	if !strings.HasPrefix(contentType, "image/") {
		return errNotAnImage
	}
	if size > maxProfileImageSize {
		return errImageTooBig
	}
	return nil
}
