package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/chartbase/backend/internal/domain"
	"github.com/chartbase/backend/internal/service"
	"github.com/chartbase/backend/internal/transport/http/middleware"
	"github.com/chartbase/backend/pkg/validator"
)

type AccountHandler struct {
	accountService  *service.AccountService
	maxProfileBytes int64
	maxBannerBytes  int64
}

func NewAccountHandler(accountService *service.AccountService, maxProfileBytes, maxBannerBytes int64) *AccountHandler {
	return &AccountHandler{
		accountService:  accountService,
		maxProfileBytes: maxProfileBytes,
		maxBannerBytes:  maxBannerBytes,
	}
}

// DeleteAccount removes the account's stored objects and its row. Routed
// behind the admin shared-secret middleware.
func (h *AccountHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := pathAccountID(w, r)
	if !ok {
		return
	}

	if err := h.accountService.DeleteAccount(r.Context(), id); err != nil {
		log.Printf("ERROR delete account %s: %v", id, err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"result": "success"})
}

func (h *AccountHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := pathAccountID(w, r)
	if !ok {
		return
	}

	profile, err := h.accountService.GetProfile(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Account not found")
		} else {
			log.Printf("ERROR get profile %s: %v", id, err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func (h *AccountHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	id, ok := pathAccountID(w, r)
	if !ok {
		return
	}

	stats, err := h.accountService.GetStats(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrStatsNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Account stats not found")
		} else {
			log.Printf("ERROR get stats %s: %v", id, err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func (h *AccountHandler) UpdateDescription(w http.ResponseWriter, r *http.Request) {
	id, ok := h.authorizeSelf(w, r, "description")
	if !ok {
		return
	}

	var body struct {
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateDescription(body.Description); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	if err := h.accountService.UpdateDescription(r.Context(), id, body.Description); err != nil {
		log.Printf("ERROR update description %s: %v", id, err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"result": "success"})
}

func (h *AccountHandler) DeleteProfileImage(w http.ResponseWriter, r *http.Request) {
	h.deleteImage(w, r, domain.SlotProfile)
}

func (h *AccountHandler) DeleteBannerImage(w http.ResponseWriter, r *http.Request) {
	h.deleteImage(w, r, domain.SlotBanner)
}

func (h *AccountHandler) UploadProfileImage(w http.ResponseWriter, r *http.Request) {
	h.uploadImage(w, r, domain.SlotProfile)
}

func (h *AccountHandler) UploadBannerImage(w http.ResponseWriter, r *http.Request) {
	h.uploadImage(w, r, domain.SlotBanner)
}

func (h *AccountHandler) deleteImage(w http.ResponseWriter, r *http.Request, slot domain.Slot) {
	id, ok := h.authorizeSelf(w, r, slot.String())
	if !ok {
		return
	}

	if err := h.accountService.DeleteImage(r.Context(), id, slot); err != nil {
		log.Printf("ERROR delete %s %s: %v", slot, id, err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"result": "success"})
}

func (h *AccountHandler) uploadImage(w http.ResponseWriter, r *http.Request, slot domain.Slot) {
	id, ok := h.authorizeSelf(w, r, slot.String())
	if !ok {
		return
	}

	limit := h.maxProfileBytes
	if slot == domain.SlotBanner {
		limit = h.maxBannerBytes
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_UPLOAD", "Missing multipart file field")
		return
	}
	defer file.Close()

	// The ceiling check happens on the raw bytes, before any decode work.
	data, err := io.ReadAll(io.LimitReader(file, limit+1))
	if err != nil {
		log.Printf("ERROR read upload %s %s: %v", slot, id, err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}
	if int64(len(data)) > limit {
		writeError(w, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", "File size exceeds limit")
		return
	}

	hash, err := h.accountService.UploadImage(r.Context(), id, slot, data)
	if err != nil {
		if errors.Is(err, service.ErrInvalidImage) {
			writeError(w, http.StatusBadRequest, "INVALID_IMAGE", err.Error())
		} else {
			log.Printf("ERROR upload %s %s: %v", slot, id, err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"result": "success", "hash": hash})
}

// pathAccountID validates the path account id before it reaches a query
// or a storage prefix.
func pathAccountID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.PathValue("id")
	if errs := validator.ValidateAccountID(id); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return "", false
	}
	return id, true
}

// authorizeSelf enforces the self-only rule: the session identity must
// match the path account id.
func (h *AccountHandler) authorizeSelf(w http.ResponseWriter, r *http.Request, noun string) (string, bool) {
	id := r.PathValue("id")
	if middleware.GetSessionID(r.Context()) != id {
		writeError(w, http.StatusForbidden, "FORBIDDEN", "Cannot modify another user's "+noun)
		return "", false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}

func writeValidationErrors(w http.ResponseWriter, errs validator.ValidationErrors) {
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"error": map[string]any{
			"code":   "VALIDATION_ERROR",
			"fields": errs,
		},
	})
}
