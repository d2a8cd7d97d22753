package http

import (
	"net/http"

	"github.com/MKhiriev/population-dashboard/internal/logger"
	"github.com/MKhiriev/population-dashboard/internal/utils"
	"github.com/MKhiriev/population-dashboard/models"
)

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		writeError(w, r, err, "Server error during signup.")
		return
	}

	resp, err := h.services.AuthService.SignUp(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "Server error during signup.")
		return
	}

	logger.FromRequest(r).Info().
		Int64("user_id", resp.User.ID).
		Str("role", string(resp.User.Role)).
		Msg("user signed up")

	utils.WriteJSON(w, resp, http.StatusCreated)
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		writeError(w, r, err, "Server error during signin.")
		return
	}

	resp, err := h.services.AuthService.SignIn(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "Server error during signin.")
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

// sync answers 201 when the row was created by this call and 200 otherwise.
func (h *Handler) sync(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, err, "Server error during sync.")
		return
	}

	var req models.SyncRequest
	if err = decodeJSON(w, r, &req, true); err != nil {
		writeError(w, r, err, "Server error during sync.")
		return
	}

	resp, err := h.services.AuthService.Sync(r.Context(), identity, req)
	if err != nil {
		writeError(w, r, err, "Server error during sync.")
		return
	}

	status := http.StatusOK
	if resp.Created {
		status = http.StatusCreated
	}
	utils.WriteJSON(w, resp, status)
}

func (h *Handler) deactivateAccount(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, err, "Server error during deactivation.")
		return
	}

	resp, err := h.services.AuthService.DeactivateAccount(r.Context(), identity)
	if err != nil {
		writeError(w, r, err, "Server error during deactivation.")
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) deactivateLegacy(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, err, "Server error during deactivation.")
		return
	}

	resp, err := h.services.AuthService.DeactivateLegacy(r.Context(), identity)
	if err != nil {
		writeError(w, r, err, "Server error during deactivation.")
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
