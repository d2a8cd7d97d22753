package http

import (
	"net/http"

	"github.com/MKhiriev/population-dashboard/internal/utils"
	"github.com/MKhiriev/population-dashboard/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, err, "Server error fetching users")
		return
	}

	if users == nil {
		users = []models.User{}
	}
	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, err := userIDParam(r)
	if err != nil {
		writeError(w, r, err, "Server error updating user.")
		return
	}

	var update models.UserUpdate
	if err = decodeJSON(w, r, &update, false); err != nil {
		writeError(w, r, err, "Server error updating user.")
		return
	}

	user, err := h.services.UserService.UpdateUser(r.Context(), id, update)
	if err != nil {
		writeError(w, r, err, "Server error updating user.")
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, err, "Server error deleting user.")
		return
	}

	id, err := userIDParam(r)
	if err != nil {
		writeError(w, r, err, "Server error deleting user.")
		return
	}

	if err = h.services.UserService.DeleteUser(r.Context(), identity, id); err != nil {
		writeError(w, r, err, "Server error deleting user.")
		return
	}

	utils.WriteMessage(w, "User deleted successfully.", http.StatusOK)
}

func (h *Handler) makeAdmin(w http.ResponseWriter, r *http.Request) {
	id, err := userIDParam(r)
	if err != nil {
		writeError(w, r, err, "Server error promoting user.")
		return
	}

	promoted, err := h.services.UserService.PromoteToAdmin(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "Server error promoting user.")
		return
	}

	utils.WriteJSON(w, promoted, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, err, "Server error changing password.")
		return
	}

	var req models.ChangePasswordRequest
	if err = decodeJSON(w, r, &req, false); err != nil {
		writeError(w, r, err, "Server error changing password.")
		return
	}

	if err = h.services.UserService.ChangePassword(r.Context(), identity, req); err != nil {
		writeError(w, r, err, "Server error changing password.")
		return
	}

	utils.WriteMessage(w, "Password updated successfully.", http.StatusOK)
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, err, "Server error fetching profile.")
		return
	}

	user, err := h.services.UserService.GetProfile(r.Context(), identity)
	if err != nil {
		writeError(w, r, err, "Server error fetching profile.")
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, err, "Server error updating profile.")
		return
	}

	var update models.UserUpdate
	if err = decodeJSON(w, r, &update, false); err != nil {
		writeError(w, r, err, "Server error updating profile.")
		return
	}

	user, err := h.services.UserService.UpdateProfile(r.Context(), identity, update)
	if err != nil {
		writeError(w, r, err, "Server error updating profile.")
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) deleteProfile(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, err, "Server error deleting profile.")
		return
	}

	if err = h.services.UserService.DeleteProfile(r.Context(), identity); err != nil {
		writeError(w, r, err, "Server error deleting profile.")
		return
	}

	utils.WriteMessage(w, "Account deleted successfully.", http.StatusOK)
}
