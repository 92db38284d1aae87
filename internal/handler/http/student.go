// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-student-registry/internal/logger"
	"github.com/MKhiriev/go-student-registry/internal/utils"
	"github.com/MKhiriev/go-student-registry/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listStudents(w http.ResponseWriter, r *http.Request) {
	students, err := h.services.StudentService.ListStudents(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if students == nil {
		students = []models.Student{}
	}

	h.writeJSON(w, r, students, http.StatusOK)
}

func (h *Handler) createStudent(w http.ResponseWriter, r *http.Request) {
	request, err := decodeStudentRequest(r)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.createStudent").Msg("invalid JSON was passed")
		h.writeError(w, r, errJSONBodyRequired)
		return
	}

	student, err := h.services.StudentService.CreateStudent(r.Context(), request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, student, http.StatusCreated)
}

func (h *Handler) getStudent(w http.ResponseWriter, r *http.Request) {
	student, err := h.services.StudentService.GetStudent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, student, http.StatusOK)
}

func (h *Handler) updateStudent(w http.ResponseWriter, r *http.Request) {
	request, err := decodeStudentRequest(r)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.updateStudent").Msg("invalid JSON was passed")
		h.writeError(w, r, errJSONBodyRequired)
		return
	}

	student, err := h.services.StudentService.UpdateStudent(r.Context(), chi.URLParam(r, "id"), request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, student, http.StatusOK)
}

func (h *Handler) deleteStudent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.services.StudentService.DeleteStudent(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}

	userID, _ := utils.CurrentUserID(r.Context())
	logger.FromRequest(r).Info().Str("student_id", id).Str("deleted_by", userID).Msg("student deleted")

	w.WriteHeader(http.StatusNoContent)
}

// findStudentByNationalID answers 404 when no record carries the national
// ID; the lookup itself treats absence as a normal result.
func (h *Handler) findStudentByNationalID(w http.ResponseWriter, r *http.Request) {
	nationalID := chi.URLParam(r, "dni")

	student, found, err := h.services.StudentService.FindByNationalID(r.Context(), nationalID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if !found {
		h.writeError(w, r, models.NewNationalIDNotFoundError(models.NormalizeNationalID(nationalID)))
		return
	}

	h.writeJSON(w, r, student, http.StatusOK)
}

// decodeStudentRequest reads a create or update body. A missing body, an
// empty one and anything that is not a JSON object are all rejected.
func decodeStudentRequest(r *http.Request) (models.StudentRequest, error) {
	var request models.StudentRequest
	if r.Body == nil {
		return request, errJSONBodyRequired
	}

	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return request, err
	}
	if len(raw) == 0 || raw[0] != '{' {
		return request, errJSONBodyRequired
	}
	if err := json.Unmarshal(raw, &request); err != nil {
		return request, err
	}

	return request, nil
}
