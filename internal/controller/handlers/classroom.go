package handlers

import (
	"net/http"
)

// HandleListClassrooms отдаёт все кабинеты школы
func (h *Handlers) HandleListClassrooms(w http.ResponseWriter, r *http.Request) {
	schoolID, err := urlInt64(r, "schoolID")
	if err != nil {
		writeBadRequest(w, "bad_school_id", err.Error())
		return
	}

	classrooms, err := h.classroomService.ListClassrooms(r.Context(), schoolID)
	if err != nil {
		writeError(h.logger, w, err)
		return
	}

	out := make([]ClassroomResponse, 0, len(classrooms))
	for _, classroom := range classrooms {
		out = append(out, newClassroomResponse(classroom))
	}
	writeJSON(w, http.StatusOK, out)
}

// HandleCreateClassroom создаёт кабинет школы
func (h *Handlers) HandleCreateClassroom(w http.ResponseWriter, r *http.Request) {
	schoolID, err := urlInt64(r, "schoolID")
	if err != nil {
		writeBadRequest(w, "bad_school_id", err.Error())
		return
	}

	var req ClassroomRequest
	if !h.decode(w, r, &req) {
		return
	}

	classroom, err := h.classroomService.CreateClassroom(r.Context(), schoolID, req.Name)
	if err != nil {
		writeError(h.logger, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, newClassroomResponse(*classroom))
}

// HandleDeleteClassroom удаляет кабинет; отсутствие кабинета тоже 204
func (h *Handlers) HandleDeleteClassroom(w http.ResponseWriter, r *http.Request) {
	schoolID, err := urlInt64(r, "schoolID")
	if err != nil {
		writeBadRequest(w, "bad_school_id", err.Error())
		return
	}

	classroomID, err := urlInt64(r, "classroomID")
	if err != nil {
		writeBadRequest(w, "bad_classroom_id", err.Error())
		return
	}

	if err := h.classroomService.DeleteClassroom(r.Context(), schoolID, classroomID); err != nil {
		writeError(h.logger, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
