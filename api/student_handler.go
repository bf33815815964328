package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/student-showcase/portfolio-backend/database"
	"github.com/student-showcase/portfolio-backend/errs"
	"github.com/student-showcase/portfolio-backend/models"
)

type studentHandler struct {
	responder   Responder
	logger      zerolog.Logger
	studentRepo *database.StudentRepo
}

func newStudentHandler(studentRepo *database.StudentRepo) studentHandler {
	logger := log.With().Str("handlerName", "studentHandler").Logger()

	return studentHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		studentRepo: studentRepo,
	}
}

type studentPayload struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Year  *string `json:"year"`
	Bio   *string `json:"bio"`
}

func (p studentPayload) apply(target *models.Student) {
	if p.Name != nil {
		target.Name = *p.Name
	}
	if p.Email != nil {
		target.Email = *p.Email
	}
	if p.Year != nil {
		target.Year = *p.Year
	}
	if p.Bio != nil {
		target.Bio = *p.Bio
	}
}

// listStudents returns the paginated student collection, or a search result
func (h studentHandler) listStudents() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if term := r.URL.Query().Get("search"); term != "" {
			students, err := h.studentRepo.Search(term)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("search", "students", err))
				return
			}
			h.writeCollection(w, students, int64(len(students)))
			return
		}

		page, perPage := pageParams(r)
		students, total, err := h.studentRepo.FindPage(page, perPage)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "students", err))
			return
		}

		h.writeCollection(w, students, total)
	}
}

func (h studentHandler) writeCollection(w http.ResponseWriter, students []*models.Student, total int64) {
	member := lo.Map(students, func(s *models.Student, _ int) any {
		return newStudentView(s)
	})
	h.responder.WriteJSON(w, Collection{Member: member, TotalItems: total})
}

// getStudent retrieves a student by ID with their projects
func (h studentHandler) getStudent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "studentID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		student, err := h.studentRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "student", err))
			return
		}

		h.responder.WriteJSON(w, newStudentView(student))
	}
}

// createStudent creates a new student (admin only, gated upstream). A
// duplicate email is a conflict and inserts nothing.
func (h studentHandler) createStudent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload studentPayload
		if err := decodeJSON(r, &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var student models.Student
		payload.apply(&student)

		if violations := models.Validate(&student); violations != nil {
			h.responder.WriteError(w, errs.NewValidationError(violations))
			return
		}

		if err := h.studentRepo.Add(&student); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "student", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, newStudentView(&student))
	}
}

// updateStudent applies a partial update to an existing student
func (h studentHandler) updateStudent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "studentID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		student, err := h.studentRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "student", err))
			return
		}

		var payload studentPayload
		if err := decodeJSON(r, &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		payload.apply(student)

		if violations := models.Validate(student); violations != nil {
			h.responder.WriteError(w, errs.NewValidationError(violations))
			return
		}

		if err := h.studentRepo.Update(student); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "student", err))
			return
		}

		h.responder.WriteJSON(w, newStudentView(student))
	}
}

// deleteStudent deletes a student by ID, join rows included
func (h studentHandler) deleteStudent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "studentID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.studentRepo.FindByID(id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "student", err))
			return
		}

		if err := h.studentRepo.Delete(id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "student", err))
			return
		}

		h.responder.WriteNoContent(w)
	}
}
