package api

import (
	"errors"
	"net/http"
)

// ── Request types ───────────────────────────────────────────────────────────

type CompleteResourceRequest struct {
	ResourceTitle string `json:"resource_title" example:"HTML Structure Fundamentals"`
}

func (r *CompleteResourceRequest) Validate() error {
	if r.ResourceTitle == "" {
		return errors.New("resource_title is required")
	}
	return nil
}

// ── Handlers ────────────────────────────────────────────────────────────────

// listCourses returns the catalog with the learner's progress applied.
// @Summary      List courses
// @Tags         Courses
// @Produce      json
// @Param        userID  path     string  true  "User id"
// @Success      200     {array}  course.Course
// @Router       /users/{userID}/courses [get]
func (h *Handler) listCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.progress.Courses(r.Context(), r.PathValue("userID"))
	if h.handleStoreError(w, err, "courses") {
		return
	}
	respondJSON(w, http.StatusOK, courses)
}

// getCourse returns one course with curriculum and unit completion.
// @Summary      Get a course
// @Tags         Courses
// @Produce      json
// @Param        userID    path      string  true  "User id"
// @Param        courseID  path      string  true  "Course id"
// @Success      200       {object}  course.Course
// @Failure      404       {object}  map[string]string
// @Router       /users/{userID}/courses/{courseID} [get]
func (h *Handler) getCourse(w http.ResponseWriter, r *http.Request) {
	c, err := h.progress.Course(r.Context(), r.PathValue("userID"), r.PathValue("courseID"))
	if h.handleStoreError(w, err, "course") {
		return
	}
	respondJSON(w, http.StatusOK, c)
}

// completeUnit marks a unit done and rolls the percentages up.
// @Summary      Complete a unit
// @Description  Marks the unit completed, recomputes the module and course percentages and returns the updated course immediately. The progress rows are written asynchronously; a failed write surfaces as a notification, never an error here.
// @Tags         Courses
// @Produce      json
// @Param        userID    path      string  true  "User id"
// @Param        courseID  path      string  true  "Course id"
// @Param        moduleID  path      string  true  "Module id"
// @Param        unitID    path      string  true  "Unit id"
// @Success      200       {object}  course.Course
// @Failure      404       {object}  map[string]string
// @Router       /users/{userID}/courses/{courseID}/modules/{moduleID}/units/{unitID}/complete [post]
func (h *Handler) completeUnit(w http.ResponseWriter, r *http.Request) {
	c, err := h.progress.CompleteUnit(r.Context(),
		r.PathValue("userID"), r.PathValue("courseID"),
		r.PathValue("moduleID"), r.PathValue("unitID"))
	if h.handleStoreError(w, err, "unit") {
		return
	}
	respondJSON(w, http.StatusOK, c)
}

// listRoadmaps returns the roadmaps with resource completion applied.
// @Summary      List roadmaps
// @Tags         Roadmaps
// @Produce      json
// @Param        userID  path     string  true  "User id"
// @Success      200     {array}  course.Roadmap
// @Router       /users/{userID}/roadmaps [get]
func (h *Handler) listRoadmaps(w http.ResponseWriter, r *http.Request) {
	roadmaps, err := h.progress.Roadmaps(r.Context(), r.PathValue("userID"))
	if h.handleStoreError(w, err, "roadmaps") {
		return
	}
	respondJSON(w, http.StatusOK, roadmaps)
}

// completeResource marks a roadmap resource done and rolls the step and
// roadmap percentages up.
// @Summary      Complete a roadmap resource
// @Tags         Roadmaps
// @Accept       json
// @Produce      json
// @Param        userID     path      string                   true  "User id"
// @Param        roadmapID  path      string                   true  "Roadmap id"
// @Param        stepID     path      string                   true  "Step id"
// @Param        body       body      CompleteResourceRequest  true  "Resource to complete"
// @Success      200        {object}  course.Roadmap
// @Failure      400        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Router       /users/{userID}/roadmaps/{roadmapID}/steps/{stepID}/resources/complete [post]
func (h *Handler) completeResource(w http.ResponseWriter, r *http.Request) {
	var req CompleteResourceRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	roadmap, err := h.progress.CompleteResource(r.Context(),
		r.PathValue("userID"), r.PathValue("roadmapID"),
		r.PathValue("stepID"), req.ResourceTitle)
	if h.handleStoreError(w, err, "resource") {
		return
	}
	respondJSON(w, http.StatusOK, roadmap)
}
