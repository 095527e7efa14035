package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"chorejar/internal/auth"
	"chorejar/internal/model"
	"chorejar/internal/photo"
	"chorejar/internal/store"
)

type TaskHandler struct {
	taskStore  *store.TaskStore
	choreStore *store.ChoreStore
	kidStore   *store.KidStore
	photos     *photo.Store
	logger     *slog.Logger
}

func NewTaskHandler(ts *store.TaskStore, cs *store.ChoreStore, ks *store.KidStore, photos *photo.Store, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{
		taskStore:  ts,
		choreStore: cs,
		kidStore:   ks,
		photos:     photos,
		logger:     logger,
	}
}

type startTaskRequest struct {
	ChoreID int64 `json:"chore_id"`
	KidID   int64 `json:"kid_id"`
}

// Start begins a timed task for a kid. The chore's payment is frozen onto
// the task at this moment, so later edits to the chore don't change what the
// kid earns. Kid-facing, unauthenticated.
func (h *TaskHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req startTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	kid, err := h.kidStore.GetByID(req.KidID)
	if err != nil {
		h.logger.Error("get kid", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to start task")
		return
	}
	if kid == nil {
		writeError(w, http.StatusNotFound, "kid not found")
		return
	}

	chore, err := h.choreStore.GetByID(req.ChoreID)
	if err != nil {
		h.logger.Error("get chore", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to start task")
		return
	}
	if chore == nil {
		writeError(w, http.StatusNotFound, "chore not found")
		return
	}

	assigned, err := h.choreStore.IsAssigned(chore.ID, kid.ID)
	if err != nil {
		h.logger.Error("check assignment", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to start task")
		return
	}
	if !assigned {
		writeError(w, http.StatusBadRequest, "chore is not assigned to this kid")
		return
	}

	task, err := h.taskStore.Start(chore, kid.ID, timeNow())
	if err != nil {
		if errors.Is(err, store.ErrTaskInProgress) {
			writeError(w, http.StatusConflict, "kid already has a task in progress")
			return
		}
		h.logger.Error("start task", "chore_id", chore.ID, "kid_id", kid.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to start task")
		return
	}

	writeJSON(w, http.StatusCreated, task)
}

type completeTaskRequest struct {
	Photo string `json:"photo"`
}

// Complete finishes an in-progress task and moves it to pending approval.
// An optional photo arrives as a base64 data-URL; upload failures are logged
// and the task completes without a photo. Kid-facing, unauthenticated.
func (h *TaskHandler) Complete(w http.ResponseWriter, r *http.Request) {
	taskID, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	var req completeTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	task, err := h.taskStore.GetByID(taskID)
	if err != nil {
		h.logger.Error("get task", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to complete task")
		return
	}
	if task == nil {
		writeError(w, http.StatusNotFound, "task not found")
		return
	}
	if task.Status != model.TaskInProgress {
		writeError(w, http.StatusBadRequest, "task is not in progress")
		return
	}

	now := timeNow()
	var photoURL *string
	if req.Photo != "" {
		if url := h.uploadPhoto(r, task.ID, req.Photo, now); url != "" {
			photoURL = &url
		}
	}

	completed, err := h.taskStore.Complete(task.ID, photoURL, now)
	if err != nil {
		h.logger.Error("complete task", "task_id", task.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to complete task")
		return
	}

	writeJSON(w, http.StatusOK, completed)
}

func (h *TaskHandler) uploadPhoto(r *http.Request, taskID int64, dataURL string, now time.Time) string {
	data, err := photo.DecodeDataURL(dataURL)
	if err != nil {
		h.logger.Warn("decode task photo", "task_id", taskID, "error", err)
		return ""
	}
	if !h.photos.Enabled() {
		h.logger.Warn("photo storage disabled, dropping task photo", "task_id", taskID)
		return ""
	}

	key := photo.TaskKey(taskID, now)
	url, err := h.photos.Upload(r.Context(), key, data)
	if err != nil {
		h.logger.Error("upload task photo", "task_id", taskID, "error", err)
		return ""
	}
	return url
}

// Approve marks a pending task approved so it counts toward earnings.
func (h *TaskHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.taskStore.Approve)
}

// Reject marks a pending task rejected. The task stays on record but earns
// nothing and never blocks the chore again.
func (h *TaskHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.taskStore.Reject)
}

func (h *TaskHandler) review(w http.ResponseWriter, r *http.Request, transition func(int64) (*model.Task, error)) {
	userID, _ := auth.UserID(r.Context())

	taskID, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	task, err := h.taskStore.GetByID(taskID)
	if err != nil {
		h.logger.Error("get task", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to review task")
		return
	}
	if task == nil {
		writeError(w, http.StatusNotFound, "task not found")
		return
	}

	kid, err := h.kidStore.GetByID(task.KidID)
	if err != nil {
		h.logger.Error("get kid", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to review task")
		return
	}
	if kid == nil || kid.UserID != userID {
		writeError(w, http.StatusNotFound, "task not found")
		return
	}

	reviewed, err := transition(taskID)
	if err != nil {
		if errors.Is(err, store.ErrNotPending) {
			writeError(w, http.StatusConflict, "task is not pending approval")
			return
		}
		h.logger.Error("transition task", "task_id", taskID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to review task")
		return
	}

	writeJSON(w, http.StatusOK, reviewed)
}

// ListByKid returns all of a kid's tasks, newest first. Kid-facing.
func (h *TaskHandler) ListByKid(w http.ResponseWriter, r *http.Request) {
	kidID, ok := h.kidIDFromPath(w, r)
	if !ok {
		return
	}

	tasks, err := h.taskStore.ListByKid(kidID)
	if err != nil {
		h.logger.Error("list tasks", "kid_id", kidID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list tasks")
		return
	}

	writeJSON(w, http.StatusOK, tasks)
}

// CompletedByKid returns the kid's completed tasks, excluding rejected ones.
func (h *TaskHandler) CompletedByKid(w http.ResponseWriter, r *http.Request) {
	kidID, ok := h.kidIDFromPath(w, r)
	if !ok {
		return
	}

	tasks, err := h.taskStore.ListCompletedByKid(kidID)
	if err != nil {
		h.logger.Error("list completed tasks", "kid_id", kidID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list tasks")
		return
	}

	writeJSON(w, http.StatusOK, tasks)
}

func (h *TaskHandler) kidIDFromPath(w http.ResponseWriter, r *http.Request) (int64, bool) {
	kidID, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid kid id")
		return 0, false
	}

	kid, err := h.kidStore.GetByID(kidID)
	if err != nil {
		h.logger.Error("get kid", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load kid")
		return 0, false
	}
	if kid == nil {
		writeError(w, http.StatusNotFound, "kid not found")
		return 0, false
	}

	return kidID, true
}
