package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"chorejar/internal/auth"
	"chorejar/internal/availability"
	"chorejar/internal/model"
	"chorejar/internal/money"
	"chorejar/internal/store"
)

type ChoreHandler struct {
	choreStore *store.ChoreStore
	kidStore   *store.KidStore
	userStore  *store.UserStore
	resolver   *availability.Resolver
	logger     *slog.Logger
}

func NewChoreHandler(cs *store.ChoreStore, ks *store.KidStore, us *store.UserStore, resolver *availability.Resolver, logger *slog.Logger) *ChoreHandler {
	return &ChoreHandler{
		choreStore: cs,
		kidStore:   ks,
		userStore:  us,
		resolver:   resolver,
		logger:     logger,
	}
}

type choreRequest struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	PaymentAmount string `json:"payment_amount"`
	Frequency     string `json:"frequency"`
	ChoreType     string `json:"chore_type"`
}

func (req *choreRequest) validate() (model.Frequency, model.ChoreType, error) {
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return "", "", errors.New("title is required")
	}
	if req.Frequency == "" {
		req.Frequency = string(model.FrequencyDaily)
	}
	freq, err := model.ParseFrequency(req.Frequency)
	if err != nil {
		return "", "", err
	}
	if req.ChoreType == "" {
		req.ChoreType = string(model.ChoreIndividual)
	}
	ctype, err := model.ParseChoreType(req.ChoreType)
	if err != nil {
		return "", "", err
	}
	return freq, ctype, nil
}

func (h *ChoreHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	var req choreRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	freq, ctype, err := req.validate()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	payment, err := money.ParseAmount(req.PaymentAmount)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid payment amount")
		return
	}

	chore, err := h.choreStore.Create(userID, req.Title, req.Description, payment, freq, ctype, false)
	if err != nil {
		h.logger.Error("create chore", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create chore")
		return
	}

	writeJSON(w, http.StatusCreated, chore)
}

func (h *ChoreHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	chores, err := h.choreStore.ListByUser(userID)
	if err != nil {
		h.logger.Error("list chores", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list chores")
		return
	}

	writeJSON(w, http.StatusOK, chores)
}

func (h *ChoreHandler) Get(w http.ResponseWriter, r *http.Request) {
	chore, ok := h.ownedChore(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, chore)
}

func (h *ChoreHandler) Update(w http.ResponseWriter, r *http.Request) {
	chore, ok := h.ownedChore(w, r)
	if !ok {
		return
	}

	var req choreRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	freq, ctype, err := req.validate()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	payment, err := money.ParseAmount(req.PaymentAmount)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid payment amount")
		return
	}

	updated, err := h.choreStore.Update(chore.ID, req.Title, req.Description, payment, freq, ctype)
	if err != nil {
		h.logger.Error("update chore", "chore_id", chore.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update chore")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *ChoreHandler) Delete(w http.ResponseWriter, r *http.Request) {
	chore, ok := h.ownedChore(w, r)
	if !ok {
		return
	}

	if err := h.choreStore.Delete(chore.ID); err != nil {
		h.logger.Error("delete chore", "chore_id", chore.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete chore")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

type assignRequest struct {
	KidID       int64 `json:"kid_id"`
	AssignToAll bool  `json:"assign_to_all"`
}

// Assign links a chore to one kid, or to every kid in the family when
// assign_to_all is set. Repeat assignments are no-ops.
func (h *ChoreHandler) Assign(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	chore, ok := h.ownedChore(w, r)
	if !ok {
		return
	}

	var req assignRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if req.AssignToAll {
		if err := h.choreStore.AssignToAll(chore.ID, userID); err != nil {
			h.logger.Error("assign chore to all", "chore_id", chore.ID, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to assign chore")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "assigned"})
		return
	}

	kid, err := h.kidStore.GetByID(req.KidID)
	if err != nil {
		h.logger.Error("get kid", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to assign chore")
		return
	}
	if kid == nil || kid.UserID != userID {
		writeError(w, http.StatusBadRequest, "kid not found")
		return
	}

	assignment, err := h.choreStore.Assign(chore.ID, kid.ID)
	if err != nil {
		h.logger.Error("assign chore", "chore_id", chore.ID, "kid_id", kid.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to assign chore")
		return
	}

	writeJSON(w, http.StatusCreated, assignment)
}

func (h *ChoreHandler) RemoveAssignment(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	assignmentID, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid assignment id")
		return
	}

	assignment, err := h.choreStore.GetAssignmentByID(assignmentID)
	if err != nil {
		h.logger.Error("get assignment", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to remove assignment")
		return
	}
	if assignment == nil {
		writeError(w, http.StatusNotFound, "assignment not found")
		return
	}

	chore, err := h.choreStore.GetByID(assignment.ChoreID)
	if err != nil {
		h.logger.Error("get chore", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to remove assignment")
		return
	}
	if chore == nil || chore.UserID != userID {
		writeError(w, http.StatusNotFound, "assignment not found")
		return
	}

	if err := h.choreStore.RemoveAssignment(assignmentID); err != nil {
		h.logger.Error("remove assignment", "assignment_id", assignmentID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to remove assignment")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}

// KidChores lists the chores assigned to a kid. Kid-facing, unauthenticated.
func (h *ChoreHandler) KidChores(w http.ResponseWriter, r *http.Request) {
	kid, ok := h.kidFromPath(w, r)
	if !ok {
		return
	}

	chores, err := h.choreStore.ListAssignedToKid(kid.ID)
	if err != nil {
		h.logger.Error("list assigned chores", "kid_id", kid.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list chores")
		return
	}

	writeJSON(w, http.StatusOK, chores)
}

// AvailableChores lists the kid's assigned chores with availability resolved
// against the family's local day. Kid-facing, unauthenticated.
func (h *ChoreHandler) AvailableChores(w http.ResponseWriter, r *http.Request) {
	kid, ok := h.kidFromPath(w, r)
	if !ok {
		return
	}

	owner, err := h.userStore.GetByID(kid.UserID)
	if err != nil || owner == nil {
		h.logger.Error("get kid owner", "kid_id", kid.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to resolve chores")
		return
	}

	chores, err := h.resolver.ForKid(kid.ID, owner.Timezone, timeNow())
	if err != nil {
		h.logger.Error("resolve available chores", "kid_id", kid.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to resolve chores")
		return
	}

	writeJSON(w, http.StatusOK, chores)
}

func (h *ChoreHandler) ownedChore(w http.ResponseWriter, r *http.Request) (*model.Chore, bool) {
	userID, _ := auth.UserID(r.Context())

	choreID, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid chore id")
		return nil, false
	}

	chore, err := h.choreStore.GetByID(choreID)
	if err != nil {
		h.logger.Error("get chore", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load chore")
		return nil, false
	}
	if chore == nil || chore.UserID != userID {
		writeError(w, http.StatusNotFound, "chore not found")
		return nil, false
	}

	return chore, true
}

func (h *ChoreHandler) kidFromPath(w http.ResponseWriter, r *http.Request) (*model.Kid, bool) {
	kidID, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid kid id")
		return nil, false
	}

	kid, err := h.kidStore.GetByID(kidID)
	if err != nil {
		h.logger.Error("get kid", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load kid")
		return nil, false
	}
	if kid == nil {
		writeError(w, http.StatusNotFound, "kid not found")
		return nil, false
	}

	return kid, true
}
