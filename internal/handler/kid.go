package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"chorejar/internal/auth"
	"chorejar/internal/model"
	"chorejar/internal/money"
	"chorejar/internal/store"
)

const defaultAvatarColor = "#4F46E5"

type KidHandler struct {
	kidStore     *store.KidStore
	taskStore    *store.TaskStore
	earningStore *store.EarningStore
	logger       *slog.Logger
}

func NewKidHandler(ks *store.KidStore, ts *store.TaskStore, es *store.EarningStore, logger *slog.Logger) *KidHandler {
	return &KidHandler{
		kidStore:     ks,
		taskStore:    ts,
		earningStore: es,
		logger:       logger,
	}
}

type kidRequest struct {
	Name                 string `json:"name"`
	Birthday             string `json:"birthday"`
	PocketMoneyAmount    string `json:"pocket_money_amount"`
	PocketMoneyFrequency string `json:"pocket_money_frequency"`
	AvatarColor          string `json:"avatar_color"`
	SavingsSplit         int    `json:"savings_split"`
}

type kidFields struct {
	birthday time.Time
	freq     model.Frequency
	color    string
}

func (req *kidRequest) validate() (kidFields, error) {
	var f kidFields

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return f, errors.New("name is required")
	}
	if req.Birthday != "" {
		bd, err := time.Parse("2006-01-02", req.Birthday)
		if err != nil {
			return f, errors.New("birthday must be YYYY-MM-DD")
		}
		f.birthday = bd
	}
	if req.PocketMoneyFrequency == "" {
		req.PocketMoneyFrequency = string(model.FrequencyWeekly)
	}
	freq, err := model.ParseFrequency(req.PocketMoneyFrequency)
	if err != nil {
		return f, err
	}
	f.freq = freq
	if req.SavingsSplit < 0 || req.SavingsSplit > 100 {
		return f, errors.New("savings_split must be between 0 and 100")
	}
	f.color = req.AvatarColor
	if f.color == "" {
		f.color = defaultAvatarColor
	}
	return f, nil
}

func (h *KidHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	var req kidRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	fields, err := req.validate()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	amount, err := money.ParseAmount(req.PocketMoneyAmount)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid pocket money amount")
		return
	}

	kid, err := h.kidStore.Create(userID, req.Name, fields.birthday, amount, fields.freq, fields.color, req.SavingsSplit)
	if err != nil {
		h.logger.Error("create kid", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create kid")
		return
	}

	writeJSON(w, http.StatusCreated, kid)
}

func (h *KidHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	kids, err := h.kidStore.ListByUser(userID)
	if err != nil {
		h.logger.Error("list kids", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list kids")
		return
	}

	writeJSON(w, http.StatusOK, kids)
}

func (h *KidHandler) Get(w http.ResponseWriter, r *http.Request) {
	kid, ok := h.ownedKid(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, kid)
}

func (h *KidHandler) Update(w http.ResponseWriter, r *http.Request) {
	kid, ok := h.ownedKid(w, r)
	if !ok {
		return
	}

	var req kidRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	fields, err := req.validate()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	// Omitting the birthday keeps the stored one.
	if fields.birthday.IsZero() {
		fields.birthday = kid.Birthday
	}

	amount, err := money.ParseAmount(req.PocketMoneyAmount)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid pocket money amount")
		return
	}

	updated, err := h.kidStore.Update(kid.ID, req.Name, fields.birthday, amount, fields.freq, fields.color, req.SavingsSplit)
	if err != nil {
		h.logger.Error("update kid", "kid_id", kid.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update kid")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *KidHandler) Delete(w http.ResponseWriter, r *http.Request) {
	kid, ok := h.ownedKid(w, r)
	if !ok {
		return
	}

	if err := h.kidStore.Delete(kid.ID); err != nil {
		h.logger.Error("delete kid", "kid_id", kid.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete kid")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Earnings reports the kid's running total of approved task earnings. This
// endpoint is kid-facing and unauthenticated.
func (h *KidHandler) Earnings(w http.ResponseWriter, r *http.Request) {
	kidID, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid kid id")
		return
	}

	kid, err := h.kidStore.GetByID(kidID)
	if err != nil {
		h.logger.Error("get kid", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load kid")
		return
	}
	if kid == nil {
		writeError(w, http.StatusNotFound, "kid not found")
		return
	}

	total, err := h.taskStore.TotalEarnings(kidID)
	if err != nil {
		h.logger.Error("total earnings", "kid_id", kidID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to compute earnings")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"total": total.StringFixed(2)})
}

// ResetEarnings closes out the kid's current earning period: it archives the
// approved tasks into an earning period, adds the total to net wealth, and
// clears the task slate.
func (h *KidHandler) ResetEarnings(w http.ResponseWriter, r *http.Request) {
	kid, ok := h.ownedKid(w, r)
	if !ok {
		return
	}

	period, err := h.earningStore.Reset(kid.ID, timeNow())
	if err != nil {
		if errors.Is(err, store.ErrNoEarnings) {
			writeError(w, http.StatusBadRequest, "no approved earnings to reset")
			return
		}
		h.logger.Error("reset earnings", "kid_id", kid.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to reset earnings")
		return
	}

	writeJSON(w, http.StatusOK, period)
}

func (h *KidHandler) Periods(w http.ResponseWriter, r *http.Request) {
	kid, ok := h.ownedKid(w, r)
	if !ok {
		return
	}

	periods, err := h.earningStore.ListByKid(kid.ID)
	if err != nil {
		h.logger.Error("list earning periods", "kid_id", kid.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list earning periods")
		return
	}

	writeJSON(w, http.StatusOK, periods)
}

// ownedKid loads the kid from the path and verifies the authenticated user
// owns it. On failure it writes the error response and returns ok=false.
func (h *KidHandler) ownedKid(w http.ResponseWriter, r *http.Request) (*model.Kid, bool) {
	userID, _ := auth.UserID(r.Context())

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
	if kid == nil || kid.UserID != userID {
		writeError(w, http.StatusNotFound, "kid not found")
		return nil, false
	}

	return kid, true
}
