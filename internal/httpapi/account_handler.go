package httpapi

import (
	"encoding/json"
	"net/http"

	"tayarpro-be/internal/account"
	"tayarpro-be/internal/auth"
)

type AccountHandler struct {
	accounts account.Service
}

func NewAccountHandler(accounts account.Service) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

type registerRequest struct {
	Username    string `json:"username"`
	FirstName   string `json:"firstname"`
	LastName    string `json:"lastname"`
	PhoneNumber string `json:"phonenumber"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	ZipCode     string `json:"zipcode"`
	Gender      string `json:"gender"`
	Password    string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type updateProfileRequest struct {
	FirstName   string `json:"firstname"`
	LastName    string `json:"lastname"`
	PhoneNumber string `json:"phonenumber"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	ZipCode     string `json:"zipcode"`
}

func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_argument", "invalid JSON body")
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "invalid_argument", "username, email and password are required")
		return
	}

	a, err := h.accounts.Register(r.Context(), account.RegisterParams{
		Username:    req.Username,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		ZipCode:     req.ZipCode,
		Gender:      req.Gender,
		Password:    req.Password,
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "account created",
		"account": a,
	})
}

func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_argument", "invalid JSON body")
		return
	}

	token, a, err := h.accounts.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message":      "login successful",
		"access_token": token,
		"token_type":   "bearer",
		"account":      a,
	})
}

func (h *AccountHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	accountID, ok := auth.AccountIDFromContext(r.Context())
	if !ok {
		respondUnauthorized(w)
		return
	}

	a, err := h.accounts.GetProfile(r.Context(), accountID)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, a)
}

func (h *AccountHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	accountID, ok := auth.AccountIDFromContext(r.Context())
	if !ok {
		respondUnauthorized(w)
		return
	}

	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_argument", "invalid JSON body")
		return
	}

	a, err := h.accounts.UpdateProfile(r.Context(), accountID, account.UpdateProfileParams{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		ZipCode:     req.ZipCode,
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "profile updated",
		"account": a,
	})
}
