package auth

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

func RegisterHandler(svc Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		req, err := decodeRegisterRequest(r.Body)
		if err != nil {
			encodeError(ErrRequiredFields, w)
			return
		}

		identity, err := svc.Register(r.Context(), req)
		if err != nil {
			encodeError(err, w)
			return
		}

		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(identity); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
		}
	})
}

func LoginHandler(svc Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		req, err := decodeLoginRequest(r.Body)
		if err != nil {
			encodeError(ErrRequiredFields, w)
			return
		}

		identity, err := svc.Login(r.Context(), req)
		if err != nil {
			encodeError(err, w)
			return
		}

		if err := json.NewEncoder(w).Encode(identity); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
		}
	})
}

// WhoAmIHandler echoes the identity for a user id. It performs no
// credential check; there is no session mechanism in this service.
func WhoAmIHandler(svc Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		identity, err := svc.WhoAmI(r.Context(), r.URL.Query().Get("user_id"))
		if err != nil {
			encodeError(err, w)
			return
		}

		if err := json.NewEncoder(w).Encode(identity); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
		}
	})
}

func encodeError(err error, w http.ResponseWriter) {
	switch {
	case errors.Is(err, ErrRequiredFields), errors.Is(err, ErrPasswordTooShort):
		w.WriteHeader(http.StatusBadRequest)
	case errors.Is(err, ErrInvalidCredentials):
		w.WriteHeader(http.StatusUnauthorized)
	case errors.Is(err, ErrNotFound):
		w.WriteHeader(http.StatusNotFound)
	case errors.Is(err, ErrExistingEmail):
		w.WriteHeader(http.StatusConflict)
	default:
		w.WriteHeader(http.StatusInternalServerError)
		err = errors.New("internal server error")
	}
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"error": err.Error(),
	}); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func decodeRegisterRequest(body io.ReadCloser) (registerRequest, error) {
	req := registerRequest{}
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		return registerRequest{}, err
	}
	return req, nil
}

func decodeLoginRequest(body io.ReadCloser) (loginRequest, error) {
	req := loginRequest{}
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		return loginRequest{}, err
	}
	return req, nil
}
