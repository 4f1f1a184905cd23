package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/fulldump/box"

	"tableman/service"
	"tableman/table"
)

func AccessLog(l *slog.Logger) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {
			r := box.GetRequest(ctx)
			now := time.Now()
			defer func() {
				l.Info("access",
					"remote", formatRemoteAddr(r),
					"method", r.Method,
					"url", r.URL.String(),
					"duration", time.Since(now),
				)
			}()

			next(ctx)
		}
	}
}

func formatRemoteAddr(r *http.Request) string {
	xorigin := strings.TrimSpace(strings.Split(
		r.Header.Get("X-Forwarded-For"), ",")[0])
	if xorigin != "" {
		return xorigin
	}

	if i := strings.LastIndex(r.RemoteAddr, ":"); i > 0 {
		return r.RemoteAddr[0:i]
	}
	return r.RemoteAddr
}

func RecoverFromPanic(next box.H) box.H {
	return func(ctx context.Context) {
		defer func() {
			if err := recover(); err != nil {
				debug.PrintStack()
				box.SetError(ctx, fmt.Errorf("internal panic: %v", err))
			}
		}()
		next(ctx)
	}
}

// InterceptorUnavailable rejects requests while the service is still
// restoring the snapshot or already shutting down.
func InterceptorUnavailable(s service.Servicer) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {

			status := s.GetStatus()
			if status == service.StatusOpening {
				box.SetError(ctx, fmt.Errorf("temporary unavailable: opening"))
				return
			}
			if status == service.StatusClosing {
				box.SetError(ctx, fmt.Errorf("temporary unavailable: closing"))
				return
			}
			next(ctx)
		}
	}
}

// PrettyErrorInterceptor maps core sentinel errors to HTTP statuses and
// renders every error with the same JSON shape.
func PrettyErrorInterceptor(next box.H) box.H {
	return func(ctx context.Context) {

		next(ctx)

		err := box.GetError(ctx)
		if err == nil {
			return
		}
		w := box.GetResponse(ctx)

		writeError := func(status int, description string) {
			w.WriteHeader(status)
			json.NewEncoder(w).Encode(PrettyError{
				Message:     err.Error(),
				Description: description,
			})
		}

		switch {
		case errors.Is(err, table.ErrRecordNotFound):
			writeError(http.StatusNotFound, fmt.Sprintf("record '%s' does not exist", box.GetUrlParameter(ctx, "recordId")))
		case errors.Is(err, table.ErrColumnNotFound):
			writeError(http.StatusNotFound, fmt.Sprintf("column '%s' does not exist", box.GetUrlParameter(ctx, "columnKey")))
		case errors.Is(err, table.ErrDuplicateID),
			errors.Is(err, table.ErrDuplicateColumn):
			writeError(http.StatusConflict, "the identifier is already taken")
		case errors.Is(err, table.ErrInvalidPermutation),
			errors.Is(err, table.ErrNotEditing),
			errors.Is(err, table.ErrMissingID),
			errors.Is(err, service.ErrInvalidRowsPerPage),
			errors.Is(err, service.ErrInvalidDirection):
			writeError(http.StatusBadRequest, "the request is not valid for the current state")
		case err == box.ErrResourceNotFound:
			writeError(http.StatusNotFound, fmt.Sprintf("resource '%s' not found", box.GetRequest(ctx).URL.String()))
		case err == box.ErrMethodNotAllowed:
			writeError(http.StatusMethodNotAllowed, fmt.Sprintf("method '%s' not allowed", box.GetRequest(ctx).Method))
		default:
			if _, ok := err.(*json.SyntaxError); ok {
				writeError(http.StatusBadRequest, "Malformed JSON")
				return
			}
			writeError(http.StatusInternalServerError, "Unexpected error")
		}
	}
}
