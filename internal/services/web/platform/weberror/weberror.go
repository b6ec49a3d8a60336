// Package weberror renders shared app-shell error responses for web modules.
package weberror

import (
	"net/http"
	"strings"

	module "github.com/jamesrunscanada/forthem/internal/services/web/module"
	apperrors "github.com/jamesrunscanada/forthem/internal/services/web/platform/errors"
	webi18n "github.com/jamesrunscanada/forthem/internal/services/web/platform/i18n"
	"github.com/jamesrunscanada/forthem/internal/services/web/platform/pagerender"
	"github.com/jamesrunscanada/forthem/internal/services/web/routepath"
	webtemplates "github.com/jamesrunscanada/forthem/internal/services/web/templates"
)

// ShouldRenderAppError reports whether status should use app error-page UX.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// WriteAppError writes a localized app-shell error page.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int, deps module.Dependencies) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	loc, _ := webi18n.ResolveLocalizer(r)
	key := "error.internal"
	if statusCode == http.StatusNotFound {
		key = "error.not_found"
	}
	title := strings.TrimSpace(loc.Sprintf(key))
	err := pagerender.WritePage(w, r, deps, pagerender.Page{
		Title:      title,
		StatusCode: statusCode,
		Body: webtemplates.AppError(webtemplates.ErrorPage{
			StatusCode: statusCode,
			Title:      title,
			HomeHref:   routepath.Root,
		}),
	})
	if err != nil {
		deps.Log().Printf("render error page status=%d err=%v", statusCode, err)
		http.Error(w, http.StatusText(statusCode), statusCode)
	}
}

// WriteModuleError writes a module-safe error response. Server errors are
// logged with their cause; visitors only see the status text.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, deps module.Dependencies) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode >= http.StatusInternalServerError {
		path := "-"
		if r != nil && r.URL != nil {
			path = r.URL.Path
		}
		deps.Log().Printf("module error path=%s status=%d request_id=%s err=%v", path, statusCode, requestID(r), err)
	}
	if ShouldRenderAppError(statusCode) {
		WriteAppError(w, r, statusCode, deps)
		return
	}
	message := http.StatusText(statusCode)
	if localized, ok := localizedMessage(r, err); ok {
		message = localized
	}
	http.Error(w, message, statusCode)
}

// PublicMessage returns the visitor-facing text for err: the catalog entry
// for its localization key in the request language, else its typed message,
// else the status text.
func PublicMessage(r *http.Request, err error) string {
	if localized, ok := localizedMessage(r, err); ok {
		return localized
	}
	return apperrors.PublicMessage(err, http.StatusText(apperrors.HTTPStatus(err)))
}

func localizedMessage(r *http.Request, err error) (string, bool) {
	key := apperrors.LocalizationKey(err)
	if key == "" {
		return "", false
	}
	loc, _ := webi18n.ResolveLocalizer(r)
	return loc.Sprintf(key), true
}

// NotFound renders the app-shell 404 page.
func NotFound(deps module.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		WriteAppError(w, r, http.StatusNotFound, deps)
	}
}

func requestID(r *http.Request) string {
	if r == nil {
		return "-"
	}
	if id := strings.TrimSpace(r.Header.Get("X-Request-ID")); id != "" {
		return id
	}
	return "-"
}
