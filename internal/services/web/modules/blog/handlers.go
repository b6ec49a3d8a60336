package blog

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/jamesrunscanada/forthem/internal/content/localstore"
	"github.com/jamesrunscanada/forthem/internal/platform/assets/imagecdn"
	apperrors "github.com/jamesrunscanada/forthem/internal/services/web/platform/errors"
	"github.com/jamesrunscanada/forthem/internal/services/web/platform/httpx"
	"github.com/jamesrunscanada/forthem/internal/services/web/platform/pagerender"
	"github.com/jamesrunscanada/forthem/internal/services/web/platform/publichandler"
	"github.com/jamesrunscanada/forthem/internal/services/web/routepath"
	webtemplates "github.com/jamesrunscanada/forthem/internal/services/web/templates"
)

const draftDateLayout = "2006-01-02"

type handlers struct {
	publichandler.Base
}

func newHandlers(base publichandler.Base) handlers {
	return handlers{Base: base}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	draft := webtemplates.DraftForm{Date: h.Deps().Clock().Format(draftDateLayout)}
	h.renderBlog(w, r, http.StatusOK, draft, "")
}

func (h handlers) renderBlog(w http.ResponseWriter, r *http.Request, statusCode int, draft webtemplates.DraftForm, draftErr string) {
	deps := h.Deps()
	loc, _ := h.PageLocalizer(r)
	feed := deps.LoadFeed(httpx.RequestContext(r))
	focus := strings.TrimSpace(r.URL.Query().Get(routepath.FocusQueryKey))
	editable := deps.Editor != nil

	page := webtemplates.BlogPage{
		Loc:        loc,
		Background: deps.Images.MustURL(imagecdn.Request{Source: webtemplates.PhotoRunning, WidthPX: webtemplates.BackgroundWidth}),
		CountLabel: countLabel(len(feed.Posts)),
		Posts:      webtemplates.NewPostEntries(feed.Posts, focus, editable, deps.Images),
		Error:      feed.Err,
		Empty:      webtemplates.NoPostsMessage,
		Focus:      focus,
	}
	if editable {
		page.Editor = &webtemplates.BlogEditor{
			PublishAction: routepath.BlogPosts,
			ResetAction:   routepath.BlogReset,
			Draft:         draft,
			Error:         draftErr,
		}
	}
	h.WritePage(w, r, pagerender.Page{
		Title:      webtemplates.T(loc, "nav.blog"),
		View:       routepath.ViewBlog,
		StatusCode: statusCode,
		Body:       webtemplates.Blog(page),
	})
}

func countLabel(n int) string {
	return strconv.Itoa(n) + " posts"
}

func (h handlers) handlePublish(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.Wrap(apperrors.KindInvalidInput, "invalid form", err))
		return
	}
	form := webtemplates.DraftForm{
		Date:    r.PostForm.Get("date"),
		Title:   r.PostForm.Get("title"),
		Content: r.PostForm.Get("content"),
		Photos:  r.PostForm.Get("photos"),
	}
	post, err := h.Deps().Editor.Add(httpx.RequestContext(r), localstore.Draft{
		Date:    form.Date,
		Title:   form.Title,
		Content: form.Content,
		Photos:  form.Photos,
	})
	var invalid *localstore.ValidationError
	if errors.As(err, &invalid) {
		h.renderBlog(w, r, http.StatusBadRequest, form, invalid.Message)
		return
	}
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.Deps().Log().Printf("blog post published id=%s date=%s", post.ID, post.Date)
	httpx.WriteRedirect(w, r, routepath.BlogFocus(post.ID))
}

func (h handlers) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.PathValue("postID"))
	removed, err := h.Deps().Editor.Delete(httpx.RequestContext(r), id)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	if removed {
		h.Deps().Log().Printf("blog post deleted id=%s", id)
	}
	httpx.WriteRedirect(w, r, routepath.Blog)
}

func (h handlers) handleReset(w http.ResponseWriter, r *http.Request) {
	if err := h.Deps().Editor.Reset(httpx.RequestContext(r)); err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.Deps().Log().Printf("blog posts reset to samples")
	httpx.WriteRedirect(w, r, routepath.Blog)
}
