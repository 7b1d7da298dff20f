package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/luizgag/fiap-backend-qualidade/internal/models"
	"github.com/luizgag/fiap-backend-qualidade/internal/store"
)

func (api *Api) ListPostsHandler(w http.ResponseWriter, r *http.Request) {
	posts, err := api.Store.ListPosts("")
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

func (api *Api) SearchPostsHandler(w http.ResponseWriter, r *http.Request) {
	posts, err := api.Store.ListPosts(chi.URLParam(r, "search"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

func (api *Api) GetPostHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid post id")
		return
	}

	post, err := api.Store.GetPostByID(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

type createPostRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	AuthorID int64  `json:"author_id"`
}

func (api *Api) CreatePostHandler(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "Missing Param title")
		return
	}
	if req.Content == "" {
		writeError(w, http.StatusBadRequest, "Missing Param content")
		return
	}
	if req.AuthorID == 0 {
		writeError(w, http.StatusBadRequest, "Missing Param author_id")
		return
	}

	post := &models.Post{Title: req.Title, Content: req.Content, AuthorID: req.AuthorID}
	if err := api.Store.CreatePost(post); err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, post)
}

type updatePostRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	AuthorID *int64  `json:"author_id"`
}

func (api *Api) UpdatePostHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid post id")
		return
	}

	var req updatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	post, err := api.Store.UpdatePost(id, store.PostUpdate{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: req.AuthorID,
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

func (api *Api) DeletePostHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid post id")
		return
	}

	post, err := api.Store.DeletePost(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if post == nil {
		// Deleting a missing post is not an error.
		writeJSON(w, http.StatusOK, map[string]string{})
		return
	}
	writeJSON(w, http.StatusOK, post)
}
